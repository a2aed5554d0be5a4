package shieldsvg

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderChargeRepeatsPerLayoutTransform(t *testing.T) {
	r := testRenderer(NewGenerator(testCatalog(t)))
	require.NoError(t, r.renderCharge(charge("roundel", "three")))

	want := `<g stroke-width="2px" stroke="#000000" fill="#ffcc00">` +
		`<g transform="translate(-150,0) scale(0.5)">` + roundel + `</g>` +
		`<g transform="translate(0,0) scale(0.5)">` + roundel + `</g>` +
		`<g transform="translate(150,0) scale(0.5)">` + roundel + `</g>` +
		`</g>`
	assert.Equal(t, want, r.b.String())
}

func TestRenderChargeEmpty(t *testing.T) {
	tests := []struct {
		name   string
		style  string
		layout string
	}{
		{"no elements", "blank", "three"},
		{"no transforms", "roundel", "empty"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := testRenderer(NewGenerator(testCatalog(t)))
			require.NoError(t, r.renderCharge(charge(test.style, test.layout)))
			assert.Equal(t, `<g stroke-width="2px" stroke="#000000" fill="#ffcc00"></g>`, r.b.String())
		})
	}
}

func TestRenderChargeColourRoles(t *testing.T) {
	c := charge("tinctured", "single")
	c.SecondaryColour = &Ref{ID: "gules"}

	r := testRenderer(NewGenerator(testCatalog(t)))
	require.NoError(t, r.renderCharge(c))
	out := r.b.String()

	// untagged elements inherit the paint group's fill
	assert.Contains(t, out, roundel)
	assert.Contains(t, out, `<rect x="200" y="200" width="100" height="100" fill="#ff0000"/>`)
	assert.NotContains(t, out, "#123456")
	assert.Contains(t, out, `<path d="M250 150 L250 350" fill="#000000"></path>`)
}

func TestRenderChargeMissingSecondary(t *testing.T) {
	r := testRenderer(NewGenerator(testCatalog(t)))
	err := r.renderCharge(charge("tinctured", "single"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingSecondaryColour))
}

func TestRenderChargeMissingEntries(t *testing.T) {
	r := testRenderer(NewGenerator(testCatalog(t)))
	err := r.renderCharge(charge("lion", "single"))
	assert.True(t, errors.Is(err, ErrMissingEntry))

	err = r.renderCharge(charge("roundel", "orle"))
	assert.True(t, errors.Is(err, ErrMissingEntry))
}

func TestRenderChargeUndefinedColours(t *testing.T) {
	c := charge("roundel", "single")
	c.OutlineColour = Ref{ID: "proper"}
	c.PrimaryColour = Ref{ID: "vert"}

	r := testRenderer(NewGenerator(testCatalog(t)))
	require.NoError(t, r.renderCharge(c))
	assert.True(t, strings.HasPrefix(r.b.String(), `<g stroke-width="2px" stroke="none" fill="none">`))
}

func TestSetFill(t *testing.T) {
	tests := []struct {
		element string
		want    string
	}{
		{`<rect x="1" fill="#123456"/>`, `<rect x="1" fill="red"/>`},
		{`<circle r="1" />`, `<circle r="1" fill="red"/>`},
		{`<path d="M0 0" fill='blue'></path>`, `<path d="M0 0" fill="red"></path>`},
		{`<g stroke="black"><path d="M0 0"/></g>`, `<g stroke="black" fill="red"><path d="M0 0"/></g>`},
		{`<!-- star --><path d="M0 0"/>`, `<!-- star --><path d="M0 0" fill="red"/>`},
		{`<?xml version="1.0"?><rect/>`, `<?xml version="1.0"?><rect fill="red"/>`},
		{`<!DOCTYPE svg><!-- a > b --><circle r="2"/>`, `<!DOCTYPE svg><!-- a > b --><circle r="2" fill="red"/>`},
		{`<!-- only a comment -->`, `<!-- only a comment -->`},
		{`not markup`, `not markup`},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, setFill(test.element, "red"), test.element)
	}
}
