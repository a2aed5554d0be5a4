package shieldsvg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	heaterOutline = `<path d="M0 0 L500 0 L500 300 C500 450 250 550 250 550 C250 550 0 450 0 300 Z"/>`
	leftHalf      = `<rect x="0" y="0" width="250" height="550"/>`
	rightHalf     = `<rect x="250" y="0" width="250" height="550"/>`
	roundel       = `<circle cx="250" cy="250" r="100"/>`
)

func float(v float64) *float64 { return &v }

func testCatalogData() CatalogData {
	return CatalogData{
		Shields: []ShieldStyle{
			{
				ID:              "heater",
				Outline:         heaterOutline,
				ChargeTransform: "translate(0,25)",
				Divisions: map[string][]Segment{
					"perpale": {{X: 125, Y: 275}, {X: 375, Y: 275}},
					"scaled":  {{X: 250, Y: 275, Scale: float(0.8)}},
				},
			},
			{
				ID:            "based",
				Outline:       heaterOutline,
				BaseTransform: "translate(10,10)",
			},
		},
		Colours: []Colour{
			{ID: "gules", Value: "#ff0000"},
			{ID: "azure", Value: "#0000ff"},
			{ID: "or", Value: "#ffcc00"},
			{ID: "sable", Value: "#000000"},
			{ID: "proper"},
		},
		Divisions: []DivisionStyle{
			{
				ID:       "plain",
				Regions:  []Element{{Element: `<rect x="0" y="0" width="500" height="550"/>`}},
				Segments: []Segment{{X: 250, Y: 275}},
			},
			{
				ID:      "perpale",
				Regions: []Element{{Element: leftHalf}, {Element: rightHalf}},
			},
			{
				ID:      "scaled",
				Regions: []Element{{Element: `<rect x="0" y="0" width="500" height="550"/>`}},
			},
			{
				ID:      "ungeometried",
				Regions: []Element{{Element: leftHalf}, {Element: rightHalf}},
			},
		},
		Backgrounds: []BackgroundStyle{
			{ID: "none"},
			{ID: "bendy", SVG: `<path d="M0 0 L4000 4400"/>`},
		},
		Charges: []ChargeStyle{
			{ID: "blank"},
			{ID: "roundel", Elements: []Element{{Element: roundel}}},
			{ID: "tinctured", Elements: []Element{
				{Element: roundel},
				{Element: `<rect x="200" y="200" width="100" height="100" fill="#123456"/>`, Colour: RoleSecondary},
				{Element: `<path d="M250 150 L250 350"></path>`, Colour: RoleOutline},
			}},
		},
		Layouts: []LayoutStyle{
			{ID: "single", Transforms: []string{"translate(0,0)"}},
			{ID: "three", Transforms: []string{
				"translate(-150,0) scale(0.5)",
				"translate(0,0) scale(0.5)",
				"translate(150,0) scale(0.5)",
			}},
			{ID: "empty"},
		},
	}
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(testCatalogData())
	require.NoError(t, err)
	return c
}

func charge(style, layout string) ChargeInstance {
	return ChargeInstance{
		Style:         Ref{ID: style},
		Layout:        Ref{ID: layout},
		OutlineColour: Ref{ID: "sable"},
		PrimaryColour: Ref{ID: "or"},
	}
}

func division(primary, bg string, c ChargeInstance) DivisionInstance {
	return DivisionInstance{
		Background: Background{
			Style:           Ref{ID: bg},
			PrimaryColour:   Ref{ID: primary},
			SecondaryColour: Ref{ID: "sable"},
		},
		Charge: c,
	}
}

// perPale is a shield split in two halves, red and blue, with blank charges.
func perPale() ShieldInstance {
	return ShieldInstance{
		Style:         Ref{ID: "heater"},
		DivisionStyle: Ref{ID: "perpale"},
		Divisions: []DivisionInstance{
			division("gules", "none", charge("blank", "single")),
			division("azure", "none", charge("blank", "single")),
		},
		Charge: charge("blank", "single"),
	}
}

// testRenderer returns a renderer for calling the components directly.
func testRenderer(g *Generator) *renderer {
	return &renderer{g: g, cfg: g.cfg, cat: g.catalog, logger: g.logger}
}
