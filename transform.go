package shieldsvg

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	mt "github.com/rustyoz/Mtransform"
)

// Transform is an optional positioning override for a charge. Scale and
// rotation pivot on the centre of the charge's bounding box. Values are
// taken at two decimals; a Scale that rounds to zero is treated as unset,
// that is as 1.
type Transform struct {
	Scale        float64 `yaml:"scale"`
	TranslationX float64 `yaml:"translationX"`
	TranslationY float64 `yaml:"translationY"`
	Rotation     float64 `yaml:"rotation"`
}

func (t *Transform) scale() float64 {
	if s := round(t.Scale, 2); s != 0 {
		return s
	}
	return 1
}

func (t *Transform) offset() (float64, float64) {
	return round(t.TranslationX, 2), round(t.TranslationY, 2)
}

func (t *Transform) angle() float64 {
	return round(t.Rotation, 2)
}

func (t *Transform) translates() bool {
	x, y := t.offset()
	return x != 0 || y != 0
}

// IsIdentity reports whether t leaves its content untouched. A nil
// transform is the identity.
func (t *Transform) IsIdentity() bool {
	return t == nil || (!t.translates() && t.scale() == 1 && t.angle() == 0)
}

// Compose returns the SVG transform list for t, pivoting on the centre of a
// w×h box. Only clauses that differ from the identity are emitted, so an
// identity transform yields the empty string.
func (t *Transform) Compose(w, h float64) string {
	if t.IsIdentity() {
		return ""
	}
	cx, cy := formatNumber(w/2, 2), formatNumber(h/2, 2)

	var clauses []string
	if t.translates() {
		x, y := t.offset()
		clauses = append(clauses, fmt.Sprintf("translate(%s,%s)",
			formatNumber(x, 2), formatNumber(y, 2)))
	}
	if s := t.scale(); s != 1 {
		clauses = append(clauses, fmt.Sprintf("translate(%s,%s) scale(%s) translate(-%s,-%s)",
			cx, cy, formatNumber(s, 2), cx, cy))
	}
	if r := t.angle(); r != 0 {
		clauses = append(clauses, fmt.Sprintf("rotate(%s,%s,%s)",
			formatNumber(r, 2), cx, cy))
	}
	return strings.Join(clauses, " ")
}

// Matrix returns the affine matrix equivalent to Compose(w, h).
func (t *Transform) Matrix(w, h float64) mt.Transform {
	m := mt.Identity()
	if t.IsIdentity() {
		return m
	}
	cx, cy := w/2, h/2
	if t.translates() {
		m = mt.MultiplyTransforms(m, translation(t.offset()))
	}
	if s := t.scale(); s != 1 {
		m = mt.MultiplyTransforms(m, translation(cx, cy))
		m = mt.MultiplyTransforms(m, scaling(s))
		m = mt.MultiplyTransforms(m, translation(-cx, -cy))
	}
	if r := t.angle(); r != 0 {
		m = mt.MultiplyTransforms(m, translation(cx, cy))
		m = mt.MultiplyTransforms(m, rotation(r))
		m = mt.MultiplyTransforms(m, translation(-cx, -cy))
	}
	return m
}

func translation(x, y float64) mt.Transform {
	m := mt.Identity()
	m[0][2] = x
	m[1][2] = y
	return m
}

func scaling(s float64) mt.Transform {
	m := mt.Identity()
	m.Scale(s, s)
	return m
}

// rotation returns a rotation about the origin by deg degrees, clockwise in
// SVG's y-down space.
func rotation(deg float64) mt.Transform {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	m := mt.Identity()
	m[0][0], m[0][1] = cos, -sin
	m[1][0], m[1][1] = sin, cos
	return m
}

// placement scales by s and then translates by (x, y).
func placement(s, x, y float64) mt.Transform {
	return mt.MultiplyTransforms(translation(x, y), scaling(s))
}

// formatMatrix renders m as an SVG matrix() transform.
func formatMatrix(m mt.Transform) string {
	return fmt.Sprintf("matrix(%s,%s,%s,%s,%s,%s)",
		formatNumber(m[0][0], -1), formatNumber(m[1][0], -1),
		formatNumber(m[0][1], -1), formatNumber(m[1][1], -1),
		formatNumber(m[0][2], -1), formatNumber(m[1][2], -1))
}

// formatNumber prints v rounded to prec decimals, without trailing zeros.
// A negative prec keeps full precision.
func formatNumber(v float64, prec int) string {
	if prec >= 0 {
		v = round(v, prec)
	}
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func round(v float64, prec int) float64 {
	p := math.Pow(10, float64(prec))
	return math.Round(v*p) / p
}
