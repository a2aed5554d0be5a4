package shieldsvg

import (
	"fmt"

	gl "github.com/rustyoz/genericlexer"
)

// PolyLine
// set of connected line segments that typically form a closed shape.
// Used for both polyline and polygon elements.
type PolyLine struct {
	ID     string `xml:"id,attr"`
	Points string `xml:"points,attr"`
}

// Bounds implements the Shape interface.
func (pl *PolyLine) Bounds() (Bounds, error) {
	l, items := gl.Lex(fmt.Sprint(pl.ID), pl.Points)
	defer drain(items)
	pdp := &pathDescriptionParser{p: &Path{ID: pl.ID}, lex: *l}
	nums, err := pdp.parseNumbers()
	if err != nil {
		return Bounds{}, err
	}
	if len(nums)%2 != 0 {
		return Bounds{}, fmt.Errorf("polyline %q: odd number of coordinates", pl.ID)
	}
	var b Bounds
	for k := 0; k < len(nums); k += 2 {
		b = b.Add(nums[k], nums[k+1])
	}
	return b, nil
}
