package shieldsvg

import (
	"fmt"
	"strconv"
	"strings"
)

// Circle is an SVG circle element
type Circle struct {
	ID     string `xml:"id,attr"`
	Cx     string `xml:"cx,attr"`
	Cy     string `xml:"cy,attr"`
	Radius string `xml:"r,attr"`
}

// Bounds implements the Shape interface.
func (c *Circle) Bounds() (Bounds, error) {
	var v [3]float64
	for k, s := range []string{c.Cx, c.Cy, c.Radius} {
		if s == "" {
			continue
		}
		n, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
		if err != nil {
			return Bounds{}, fmt.Errorf("circle %q: %w", c.ID, err)
		}
		v[k] = n
	}
	return Bounds{}.Add(v[0]-v[2], v[1]-v[2]).Add(v[0]+v[2], v[1]+v[2]), nil
}
