package shieldsvg

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Shape is an SVG element whose extent can be measured.
type Shape interface {
	Bounds() (Bounds, error)
}

// Group represents an SVG group (usually located in a 'g' XML element)
type Group struct {
	ID       string
	Elements []Shape
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (g *Group) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		if attr.Name.Local == "id" {
			g.ID = attr.Value
		}
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			var shape Shape

			switch tok.Name.Local {
			case "g":
				shape = &Group{}
			case "path":
				shape = &Path{}
			case "rect":
				shape = &Rect{}
			case "circle":
				shape = &Circle{}
			case "polygon", "polyline":
				shape = &PolyLine{}
			default:
				if err := decoder.Skip(); err != nil {
					return err
				}
				continue
			}

			if err = decoder.DecodeElement(shape, &tok); err != nil {
				return fmt.Errorf("error decoding element of Group: %s", err)
			}
			g.Elements = append(g.Elements, shape)

		case xml.EndElement:
			return nil
		}
	}
}

// Bounds implements the Shape interface. Elements that fail to measure are
// an error; a group with no measurable element returns empty bounds.
func (g *Group) Bounds() (Bounds, error) {
	var b Bounds
	for _, e := range g.Elements {
		eb, err := e.Bounds()
		if err != nil {
			return Bounds{}, err
		}
		b = b.Union(eb)
	}
	return b, nil
}

// parseFragment parses a catalog markup fragment, which may hold several
// sibling elements without a common root.
func parseFragment(fragment string) (*Group, error) {
	var g Group
	err := xml.Unmarshal([]byte("<g>"+fragment+"</g>"), &g)
	if err != nil {
		return nil, fmt.Errorf("parsing fragment: %w", err)
	}
	return &g, nil
}

// Bounds is an axis-aligned bounding box. The zero value is empty.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
	valid                  bool
}

// Empty reports whether b contains no point.
func (b Bounds) Empty() bool {
	return !b.valid
}

// Add extends b to contain (x, y).
func (b Bounds) Add(x, y float64) Bounds {
	if !b.valid {
		return Bounds{MinX: x, MinY: y, MaxX: x, MaxY: y, valid: true}
	}
	b.MinX = min(b.MinX, x)
	b.MinY = min(b.MinY, y)
	b.MaxX = max(b.MaxX, x)
	b.MaxY = max(b.MaxY, y)
	return b
}

// Union returns the smallest bounds containing b and o.
func (b Bounds) Union(o Bounds) Bounds {
	if !o.valid {
		return b
	}
	return b.Add(o.MinX, o.MinY).Add(o.MaxX, o.MaxY)
}

// Width of the box.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height of the box.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Center of the box.
func (b Bounds) Center() (float64, float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2
}

func (b Bounds) String() string {
	if !b.valid {
		return "empty"
	}
	return strings.Join([]string{
		formatNumber(b.MinX, 2), formatNumber(b.MinY, 2),
		formatNumber(b.MaxX, 2), formatNumber(b.MaxY, 2),
	}, " ")
}
