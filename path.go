package shieldsvg

import (
	"fmt"
	"strconv"
	"strings"

	gl "github.com/rustyoz/genericlexer"
)

// Path is an SVG XML path element
type Path struct {
	ID              string `xml:"id,attr"`
	D               string `xml:"d,attr"`
	TransformString string `xml:"transform,attr"`
}

// Rect is an SVG XML rect element
type Rect struct {
	ID     string `xml:"id,attr"`
	X      string `xml:"x,attr"`
	Y      string `xml:"y,attr"`
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
}

// number of coordinates consumed by each path command
var commandArity = map[byte]int{
	'M': 2, 'L': 2, 'T': 2,
	'H': 1, 'V': 1,
	'C': 6,
	'S': 4, 'Q': 4,
	'A': 7,
	'Z': 0,
}

type pathDescriptionParser struct {
	p      *Path
	lex    gl.Lexer
	x, y   float64
	startX float64
	startY float64
	bounds Bounds
}

// Bounds implements the Shape interface. Control points are included, so
// the box may be slightly larger than the drawn curve.
//
// TODO: apply TransformString once transform lists are parsed.
func (p *Path) Bounds() (Bounds, error) {
	l, items := gl.Lex(fmt.Sprint(p.ID), p.D)
	defer drain(items)
	pdp := &pathDescriptionParser{p: p, lex: *l}
	for {
		i := pdp.lex.NextItem()
		switch {
		case i.Type == gl.ItemError:
			return Bounds{}, fmt.Errorf("lexing path %q: %s", p.ID, i.Value)
		case i.Type == gl.ItemEOS:
			return pdp.bounds, nil
		case i.Type == gl.ItemLetter:
			// a close command may run into the next command letter
			for k := 0; k < len(i.Value); k++ {
				if err := pdp.parseCommand(i.Value[k], k == len(i.Value)-1); err != nil {
					return Bounds{}, err
				}
			}
		default:
		}
	}
}

func (pdp *pathDescriptionParser) parseCommand(cmd byte, last bool) error {
	upper := strings.ToUpper(string(cmd))[0]
	relative := cmd != upper
	arity, ok := commandArity[upper]
	if !ok {
		return fmt.Errorf("path %q: unknown command %q", pdp.p.ID, cmd)
	}

	var nums []float64
	if last {
		var err error
		if nums, err = pdp.parseNumbers(); err != nil {
			return err
		}
	}

	if arity == 0 {
		pdp.x, pdp.y = pdp.startX, pdp.startY
		return nil
	}
	if len(nums) == 0 || len(nums)%arity != 0 {
		return fmt.Errorf("path %q: command %c expects a multiple of %d numbers, got %d",
			pdp.p.ID, cmd, arity, len(nums))
	}

	for n := 0; n < len(nums); n += arity {
		args := nums[n : n+arity]
		ox, oy := 0.0, 0.0
		if relative {
			ox, oy = pdp.x, pdp.y
		}
		switch upper {
		case 'H':
			pdp.x = ox + args[0]
		case 'V':
			pdp.y = oy + args[0]
		case 'A':
			pdp.x, pdp.y = ox+args[5], oy+args[6]
		default:
			// every pair is a point; the last one is the new current point
			for k := 0; k < arity; k += 2 {
				pdp.bounds = pdp.bounds.Add(ox+args[k], oy+args[k+1])
			}
			pdp.x, pdp.y = ox+args[arity-2], oy+args[arity-1]
		}
		pdp.bounds = pdp.bounds.Add(pdp.x, pdp.y)

		if upper == 'M' && n == 0 {
			pdp.startX, pdp.startY = pdp.x, pdp.y
		}
	}
	return nil
}

func (pdp *pathDescriptionParser) parseNumbers() ([]float64, error) {
	var nums []float64
	for {
		pdp.lex.ConsumeWhiteSpace()
		pdp.lex.ConsumeComma()
		pdp.lex.ConsumeWhiteSpace()
		if pdp.lex.PeekItem().Type != gl.ItemNumber {
			return nums, nil
		}
		n, err := parseNumber(pdp.lex.NextItem())
		if err != nil {
			return nil, fmt.Errorf("path %q: %w", pdp.p.ID, err)
		}
		nums = append(nums, n)
	}
}

// drain reads the lexer's remaining items so that its goroutine can exit.
func drain(items <-chan gl.Item) {
	for range items {
	}
}

func parseNumber(i gl.Item) (float64, error) {
	n, err := strconv.ParseFloat(i.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("expected number, got %q", i.Value)
	}
	return n, nil
}

// Bounds implements the Shape interface.
func (r *Rect) Bounds() (Bounds, error) {
	var v [4]float64
	for k, s := range []string{r.X, r.Y, r.Width, r.Height} {
		if s == "" {
			continue
		}
		n, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
		if err != nil {
			return Bounds{}, fmt.Errorf("rect %q: %w", r.ID, err)
		}
		v[k] = n
	}
	return Bounds{}.Add(v[0], v[1]).Add(v[0]+v[2], v[1]+v[3]), nil
}
