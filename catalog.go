package shieldsvg

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Role selects which resolved colour of a charge instance an artwork element
// is filled with.
type Role string

// Colour roles. An element without a role inherits the fill of the charge's
// paint group.
const (
	RoleNone      Role = ""
	RoleOutline   Role = "outline"
	RolePrimary   Role = "primary"
	RoleSecondary Role = "secondary"
)

// Element is one drawable SVG fragment, optionally tagged with a colour
// role.
type Element struct {
	Element string `yaml:"element"`
	Colour  Role   `yaml:"colour,omitempty"`
}

// Segment is the position of one division cell on the shield. Scale, when
// set and non-zero, overrides the default charge scale of 1/segment count.
type Segment struct {
	X     float64  `yaml:"x"`
	Y     float64  `yaml:"y"`
	Scale *float64 `yaml:"scale,omitempty"`
}

// ShieldStyle is an outline shape with its base geometry.
type ShieldStyle struct {
	ID              string `yaml:"id"`
	Outline         string `yaml:"outline"`
	BaseTransform   string `yaml:"basetransform,omitempty"`
	ChargeTransform string `yaml:"chargetransform,omitempty"`

	// Divisions maps a division style id to the segment geometry of that
	// division style on this outline.
	Divisions map[string][]Segment `yaml:"divisions,omitempty"`
}

// DivisionStyle partitions the shield field into clip regions.
type DivisionStyle struct {
	ID      string    `yaml:"id"`
	Regions []Element `yaml:"svg"`

	// Segments is used when the shield style has no geometry of its own
	// for this division style.
	Segments []Segment `yaml:"segments,omitempty"`
}

// BackgroundStyle is a tileable pattern drawn on the background canvas.
type BackgroundStyle struct {
	ID  string `yaml:"id"`
	SVG string `yaml:"svg"`
}

// ChargeStyle is the artwork of an emblem.
type ChargeStyle struct {
	ID       string    `yaml:"id"`
	Elements []Element `yaml:"svg"`
}

// LayoutStyle repeats a charge once per transform.
type LayoutStyle struct {
	ID         string   `yaml:"id"`
	Transforms []string `yaml:"transforms"`
}

// Colour is a named paint. An empty Value means the colour is undefined.
type Colour struct {
	ID    string `yaml:"id"`
	Value string `yaml:"value,omitempty"`
}

// CatalogData is the decoded form of the six catalogs.
type CatalogData struct {
	Shields     []ShieldStyle     `yaml:"shields"`
	Colours     []Colour          `yaml:"colours"`
	Divisions   []DivisionStyle   `yaml:"divisions"`
	Backgrounds []BackgroundStyle `yaml:"backgrounds"`
	Charges     []ChargeStyle     `yaml:"charges"`
	Layouts     []LayoutStyle     `yaml:"layouts"`
}

// Catalog indexes catalog entries by id. It is read-only once built and
// safe for concurrent use.
type Catalog struct {
	shields     map[string]*ShieldStyle
	colours     map[string]*Colour
	divisions   map[string]*DivisionStyle
	backgrounds map[string]*BackgroundStyle
	charges     map[string]*ChargeStyle
	layouts     map[string]*LayoutStyle
}

// NewCatalog indexes data. Ids must be unique within each catalog.
func NewCatalog(data CatalogData) (*Catalog, error) {
	var err error
	c := &Catalog{}
	if c.shields, err = index("shield", data.Shields, func(s *ShieldStyle) string { return s.ID }); err != nil {
		return nil, err
	}
	if c.colours, err = index("colour", data.Colours, func(s *Colour) string { return s.ID }); err != nil {
		return nil, err
	}
	if c.divisions, err = index("division", data.Divisions, func(s *DivisionStyle) string { return s.ID }); err != nil {
		return nil, err
	}
	if c.backgrounds, err = index("background", data.Backgrounds, func(s *BackgroundStyle) string { return s.ID }); err != nil {
		return nil, err
	}
	if c.charges, err = index("charge", data.Charges, func(s *ChargeStyle) string { return s.ID }); err != nil {
		return nil, err
	}
	if c.layouts, err = index("layout", data.Layouts, func(s *LayoutStyle) string { return s.ID }); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadCatalog decodes a single YAML or JSON document holding all six
// catalogs and indexes it.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var data CatalogData
	if err := yaml.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	return NewCatalog(data)
}

func index[T any](kind string, entries []T, id func(*T) string) (map[string]*T, error) {
	m := make(map[string]*T, len(entries))
	for i := range entries {
		e := &entries[i]
		key := id(e)
		if _, ok := m[key]; ok {
			return nil, fmt.Errorf("%w: %s %q", ErrDuplicateEntry, kind, key)
		}
		m[key] = e
	}
	return m, nil
}

func lookup[T any](kind string, m map[string]*T, id string) (*T, error) {
	e, ok := m[id]
	if !ok {
		return nil, missingEntry(kind, id)
	}
	return e, nil
}

// Shield returns the shield style with the given id.
func (c *Catalog) Shield(id string) (*ShieldStyle, error) {
	return lookup("shield", c.shields, id)
}

// Division returns the division style with the given id.
func (c *Catalog) Division(id string) (*DivisionStyle, error) {
	return lookup("division", c.divisions, id)
}

// Background returns the background style with the given id.
func (c *Catalog) Background(id string) (*BackgroundStyle, error) {
	return lookup("background", c.backgrounds, id)
}

// Charge returns the charge style with the given id.
func (c *Catalog) Charge(id string) (*ChargeStyle, error) {
	return lookup("charge", c.charges, id)
}

// Layout returns the layout style with the given id.
func (c *Catalog) Layout(id string) (*LayoutStyle, error) {
	return lookup("layout", c.layouts, id)
}

// Colour returns the colour with the given id.
func (c *Catalog) Colour(id string) (*Colour, error) {
	return lookup("colour", c.colours, id)
}

// segments returns the geometry of division style d on shield style s.
func segments(s *ShieldStyle, d *DivisionStyle) ([]Segment, error) {
	segs, ok := s.Divisions[d.ID]
	if !ok {
		segs = d.Segments
	}
	if len(segs) < len(d.Regions) {
		return nil, fmt.Errorf("%w: shield %q has %d segments for division %q, want %d",
			ErrMissingGeometry, s.ID, len(segs), d.ID, len(d.Regions))
	}
	return segs, nil
}
