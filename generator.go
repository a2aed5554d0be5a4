package shieldsvg

import (
	"encoding/xml"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Generator renders shield instances against a catalog. It is safe for
// concurrent use.
type Generator struct {
	catalog *Catalog
	cfg     Config
	logger  *zap.Logger

	mu  sync.Mutex // guards rnd
	rnd *rand.Rand
}

// NewGenerator returns a generator reading from catalog.
func NewGenerator(catalog *Catalog, opts ...Option) *Generator {
	g := &Generator{
		catalog: catalog,
		cfg:     DefaultConfig(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rnd == nil {
		g.rnd = defaultRand()
	}
	return g
}

// Config returns the configuration in use.
func (g *Generator) Config() Config {
	return g.cfg
}

// GenerateShieldDocument renders s as a standalone SVG document. On error
// no document is returned.
func (g *Generator) GenerateShieldDocument(s ShieldInstance) (string, error) {
	r, err := g.newRenderer(s)
	if err != nil {
		return "", err
	}
	g.logger.Debug("rendering shield",
		zap.String("style", s.Style.ID),
		zap.String("division_style", s.DivisionStyle.ID),
		zap.Int("divisions", len(s.Divisions)))

	w, h := formatNumber(g.cfg.Width, -1), formatNumber(g.cfg.Height, -1)
	fmt.Fprintf(&r.b, `<svg width="%s" height="%s" viewBox="0 0 %s %s" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">`,
		w, h, w, h)
	if err := r.renderShield(s); err != nil {
		g.logger.Debug("rendering shield failed", zap.Error(err))
		return "", err
	}
	r.b.WriteString(`</svg>`)

	g.logger.Debug("rendered shield", zap.Int("bytes", r.b.Len()))
	return r.b.String(), nil
}

// jitter returns a random offset in [-GlossJitter, GlossJitter] per axis.
func (g *Generator) jitter() (float64, float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	dx := (g.rnd.Float64()*2 - 1) * g.cfg.GlossJitter
	dy := (g.rnd.Float64()*2 - 1) * g.cfg.GlossJitter
	return dx, dy
}

// renderer holds the state of a single GenerateShieldDocument call.
type renderer struct {
	g        *Generator
	cfg      Config
	cat      *Catalog
	logger   *zap.Logger
	shield   *ShieldStyle
	division *DivisionStyle
	segments []Segment
	b        strings.Builder
}

// newRenderer resolves the shield and division styles and checks the
// instance's structure before anything is drawn.
func (g *Generator) newRenderer(s ShieldInstance) (*renderer, error) {
	shield, err := g.catalog.Shield(s.Style.ID)
	if err != nil {
		return nil, err
	}
	division, err := g.catalog.Division(s.DivisionStyle.ID)
	if err != nil {
		return nil, err
	}
	if len(s.Divisions) != len(division.Regions) {
		return nil, fmt.Errorf("%w: division style %q has %d segments, shield has %d divisions",
			ErrDivisionCount, division.ID, len(division.Regions), len(s.Divisions))
	}
	segs, err := segments(shield, division)
	if err != nil {
		return nil, err
	}
	return &renderer{
		g:        g,
		cfg:      g.cfg,
		cat:      g.catalog,
		logger:   g.logger,
		shield:   shield,
		division: division,
		segments: segs,
	}, nil
}

func (r *renderer) colour(id string) string {
	v := r.cat.ResolveColour(id)
	if v == NoPaint {
		r.logger.Debug("colour has no value, painting none", zap.String("colour", id))
	}
	return v
}

func (r *renderer) clipID(i int) string {
	return fmt.Sprintf("%sc%d", r.cfg.IDPrefix, i)
}

// open writes a group start tag with the given attribute name/value pairs.
func (r *renderer) open(attrs ...string) {
	r.b.WriteString("<g")
	for i := 0; i+1 < len(attrs); i += 2 {
		fmt.Fprintf(&r.b, ` %s="%s"`, attrs[i], escapeAttr(attrs[i+1]))
	}
	r.b.WriteString(">")
}

func (r *renderer) close() {
	r.b.WriteString("</g>")
}

// transformed runs fn inside a group applying transform, or directly when
// transform is empty.
func (r *renderer) transformed(transform string, fn func() error) error {
	if strings.TrimSpace(transform) == "" {
		return fn()
	}
	r.open("transform", transform)
	if err := fn(); err != nil {
		return err
	}
	r.close()
	return nil
}

// clipped runs fn inside a group clipped by region i.
func (r *renderer) clipped(i int, fn func() error) error {
	r.open("clip-path", "url(#"+r.clipID(i)+")")
	if err := fn(); err != nil {
		return err
	}
	r.close()
	return nil
}

func px(v float64) string {
	return formatNumber(v, -1) + "px"
}

func escapeAttr(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}
