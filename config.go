package shieldsvg

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config holds the fixed dimensions and paint constants of a rendered
// shield. The zero value is not useful; start from DefaultConfig.
type Config struct {
	// Width and Height of the document canvas.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Native size of background tiles and charge artwork.
	BackgroundWidth  float64 `yaml:"background_width"`
	BackgroundHeight float64 `yaml:"background_height"`
	ChargeWidth      float64 `yaml:"charge_width"`
	ChargeHeight     float64 `yaml:"charge_height"`

	OutlineStrokeWidth    float64 `yaml:"outline_stroke_width"`
	ChargeStrokeWidth     float64 `yaml:"charge_stroke_width"`
	BackgroundStrokeWidth float64 `yaml:"background_stroke_width"`

	// IDPrefix prefixes clip path and gradient ids, so that several
	// documents can be inlined into the same page.
	IDPrefix string `yaml:"id_prefix"`

	// Gloss enables the translucent highlight overlay. GlossJitter bounds
	// the random shift of the highlight centre on each axis.
	Gloss       bool    `yaml:"gloss"`
	GlossJitter float64 `yaml:"gloss_jitter"`
}

// DefaultConfig returns the configuration matching the published catalogs.
func DefaultConfig() Config {
	return Config{
		Width:                 500,
		Height:                550,
		BackgroundWidth:       4000,
		BackgroundHeight:      4400,
		ChargeWidth:           500,
		ChargeHeight:          500,
		OutlineStrokeWidth:    4,
		ChargeStrokeWidth:     2,
		BackgroundStrokeWidth: 100,
		IDPrefix:              "shield",
		Gloss:                 true,
		GlossJitter:           25,
	}
}

// ParseConfig decodes YAML overrides on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Option configures a Generator.
type Option func(*Generator)

// WithConfig replaces the generator configuration.
func WithConfig(cfg Config) Option {
	return func(g *Generator) {
		g.cfg = cfg
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithRand pins the random source used for the gloss jitter. Use it with a
// fixed seed to get byte-identical documents.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rnd = r
		}
	}
}

// WithoutGloss disables the gloss overlay.
func WithoutGloss() Option {
	return func(g *Generator) {
		g.cfg.Gloss = false
	}
}

func defaultRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
