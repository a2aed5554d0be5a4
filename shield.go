package shieldsvg

import (
	"fmt"

	"go.uber.org/zap"
)

// renderShield draws the outline, the clip regions, every division, the
// overall charge and the gloss.
func (r *renderer) renderShield(s ShieldInstance) error {
	r.open("stroke", "#000000", "stroke-width", px(r.cfg.OutlineStrokeWidth), "fill", "#ffffff")
	r.b.WriteString(r.shield.Outline)
	r.close()

	// region 0 is the shield boundary, region i+1 is division i
	r.b.WriteString("<defs>")
	fmt.Fprintf(&r.b, `<clipPath id="%s">%s</clipPath>`, r.clipID(0), r.shield.Outline)
	for i, region := range r.division.Regions {
		fmt.Fprintf(&r.b, `<clipPath id="%s">%s</clipPath>`, r.clipID(i+1), region.Element)
	}
	r.b.WriteString("</defs>")

	for i := range s.Divisions {
		err := r.clipped(0, func() error {
			return r.clipped(i+1, func() error {
				return r.renderDivision(s, i)
			})
		})
		if err != nil {
			return err
		}
	}

	err := r.clipped(0, func() error {
		return r.transformed(r.shield.BaseTransform, func() error {
			return r.transformed(r.shield.ChargeTransform, func() error {
				override := s.Charge.Transform.Compose(r.cfg.ChargeWidth, r.cfg.ChargeHeight)
				return r.transformed(override, func() error {
					return r.renderCharge(s.Charge)
				})
			})
		})
	})
	if err != nil {
		return err
	}

	if r.cfg.Gloss {
		r.renderGloss()
	}
	return nil
}

// renderGloss overlays a radial highlight and a linear shade on the shield.
// The highlight centre moves by a random jitter on every call.
func (r *renderer) renderGloss() {
	b := r.outlineBounds()
	dx, dy := r.g.jitter()
	cx, cy := b.Center()
	cx, cy = cx+dx, cy+dy
	radius := max(b.Width(), b.Height()) * 0.75
	r.logger.Debug("gloss", zap.Float64("dx", dx), zap.Float64("dy", dy))

	radialID := r.cfg.IDPrefix + "-gloss-radial"
	linearID := r.cfg.IDPrefix + "-gloss-linear"
	n := func(v float64) string { return formatNumber(v, 2) }

	r.b.WriteString("<defs>")
	fmt.Fprintf(&r.b, `<radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%s" cy="%s" fx="%s" fy="%s" r="%s">`,
		radialID, n(cx), n(cy), n(cx), n(cy), n(radius))
	r.b.WriteString(`<stop offset="0" stop-color="#ffffff" stop-opacity="0.5"/>`)
	r.b.WriteString(`<stop offset="1" stop-color="#ffffff" stop-opacity="0"/>`)
	r.b.WriteString(`</radialGradient>`)
	fmt.Fprintf(&r.b, `<linearGradient id="%s" x1="0" y1="0" x2="0" y2="1">`, linearID)
	r.b.WriteString(`<stop offset="0" stop-color="#ffffff" stop-opacity="0.15"/>`)
	r.b.WriteString(`<stop offset="1" stop-color="#000000" stop-opacity="0.15"/>`)
	r.b.WriteString(`</linearGradient>`)
	r.b.WriteString("</defs>")

	rect := func(id string) {
		fmt.Fprintf(&r.b, `<rect x="%s" y="%s" width="%s" height="%s" stroke="none" fill="url(#%s)"/>`,
			n(b.MinX), n(b.MinY), n(b.Width()), n(b.Height()), id)
	}
	r.open("clip-path", "url(#"+r.clipID(0)+")")
	rect(radialID)
	rect(linearID)
	r.close()
}

// outlineBounds measures the shield outline, falling back to the whole
// canvas when the outline cannot be measured.
func (r *renderer) outlineBounds() Bounds {
	canvas := Bounds{}.Add(0, 0).Add(r.cfg.Width, r.cfg.Height)
	g, err := parseFragment(r.shield.Outline)
	if err != nil {
		r.logger.Debug("outline not parsed, glossing whole canvas",
			zap.String("shield", r.shield.ID), zap.Error(err))
		return canvas
	}
	b, err := g.Bounds()
	if err != nil || b.Empty() || b.Width() == 0 || b.Height() == 0 {
		r.logger.Debug("outline not measured, glossing whole canvas",
			zap.String("shield", r.shield.ID), zap.Stringer("bounds", b), zap.Error(err))
		return canvas
	}
	return b
}
