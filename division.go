package shieldsvg

import "strings"

// renderDivision draws the background and charge of division i. The caller
// has already applied the shield and division clip regions.
func (r *renderer) renderDivision(s ShieldInstance, i int) error {
	div := s.Divisions[i]
	bg, err := r.cat.Background(div.Background.Style.ID)
	if err != nil {
		return err
	}

	// flood fill, visible through the division's clip region
	r.open("stroke", "none", "fill", r.colour(div.Background.PrimaryColour.ID))
	r.b.WriteString(r.division.Regions[i].Element)
	r.close()

	n := float64(len(r.division.Regions))
	seg := r.segments[i]

	return r.transformed(r.shield.BaseTransform, func() error {
		if strings.TrimSpace(bg.SVG) != "" {
			// centre the background cell of the division on the segment
			offX := r.cfg.BackgroundWidth/(2*n) - seg.X
			offY := r.cfg.BackgroundHeight/(2*n) - seg.Y
			r.open("transform", formatMatrix(placement(1/n, -offX, -offY)))
			r.open("stroke-width", px(r.cfg.BackgroundStrokeWidth),
				"stroke", r.colour(div.Background.SecondaryColour.ID), "fill", NoPaint)
			r.b.WriteString(bg.SVG)
			r.close()
			r.close()
		}

		scale := 1 / n
		if seg.Scale != nil && *seg.Scale != 0 {
			scale = *seg.Scale
		}
		cw, ch := r.cfg.ChargeWidth, r.cfg.ChargeHeight
		offX := (cw-cw*scale)/2 + seg.X - cw/2
		offY := (ch-ch*scale)/2 + seg.Y - ch/2
		r.open("transform", formatMatrix(placement(scale, offX, offY)))
		err := r.transformed(div.Charge.Transform.Compose(cw, ch), func() error {
			return r.renderCharge(div.Charge)
		})
		if err != nil {
			return err
		}
		r.close()
		return nil
	})
}
