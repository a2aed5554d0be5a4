package shieldsvg

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// renderCharge draws the artwork of c once per transform of its layout.
func (r *renderer) renderCharge(c ChargeInstance) error {
	style, err := r.cat.Charge(c.Style.ID)
	if err != nil {
		return err
	}
	layout, err := r.cat.Layout(c.Layout.ID)
	if err != nil {
		return err
	}

	outline := r.colour(c.OutlineColour.ID)
	primary := r.colour(c.PrimaryColour.ID)
	r.open("stroke-width", px(r.cfg.ChargeStrokeWidth), "stroke", outline, "fill", primary)

	if len(style.Elements) > 0 && len(layout.Transforms) > 0 {
		for _, t := range layout.Transforms {
			if strings.TrimSpace(t) == "" {
				r.open()
			} else {
				r.open("transform", t)
			}
			for _, e := range style.Elements {
				fill, err := r.roleColour(e.Colour, c, outline, primary)
				if err != nil {
					return err
				}
				if fill == "" {
					r.b.WriteString(e.Element)
				} else {
					r.b.WriteString(setFill(e.Element, fill))
				}
			}
			r.close()
		}
	}

	r.close()
	return nil
}

// roleColour returns the fill for an element with the given role, or ""
// when the element inherits the paint group's fill.
func (r *renderer) roleColour(role Role, c ChargeInstance, outline, primary string) (string, error) {
	switch role {
	case RoleNone:
		return "", nil
	case RoleOutline:
		return outline, nil
	case RolePrimary:
		return primary, nil
	case RoleSecondary:
		if c.SecondaryColour == nil {
			return "", fmt.Errorf("%w: charge %q", ErrMissingSecondaryColour, c.Style.ID)
		}
		return r.colour(c.SecondaryColour.ID), nil
	default:
		r.logger.Debug("unknown colour role, drawing element as is",
			zap.String("charge", c.Style.ID), zap.String("role", string(role)))
		return "", nil
	}
}

var fillAttr = regexp.MustCompile(`\sfill\s*=\s*("[^"]*"|'[^']*')`)

// setFill replaces the fill attribute of the first element tag in element,
// adding it when absent. Comments, declarations and processing instructions
// are skipped.
func setFill(element, fill string) string {
	start, end := firstTag(element)
	if start < 0 {
		return element
	}

	tag := element[start:end]
	selfClosing := strings.HasSuffix(tag, "/")
	tag = strings.TrimSuffix(tag, "/")
	tag = fillAttr.ReplaceAllString(tag, "")
	tag = strings.TrimRight(tag, " \t\r\n")
	tag += ` fill="` + escapeAttr(fill) + `"`
	if selfClosing {
		tag += "/"
	}
	return element[:start] + tag + element[end:]
}

// firstTag returns the offsets of the first start tag in s, from its '<' up
// to its closing '>', or -1, -1 when there is none.
func firstTag(s string) (int, int) {
	for pos := 0; pos < len(s); {
		start := strings.Index(s[pos:], "<")
		if start < 0 {
			return -1, -1
		}
		start += pos

		rest := s[start:]
		var closer string
		switch {
		case strings.HasPrefix(rest, "<!--"):
			closer = "-->"
		case strings.HasPrefix(rest, "<?"):
			closer = "?>"
		case strings.HasPrefix(rest, "<!"), strings.HasPrefix(rest, "</"):
			closer = ">"
		default:
			end := strings.Index(rest, ">")
			if end < 0 {
				return -1, -1
			}
			return start, start + end
		}

		skip := strings.Index(rest, closer)
		if skip < 0 {
			return -1, -1
		}
		pos = start + skip + len(closer)
	}
	return -1, -1
}
