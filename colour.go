package shieldsvg

// NoPaint is the SVG paint value used for colours that cannot be resolved.
const NoPaint = "none"

// ResolveColour returns the display value of the colour with the given id,
// or NoPaint when the colour is unknown or has no value.
func (c *Catalog) ResolveColour(id string) string {
	col, ok := c.colours[id]
	if !ok || col.Value == "" {
		return NoPaint
	}
	return col.Value
}
