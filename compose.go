package iconset

// DefaultRadiusRatio is the corner radius, as a fraction of the icon size,
// used by every built-in style.
const DefaultRadiusRatio = 0.2

// Layers describes a procedurally composed icon.
type Layers struct {
	// Background paints the canvas first. Required.
	Background Background

	// Glyph is composited over the background. Optional.
	Glyph Glyph

	// RadiusRatio sets the rounded silhouette applied last.
	// Zero means DefaultRadiusRatio.
	RadiusRatio float64
}

// Compose renders l at size x size. The order is fixed: background, then
// the glyph layer composited on top, then the rounded mask written as the
// alpha channel, so every corner is transparent whatever the layers drew.
func Compose(size int, l Layers) (*Canvas, error) {
	if l.Background == nil {
		return nil, ErrNilBackground
	}
	ratio := l.RadiusRatio
	if ratio == 0 {
		ratio = DefaultRadiusRatio
	}
	mask, err := NewRoundedMask(size, ratio)
	if err != nil {
		return nil, err
	}

	c, err := NewCanvas(size)
	if err != nil {
		return nil, err
	}
	if err := l.Background.Paint(c); err != nil {
		return nil, err
	}

	if l.Glyph != nil {
		layer, err := l.Glyph.Render(size)
		if err != nil {
			return nil, err
		}
		c.Composite(layer.Image())
	}

	if err := c.ApplyMask(mask); err != nil {
		return nil, err
	}
	return c, nil
}
