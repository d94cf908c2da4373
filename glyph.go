package iconset

import (
	"fmt"
	"strings"
)

// Glyph draws an emblem, centered and scaled to size, onto a fresh
// transparent canvas.
type Glyph interface {
	Render(size int) (*Canvas, error)
}

// GuideColor is the light grey used for the shield's interior guide lines.
var GuideColor = Color{R: 240, G: 240, B: 240, A: 200}

// Shield is a six-point heraldic shield covering 60% of the canvas with a
// horizontal and a vertical guide line across its middle.
type Shield struct {
	// Fill is the body color. A zero Fill draws white.
	Fill Color
}

// Render implements Glyph.
func (s Shield) Render(size int) (*Canvas, error) {
	c, err := NewCanvas(size)
	if err != nil {
		return nil, err
	}

	ss := int(float64(size) * 0.6)
	x0 := float64((size - ss) / 2)
	y0 := float64((size - ss) / 2)
	at := func(fx, fy int) Point { return Pt(x0+float64(fx), y0+float64(fy)) }

	body := Polygon{Points: []Point{
		at(ss/2, 0),        // apex
		at(ss, ss/3),       // right shoulder
		at(ss*3/4, ss*2/3), // right waist
		at(ss/2, ss),       // base
		at(ss/4, ss*2/3),   // left waist
		at(0, ss/3),        // left shoulder
	}}
	FillColor(c, body, orWhite(s.Fill))

	lw := float64(max(1, ss/40))
	FillColor(c, Line(at(ss/4, ss/2), at(ss*3/4, ss/2), lw), GuideColor)
	FillColor(c, Line(at(ss/2, ss/3), at(ss/2, ss*2/3), lw), GuideColor)

	return c, nil
}

// Key is a key emblem: a ring, a shaft and a single tooth laid out inside
// a nominal box of 40% of the canvas.
type Key struct {
	// Color is the solid fill. A zero Color draws white.
	Color Color

	// Gradient, when set, colors each part along its own bounding box
	// instead of the solid Color.
	Gradient *Gradient
}

// Parts returns the ring, shaft and tooth shapes for a canvas of size.
func (k Key) Parts(size int) []Shape {
	box := float64(size) * 0.4
	ox := (float64(size) - box) / 2
	oy := (float64(size) - box) / 2
	at := func(fx, fy float64) Point { return Pt(ox+fx*box, oy+fy*box) }

	return []Shape{
		Circle(at(0.30, 0.50), 0.22*box),
		Rectangle{Rect: Rect{Min: at(0.45, 0.44), Max: at(0.95, 0.56)}},
		Rectangle{Rect: Rect{Min: at(0.72, 0.56), Max: at(0.86, 0.72)}},
	}
}

// Render implements Glyph.
func (k Key) Render(size int) (*Canvas, error) {
	c, err := NewCanvas(size)
	if err != nil {
		return nil, err
	}
	if k.Gradient != nil {
		if err := k.Gradient.Validate(); err != nil {
			return nil, err
		}
	}

	for _, part := range k.Parts(size) {
		if k.Gradient != nil {
			FillGradient(c, part, *k.Gradient)
		} else {
			FillColor(c, part, orWhite(k.Color))
		}
	}
	return c, nil
}

// Diamond is a rhombus spanning 70% of the canvas with a Key composited
// at its center.
type Diamond struct {
	// Fill is the rhombus color. A zero Fill draws white.
	Fill Color

	// Key is drawn over the rhombus. A zero Key is colored with
	// BrandGradient.
	Key Key
}

// Render implements Glyph.
func (d Diamond) Render(size int) (*Canvas, error) {
	c, err := NewCanvas(size)
	if err != nil {
		return nil, err
	}

	mid := float64(size) / 2
	half := float64(size) * 0.35
	FillColor(c, Polygon{Points: []Point{
		Pt(mid, mid-half),
		Pt(mid+half, mid),
		Pt(mid, mid+half),
		Pt(mid-half, mid),
	}}, orWhite(d.Fill))

	key := d.Key
	if key == (Key{}) {
		g := BrandGradient
		key.Gradient = &g
	}
	layer, err := key.Render(size)
	if err != nil {
		return nil, err
	}
	c.Composite(layer.Image())
	return c, nil
}

// GlyphByName returns the glyph registered under name: "none" (nil),
// "shield", "diamond", "key" or "lock". Matching is case-insensitive.
func GlyphByName(name string) (Glyph, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return nil, nil
	case "shield":
		return Shield{}, nil
	case "diamond":
		return Diamond{}, nil
	case "key":
		return Key{}, nil
	case "lock":
		return Lock{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGlyph, name)
	}
}

func orWhite(c Color) Color {
	if c == (Color{}) {
		return White
	}
	return c
}
