package iconset

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Canvas is a square straight-alpha RGBA pixel buffer with its origin at
// the top-left corner. A canvas is mutated by exactly one render pass and
// treated as read-only afterwards.
type Canvas struct {
	img *image.NRGBA
}

// NewCanvas creates a fully transparent size x size canvas.
func NewCanvas(size int) (*Canvas, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: canvas size %d", ErrInvalidSize, size)
	}
	return &Canvas{img: image.NewNRGBA(image.Rect(0, 0, size, size))}, nil
}

// Size returns the side length of the canvas.
func (c *Canvas) Size() int {
	return c.img.Rect.Dx()
}

// Image returns the underlying image. The canvas keeps ownership.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// Pixel returns the color at (x, y), or Transparent outside the canvas.
func (c *Canvas) Pixel(x, y int) Color {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return Transparent
	}
	n := c.img.NRGBAAt(x, y)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Clear fills the entire canvas with a color.
func (c *Canvas) Clear(col Color) {
	p := c.img.Pix
	for i := 0; i < len(p); i += 4 {
		p[i+0] = col.R
		p[i+1] = col.G
		p[i+2] = col.B
		p[i+3] = col.A
	}
}

// FillGradient paints every pixel with g spanning the whole canvas.
// Rows (or columns, for a horizontal ramp) share one sampled color.
func (c *Canvas) FillGradient(g Gradient) {
	size := c.Size()
	region := Square(size)
	for i := 0; i < size; i++ {
		col := g.ColorAt(float64(i), float64(i), region)
		for j := 0; j < size; j++ {
			x, y := j, i
			if g.Axis == AxisHorizontal {
				x, y = i, j
			}
			o := c.img.PixOffset(x, y)
			c.img.Pix[o+0] = col.R
			c.img.Pix[o+1] = col.G
			c.img.Pix[o+2] = col.B
			c.img.Pix[o+3] = col.A
		}
	}
}

// Composite draws layer over the canvas with Porter-Duff "over": a
// transparent layer pixel leaves the canvas unchanged, an opaque one
// replaces it and partial alpha blends.
func (c *Canvas) Composite(layer image.Image) {
	draw.Draw(c.img, c.img.Rect, layer, layer.Bounds().Min, draw.Over)
}

// ApplyMask replaces the alpha channel of every pixel with the mask value.
// Any alpha produced by earlier drawing is discarded.
func (c *Canvas) ApplyMask(m *Mask) error {
	if m.Bounds() != c.img.Rect {
		return fmt.Errorf("%w: mask %v, canvas %v", ErrMaskSize, m.Bounds().Size(), c.img.Rect.Size())
	}
	size := c.Size()
	for y := 0; y < size; y++ {
		row := c.img.Pix[y*c.img.Stride : y*c.img.Stride+size*4]
		alpha := m.data[y*size : (y+1)*size]
		for x, a := range alpha {
			row[x*4+3] = a
		}
	}
	return nil
}
