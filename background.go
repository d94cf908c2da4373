package iconset

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Background paints the bottom layer of an icon over the whole canvas.
type Background interface {
	Paint(c *Canvas) error
}

// Solid is a flat single-color background.
type Solid Color

// Paint implements Background.
func (s Solid) Paint(c *Canvas) error {
	c.Clear(Color(s))
	return nil
}

// GradientFill fills the canvas with a gradient spanning its full size.
type GradientFill struct {
	Gradient Gradient
}

// Paint implements Background.
func (g GradientFill) Paint(c *Canvas) error {
	if err := g.Gradient.Validate(); err != nil {
		return err
	}
	c.FillGradient(g.Gradient)
	return nil
}

// ImageFill stretches an image over the canvas with Resample.
type ImageFill struct {
	Image image.Image
}

// Paint implements Background.
func (f ImageFill) Paint(c *Canvas) error {
	if f.Image == nil {
		return fmt.Errorf("%w: image fill without an image", ErrNilBackground)
	}
	scaled := Resample(f.Image, c.Size())
	draw.Draw(c.img, c.img.Rect, scaled, scaled.Rect.Min, draw.Src)
	return nil
}

// Resample scales img to size x size with a Lanczos filter and returns a
// new straight-alpha image. Non-square sources are stretched.
func Resample(img image.Image, size int) *image.NRGBA {
	return imaging.Resize(img, size, size, imaging.Lanczos)
}
