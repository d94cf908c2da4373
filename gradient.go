package iconset

import (
	"fmt"
	"image"
	"image/color"
)

// Axis selects the direction a gradient blends along.
type Axis int

const (
	// AxisVertical blends from top (pos 0) to bottom (pos 1).
	AxisVertical Axis = iota
	// AxisHorizontal blends from left (pos 0) to right (pos 1).
	AxisHorizontal
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Gradient is a piecewise-linear color ramp over 2 or 3 colors.
// For N colors the range [0, 1] is split into N-1 equal segments and each
// segment interpolates its two end colors channel by channel.
//
// Gradient values are immutable once constructed; use NewGradient.
type Gradient struct {
	Axis   Axis
	Colors []Color

	// InterpolateAlpha blends the stop alphas as well. When false every
	// sampled color is fully opaque.
	InterpolateAlpha bool
}

// NewGradient creates a gradient along axis through the given colors.
// It returns ErrGradientStops unless 2 or 3 colors are given.
func NewGradient(axis Axis, colors ...Color) (Gradient, error) {
	if len(colors) < 2 || len(colors) > 3 {
		return Gradient{}, fmt.Errorf("%w: got %d", ErrGradientStops, len(colors))
	}
	stops := make([]Color, len(colors))
	copy(stops, colors)
	return Gradient{Axis: axis, Colors: stops}, nil
}

// MustGradient is like NewGradient but panics on error.
// It is intended for package-level palettes.
func MustGradient(axis Axis, colors ...Color) Gradient {
	g, err := NewGradient(axis, colors...)
	if err != nil {
		panic(err)
	}
	return g
}

// BrandGradient is the violet, fuchsia, blue ramp used by the default styles.
var BrandGradient = MustGradient(AxisVertical, Violet, Fuchsia, Blue)

// Validate reports whether g has a usable number of stops.
func (g Gradient) Validate() error {
	if n := len(g.Colors); n < 2 || n > 3 {
		return fmt.Errorf("%w: got %d", ErrGradientStops, n)
	}
	return nil
}

// At returns the color at pos along the ramp. pos is clamped to [0, 1];
// a pos on a segment boundary returns the boundary color exactly.
//
// At panics if g does not have 2 or 3 colors.
func (g Gradient) At(pos float64) Color {
	if err := g.Validate(); err != nil {
		panic(err)
	}

	n := len(g.Colors) - 1
	scaled := clamp01(pos) * float64(n)

	i := int(scaled)
	if i >= n {
		i = n - 1
	}
	t := clamp01(scaled - float64(i))

	c := g.Colors[i].Lerp(g.Colors[i+1], t)
	if !g.InterpolateAlpha {
		c.A = 255
	}
	return c
}

// ColorAt returns the color of pixel (x, y) when the ramp spans region.
// The position is the pixel offset from region's leading edge divided by
// the region's extent along the axis.
func (g Gradient) ColorAt(x, y float64, region Rect) Color {
	var pos float64
	switch g.Axis {
	case AxisHorizontal:
		if w := region.Width(); w > 0 {
			pos = (x - region.Min.X) / w
		}
	default:
		if h := region.Height(); h > 0 {
			pos = (y - region.Min.Y) / h
		}
	}
	return g.At(pos)
}

// Image returns g spanning region as an unbounded image.Image, suitable as
// a draw source for filling shapes parametrically.
func (g Gradient) Image(region Rect) image.Image {
	return &gradientImage{g: g, region: region}
}

// gradientImage adapts a Gradient to image.Image.
type gradientImage struct {
	g      Gradient
	region Rect
}

func (gi *gradientImage) ColorModel() color.Model { return color.NRGBAModel }

// Bounds is effectively infinite, like image.Uniform.
func (gi *gradientImage) Bounds() image.Rectangle {
	return image.Rectangle{Min: image.Point{X: -1e9, Y: -1e9}, Max: image.Point{X: 1e9, Y: 1e9}}
}

func (gi *gradientImage) At(x, y int) color.Color {
	return gi.g.ColorAt(float64(x), float64(y), gi.region).NRGBA()
}
