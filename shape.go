package iconset

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// Shape describes a fillable region of a canvas.
// This is a sealed interface - only types in this package implement it:
// RoundedRect, Polygon, Ellipse and Rectangle.
type Shape interface {
	// Bounds returns the shape's bounding box.
	Bounds() Rect

	// appendPath adds the shape outline to the rasterizer.
	appendPath(z *vector.Rasterizer)
}

// kappa is the cubic Bézier control distance for a quarter circle.
const kappa = 0.5522847498307936

// Rectangle is an axis-aligned filled rectangle.
type Rectangle struct {
	Rect Rect
}

// Bounds implements Shape.
func (s Rectangle) Bounds() Rect { return s.Rect }

func (s Rectangle) appendPath(z *vector.Rasterizer) {
	r := s.Rect
	z.MoveTo(f32(r.Min.X), f32(r.Min.Y))
	z.LineTo(f32(r.Max.X), f32(r.Min.Y))
	z.LineTo(f32(r.Max.X), f32(r.Max.Y))
	z.LineTo(f32(r.Min.X), f32(r.Max.Y))
	z.ClosePath()
}

// RoundedRect is a rectangle whose corners are circular arcs of radius
// RadiusRatio times the shorter side.
type RoundedRect struct {
	Rect        Rect
	RadiusRatio float64
}

// Bounds implements Shape.
func (s RoundedRect) Bounds() Rect { return s.Rect }

func (s RoundedRect) appendPath(z *vector.Rasterizer) {
	x0, y0, x1, y1 := s.Rect.Min.X, s.Rect.Min.Y, s.Rect.Max.X, s.Rect.Max.Y
	r := math.Min(s.Rect.Width(), s.Rect.Height()) * clampRange(s.RadiusRatio, 0, 0.5)
	if r <= 0 {
		Rectangle{Rect: s.Rect}.appendPath(z)
		return
	}
	k := r * kappa

	z.MoveTo(f32(x0+r), f32(y0))
	z.LineTo(f32(x1-r), f32(y0))
	z.CubeTo(f32(x1-r+k), f32(y0), f32(x1), f32(y0+r-k), f32(x1), f32(y0+r))
	z.LineTo(f32(x1), f32(y1-r))
	z.CubeTo(f32(x1), f32(y1-r+k), f32(x1-r+k), f32(y1), f32(x1-r), f32(y1))
	z.LineTo(f32(x0+r), f32(y1))
	z.CubeTo(f32(x0+r-k), f32(y1), f32(x0), f32(y1-r+k), f32(x0), f32(y1-r))
	z.LineTo(f32(x0), f32(y0+r))
	z.CubeTo(f32(x0), f32(y0+r-k), f32(x0+r-k), f32(y0), f32(x0+r), f32(y0))
	z.ClosePath()
}

// Polygon is a closed polygon through an ordered vertex list.
// Polygons with fewer than three vertices cover nothing.
type Polygon struct {
	Points []Point
}

// Bounds implements Shape.
func (s Polygon) Bounds() Rect { return boundsOf(s.Points) }

func (s Polygon) appendPath(z *vector.Rasterizer) {
	if len(s.Points) < 3 {
		return
	}
	z.MoveTo(f32(s.Points[0].X), f32(s.Points[0].Y))
	for _, p := range s.Points[1:] {
		z.LineTo(f32(p.X), f32(p.Y))
	}
	z.ClosePath()
}

// Ellipse is a filled axis-aligned ellipse.
type Ellipse struct {
	Center Point
	RX, RY float64
}

// Circle returns an Ellipse with equal radii.
func Circle(center Point, radius float64) Ellipse {
	return Ellipse{Center: center, RX: radius, RY: radius}
}

// Bounds implements Shape.
func (s Ellipse) Bounds() Rect {
	return R(s.Center.X-s.RX, s.Center.Y-s.RY, s.Center.X+s.RX, s.Center.Y+s.RY)
}

func (s Ellipse) appendPath(z *vector.Rasterizer) {
	cx, cy, rx, ry := s.Center.X, s.Center.Y, s.RX, s.RY
	if rx <= 0 || ry <= 0 {
		return
	}
	kx, ky := rx*kappa, ry*kappa

	z.MoveTo(f32(cx+rx), f32(cy))
	z.CubeTo(f32(cx+rx), f32(cy+ky), f32(cx+kx), f32(cy+ry), f32(cx), f32(cy+ry))
	z.CubeTo(f32(cx-kx), f32(cy+ry), f32(cx-rx), f32(cy+ky), f32(cx-rx), f32(cy))
	z.CubeTo(f32(cx-rx), f32(cy-ky), f32(cx-kx), f32(cy-ry), f32(cx), f32(cy-ry))
	z.CubeTo(f32(cx+kx), f32(cy-ry), f32(cx+rx), f32(cy-ky), f32(cx+rx), f32(cy))
	z.ClosePath()
}

// Line returns the quadrilateral covering a straight stroke of the given
// width from a to b, with butt caps.
func Line(a, b Point, width float64) Polygon {
	d := b.Sub(a)
	l := math.Hypot(d.X, d.Y)
	if l == 0 || width <= 0 {
		return Polygon{}
	}
	n := Pt(-d.Y/l, d.X/l).Mul(width / 2)
	return Polygon{Points: []Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}}
}

// Fill rasterizes s onto dst, compositing src through the shape's
// anti-aliased coverage. src is sampled in canvas coordinates.
func Fill(dst *Canvas, s Shape, src image.Image) {
	size := dst.Size()
	z := vector.NewRasterizer(size, size)
	s.appendPath(z)
	z.Draw(dst.img, dst.img.Rect, src, image.Point{})
}

// FillColor rasterizes s onto dst in a solid color.
func FillColor(dst *Canvas, s Shape, c Color) {
	Fill(dst, s, image.NewUniform(c.NRGBA()))
}

// FillGradient rasterizes s onto dst, coloring it with g spanning the
// shape's own bounding box rather than the whole canvas.
func FillGradient(dst *Canvas, s Shape, g Gradient) {
	Fill(dst, s, g.Image(s.Bounds()))
}

func f32(v float64) float32 { return float32(v) }
