package iconset

import (
	"fmt"
	"image"
	"math"
)

// Mask is a single-channel opacity grid.
// Values range from 0 (fully transparent) to 255 (fully opaque).
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new empty mask with the given dimensions.
// All values are initialized to 0 (fully transparent).
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// NewRoundedMask returns a size x size mask that is 255 inside a
// rounded rectangle spanning the whole mask and 0 outside it.
//
// The corner radius is size*radiusRatio, limited to half the inclusive
// pixel span so opposite corners never overlap. A pixel is inside when it
// lies in the rectangle shrunk by the radius along either axis, or within
// the radius of the nearest corner's arc center. For size >= 2 the four
// outermost pixels are therefore 0 and, for size >= 3, the center pixel
// is 255. A 1x1 mask degenerates to a single opaque pixel.
func NewRoundedMask(size int, radiusRatio float64) (*Mask, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: mask size %d", ErrInvalidSize, size)
	}
	if !(radiusRatio > 0 && radiusRatio <= 0.5) {
		return nil, fmt.Errorf("%w: got %v", ErrRadiusRatio, radiusRatio)
	}

	r := math.Min(float64(size)*radiusRatio, float64(size-1)/2)
	r2 := r * r

	m := NewMask(size, size)
	for y := 0; y < size; y++ {
		dy := arcOffset(y, size, r)
		row := m.data[y*size : (y+1)*size]
		for x := range row {
			dx := arcOffset(x, size, r)
			if dx*dx+dy*dy <= r2 {
				row[x] = 255
			}
		}
	}
	return m, nil
}

// arcOffset is the distance from pixel i to the band [r, size-1-r].
// Folding i onto the nearer edge keeps the mask exactly symmetric.
func arcOffset(i, size int, r float64) float64 {
	f := float64(min(i, size-1-i))
	if f >= r {
		return 0
	}
	return r - f
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}
