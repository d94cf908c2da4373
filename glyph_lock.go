package iconset

import (
	"image"
	"image/color"
	"unicode/utf8"

	"github.com/gogpu/iconset/text"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Lock defaults.
const (
	DefaultLockSymbol   = "🔒"
	DefaultLockFallback = "#"
)

// lockShadow is the translucent black of the lock's drop shadow.
var lockShadow = color.NRGBA{A: 100}

// Lock draws a text symbol at 40% of the canvas height, first as a dimmed
// shadow offset by 2% of the size, then in solid white, centered on the
// symbol's measured bounding box.
//
// The font is resolved through the text fallback chain: Sources in order,
// then the bundled Go Regular font, then basicfont. When the resolved face
// has no glyph for the symbol, Fallback is drawn instead.
type Lock struct {
	// Symbol defaults to DefaultLockSymbol.
	Symbol string

	// Fallback defaults to DefaultLockFallback.
	Fallback string

	// Sources defaults to text.SystemSources().
	Sources []text.Source
}

// Render implements Glyph.
func (l Lock) Render(size int) (*Canvas, error) {
	c, err := NewCanvas(size)
	if err != nil {
		return nil, err
	}

	symbol := l.Symbol
	if symbol == "" {
		symbol = DefaultLockSymbol
	}
	fallback := l.Fallback
	if fallback == "" {
		fallback = DefaultLockFallback
	}
	sources := l.Sources
	if sources == nil {
		sources = text.SystemSources()
	}

	r, _ := utf8.DecodeRuneInString(symbol)
	face := text.Resolve(float64(max(1, int(float64(size)*0.4))), sources,
		text.WithRune(r), text.WithLogger(Logger()))
	defer func() { _ = face.Close() }()

	s := symbol
	if !face.Covered {
		s = fallback
	}

	bounds, _ := font.BoundString(face, s)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	dot := fixed.Point26_6{
		X: fixed.I((size-w)/2) - bounds.Min.X,
		Y: fixed.I((size-h)/2) - bounds.Min.Y,
	}

	offset := fixed.I(int(float64(size) * 0.02))
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(lockShadow),
		Face: face,
		Dot:  fixed.Point26_6{X: dot.X + offset, Y: dot.Y + offset},
	}
	d.DrawString(s)

	d.Src = image.NewUniform(White.NRGBA())
	d.Dot = dot
	d.DrawString(s)

	return c, nil
}
