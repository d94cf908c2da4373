package iconset

import (
	"errors"
	"testing"

	"github.com/gogpu/iconset/text"
)

func TestShield_Render(t *testing.T) {
	c, err := Shield{}.Render(100)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Pixel(50, 30); got != White {
		t.Errorf("body = %v, want white", got)
	}
	if a := c.Pixel(5, 5).A; a != 0 {
		t.Errorf("outside alpha = %d, want 0", a)
	}
	// Apex and base of the 60px shield.
	if a := c.Pixel(50, 18).A; a != 0 {
		t.Errorf("above apex alpha = %d, want 0", a)
	}
	if a := c.Pixel(50, 77).A; a == 0 {
		t.Error("shield does not reach its base")
	}
}

func TestShield_CustomFill(t *testing.T) {
	c, err := Shield{Fill: Blue}.Render(100)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Pixel(50, 30); got != Blue {
		t.Errorf("body = %v, want %v", got, Blue)
	}
}

func TestKey_Render(t *testing.T) {
	k := Key{}
	if n := len(k.Parts(100)); n != 3 {
		t.Fatalf("Parts = %d shapes, want 3", n)
	}

	c, err := k.Render(100)
	if err != nil {
		t.Fatal(err)
	}
	// Ring center at 30% of the 40px box, offset by 30px.
	if got := c.Pixel(42, 50); got != White {
		t.Errorf("ring = %v, want white", got)
	}
	if a := c.Pixel(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
}

func TestKey_Gradient(t *testing.T) {
	g := BrandGradient
	c, err := Key{Gradient: &g}.Render(100)
	if err != nil {
		t.Fatal(err)
	}
	got := c.Pixel(42, 50)
	if got.A != 255 || got == White {
		t.Errorf("ring = %v, want an opaque gradient color", got)
	}

	bad := Gradient{}
	if _, err := (Key{Gradient: &bad}).Render(100); !errors.Is(err, ErrGradientStops) {
		t.Errorf("malformed gradient err = %v, want ErrGradientStops", err)
	}
}

func TestDiamond_Render(t *testing.T) {
	c, err := Diamond{}.Render(100)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Pixel(50, 20); got != White {
		t.Errorf("rhombus = %v, want white", got)
	}
	// The key shaft crosses the center in gradient colors.
	if got := c.Pixel(50, 50); got == White || got.A != 255 {
		t.Errorf("key shaft = %v", got)
	}
	if a := c.Pixel(10, 10).A; a != 0 {
		t.Errorf("outside alpha = %d, want 0", a)
	}
}

func TestLock_RendersFallbackWithoutSymbolFont(t *testing.T) {
	// No system sources: the bundled font has no lock emoji, so "#" is drawn.
	c, err := Lock{Sources: []text.Source{}}.Render(128)
	if err != nil {
		t.Fatal(err)
	}
	if !hasOpaqueWhite(c) {
		t.Error("lock fallback drew nothing")
	}
}

func TestLock_CustomSymbol(t *testing.T) {
	for _, size := range []int{1, 16, 128} {
		c, err := Lock{Symbol: "K", Sources: []text.Source{}}.Render(size)
		if err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		if c.Size() != size {
			t.Errorf("size %d: canvas %d", size, c.Size())
		}
	}
}

func TestGlyphs_RejectInvalidSize(t *testing.T) {
	for _, g := range []Glyph{Shield{}, Key{}, Diamond{}, Lock{Sources: []text.Source{}}} {
		if _, err := g.Render(0); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("%T.Render(0) err = %v, want ErrInvalidSize", g, err)
		}
	}
}

func TestGlyphByName(t *testing.T) {
	tests := []struct {
		name string
		want Glyph
		err  error
	}{
		{"", nil, nil},
		{"none", nil, nil},
		{"Shield", Shield{}, nil},
		{" diamond ", Diamond{}, nil},
		{"key", Key{}, nil},
		{"lock", Lock{}, nil},
		{"star", nil, ErrUnknownGlyph},
	}
	for _, tt := range tests {
		got, err := GlyphByName(tt.name)
		if !errors.Is(err, tt.err) {
			t.Errorf("GlyphByName(%q) err = %v, want %v", tt.name, err, tt.err)
			continue
		}
		if tt.err == nil && !sameGlyphType(got, tt.want) {
			t.Errorf("GlyphByName(%q) = %T, want %T", tt.name, got, tt.want)
		}
	}
}

func sameGlyphType(a, b Glyph) bool {
	switch a.(type) {
	case nil:
		return b == nil
	case Shield:
		_, ok := b.(Shield)
		return ok
	case Diamond:
		_, ok := b.(Diamond)
		return ok
	case Key:
		_, ok := b.(Key)
		return ok
	case Lock:
		_, ok := b.(Lock)
		return ok
	}
	return false
}

// hasOpaqueWhite reports whether any pixel is fully opaque near-white.
func hasOpaqueWhite(c *Canvas) bool {
	pix := c.Image().Pix
	for i := 0; i < len(pix); i += 4 {
		if pix[i] > 200 && pix[i+1] > 200 && pix[i+2] > 200 && pix[i+3] == 255 {
			return true
		}
	}
	return false
}
