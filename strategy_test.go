package iconset

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func writeMaster(t *testing.T, path string, w, h int) image.Image {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 4), G: uint8(y * 4), B: 200, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return img
}

func TestLoadMaster_Missing(t *testing.T) {
	logs := captureLogs(t)
	path := filepath.Join(t.TempDir(), "logo_512x512.png")

	if m := LoadMaster(path); m != nil {
		t.Fatal("LoadMaster() returned a strategy for a missing file")
	}
	if !strings.Contains(logs.String(), "master logo not found") {
		t.Errorf("missing warning, logs:\n%s", logs)
	}
}

func TestLoadMaster_Corrupt(t *testing.T) {
	logs := captureLogs(t)
	path := filepath.Join(t.TempDir(), "logo.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o600); err != nil {
		t.Fatal(err)
	}

	if m := LoadMaster(path); m != nil {
		t.Fatal("LoadMaster() returned a strategy for a corrupt file")
	}
	if !strings.Contains(logs.String(), "master logo unreadable") {
		t.Errorf("missing warning, logs:\n%s", logs)
	}
}

func TestLoadMaster_EmptyPath(t *testing.T) {
	if m := LoadMaster(""); m != nil {
		t.Error("LoadMaster(\"\") returned a strategy")
	}
}

func TestLoadMaster_NonSquareWarns(t *testing.T) {
	logs := captureLogs(t)
	path := filepath.Join(t.TempDir(), "logo.png")
	writeMaster(t, path, 40, 20)

	if m := LoadMaster(path); m == nil {
		t.Fatal("LoadMaster() = nil, want a master")
	}
	if !strings.Contains(logs.String(), "not square") {
		t.Errorf("missing warning, logs:\n%s", logs)
	}
}

func TestSelectStrategy(t *testing.T) {
	captureLogs(t)
	path := filepath.Join(t.TempDir(), "logo.png")
	src := writeMaster(t, path, 48, 48)

	if s := SelectStrategy(nil, brandLayers(nil)); s.Name() != "procedural" {
		t.Errorf("SelectStrategy(nil) = %s, want procedural", s.Name())
	}

	missing := LoadMaster(filepath.Join(t.TempDir(), "missing.png"))
	if _, ok := SelectStrategy(missing, brandLayers(nil)).(ProceduralStrategy); !ok {
		t.Error("a missing master did not select ProceduralStrategy")
	}

	s := SelectStrategy(LoadMaster(path), brandLayers(Shield{}))
	if s.Name() != "master" {
		t.Fatalf("SelectStrategy() = %s, want master", s.Name())
	}

	got, err := s.Render(20)
	if err != nil {
		t.Fatal(err)
	}
	want := Resample(src, 20)
	if !bytes.Equal(got.Pix, want.Pix) {
		t.Error("master render differs from a direct Lanczos resample")
	}
	// No mask: the corners of the master survive.
	if got.NRGBAAt(0, 0).A != 255 {
		t.Errorf("corner alpha = %d, want 255", got.NRGBAAt(0, 0).A)
	}
}

func TestMasterStrategy_InvalidSize(t *testing.T) {
	s := NewMasterStrategy(image.NewNRGBA(image.Rect(0, 0, 4, 4)))
	if _, err := s.Render(0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Render(0) err = %v, want ErrInvalidSize", err)
	}
}

func TestProceduralStrategy_Render(t *testing.T) {
	s := ProceduralStrategy{Layers: brandLayers(nil)}
	img, err := s.Render(48)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 48, 48) {
		t.Errorf("bounds = %v", img.Bounds())
	}
	if img.NRGBAAt(0, 0).A != 0 {
		t.Error("procedural corner is not transparent")
	}

	if _, err := s.Render(-1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Render(-1) err = %v, want ErrInvalidSize", err)
	}
}
