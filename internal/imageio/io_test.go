package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 128, A: uint8(255 - x)})
		}
	}
	return img
}

func TestSavePNGLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")
	src := testImage(16, 8)

	if err := SavePNG(path, src); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds() != src.Bounds() {
		t.Fatalf("bounds = %v, want %v", got.Bounds(), src.Bounds())
	}
	if c := color.NRGBAModel.Convert(got.At(3, 5)); c != src.At(3, 5) {
		t.Errorf("pixel = %v, want %v", c, src.At(3, 5))
	}
}

func TestLoadJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.jpg")
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, testImage(8, 8), nil); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
	img, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("width = %d, want 8", img.Bounds().Dx())
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(""); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("Load(\"\") err = %v, want ErrEmptyPath", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.png")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file err = %v, want fs.ErrNotExist", err)
	}

	corrupt := filepath.Join(dir, "corrupt.png")
	if err := os.WriteFile(corrupt, []byte("\x89PNG garbage"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(corrupt); err == nil || errors.Is(err, fs.ErrNotExist) {
		t.Errorf("corrupt file err = %v, want a decode error", err)
	}
}

func TestSavePNGErrors(t *testing.T) {
	if err := SavePNG("", testImage(1, 1)); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("SavePNG(\"\") err = %v, want ErrEmptyPath", err)
	}
	missingDir := filepath.Join(t.TempDir(), "no", "such", "dir", "x.png")
	if err := SavePNG(missingDir, testImage(1, 1)); err == nil {
		t.Error("SavePNG into a missing directory succeeded")
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	for i := 0; i < 2; i++ {
		if err := EnsureDir(dir); err != nil {
			t.Fatalf("EnsureDir call %d: %v", i+1, err)
		}
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		t.Errorf("directory not created: %v", err)
	}
	for _, d := range []string{"", "."} {
		if err := EnsureDir(d); err != nil {
			t.Errorf("EnsureDir(%q) = %v", d, err)
		}
	}
}
