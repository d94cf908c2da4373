// Package imageio loads and persists icon images.
package imageio

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG for master logos
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// I/O errors.
var (
	// ErrEmptyPath is returned when a load or save is asked for no path.
	ErrEmptyPath = errors.New("imageio: empty path")

	// ErrEmptyImage is returned when decoding yields an image without pixels.
	ErrEmptyImage = errors.New("imageio: image has no pixels")
)

// Load loads an image from the given file path, auto-detecting the format.
// Supported formats: PNG, JPEG.
func Load(path string) (image.Image, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	return img, nil
}

// SavePNG encodes img as PNG at path, creating or truncating the file.
// Parent directories must already exist.
func SavePNG(path string, img image.Image) error {
	if path == "" {
		return ErrEmptyPath
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := EncodePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// EncodePNG encodes img as PNG to the given writer.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("imageio: encode PNG: %w", err)
	}
	return nil
}

// EnsureDir creates dir and any missing parents. An existing directory is
// not an error, so concurrent callers sharing a parent are safe.
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("imageio: create directory: %w", err)
	}
	return nil
}
