package text

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/image/font/gofont/goregular"
)

// Source supplies raw font data (TTF, OTF or a TTC collection).
type Source interface {
	// Name identifies the source in logs.
	Name() string

	// Bytes returns the font file contents.
	Bytes() ([]byte, error)
}

// File returns a Source that reads the font at path when resolved.
func File(path string) Source {
	return fileSource(path)
}

type fileSource string

func (s fileSource) Name() string { return string(s) }

func (s fileSource) Bytes() ([]byte, error) {
	// #nosec G304 -- font paths come from the caller's fallback chain
	data, err := os.ReadFile(filepath.Clean(string(s)))
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	return data, nil
}

// Data returns a Source serving in-memory font data.
func Data(name string, data []byte) Source {
	return dataSource{name: name, data: data}
}

type dataSource struct {
	name string
	data []byte
}

func (s dataSource) Name() string { return s.name }

func (s dataSource) Bytes() ([]byte, error) {
	if len(s.data) == 0 {
		return nil, ErrEmptyFontData
	}
	return s.data, nil
}

// Bundled returns the Go Regular font compiled into the binary.
func Bundled() Source {
	return Data("goregular", goregular.TTF)
}

// SystemSources lists the platform fonts tried for symbol glyphs, most
// specific first: the macOS emoji font, then DejaVu Sans as shipped by
// most Linux distributions.
func SystemSources() []Source {
	return []Source{
		File("/System/Library/Fonts/Apple Color Emoji.ttc"),
		File("/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"),
	}
}
