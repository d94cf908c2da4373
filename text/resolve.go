package text

import (
	"bytes"
	"fmt"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face is a resolved font face at a fixed pixel size.
type Face struct {
	font.Face

	// Source names the source that produced the face.
	Source string

	// Covered reports whether the face maps the rune required with
	// WithRune to a drawable outline. It is always true when no rune was required.
	Covered bool

	// Builtin is set when every source failed and the face is
	// basicfont.Face7x13.
	Builtin bool
}

// builtinName is the Source name reported for the last-resort face.
const builtinName = "basicfont"

// Resolve returns a face of the given pixel size from the first source
// that loads and, with WithRune, maps the required rune. When none of
// sources qualifies, the fallback sources (the bundled Go Regular font by
// default) are tried without the coverage requirement, and finally
// basicfont.Face7x13 is returned. Resolve never fails.
func Resolve(size float64, sources []Source, opts ...Option) Face {
	cfg := defaultResolveConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger

	for _, s := range sources {
		f, covered, err := open(s, size, cfg)
		if err == nil && !covered {
			_ = f.Close()
			err = fmt.Errorf("%w %q", ErrMissingGlyph, cfg.require)
		}
		if err != nil {
			log.Debug("font source skipped", "source", s.Name(), "err", err)
			continue
		}
		log.Debug("font resolved", "source", s.Name(), "size", size)
		return Face{Face: f, Source: s.Name(), Covered: true}
	}

	for _, s := range cfg.fallback {
		f, covered, err := open(s, size, cfg)
		if err != nil {
			log.Warn("fallback font unavailable", "source", s.Name(), "err", err)
			continue
		}
		log.Debug("using fallback font", "source", s.Name(), "covered", covered)
		return Face{Face: f, Source: s.Name(), Covered: covered}
	}

	log.Warn("using built-in font", "source", builtinName)
	covered := true
	if cfg.require >= 0 {
		_, covered = basicfont.Face7x13.GlyphAdvance(cfg.require)
	}
	return Face{Face: basicfont.Face7x13, Source: builtinName, Covered: covered, Builtin: true}
}

// open loads s as a face. covered reports rune coverage when one is required.
// Font files are read and parsed once per process.
func open(s Source, size float64, cfg resolveConfig) (f font.Face, covered bool, err error) {
	var lf loadedFont
	if fs, ok := s.(fileSource); ok {
		lf = fontFiles.getOrCreate(fontKey{string(fs), cfg.require}, func() loadedFont {
			return load(fs, cfg.require)
		})
	} else {
		lf = load(s, cfg.require)
	}
	if lf.err != nil {
		return nil, false, lf.err
	}

	f, err = opentype.NewFace(lf.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: cfg.hinting,
	})
	if err != nil {
		return nil, false, fmt.Errorf("text: failed to create face: %w", err)
	}
	return f, lf.covered, nil
}

// load reads and parses the font behind s, checking coverage of require
// when it is not negative.
func load(s Source, require rune) loadedFont {
	data, err := s.Bytes()
	if err != nil {
		return loadedFont{err: err}
	}

	covered := true
	if require >= 0 {
		if covered, err = Covers(data, require); err != nil {
			return loadedFont{err: err}
		}
	}

	parsed, err := parse(data)
	if err != nil {
		return loadedFont{err: err}
	}
	if covered && require >= 0 {
		covered = drawable(parsed, require)
	}
	return loadedFont{font: parsed, covered: covered}
}

// drawable reports whether f has an outline for r. Bitmap-only glyphs,
// such as the sbix images of color emoji fonts, map in the cmap but have
// no outline to rasterize.
func drawable(f *opentype.Font, r rune) bool {
	var buf sfnt.Buffer
	idx, err := f.GlyphIndex(&buf, r)
	if err != nil || idx == 0 {
		return false
	}
	bounds, _, err := f.GlyphBounds(&buf, idx, fixed.I(64), font.HintingNone)
	return err == nil && !bounds.Empty()
}

// parse parses a single font or the first font of a TrueType collection.
func parse(data []byte) (*opentype.Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if bytes.HasPrefix(data, []byte("ttcf")) {
		c, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("text: failed to parse font collection: %w", err)
		}
		if c.NumFonts() == 0 {
			return nil, ErrEmptyCollection
		}
		f, err := c.Font(0)
		if err != nil {
			return nil, fmt.Errorf("text: failed to parse font: %w", err)
		}
		return f, nil
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return f, nil
}

// Covers reports whether the font in data (or the first font of a
// collection) maps r through its cmap.
func Covers(data []byte, r rune) (bool, error) {
	if len(data) == 0 {
		return false, ErrEmptyFontData
	}
	faces, err := gtfont.ParseTTC(bytes.NewReader(data))
	if err != nil {
		return false, fmt.Errorf("text: failed to read cmap: %w", err)
	}
	if len(faces) == 0 {
		return false, ErrEmptyCollection
	}
	_, ok := faces[0].NominalGlyph(r)
	return ok, nil
}
