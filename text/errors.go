package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrMissingGlyph is returned when a font does not map a required rune.
	ErrMissingGlyph = errors.New("text: font has no glyph for rune")

	// ErrEmptyCollection is returned when a font collection holds no fonts.
	ErrEmptyCollection = errors.New("text: font collection is empty")
)
