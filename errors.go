package iconset

import "errors"

// Sentinel errors for the rendering pipeline.
// These are precondition faults: they indicate a caller bug, not a
// recoverable runtime condition.
var (
	// ErrInvalidSize is returned when a canvas, mask or glyph size is not positive.
	ErrInvalidSize = errors.New("iconset: size must be positive")

	// ErrRadiusRatio is returned when a corner radius ratio is outside (0, 0.5].
	ErrRadiusRatio = errors.New("iconset: radius ratio must be in (0, 0.5]")

	// ErrGradientStops is returned when a gradient does not have 2 or 3 colors.
	ErrGradientStops = errors.New("iconset: gradient needs 2 or 3 colors")

	// ErrMaskSize is returned when a mask does not match its canvas.
	ErrMaskSize = errors.New("iconset: mask and canvas dimensions differ")

	// ErrNilBackground is returned when a composition has no background.
	ErrNilBackground = errors.New("iconset: background is nil")

	// ErrUnknownGlyph is returned by GlyphByName for an unregistered name.
	ErrUnknownGlyph = errors.New("iconset: unknown glyph")
)
