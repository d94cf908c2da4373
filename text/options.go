package text

import (
	"log/slog"

	"golang.org/x/image/font"
)

// Option configures Resolve.
type Option func(*resolveConfig)

// resolveConfig holds configuration for Resolve.
type resolveConfig struct {
	logger   *slog.Logger
	require  rune
	hinting  font.Hinting
	fallback []Source
}

// defaultResolveConfig returns the default resolve configuration.
func defaultResolveConfig() resolveConfig {
	return resolveConfig{
		logger:   slog.New(slog.DiscardHandler),
		require:  -1,
		hinting:  font.HintingFull,
		fallback: []Source{Bundled()},
	}
}

// WithLogger sets the logger used to report skipped sources.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *resolveConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRune requires a source to map r to a glyph before it is accepted.
// The bundled default is still returned when no source covers r, with
// Face.Covered reporting false.
func WithRune(r rune) Option {
	return func(c *resolveConfig) {
		c.require = r
	}
}

// WithHinting sets the hinting applied to the resolved face.
func WithHinting(h font.Hinting) Option {
	return func(c *resolveConfig) {
		c.hinting = h
	}
}

// WithFallback replaces the bundled sources tried after the caller's
// sources and before basicfont. Passing nothing leaves only basicfont.
func WithFallback(sources ...Source) Option {
	return func(c *resolveConfig) {
		c.fallback = sources
	}
}
