// Package config reads the optional icongen.toml file that tunes an icon
// generation run.
//
// Every field is optional:
//
//	master_logo  = "assets/logo_512x512.png"
//	output_root  = "."
//	radius_ratio = 0.2
//	palette      = ["#8B5CF6", "#EC4899", "#3B82F6"]
//	axis         = "vertical"
//
//	[glyphs]
//	android = "none"
//	ios     = "lock"
//	web     = "diamond"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/iconset"
	"github.com/gogpu/iconset/platform"
)

// FileName is the config file looked up in the working directory.
const FileName = "icongen.toml"

// Config errors.
var (
	// ErrPalette is returned for a palette that is not 2 or 3 valid hex colors.
	ErrPalette = errors.New("config: invalid palette")

	// ErrAxis is returned for an axis other than "vertical" or "horizontal".
	ErrAxis = errors.New("config: invalid gradient axis")

	// ErrUnknownPlatform is returned for a glyph override of an unknown platform.
	ErrUnknownPlatform = errors.New("config: unknown platform")
)

// Config holds the settings of a generation run.
type Config struct {
	// MasterLogo is the pre-rendered logo resampled instead of procedural
	// rendering when it exists. Empty disables the lookup.
	MasterLogo string `toml:"master_logo"`

	// OutputRoot is the directory platform roots are resolved against.
	OutputRoot string `toml:"output_root"`

	// RadiusRatio is the corner radius as a fraction of the icon size.
	RadiusRatio float64 `toml:"radius_ratio"`

	// Palette holds the 2 or 3 gradient stops as hex strings.
	Palette []string `toml:"palette"`

	// Axis is "vertical" or "horizontal".
	Axis string `toml:"axis"`

	// Glyphs overrides the glyph drawn per platform, keyed by platform
	// name. See iconset.GlyphByName for the values.
	Glyphs map[string]string `toml:"glyphs"`
}

// Default returns the built-in settings.
func Default() *Config {
	c := &Config{MasterLogo: platform.MasterLogo}
	c.init()
	return c
}

// init fills unset fields with their defaults.
func (c *Config) init() {
	if c.OutputRoot == "" {
		c.OutputRoot = "."
	}
	if c.RadiusRatio == 0 {
		c.RadiusRatio = iconset.DefaultRadiusRatio
	}
	if len(c.Palette) == 0 {
		for _, col := range iconset.BrandGradient.Colors {
			c.Palette = append(c.Palette, fmt.Sprintf("#%02X%02X%02X", col.R, col.G, col.B))
		}
	}
	if c.Axis == "" {
		c.Axis = "vertical"
	}
}

// Load reads filename. A missing file yields Default and no error; a
// malformed file, an unknown key or an invalid value is an error.
func Load(filename string) (*Config, error) {
	c := &Config{MasterLogo: platform.MasterLogo}
	md, err := toml.DecodeFile(filename, c)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("reading %s: unknown keys %s", filename, strings.Join(keys, ", "))
	}
	c.init()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return c, nil
}

// Validate checks every value without touching the filesystem.
func (c *Config) Validate() error {
	if c.RadiusRatio <= 0 || c.RadiusRatio > 0.5 {
		return fmt.Errorf("%w: %g", iconset.ErrRadiusRatio, c.RadiusRatio)
	}
	if _, err := c.Gradient(); err != nil {
		return err
	}
	for name, glyph := range c.Glyphs {
		if _, ok := platform.ByName(name); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownPlatform, name)
		}
		if _, err := iconset.GlyphByName(glyph); err != nil {
			return err
		}
	}
	return nil
}

// Gradient builds the background gradient from Palette and Axis.
func (c *Config) Gradient() (iconset.Gradient, error) {
	var axis iconset.Axis
	switch strings.ToLower(c.Axis) {
	case "", "vertical":
		axis = iconset.AxisVertical
	case "horizontal":
		axis = iconset.AxisHorizontal
	default:
		return iconset.Gradient{}, fmt.Errorf("%w: %q", ErrAxis, c.Axis)
	}

	colors := make([]iconset.Color, 0, len(c.Palette))
	for _, s := range c.Palette {
		col, ok := iconset.ParseHex(s)
		if !ok {
			return iconset.Gradient{}, fmt.Errorf("%w: bad color %q", ErrPalette, s)
		}
		colors = append(colors, col)
	}
	g, err := iconset.NewGradient(axis, colors...)
	if err != nil {
		return iconset.Gradient{}, fmt.Errorf("%w: %w", ErrPalette, err)
	}
	return g, nil
}

// Style returns the layers set is rendered with: its default style with
// the configured gradient, radius and glyph override applied.
func (c *Config) Style(set platform.Set) (iconset.Layers, error) {
	l := set.Style
	g, err := c.Gradient()
	if err != nil {
		return iconset.Layers{}, err
	}
	l.Background = iconset.GradientFill{Gradient: g}
	l.RadiusRatio = c.RadiusRatio

	if name, ok := c.Glyphs[set.Name]; ok {
		glyph, err := iconset.GlyphByName(name)
		if err != nil {
			return iconset.Layers{}, err
		}
		l.Glyph = glyph
	}
	return l, nil
}
