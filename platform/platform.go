// Package platform holds the static icon tables of each packaging
// convention: which files a platform expects, at which pixel sizes and
// under which directory.
package platform

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/gogpu/iconset"
)

// Entry is one icon a platform expects.
type Entry struct {
	// Name is the output path relative to the set root.
	Name string

	// BaseSize is the logical size in points. It may be fractional (83.5).
	BaseSize float64

	// Scale is the pixel density multiplier. Zero means 1.
	Scale float64
}

// PixelSize returns the pixel side length, BaseSize*Scale truncated.
func (e Entry) PixelSize() int {
	scale := e.Scale
	if scale == 0 {
		scale = 1
	}
	return int(e.BaseSize * scale)
}

// String implements fmt.Stringer.
func (e Entry) String() string {
	if e.Scale == 0 || e.Scale == 1 {
		return fmt.Sprintf("%s (%dpx)", e.Name, e.PixelSize())
	}
	return fmt.Sprintf("%s (%s@%sx, %dpx)", e.Name, formatSize(e.BaseSize), formatSize(e.Scale), e.PixelSize())
}

// Set is the complete icon table of one platform.
type Set struct {
	// Name is the platform identifier ("android", "ios", "macos", "web").
	Name string

	// Root is the directory entries are written under, relative to the
	// working directory.
	Root string

	// Entries lists the icons in write order. Later entries overwrite
	// earlier ones that resolve to the same file.
	Entries []Entry

	// Style is the default procedural look of the platform.
	Style iconset.Layers
}

// Sizes returns the distinct pixel sizes of s in ascending order.
func (s Set) Sizes() []int {
	seen := make(map[int]bool, len(s.Entries))
	var sizes []int
	for _, e := range s.Entries {
		if px := e.PixelSize(); !seen[px] {
			seen[px] = true
			sizes = append(sizes, px)
		}
	}
	sort.Ints(sizes)
	return sizes
}

// Files returns the distinct entry names of s in first-seen order.
func (s Set) Files() []string {
	seen := make(map[string]bool, len(s.Entries))
	var names []string
	for _, e := range s.Entries {
		if !seen[e.Name] {
			seen[e.Name] = true
			names = append(names, e.Name)
		}
	}
	return names
}

// Aliases returns, for every file written more than once, the entries
// that write it. A non-empty result usually means a table redundancy.
func (s Set) Aliases() map[string][]Entry {
	byName := make(map[string][]Entry)
	for _, e := range s.Entries {
		byName[e.Name] = append(byName[e.Name], e)
	}
	for name, entries := range byName {
		if len(entries) < 2 {
			delete(byName, name)
		}
	}
	return byName
}

// formatSize renders 20 as "20" and 83.5 as "83.5".
func formatSize(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// defaultStyle is the gradient background with the given glyph.
func defaultStyle(g iconset.Glyph) iconset.Layers {
	return iconset.Layers{
		Background:  iconset.GradientFill{Gradient: iconset.BrandGradient},
		Glyph:       g,
		RadiusRatio: iconset.DefaultRadiusRatio,
	}
}

// All returns every platform set in a stable order.
func All() []Set {
	return []Set{Android(), IOS(), MacOS(), Web()}
}

// ByName returns the set called name.
func ByName(name string) (Set, bool) {
	for _, s := range All() {
		if s.Name == name {
			return s, true
		}
	}
	return Set{}, false
}
