// Package text resolves fonts for glyphs drawn as text.
//
// Fonts are looked up through an ordered fallback chain:
//
//   - Source: where font bytes come from (a file path or embedded data)
//   - Resolve: tries each Source in order and returns the first Face that
//     loads, optionally requiring it to map a specific rune
//   - the bundled Go Regular font, then basicfont.Face7x13 as the
//     guaranteed last resort
//
// Resolve never fails; load problems are logged and skipped. Font files
// are read and parsed once per process, faces are built per call.
//
// # Example usage
//
//	face := text.Resolve(64, []text.Source{
//	    text.File("/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"),
//	}, text.WithRune('🔒'))
//	defer face.Close()
//
// Font bytes are parsed for rendering with golang.org/x/image/font/opentype.
// Rune coverage is probed from the cmap with github.com/go-text/typesetting,
// which also reads TrueType collections.
package text
