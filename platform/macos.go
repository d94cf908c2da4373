package platform

import (
	"fmt"

	"github.com/gogpu/iconset"
)

// MacOSRoot is the app icon set of a Flutter-style macOS project.
const MacOSRoot = "macos/Runner/Assets.xcassets/AppIcon.appiconset"

// macosEntry names a macOS icon app_icon_{pixels}.png.
func macosEntry(base, scale float64) Entry {
	e := Entry{BaseSize: base, Scale: scale}
	e.Name = fmt.Sprintf("app_icon_%d.png", e.PixelSize())
	return e
}

// MacOS returns the desktop icon set.
//
// Pairs such as 16@2x and 32@1x resolve to the same file; the table is
// kept as shipped and the last entry written wins. See Set.Aliases.
func MacOS() Set {
	return Set{
		Name: "macos",
		Root: MacOSRoot,
		Entries: []Entry{
			macosEntry(16, 1),
			macosEntry(16, 2),
			macosEntry(32, 1),
			macosEntry(32, 2),
			macosEntry(128, 1),
			macosEntry(128, 2),
			macosEntry(256, 1),
			macosEntry(256, 2),
			macosEntry(512, 1),
			macosEntry(512, 2),
		},
		Style: defaultStyle(iconset.Lock{}),
	}
}
