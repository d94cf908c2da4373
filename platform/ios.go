package platform

import (
	"fmt"

	"github.com/gogpu/iconset"
)

// IOSRoot is the app icon set of a Flutter-style iOS project.
const IOSRoot = "ios/Runner/Assets.xcassets/AppIcon.appiconset"

// iosEntry names an iOS icon Icon-App-{base}x{base}@{scale}x.png.
func iosEntry(base, scale float64) Entry {
	b := formatSize(base)
	return Entry{
		Name:     fmt.Sprintf("Icon-App-%sx%s@%sx.png", b, b, formatSize(scale)),
		BaseSize: base,
		Scale:    scale,
	}
}

// IOS returns the iPhone, iPad and App Store icon set. iPhone and iPad
// rows that resolve to the same file are both kept, in that order.
func IOS() Set {
	return Set{
		Name: "ios",
		Root: IOSRoot,
		Entries: []Entry{
			// iPhone
			iosEntry(20, 2),
			iosEntry(20, 3),
			iosEntry(29, 2),
			iosEntry(29, 3),
			iosEntry(40, 2),
			iosEntry(40, 3),
			iosEntry(60, 2),
			iosEntry(60, 3),

			// iPad
			iosEntry(20, 1),
			iosEntry(20, 2),
			iosEntry(29, 1),
			iosEntry(29, 2),
			iosEntry(40, 1),
			iosEntry(40, 2),
			iosEntry(76, 1),
			iosEntry(76, 2),
			iosEntry(83.5, 2),

			// App Store
			iosEntry(1024, 1),
		},
		Style: defaultStyle(iconset.Lock{}),
	}
}
