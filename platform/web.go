package platform

import (
	"fmt"

	"github.com/gogpu/iconset"
)

// WebRoot is the shared asset directory. It also holds the master logo.
const WebRoot = "assets"

// MasterLogo is the conventional path of the pre-rendered master logo.
const MasterLogo = WebRoot + "/logo_512x512.png"

// WebSizes lists the web logo sizes.
var WebSizes = []int{16, 32, 48, 64, 128, 192, 256, 512}

// Web returns the web logo set, logo_{s}x{s}.png for every size in
// WebSizes, drawn with the shield glyph by default. Its 512 entry is the
// master logo the other platforms resample when present.
func Web() Set {
	entries := make([]Entry, 0, len(WebSizes))
	for _, s := range WebSizes {
		entries = append(entries, Entry{
			Name:     fmt.Sprintf("logo_%dx%d.png", s, s),
			BaseSize: float64(s),
		})
	}
	return Set{
		Name:    "web",
		Root:    WebRoot,
		Entries: entries,
		Style:   defaultStyle(iconset.Shield{}),
	}
}
