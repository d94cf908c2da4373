package platform

import "path"

// AndroidRoot is the resource directory of a Flutter-style Android project.
const AndroidRoot = "android/app/src/main/res"

// Density is an Android launcher icon density bucket.
type Density struct {
	Name string // mipmap qualifier, e.g. "xhdpi"
	Size int    // launcher icon side in pixels
}

// Densities lists the launcher density buckets, lowest first.
var Densities = []Density{
	{Name: "mdpi", Size: 48},
	{Name: "hdpi", Size: 72},
	{Name: "xhdpi", Size: 96},
	{Name: "xxhdpi", Size: 144},
	{Name: "xxxhdpi", Size: 192},
}

// androidLayers are the files every density directory receives.
var androidLayers = []string{
	"ic_launcher.png",
	"ic_launcher_foreground.png",
	"ic_launcher_background.png",
}

// Android returns the launcher icon set: for each density a
// mipmap-<density> directory holding the main icon and the adaptive
// foreground and background layers, all at the bucket size. The default
// style is the plain gradient.
func Android() Set {
	entries := make([]Entry, 0, len(Densities)*len(androidLayers))
	for _, d := range Densities {
		for _, layer := range androidLayers {
			entries = append(entries, Entry{
				Name:     path.Join("mipmap-"+d.Name, layer),
				BaseSize: float64(d.Size),
			})
		}
	}
	return Set{
		Name:    "android",
		Root:    AndroidRoot,
		Entries: entries,
		Style:   defaultStyle(nil),
	}
}
