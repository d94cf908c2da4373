// Command webicons writes the web logo icons under the current directory.
//
// A master logo at assets/logo_512x512.png is resampled when present;
// otherwise the icons are drawn procedurally. An optional icongen.toml
// tunes the palette, glyph, corner radius and output root.
package main

import (
	"os"

	"github.com/gogpu/iconset/internal/cli"
)

func main() {
	os.Exit(cli.Run("web"))
}
