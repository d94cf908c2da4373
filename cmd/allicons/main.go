// Command allicons writes the icons of every platform in one run:
// Android, iOS, macOS and web.
package main

import (
	"os"

	"github.com/gogpu/iconset/internal/cli"
	"github.com/gogpu/iconset/platform"
)

func main() {
	sets := platform.All()
	names := make([]string, len(sets))
	for i, s := range sets {
		names[i] = s.Name
	}
	os.Exit(cli.Run(names...))
}
