package emitter

import (
	"errors"
	"fmt"

	"github.com/gogpu/iconset/platform"
)

// Result is the outcome of one entry.
type Result struct {
	Entry platform.Entry

	// Path is the file written, empty when the entry path was invalid.
	Path string

	// Size is the rendered pixel size.
	Size int

	Err error
}

// Report tallies one Emit call.
type Report struct {
	Platform string
	Strategy string
	Results  []Result
}

// Written returns the number of successful writes, counting rewrites of
// the same file.
func (r *Report) Written() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the number of failed entries.
func (r *Report) Failed() int {
	return len(r.Results) - r.Written()
}

// Err joins the errors of all failed entries, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Platform, res.Err))
		}
	}
	return errors.Join(errs...)
}

// Files returns the distinct paths written successfully, in first-write
// order.
func (r *Report) Files() []string {
	seen := make(map[string]bool, len(r.Results))
	var files []string
	for _, res := range r.Results {
		if res.Err != nil || seen[res.Path] {
			continue
		}
		seen[res.Path] = true
		files = append(files, res.Path)
	}
	return files
}
