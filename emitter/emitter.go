// Package emitter writes a platform icon set to disk.
//
// An Emitter renders every entry of a platform.Set with a single
// iconset.Strategy and saves it as PNG under the set root. Entries are
// independent: a failed render or write is recorded in the Report and the
// batch moves on.
//
//	master := iconset.LoadMaster(platform.MasterLogo)
//	strategy := iconset.SelectStrategy(master, set.Style)
//	report := emitter.New(strategy).Emit(set)
//	if err := report.Err(); err != nil {
//		log.Fatal(err)
//	}
package emitter

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gogpu/iconset"
	"github.com/gogpu/iconset/internal/imageio"
	"github.com/gogpu/iconset/platform"
)

// Emitter renders and saves icon sets.
type Emitter struct {
	strategy iconset.Strategy
	opts     options
}

// New returns an Emitter that renders every icon with strategy.
func New(strategy iconset.Strategy, opts ...Option) *Emitter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Emitter{strategy: strategy, opts: o}
}

// Strategy returns the strategy the emitter renders with.
func (e *Emitter) Strategy() iconset.Strategy {
	return e.strategy
}

func (e *Emitter) logger() *slog.Logger {
	if e.opts.logger != nil {
		return e.opts.logger
	}
	return iconset.Logger()
}

// Emit renders and writes every entry of set in table order.
// Entries that resolve to the same file are written again; the last one
// wins.
func (e *Emitter) Emit(set platform.Set) *Report {
	log := e.logger().With("platform", set.Name)
	start := time.Now()

	r := &Report{
		Platform: set.Name,
		Strategy: e.strategy.Name(),
		Results:  make([]Result, 0, len(set.Entries)),
	}
	log.Info("generating icons", "strategy", r.Strategy, "entries", len(set.Entries), "root", e.dir(set))

	for _, entry := range set.Entries {
		res := e.emitEntry(set, entry)
		if res.Err != nil {
			log.Error("icon failed", "entry", entry.Name, "err", res.Err)
		} else {
			log.Info("icon written", "path", res.Path, "size", res.Size)
		}
		r.Results = append(r.Results, res)
	}

	log.Info("icon set done", "written", r.Written(), "failed", r.Failed(), "elapsed", time.Since(start))
	return r
}

// dir is the directory set entries are written under.
func (e *Emitter) dir(set platform.Set) string {
	return filepath.Join(e.opts.root, filepath.FromSlash(set.Root))
}

func (e *Emitter) emitEntry(set platform.Set, entry platform.Entry) Result {
	res := Result{Entry: entry, Size: entry.PixelSize()}

	path, err := e.entryPath(set, entry)
	if err != nil {
		res.Err = err
		return res
	}
	res.Path = path

	img, err := e.strategy.Render(res.Size)
	if err != nil {
		res.Err = fmt.Errorf("render %s: %w", entry.Name, err)
		return res
	}
	if err := imageio.EnsureDir(filepath.Dir(path)); err != nil {
		res.Err = err
		return res
	}
	if err := imageio.SavePNG(path, img); err != nil {
		res.Err = err
	}
	return res
}

// entryPath joins the entry name to the set directory. The name must be
// relative and stay inside the set root.
func (e *Emitter) entryPath(set platform.Set, entry platform.Entry) (string, error) {
	name := filepath.FromSlash(entry.Name)
	if name == "" || !filepath.IsLocal(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, entry.Name)
	}
	return filepath.Join(e.dir(set), name), nil
}
