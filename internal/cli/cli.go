// Package cli runs icon generation for the cmd entry points.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/iconset"
	"github.com/gogpu/iconset/emitter"
	"github.com/gogpu/iconset/internal/config"
	"github.com/gogpu/iconset/platform"
)

// ErrUnknownPlatform is returned for a platform name with no table.
var ErrUnknownPlatform = errors.New("cli: unknown platform")

// App is one generation run.
type App struct {
	// Dir is the working directory config, master logo and outputs are
	// resolved against. Empty means the process working directory.
	Dir string

	// Stdout receives the summary. Nil means os.Stdout.
	Stdout io.Writer

	// Stderr receives log records. Nil means os.Stderr.
	Stderr io.Writer
}

// Run generates the named platform sets with the process defaults and
// returns the exit code.
func Run(platforms ...string) int {
	return App{}.Run(platforms...)
}

// Run generates the named platform sets and returns the exit code: 0 when
// every icon was written, 1 otherwise.
func (a App) Run(platforms ...string) int {
	stdout, stderr := a.Stdout, a.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	prev := iconset.Logger()
	iconset.SetLogger(log)
	defer iconset.SetLogger(prev)

	reports, err := a.generate(platforms)
	if err != nil {
		log.Error("icon generation aborted", "err", err)
		return 1
	}

	_, _ = fmt.Fprint(stdout, Summary(reports))
	for _, r := range reports {
		if r.Failed() > 0 {
			return 1
		}
	}
	return 0
}

// generate resolves sets and the strategy up front, then emits each set.
// The master logo is read once so every platform of a run sees the same
// source, even when the run rewrites it.
func (a App) generate(names []string) ([]*emitter.Report, error) {
	sets := make([]platform.Set, 0, len(names))
	for _, name := range names {
		set, ok := platform.ByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPlatform, name)
		}
		sets = append(sets, set)
	}

	cfg, err := config.Load(a.path(config.FileName))
	if err != nil {
		return nil, err
	}

	var master *iconset.MasterStrategy
	if cfg.MasterLogo != "" {
		master = iconset.LoadMaster(a.path(cfg.MasterLogo))
	}

	strategies := make([]iconset.Strategy, len(sets))
	for i, set := range sets {
		layers, err := cfg.Style(set)
		if err != nil {
			return nil, err
		}
		strategies[i] = iconset.SelectStrategy(master, layers)
	}

	reports := make([]*emitter.Report, 0, len(sets))
	for i, set := range sets {
		e := emitter.New(strategies[i], emitter.WithRoot(a.path(cfg.OutputRoot)))
		reports = append(reports, e.Emit(set))
	}
	return reports, nil
}

// path resolves p against Dir.
func (a App) path(p string) string {
	if a.Dir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(a.Dir, p)
}
