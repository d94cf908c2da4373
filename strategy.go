package iconset

import (
	"errors"
	"fmt"
	"image"
	"io/fs"

	"github.com/gogpu/iconset/internal/imageio"
)

// Strategy renders a finished icon of a requested size.
// A batch selects one Strategy up front and uses it for every icon, so all
// outputs of a run are consistent.
type Strategy interface {
	// Name identifies the strategy in logs and reports.
	Name() string

	// Render returns a new size x size image.
	Render(size int) (*image.NRGBA, error)
}

// MasterStrategy resamples a pre-rendered master logo. No gradient, glyph
// or mask is applied.
type MasterStrategy struct {
	img image.Image
}

// NewMasterStrategy returns a strategy that scales img to every size.
func NewMasterStrategy(img image.Image) *MasterStrategy {
	return &MasterStrategy{img: img}
}

// Name implements Strategy.
func (m *MasterStrategy) Name() string { return "master" }

// Render implements Strategy.
func (m *MasterStrategy) Render(size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: icon size %d", ErrInvalidSize, size)
	}
	return Resample(m.img, size), nil
}

// ProceduralStrategy composes each icon from Layers.
type ProceduralStrategy struct {
	Layers Layers
}

// Name implements Strategy.
func (p ProceduralStrategy) Name() string { return "procedural" }

// Render implements Strategy.
func (p ProceduralStrategy) Render(size int) (*image.NRGBA, error) {
	c, err := Compose(size, p.Layers)
	if err != nil {
		return nil, err
	}
	return c.Image(), nil
}

// LoadMaster loads the master logo at path. It returns nil and logs a
// warning when the file is missing or cannot be decoded, so callers fall
// back to procedural rendering.
func LoadMaster(path string) *MasterStrategy {
	log := Logger()
	if path == "" {
		return nil
	}

	img, err := imageio.Load(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Warn("master logo not found, rendering procedurally", "path", path)
		return nil
	case err != nil:
		log.Warn("master logo unreadable, rendering procedurally", "path", path, "err", err)
		return nil
	}

	b := img.Bounds()
	if b.Dx() != b.Dy() {
		log.Warn("master logo is not square, icons will be stretched", "path", path, "width", b.Dx(), "height", b.Dy())
	}
	log.Info("using master logo", "path", path, "width", b.Dx(), "height", b.Dy())
	return NewMasterStrategy(img)
}

// SelectStrategy returns master when it is not nil, and otherwise a
// ProceduralStrategy over layers. Load the master once per batch with
// LoadMaster so every set of the batch renders from the same source.
func SelectStrategy(master *MasterStrategy, layers Layers) Strategy {
	if master != nil {
		return master
	}
	return ProceduralStrategy{Layers: layers}
}
