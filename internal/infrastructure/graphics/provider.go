package graphics

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"path"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/flycopter/internal/application/asset"
	"github.com/younwookim/flycopter/internal/application/render"
)

// FSProvider decodes PNG textures from a file system.
// Missing files are served by the fallback provider when one is set.
type FSProvider struct {
	fsys     fs.FS
	root     string
	fallback *Placeholders
}

var _ asset.Provider = (*FSProvider)(nil)

// NewFSProvider creates a provider reading paths below root in fsys
func NewFSProvider(fsys fs.FS, root string) *FSProvider {
	return &FSProvider{fsys: fsys, root: root}
}

// WithFallback serves missing files from p
func (p *FSProvider) WithFallback(ph *Placeholders) *FSProvider {
	p.fallback = ph
	return p
}

// Acquire implements asset.Provider. Ebiten owns the GPU context, so one is
// always available.
func (p *FSProvider) Acquire() (asset.Context, bool) {
	return fsContext{p: p}, true
}

type fsContext struct {
	p *FSProvider
}

func (c fsContext) Load(name string) (render.Texture, error) {
	tex, err := c.p.decode(name)
	if err == nil {
		return tex, nil
	}
	if c.p.fallback != nil && errors.Is(err, fs.ErrNotExist) {
		log.Printf("[graphics] %s not found, using placeholder", name)
		return c.p.fallback.load(name)
	}
	return nil, err
}

func (c fsContext) Release() {}

func (p *FSProvider) decode(name string) (*Texture, error) {
	f, err := p.fsys.Open(path.Join(p.root, name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return NewTexture(ebiten.NewImageFromImage(img)), nil
}
