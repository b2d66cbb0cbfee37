// Package headless provides GPU-free texture and canvas implementations.
//
// Textures only carry the size listed in the asset manifest. The canvas
// records every call so tests and replays can inspect what a scene drew.
package headless

import (
	"fmt"
	"io/fs"

	"github.com/younwookim/flycopter/internal/application/asset"
	"github.com/younwookim/flycopter/internal/application/render"
	"github.com/younwookim/flycopter/internal/infrastructure/config"
)

// Texture is a size-only texture
type Texture struct {
	Path string
	W, H float64
}

func (t *Texture) Width() float64  { return t.W }
func (t *Texture) Height() float64 { return t.H }

// Provider serves size-only textures for the paths in a manifest
type Provider struct {
	sizes map[string][2]float64
	fail  map[string]bool

	// Unavailable makes Acquire report no context
	Unavailable bool

	Acquired int
	Released int
	Loads    []string
}

// NewProvider creates a provider knowing every texture in the manifest
func NewProvider(assets *config.AssetsConfig) *Provider {
	p := &Provider{
		sizes: make(map[string][2]float64),
		fail:  make(map[string]bool),
	}
	for _, t := range assets.All() {
		p.sizes[t.Path] = [2]float64{t.Width, t.Height}
	}
	return p
}

// FailOn makes loads of the given paths fail
func (p *Provider) FailOn(paths ...string) {
	for _, path := range paths {
		p.fail[path] = true
	}
}

// Acquire implements asset.Provider
func (p *Provider) Acquire() (asset.Context, bool) {
	if p.Unavailable {
		return nil, false
	}
	p.Acquired++
	return &uploadContext{p: p}, true
}

// Held reports whether a context is currently acquired and not released
func (p *Provider) Held() bool {
	return p.Acquired != p.Released
}

type uploadContext struct {
	p        *Provider
	released bool
}

func (c *uploadContext) Load(path string) (render.Texture, error) {
	if c.released {
		return nil, fmt.Errorf("load %s: context already released", path)
	}
	c.p.Loads = append(c.p.Loads, path)
	if c.p.fail[path] {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	size, ok := c.p.sizes[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return &Texture{Path: path, W: size[0], H: size[1]}, nil
}

func (c *uploadContext) Release() {
	if c.released {
		return
	}
	c.released = true
	c.p.Released++
}
