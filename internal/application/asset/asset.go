// Package asset models texture loading for scenes.
//
// A Provider hands out a graphics upload Context for the duration of a single
// call; the Context is released before the call returns and never held
// across frames. Loaded textures are owned by a Cache keyed by identifier.
package asset

import (
	"errors"
	"fmt"

	"github.com/younwookim/flycopter/internal/application/render"
	"github.com/younwookim/flycopter/internal/infrastructure/config"
)

// ErrLoad is wrapped by every texture load failure
var ErrLoad = errors.New("asset load failed")

// Context uploads textures while it is held
type Context interface {
	// Load reads and uploads the texture at path.
	Load(path string) (render.Texture, error)

	// Release gives the context back to the provider.
	Release()
}

// Provider grants upload contexts. ok is false when no context is
// available this frame (for example while the surface is being recreated).
type Provider interface {
	Acquire() (ctx Context, ok bool)
}

// Spec pairs a texture identifier with its relative path
type Spec struct {
	ID   string
	Path string
}

// LoadError reports which texture failed
type LoadError struct {
	ID   string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%v: %s (%s): %v", ErrLoad, e.ID, e.Path, e.Err)
}

// Unwrap exposes both ErrLoad and the underlying cause to errors.Is
func (e *LoadError) Unwrap() []error {
	return []error{ErrLoad, e.Err}
}

// LoadInto loads one spec through ctx and stores it in cache
func LoadInto(ctx Context, cache *Cache, s Spec) error {
	tex, err := ctx.Load(s.Path)
	if err != nil {
		return &LoadError{ID: s.ID, Path: s.Path, Err: err}
	}
	if tex == nil {
		return &LoadError{ID: s.ID, Path: s.Path, Err: errors.New("nil texture")}
	}
	cache.Put(s.ID, tex)
	return nil
}

// LoadBatch loads every spec through a single context. Nothing is stored
// unless every texture in the batch loads.
func LoadBatch(ctx Context, cache *Cache, specs []Spec) error {
	loaded := make([]render.Texture, len(specs))
	for i, s := range specs {
		tex, err := ctx.Load(s.Path)
		if err != nil {
			return &LoadError{ID: s.ID, Path: s.Path, Err: err}
		}
		if tex == nil {
			return &LoadError{ID: s.ID, Path: s.Path, Err: errors.New("nil texture")}
		}
		loaded[i] = tex
	}
	for i, s := range specs {
		cache.Put(s.ID, loaded[i])
	}
	return nil
}

// SpecsFrom converts configured textures into load specs
func SpecsFrom(textures []config.TextureConfig) []Spec {
	specs := make([]Spec, len(textures))
	for i, t := range textures {
		specs[i] = Spec{ID: t.ID, Path: t.Path}
	}
	return specs
}
