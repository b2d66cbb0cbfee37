package system

import (
	"github.com/younwookim/flycopter/internal/application/asset"
)

// Stager loads textures incrementally so the frame loop never blocks on a
// whole set. Each Step loads the next missing required texture; once all
// required textures are in the cache the following Step loads the UI set
// as one batch. Textures already cached are skipped, so a stager rebuilt
// over the same cache resumes where the previous one stopped.
type Stager struct {
	provider asset.Provider
	cache    *asset.Cache
	required []asset.Spec
	ui       []asset.Spec
}

// NewStager creates a new stager
func NewStager(p asset.Provider, cache *asset.Cache, required, ui []asset.Spec) *Stager {
	return &Stager{
		provider: p,
		cache:    cache,
		required: required,
		ui:       ui,
	}
}

// Step performs one frame of loading. It does nothing when the provider has
// no context this frame. A returned error wraps asset.ErrLoad.
func (s *Stager) Step() error {
	if s.Done() {
		return nil
	}

	ctx, ok := s.provider.Acquire()
	if !ok {
		return nil
	}
	defer ctx.Release()

	if next, ok := s.nextRequired(); ok {
		return asset.LoadInto(ctx, s.cache, next)
	}
	return asset.LoadBatch(ctx, s.cache, s.ui)
}

// Done reports whether every required and UI texture is cached
func (s *Stager) Done() bool {
	return s.cache.HasAll(s.required) && s.cache.HasAll(s.ui)
}

func (s *Stager) nextRequired() (asset.Spec, bool) {
	for _, spec := range s.required {
		if !s.cache.Has(spec.ID) {
			return spec, true
		}
	}
	return asset.Spec{}, false
}
