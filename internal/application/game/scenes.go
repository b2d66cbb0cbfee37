package game

import (
	"math/rand"

	"github.com/benbjohnson/clock"

	"github.com/younwookim/flycopter/internal/application/asset"
	"github.com/younwookim/flycopter/internal/application/scene"
	"github.com/younwookim/flycopter/internal/application/scene/intro"
	"github.com/younwookim/flycopter/internal/application/scene/menu"
	"github.com/younwookim/flycopter/internal/application/scene/playing"
	"github.com/younwookim/flycopter/internal/infrastructure/config"
)

// Setup holds what the scenes are built from
type Setup struct {
	Config   *config.GameConfig
	Assets   *config.AssetsConfig
	Provider asset.Provider
	Clock    clock.Clock // nil uses the wall clock
	Seed     int64
}

// Scenes builds each scene once and hands out the same instance afterwards,
// so a scene keeps its loaded textures across visits.
type Scenes struct {
	env   scene.Env
	seed  int64
	built map[scene.ID]scene.Scene
}

var _ scene.Factory = (*Scenes)(nil)

// NewScenes creates the scene registry
func NewScenes(s Setup) *Scenes {
	clk := s.Clock
	if clk == nil {
		clk = clock.New()
	}
	reg := &Scenes{
		seed:  s.Seed,
		built: make(map[scene.ID]scene.Scene),
	}
	reg.env = scene.Env{
		Config:   s.Config,
		Assets:   s.Assets,
		Provider: s.Provider,
		Clock:    clk,
		Scenes:   reg,
	}
	return reg
}

// New returns the scene for id (implements scene.Factory)
func (r *Scenes) New(id scene.ID) scene.Scene {
	if sc, ok := r.built[id]; ok {
		return sc
	}

	var sc scene.Scene
	switch id {
	case scene.Intro:
		sc = intro.New(r.env)
	case scene.Menu:
		sc = menu.New(r.env)
	case scene.Game:
		// Deterministic RNG
		sc = playing.New(r.env, rand.New(rand.NewSource(r.seed)))
	default:
		return nil
	}
	r.built[id] = sc
	return sc
}

// Canvas returns the virtual canvas size
func (r *Scenes) Canvas() (w, h float64) {
	return r.env.Canvas()
}

// NewDirector builds the scenes and starts a director on the intro
func NewDirector(s Setup, opts ...Option) (*Director, error) {
	reg := NewScenes(s)
	w, h := reg.Canvas()
	return New(reg.New(scene.Intro), w, h, opts...)
}
