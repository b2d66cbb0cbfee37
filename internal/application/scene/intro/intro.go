// Package intro provides the splash scene that fades the logos in and out
// before the menu.
package intro

import (
	"log"

	"github.com/younwookim/flycopter/internal/application/asset"
	"github.com/younwookim/flycopter/internal/application/event"
	"github.com/younwookim/flycopter/internal/application/render"
	"github.com/younwookim/flycopter/internal/application/scene"
	"github.com/younwookim/flycopter/internal/application/timer"
	"github.com/younwookim/flycopter/internal/domain/entity"
)

// Phase is the intro state
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseLoading
	PhaseFadingIn
	PhaseWaiting
	PhaseFadingOut
	PhaseFinished
	PhaseError
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "Uninitialized"
	case PhaseLoading:
		return "Loading"
	case PhaseFadingIn:
		return "FadingIn"
	case PhaseWaiting:
		return "Waiting"
	case PhaseFadingOut:
		return "FadingOut"
	case PhaseFinished:
		return "Finished"
	case PhaseError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Intro shows each logo in turn, then asks for the menu
type Intro struct {
	env   scene.Env
	specs []asset.Spec
	cache *asset.Cache
	timer *timer.Timer

	phase     Phase
	suspended bool
	logo      int
	opacity   float64
}

var _ scene.Scene = (*Intro)(nil)

// New creates the intro scene
func New(env scene.Env) *Intro {
	return &Intro{
		env:       env,
		specs:     asset.SpecsFrom(env.Assets.Intro),
		cache:     asset.NewCache(),
		timer:     timer.New(env.Clock),
		suspended: true,
	}
}

// Initialize starts loading the first time or after a failed load, and
// restarts the fade afterwards
func (s *Intro) Initialize() bool {
	if s.phase == PhaseUninitialized || s.phase == PhaseError {
		s.phase = PhaseLoading
	} else {
		s.restart()
	}
	return true
}

func (s *Intro) restart() {
	s.timer.Reset()
	s.logo = 0
	s.opacity = 0
	s.phase = PhaseFadingIn
}

func (s *Intro) Suspend() { s.suspended = true }
func (s *Intro) Resume()  { s.suspended = false }

// Handle ignores input; the intro cannot be skipped
func (s *Intro) Handle(event.Event) scene.Scene {
	return nil
}

// Update advances the fade (implements scene.Scene)
func (s *Intro) Update(float64) (scene.Scene, error) {
	if s.suspended {
		return nil, nil
	}

	switch s.phase {
	case PhaseLoading:
		s.updateLoading()
	case PhaseFadingIn:
		s.updateFadingIn()
	case PhaseWaiting:
		s.updateWaiting()
	case PhaseFadingOut:
		return s.updateFadingOut(), nil
	}
	return nil, nil
}

func (s *Intro) updateLoading() {
	ctx, ok := s.env.Provider.Acquire()
	if !ok {
		return
	}
	defer ctx.Release()

	if err := asset.LoadBatch(ctx, s.cache, s.specs); err != nil {
		s.phase = PhaseError
		log.Printf("[intro] %v", err)
		return
	}
	s.restart()
}

func (s *Intro) updateFadingIn() {
	fade := s.env.Config.Intro.FadeIn
	elapsed := s.timer.ElapsedSeconds()
	if elapsed < fade {
		s.opacity = elapsed / fade
		return
	}
	s.timer.Reset()
	s.opacity = 1
	s.phase = PhaseWaiting
}

func (s *Intro) updateWaiting() {
	if s.timer.ElapsedSeconds() > s.env.Config.Intro.Hold {
		s.timer.Reset()
		s.phase = PhaseFadingOut
	}
}

func (s *Intro) updateFadingOut() scene.Scene {
	fade := s.env.Config.Intro.FadeOut
	elapsed := s.timer.ElapsedSeconds()
	if elapsed < fade {
		s.opacity = 1 - elapsed/fade
		return nil
	}

	if s.logo+1 < len(s.specs) {
		s.logo++
		s.opacity = 0
		s.timer.Reset()
		s.phase = PhaseFadingIn
		return nil
	}

	s.logo = 0
	s.phase = PhaseFinished
	log.Printf("[intro] finished")
	return s.env.Scenes.New(scene.Menu)
}

// Render draws the current logo at the current opacity
func (s *Intro) Render(c render.Canvas) {
	if s.suspended {
		return
	}
	c.Clear()

	if s.phase < PhaseFadingIn || s.phase > PhaseFadingOut || len(s.specs) == 0 {
		return
	}
	tex := s.cache.Get(s.specs[s.logo].ID)
	if tex == nil {
		return
	}
	w, h := s.env.Canvas()
	c.SetOpacity(s.opacity)
	c.FillRectangle(entity.Vec2{X: w / 2, Y: h / 2}, render.TextureSize(tex, 1), tex)
}

// Phase returns the intro state
func (s *Intro) Phase() Phase {
	return s.phase
}

// Opacity returns the current logo opacity
func (s *Intro) Opacity() float64 {
	return s.opacity
}

// Logo returns the index of the logo being shown
func (s *Intro) Logo() int {
	return s.logo
}

func (s *Intro) String() string {
	return "Intro " + s.phase.String()
}
