// Package scene defines the Scene interface for game screens.
//
// Each game screen (intro, menu, gameplay) implements the Scene interface
// to handle its own events, update logic and rendering.
package scene

import (
	"github.com/benbjohnson/clock"

	"github.com/younwookim/flycopter/internal/application/asset"
	"github.com/younwookim/flycopter/internal/application/event"
	"github.com/younwookim/flycopter/internal/application/render"
	"github.com/younwookim/flycopter/internal/infrastructure/config"
)

// Scene represents a game screen (intro, menu, gameplay)
//
// The director delegates events, Update and Render calls to the current scene.
// Scene transitions are requested by returning a non-nil Scene from Handle
// or Update.
type Scene interface {
	// Initialize prepares the scene to be shown. It may be called again on
	// a scene that has already run. Returns false if the scene cannot run.
	Initialize() bool

	// Suspend is called when the game goes to the background.
	Suspend()

	// Resume is called when the game comes back to the foreground, and
	// right after Initialize when the scene becomes current.
	Resume()

	// Handle processes one input event.
	// Returns the next scene if a transition is needed, nil to stay.
	Handle(ev event.Event) (next Scene)

	// Update updates the scene state.
	// dt is the delta time in seconds (typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Render draws the scene. It never changes scene state.
	Render(c render.Canvas)
}

// ID names a scene the factory can build
type ID int

const (
	Intro ID = iota
	Menu
	Game
)

// String returns the scene name
func (id ID) String() string {
	switch id {
	case Intro:
		return "Intro"
	case Menu:
		return "Menu"
	case Game:
		return "Game"
	default:
		return "Unknown"
	}
}

// Factory builds scenes by ID so scenes can switch to each other without
// importing each other.
type Factory interface {
	New(id ID) Scene
}

// FactoryFunc adapts a function to Factory
type FactoryFunc func(id ID) Scene

// New calls f(id)
func (f FactoryFunc) New(id ID) Scene {
	return f(id)
}

// Env carries the collaborators every scene needs
type Env struct {
	Config   *config.GameConfig
	Assets   *config.AssetsConfig
	Provider asset.Provider
	Clock    clock.Clock
	Scenes   Factory
}

// Canvas returns the virtual canvas size
func (e Env) Canvas() (w, h float64) {
	return e.Config.Display.Width, e.Config.Display.Height
}
