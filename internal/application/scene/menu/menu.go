// Package menu provides the title menu with the play and help options.
package menu

import (
	"log"

	"github.com/younwookim/flycopter/internal/application/asset"
	"github.com/younwookim/flycopter/internal/application/event"
	"github.com/younwookim/flycopter/internal/application/render"
	"github.com/younwookim/flycopter/internal/application/scene"
	"github.com/younwookim/flycopter/internal/domain/entity"
	"github.com/younwookim/flycopter/internal/infrastructure/config"
)

// Texture identifiers used by the menu
const (
	texPlay     = "play"
	texLogo     = "logo"
	texHelp     = "help"
	texHelpText = "helpText"
)

// Phase is the menu state
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseError
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "Loading"
	case PhaseReady:
		return "Ready"
	case PhaseError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Option identifies a menu entry
type Option int

const (
	OptionNone Option = iota - 1
	OptionPlay
	OptionHelp

	optionCount = 2
)

type option struct {
	position entity.Vec2 // Center
	pressed  bool
}

// Menu lets the player start a round or read the help text
type Menu struct {
	env    scene.Env
	config *config.MenuConfig
	specs  []asset.Spec
	cache  *asset.Cache

	phase     Phase
	suspended bool
	options   [optionCount]option
	help      bool
}

var _ scene.Scene = (*Menu)(nil)

// New creates the menu scene
func New(env scene.Env) *Menu {
	return &Menu{
		env:       env,
		config:    &env.Config.Menu,
		specs:     asset.SpecsFrom(env.Assets.Menu),
		cache:     asset.NewCache(),
		suspended: true,
	}
}

// Initialize releases every option and closes the help text
func (m *Menu) Initialize() bool {
	for i := range m.options {
		m.options[i].pressed = false
	}
	m.help = false
	return true
}

func (m *Menu) Suspend() { m.suspended = true }
func (m *Menu) Resume()  { m.suspended = false }

// Handle processes one input event (implements scene.Scene)
func (m *Menu) Handle(ev event.Event) scene.Scene {
	if m.phase != PhaseReady {
		return nil
	}

	switch ev.Kind {
	case event.TouchStarted, event.TouchMoved:
		// Only one option can be pressed at a time
		touched := m.optionAt(ev)
		for i := range m.options {
			m.options[i].pressed = Option(i) == touched
		}

	case event.TouchEnded:
		// Any release closes the help text, then acts on the option under it
		m.help = false
		for i := range m.options {
			m.options[i].pressed = false
		}
		switch m.optionAt(ev) {
		case OptionPlay:
			log.Printf("[menu] play")
			return m.env.Scenes.New(scene.Game)
		case OptionHelp:
			m.help = true
		}
	}
	return nil
}

// Update loads the textures on the first frame (implements scene.Scene)
func (m *Menu) Update(float64) (scene.Scene, error) {
	if m.suspended || m.phase != PhaseLoading {
		return nil, nil
	}

	ctx, ok := m.env.Provider.Acquire()
	if !ok {
		return nil, nil
	}
	defer ctx.Release()

	if err := asset.LoadBatch(ctx, m.cache, m.specs); err != nil {
		m.phase = PhaseError
		log.Printf("[menu] %v", err)
		return nil, nil
	}
	if m.cache.Get(texPlay) == nil {
		m.phase = PhaseError
		log.Printf("[menu] %v: texture %q missing", asset.ErrLoad, texPlay)
		return nil, nil
	}

	m.phase = PhaseReady
	m.configureOptions()
	return nil, nil
}

// configureOptions stacks the options downwards from a top edge derived from
// the play button height.
func (m *Menu) configureOptions() {
	w, h := m.env.Canvas()
	buttonH := m.cache.Get(texPlay).Height()

	menuH := 0.0
	for range m.options {
		menuH += buttonH * 2
	}

	top := h*m.config.OptionsTop + menuH/2.5
	for i := range m.options {
		m.options[i].position = entity.Vec2{X: w / 2, Y: top}
		top -= buttonH
	}
	m.Initialize()
}

// optionAt returns the first option whose hit box holds the event position.
// The hit box extends one button size around the option center.
func (m *Menu) optionAt(ev event.Event) Option {
	if !ev.HasPos {
		return OptionNone
	}
	play := m.cache.Get(texPlay)
	bw, bh := play.Width(), play.Height()

	for i, o := range m.options {
		if ev.X > o.position.X-bw && ev.X < o.position.X+bw &&
			ev.Y > o.position.Y-bh && ev.Y < o.position.Y+bh {
			return Option(i)
		}
	}
	return OptionNone
}

// Render draws the menu or the help text (implements scene.Scene)
func (m *Menu) Render(c render.Canvas) {
	if m.suspended {
		return
	}
	c.Clear()

	if m.phase != PhaseReady {
		return
	}
	w, h := m.env.Canvas()

	if m.help {
		m.drawAt(c, texHelpText, entity.Vec2{X: w * m.config.Help.X, Y: h * m.config.Help.Y}, m.config.Help.Scale)
		return
	}
	m.drawAt(c, texLogo, entity.Vec2{X: w * m.config.Logo.X, Y: h * m.config.Logo.Y}, m.config.Logo.Scale)
	m.drawAt(c, texPlay, m.options[OptionPlay].position, 1)
	m.drawAt(c, texHelp, m.options[OptionHelp].position, 1)
}

func (m *Menu) drawAt(c render.Canvas, id string, center entity.Vec2, scale float64) {
	if tex := m.cache.Get(id); tex != nil {
		c.FillRectangle(center, render.TextureSize(tex, scale), tex)
	}
}

// Phase returns the menu state
func (m *Menu) Phase() Phase {
	return m.phase
}

// Pressed reports whether the option is held down
func (m *Menu) Pressed(o Option) bool {
	if o < 0 || int(o) >= optionCount {
		return false
	}
	return m.options[o].pressed
}

// ShowingHelp reports whether the help text is up
func (m *Menu) ShowingHelp() bool {
	return m.help
}

// OptionCenter returns where an option is drawn
func (m *Menu) OptionCenter(o Option) entity.Vec2 {
	return m.options[o].position
}

func (m *Menu) String() string {
	return "Menu " + m.phase.String()
}
