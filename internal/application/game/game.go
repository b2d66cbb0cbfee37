// Package game provides the director that runs the current Scene and
// handles Scene transitions.
package game

import (
	"fmt"
	"log"

	"github.com/benbjohnson/clock"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/flycopter/internal/application/event"
	"github.com/younwookim/flycopter/internal/application/render"
	"github.com/younwookim/flycopter/internal/application/replay"
	"github.com/younwookim/flycopter/internal/application/scene"
	"github.com/younwookim/flycopter/internal/infrastructure/graphics"
)

// InputSource produces the events of one frame
type InputSource interface {
	Poll() []event.Event
}

// Director implements ebiten.Game and manages Scene transitions.
type Director struct {
	current scene.Scene
	input   InputSource
	focused func() bool
	active  bool

	recorder *replay.Recorder
	debug    bool

	// Frame time, pinned to wall time at the start of each Step
	frame *clock.Mock
	wall  clock.Clock

	screenW float64
	screenH float64
	dt      float64
}

// Option configures a Director
type Option func(*Director)

// WithInput sets where events come from. Without it Update sees no events.
func WithInput(src InputSource) Option {
	return func(d *Director) { d.input = src }
}

// WithFocus sets the focus probe. The current scene is suspended while it
// reports false.
func WithFocus(focused func() bool) Option {
	return func(d *Director) { d.focused = focused }
}

// WithRecorder records the events of every frame
func WithRecorder(r *replay.Recorder) Option {
	return func(d *Director) { d.recorder = r }
}

// WithFrameClock pins frame to wall time at the start of every Step. Scenes
// and the recorder that read frame see one instant per frame, so a replay
// advancing a mock clock by the recorded durations reproduces their timers.
func WithFrameClock(frame *clock.Mock, wall clock.Clock) Option {
	return func(d *Director) {
		d.frame = frame
		d.wall = wall
	}
}

// FrameClock returns a clock for WithFrameClock, set to the current wall time
func FrameClock(wall clock.Clock) *clock.Mock {
	frame := clock.NewMock()
	frame.Set(wall.Now())
	return frame
}

// WithDebug draws the current scene and TPS on top of each frame
func WithDebug(on bool) Option {
	return func(d *Director) { d.debug = on }
}

// New creates a new Director with the given initial scene and virtual
// canvas size. The initial scene is initialized and resumed immediately.
func New(initialScene scene.Scene, screenW, screenH float64, opts ...Option) (*Director, error) {
	d := &Director{
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
		active:  true,
	}
	for _, opt := range opts {
		opt(d)
	}

	if !initialScene.Initialize() {
		return nil, fmt.Errorf("initial scene %v failed to initialize", initialScene)
	}
	d.current = initialScene
	d.current.Resume()
	return d, nil
}

// Update polls input and advances the current scene.
// Implements ebiten.Game interface.
func (d *Director) Update() error {
	var events []event.Event
	if d.input != nil {
		events = d.input.Poll()
	}
	return d.Step(events)
}

// Step runs one frame with the given events.
// Events are dispatched in order until one of them switches scenes; the rest
// of the frame's events are dropped.
func (d *Director) Step(events []event.Event) error {
	if d.frame != nil {
		d.frame.Set(d.wall.Now())
	}
	d.syncFocus()

	if d.recorder != nil {
		d.recorder.RecordFrame(events)
	}

	for _, ev := range events {
		if next := d.current.Handle(ev); next != nil {
			d.switchTo(next)
			break
		}
	}

	next, err := d.current.Update(d.dt)
	if err != nil {
		return fmt.Errorf("%v: %w", d.current, err)
	}

	// Handle scene transition
	if next != nil {
		d.switchTo(next)
	}

	return nil
}

func (d *Director) syncFocus() {
	if d.focused == nil {
		return
	}
	focused := d.focused()
	switch {
	case d.active && !focused:
		log.Printf("[director] focus lost, suspending %v", d.current)
		d.current.Suspend()
	case !d.active && focused:
		log.Printf("[director] focus regained, resuming %v", d.current)
		d.current.Resume()
	}
	d.active = focused
}

// switchTo makes next the current scene. A scene that refuses to initialize
// leaves the current one in place.
func (d *Director) switchTo(next scene.Scene) {
	if next == d.current {
		return
	}
	if !next.Initialize() {
		log.Printf("[director] %v failed to initialize, staying on %v", next, d.current)
		return
	}
	log.Printf("[director] %v -> %v", d.current, next)

	d.current.Suspend()
	d.current = next
	if d.active {
		d.current.Resume()
	}
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (d *Director) Draw(screen *ebiten.Image) {
	d.Render(graphics.NewCanvas(screen, d.screenH))

	if d.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f  %v", ebiten.ActualTPS(), d.current), 8, 8)
	}
}

// Render draws the current scene on any canvas
func (d *Director) Render(c render.Canvas) {
	d.current.Render(c)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (d *Director) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(d.screenW), int(d.screenH)
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (d *Director) SetDT(dt float64) {
	d.dt = dt
}

// Current returns the running scene
func (d *Director) Current() scene.Scene {
	return d.current
}
