package game

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/flycopter/internal/application/event"
	"github.com/younwookim/flycopter/internal/application/render"
	"github.com/younwookim/flycopter/internal/application/replay"
	"github.com/younwookim/flycopter/internal/application/scene"
	"github.com/younwookim/flycopter/internal/application/scene/intro"
	"github.com/younwookim/flycopter/internal/application/scene/menu"
	"github.com/younwookim/flycopter/internal/application/scene/playing"
	"github.com/younwookim/flycopter/internal/application/state"
	"github.com/younwookim/flycopter/internal/infrastructure/config"
	"github.com/younwookim/flycopter/internal/infrastructure/headless"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	name           string
	initFails      bool
	initCalled     int
	suspendCalled  int
	resumeCalled   int
	updateCalled   int
	renderCalled   int
	handled        []event.Event
	switchOnHandle scene.Scene
	nextScene      scene.Scene
	updateErr      error
}

func (m *mockScene) Initialize() bool {
	m.initCalled++
	return !m.initFails
}

func (m *mockScene) Suspend() { m.suspendCalled++ }
func (m *mockScene) Resume()  { m.resumeCalled++ }

func (m *mockScene) Handle(ev event.Event) scene.Scene {
	m.handled = append(m.handled, ev)
	return m.switchOnHandle
}

func (m *mockScene) Update(dt float64) (scene.Scene, error) {
	m.updateCalled++
	return m.nextScene, m.updateErr
}

func (m *mockScene) Render(c render.Canvas) {
	m.renderCalled++
}

func (m *mockScene) String() string { return m.name }

type fixedInput struct {
	events []event.Event
}

func (f *fixedInput) Poll() []event.Event { return f.events }

func newDirector(t *testing.T, initial scene.Scene, opts ...Option) *Director {
	t.Helper()
	d, err := New(initial, 1280, 720, opts...)
	require.NoError(t, err)
	return d
}

func TestNew(t *testing.T) {
	mockInitial := &mockScene{}
	d := newDirector(t, mockInitial)

	assert.NotNil(t, d)
	assert.Equal(t, 1, mockInitial.initCalled, "Initialize should be called on initial scene")
	assert.Equal(t, 1, mockInitial.resumeCalled, "initial scene should be resumed")
}

func TestNew_InitialSceneFails(t *testing.T) {
	_, err := New(&mockScene{name: "broken", initFails: true}, 1280, 720)
	assert.ErrorContains(t, err, "broken")
}

func TestDirector_Update_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	d := newDirector(t, mockInitial)

	err := d.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, mockInitial.updateCalled, "Update should delegate to current scene")
	assert.Empty(t, mockInitial.handled, "no input source means no events")
}

func TestDirector_Render_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	d := newDirector(t, mockInitial)

	d.Render(headless.NewCanvas())

	assert.Equal(t, 1, mockInitial.renderCalled, "Render should delegate to current scene")
}

func TestDirector_Layout(t *testing.T) {
	d := newDirector(t, &mockScene{})

	w, h := d.Layout(640, 480)
	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, h)
}

func TestDirector_SceneTransition(t *testing.T) {
	scene1 := &mockScene{name: "one"}
	scene2 := &mockScene{name: "two"}

	// scene1 will transition to scene2 on first update
	scene1.nextScene = scene2

	d := newDirector(t, scene1)

	// First update triggers transition
	err := d.Update()
	assert.NoError(t, err)

	assert.Equal(t, 1, scene1.updateCalled, "scene1 Update called")
	assert.Equal(t, 1, scene1.suspendCalled, "scene1 suspended on transition")
	assert.Equal(t, 1, scene2.initCalled, "scene2 initialized on transition")
	assert.Equal(t, 1, scene2.resumeCalled, "scene2 resumed on transition")
	assert.Same(t, scene2, d.Current())

	// Second update goes to scene2
	err = d.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, scene2.updateCalled, "scene2 Update called")
}

func TestDirector_NoTransitionWhenNil(t *testing.T) {
	scene1 := &mockScene{nextScene: nil} // Returns nil, no transition

	d := newDirector(t, scene1)

	// Multiple updates, no transition
	for i := 0; i < 5; i++ {
		err := d.Update()
		assert.NoError(t, err)
	}

	assert.Equal(t, 5, scene1.updateCalled, "All updates go to scene1")
	assert.Equal(t, 0, scene1.suspendCalled, "No Suspend when no transition")
}

func TestDirector_TransitionRefused(t *testing.T) {
	scene2 := &mockScene{initFails: true}
	scene1 := &mockScene{nextScene: scene2}
	d := newDirector(t, scene1)

	require.NoError(t, d.Update())

	assert.Same(t, scene1, d.Current())
	assert.Equal(t, 0, scene1.suspendCalled)
	assert.Equal(t, 0, scene2.resumeCalled)
}

func TestDirector_UpdateError(t *testing.T) {
	scene1 := &mockScene{updateErr: assert.AnError}

	d := newDirector(t, scene1)

	err := d.Update()
	assert.ErrorIs(t, err, assert.AnError, "Error should propagate from scene")
}

func TestDirector_EventsStopAtSwitch(t *testing.T) {
	scene2 := &mockScene{}
	scene1 := &mockScene{switchOnHandle: scene2}
	input := &fixedInput{events: []event.Event{
		event.At(event.TouchStarted, 1, 2),
		event.At(event.TouchEnded, 1, 2),
	}}
	d := newDirector(t, scene1, WithInput(input))

	require.NoError(t, d.Update())

	assert.Len(t, scene1.handled, 1, "events after the switch are dropped")
	assert.Empty(t, scene2.handled)
	assert.Equal(t, 0, scene1.updateCalled)
	assert.Equal(t, 1, scene2.updateCalled, "the new scene runs the frame's update")
}

func TestDirector_FocusSuspendsAndResumes(t *testing.T) {
	focused := true
	scene1 := &mockScene{}
	d := newDirector(t, scene1, WithFocus(func() bool { return focused }))

	require.NoError(t, d.Update())
	assert.Equal(t, 0, scene1.suspendCalled)

	focused = false
	require.NoError(t, d.Update())
	require.NoError(t, d.Update())
	assert.Equal(t, 1, scene1.suspendCalled, "suspend once per focus loss")

	focused = true
	require.NoError(t, d.Update())
	assert.Equal(t, 2, scene1.resumeCalled, "resumed at start and on focus regain")
}

func TestDirector_SwitchWhileUnfocusedStaysSuspended(t *testing.T) {
	scene2 := &mockScene{}
	scene1 := &mockScene{nextScene: scene2}
	d := newDirector(t, scene1, WithFocus(func() bool { return false }))

	require.NoError(t, d.Update())

	assert.Same(t, scene2, d.Current())
	assert.Equal(t, 0, scene2.resumeCalled)
}

func TestDirector_RecordsFrames(t *testing.T) {
	clk := clock.NewMock()
	rec := replay.NewRecorder(7, clk)
	input := &fixedInput{events: []event.Event{event.At(event.TouchMoved, 3, 4)}}
	d := newDirector(t, &mockScene{}, WithInput(input), WithRecorder(rec))

	clk.Add(16 * time.Millisecond)
	require.NoError(t, d.Update())
	clk.Add(16 * time.Millisecond)
	require.NoError(t, d.Update())

	data := rec.GetData()
	require.Len(t, data.Frames, 2)
	assert.InDelta(t, 0.016, data.Frames[1].T, 1e-9)
	assert.Equal(t, []event.Event{event.At(event.TouchMoved, 3, 4)}, replay.DecodeEvents(data.Frames[1].E))
}

func TestScenes_BuildsOnce(t *testing.T) {
	reg := NewScenes(Setup{
		Config:   config.Default(),
		Assets:   config.DefaultAssets(),
		Provider: headless.NewProvider(config.DefaultAssets()),
		Clock:    clock.NewMock(),
		Seed:     1,
	})

	assert.IsType(t, &intro.Intro{}, reg.New(scene.Intro))
	assert.IsType(t, &menu.Menu{}, reg.New(scene.Menu))
	assert.IsType(t, &playing.Playing{}, reg.New(scene.Game))
	assert.Same(t, reg.New(scene.Game), reg.New(scene.Game))
	assert.Nil(t, reg.New(scene.ID(42)))
}

// TestDirector_IntroToRound walks the whole flow on headless collaborators:
// the intro plays out, the menu starts a round, and a touch starts the copter.
func TestDirector_IntroToRound(t *testing.T) {
	clk := clock.NewMock()
	assets := config.DefaultAssets()
	d, err := NewDirector(Setup{
		Config:   config.Default(),
		Assets:   assets,
		Provider: headless.NewProvider(assets),
		Clock:    clk,
		Seed:     1,
	})
	require.NoError(t, err)

	step := func(events ...event.Event) {
		clk.Add(100 * time.Millisecond)
		require.NoError(t, d.Step(events))
	}

	for i := 0; i < 100; i++ {
		if _, ok := d.Current().(*menu.Menu); ok {
			break
		}
		step()
	}
	m, ok := d.Current().(*menu.Menu)
	require.True(t, ok, "intro should hand over to the menu, got %v", d.Current())

	step()
	require.Equal(t, menu.PhaseReady, m.Phase())

	play := m.OptionCenter(menu.OptionPlay)
	step(event.At(event.TouchEnded, play.X, play.Y))
	p, ok := d.Current().(*playing.Playing)
	require.True(t, ok)

	for i := 0; i < 20; i++ {
		step()
	}
	require.Equal(t, state.SceneRunning, p.State())
	require.Equal(t, state.GameplayWaitingToStart, p.Gameplay())

	step(event.At(event.TouchStarted, 640, 360))
	require.Equal(t, state.GameplayPlaying, p.Gameplay())
	assert.False(t, p.Flying(), "the starting touch only starts the round")

	step(event.At(event.TouchMoved, 640, 360))
	assert.True(t, p.Flying())

	canvas := headless.NewCanvas()
	d.Render(canvas)
	assert.Contains(t, canvas.Paths(), "game-scene/copter.png")
}

// clockScene does some work on the wall clock during Update and notes the
// frame time it sees before and after.
type clockScene struct {
	mockScene
	frame clock.Clock
	wall  *clock.Mock
	seen  [][2]time.Time
}

func (c *clockScene) Update(dt float64) (scene.Scene, error) {
	before := c.frame.Now()
	c.wall.Add(5 * time.Millisecond)
	c.seen = append(c.seen, [2]time.Time{before, c.frame.Now()})
	return nil, nil
}

func TestDirector_FrameClockMatchesRecording(t *testing.T) {
	wall := clock.NewMock()
	frame := FrameClock(wall)
	start := frame.Now()
	rec := replay.NewRecorder(1, frame)
	sc := &clockScene{frame: frame, wall: wall}
	d := newDirector(t, sc, WithFrameClock(frame, wall), WithRecorder(rec))

	for i := 0; i < 3; i++ {
		wall.Add(16 * time.Millisecond)
		require.NoError(t, d.Step(nil))
	}

	// Replaying the recorded durations lands on the instants the scene saw
	replayed := start
	for i, f := range rec.GetData().Frames {
		replayed = replayed.Add(time.Duration(f.T * float64(time.Second)).Round(time.Microsecond))
		assert.Equal(t, sc.seen[i][0], sc.seen[i][1], "frame time is fixed within a step")
		assert.Equal(t, replayed, sc.seen[i][0])
	}
	assert.Equal(t, start.Add(16*time.Millisecond), sc.seen[0][0])
	assert.Equal(t, start.Add(37*time.Millisecond), sc.seen[1][0])
}
