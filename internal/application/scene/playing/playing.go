// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/younwookim/flycopter/internal/application/asset"
	"github.com/younwookim/flycopter/internal/application/event"
	"github.com/younwookim/flycopter/internal/application/scene"
	"github.com/younwookim/flycopter/internal/application/state"
	"github.com/younwookim/flycopter/internal/application/system"
	"github.com/younwookim/flycopter/internal/application/timer"
	"github.com/younwookim/flycopter/internal/domain/entity"
	"github.com/younwookim/flycopter/internal/infrastructure/config"
)

// Texture identifiers used by the scene
const (
	texLoading  = "loading"
	texCopter   = "copter"
	texWall     = "wall"
	texBack     = "back"
	texLogo     = "logo"
	texStop     = "stop"
	texContinue = "continue"
)

// ErrUnknownState is returned by Update when the scene is in a state it has no handler for
var ErrUnknownState = errors.New("unknown scene state")

// Playing is the main gameplay scene
type Playing struct {
	env    scene.Env
	config *config.GameConfig
	canvas entity.Size

	state     state.SceneState
	gameplay  state.Gameplay
	suspended bool
	flying    bool
	err       error

	// Measures the loading dwell, then the time since the last spawn
	timer *timer.Timer
	epoch time.Time

	cache   *asset.Cache
	stager  *system.Stager
	field   *entity.Field
	physics *system.PhysicsSystem
	spawner *system.Spawner
	lastHit system.Hit
}

var _ scene.Scene = (*Playing)(nil)

// New creates a new Playing scene.
// rng drives obstacle placement; seed it for reproducible rounds.
func New(env scene.Env, rng system.Rand) *Playing {
	cfg := env.Config
	canvas := entity.Size{W: cfg.Display.Width, H: cfg.Display.Height}
	cache := asset.NewCache()
	tm := timer.New(env.Clock)

	p := &Playing{
		env:       env,
		config:    cfg,
		canvas:    canvas,
		state:     state.SceneLoading,
		gameplay:  state.GameplayUninitialized,
		suspended: true,
		timer:     tm,
		epoch:     tm.Now(),
		cache:     cache,
		stager: system.NewStager(env.Provider, cache,
			asset.SpecsFrom(env.Assets.Gameplay), asset.SpecsFrom(env.Assets.UI)),
		field:   entity.NewField(canvas),
		physics: system.NewPhysicsSystem(&cfg.Player),
		spawner: system.NewSpawner(&cfg.Obstacle, canvas, rng),
		lastHit: system.Hit{Kind: system.HitNone, Index: -1},
	}
	return p
}

// Initialize resets the scene to LOADING. Textures already loaded and the
// entity field are kept, so loading resumes where it stopped.
func (p *Playing) Initialize() bool {
	p.state = state.SceneLoading
	p.gameplay = state.GameplayUninitialized
	p.suspended = true
	p.flying = false
	p.err = nil
	p.timer.Reset()
	return true
}

// Suspend implements scene.Scene
func (p *Playing) Suspend() {
	p.suspended = true
}

// Resume implements scene.Scene
func (p *Playing) Resume() {
	p.suspended = false
}

// Handle processes one input event (implements scene.Scene)
func (p *Playing) Handle(ev event.Event) scene.Scene {
	switch p.state {
	case state.SceneRunning:
		return p.handleRunning(ev)
	case state.ScenePaused:
		p.state = state.SceneRunning
		log.Printf("[playing] resumed")
	}
	// Events are discarded while loading or after an error
	return nil
}

func (p *Playing) handleRunning(ev event.Event) scene.Scene {
	switch p.gameplay {
	case state.GameplayGameOver:
		if ev.Kind == event.TouchEnded {
			log.Printf("[playing] back to menu")
			return p.env.Scenes.New(scene.Menu)
		}

	case state.GameplayWaitingToStart:
		p.startPlaying()

	case state.GameplayPlaying:
		switch ev.Kind {
		case event.TouchStarted, event.TouchMoved:
			p.flying = true
		case event.TouchEnded:
			if p.inPauseZone(ev) {
				p.state = state.ScenePaused
				log.Printf("[playing] paused")
			} else {
				p.flying = false
			}
		}
	}
	return nil
}

// inPauseZone reports whether the event lies in the top-right pause corner
func (p *Playing) inPauseZone(ev event.Event) bool {
	if !ev.HasPos {
		return false
	}
	return ev.X > p.canvas.W-p.config.Pause.ZoneWidth &&
		ev.Y > p.canvas.H-p.config.Pause.ZoneHeight
}

// Update proceeds the scene state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if p.suspended {
		return nil, nil
	}

	switch p.state {
	case state.SceneLoading:
		p.updateLoading()
	case state.SceneRunning:
		if err := p.runSimulation(dt); err != nil {
			return nil, err
		}
	case state.ScenePaused, state.SceneError:
		// Frozen
	default:
		return nil, fmt.Errorf("%w: scene state %d", ErrUnknownState, int(p.state))
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updateLoading() {
	if !p.stager.Done() {
		if err := p.stager.Step(); err != nil {
			p.fail(err)
		}
		return
	}

	// Keep the loading screen up long enough to be seen
	if p.timer.ElapsedSeconds() > p.config.Loading.Dwell {
		if err := p.createSprites(); err != nil {
			p.fail(err)
			return
		}
		p.restartGame()
		p.state = state.SceneRunning
		log.Printf("[playing] running")
	}
}

func (p *Playing) fail(err error) {
	p.err = err
	p.state = state.SceneError
	log.Printf("[playing] %v", err)
}

func (p *Playing) createSprites() error {
	copter := p.cache.Get(texCopter)
	if copter == nil {
		return fmt.Errorf("%w: texture %q is not in the gameplay set", asset.ErrLoad, texCopter)
	}
	p.field.Populate(entity.Size{W: copter.Width(), H: copter.Height()})
	return nil
}

func (p *Playing) restartGame() {
	p.field.Player().Place(p.physics.StartPosition(p.canvas))
	p.field.ClearObstacles()
	p.flying = false
	p.lastHit = system.Hit{Kind: system.HitNone, Index: -1}
	p.timer.Reset()
	p.gameplay = state.GameplayWaitingToStart
}

func (p *Playing) startPlaying() {
	p.physics.StartPlaying(p.field.Player())
	p.gameplay = state.GameplayPlaying
	log.Printf("[playing] round started")
}

func (p *Playing) runSimulation(dt float64) error {
	p.physics.AdvanceStatic(p.field, dt)

	switch p.gameplay {
	case state.GameplayPlaying:
		now := p.timer.Now().Sub(p.epoch).Seconds()
		if o := p.spawner.Update(p.field, p.timer.ElapsedSeconds(), now); o != nil {
			p.timer.Reset()
		}
		p.physics.AdvanceObstacles(p.field, dt)

		if hit := system.CheckCollisions(p.field); hit.Collided() {
			p.lastHit = hit
			p.gameplay = state.GameplayGameOver
			log.Printf("[playing] game over: hit %s", hit.Kind)
		}
	case state.GameplayUninitialized, state.GameplayWaitingToStart, state.GameplayGameOver:
		// Obstacles stay still
	default:
		return fmt.Errorf("%w: gameplay state %d", ErrUnknownState, int(p.gameplay))
	}

	p.physics.ApplyControl(p.field.Player(), p.gameplay, p.flying)
	return nil
}

// State returns the top-level scene state
func (p *Playing) State() state.SceneState {
	return p.state
}

// Gameplay returns the gameplay state
func (p *Playing) Gameplay() state.Gameplay {
	return p.gameplay
}

// Flying reports whether the player is holding a touch
func (p *Playing) Flying() bool {
	return p.flying
}

// Suspended reports whether the scene is in the background
func (p *Playing) Suspended() bool {
	return p.suspended
}

// Err returns the asset failure that put the scene in the ERROR state
func (p *Playing) Err() error {
	return p.err
}

// Field returns the scene entities
func (p *Playing) Field() *entity.Field {
	return p.field
}

// LastHit returns what ended the last round
func (p *Playing) LastHit() system.Hit {
	return p.lastHit
}

// String describes the scene state for logs and replays
func (p *Playing) String() string {
	return fmt.Sprintf("Game %s/%s obstacles=%d", p.state, p.gameplay, p.field.ObstacleCount())
}
