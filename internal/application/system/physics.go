package system

import (
	"github.com/younwookim/flycopter/internal/application/state"
	"github.com/younwookim/flycopter/internal/domain/entity"
	"github.com/younwookim/flycopter/internal/infrastructure/config"
)

// PhysicsSystem moves entities and applies the player control law
type PhysicsSystem struct {
	config *config.PlayerConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PlayerConfig) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// AdvanceStatic integrates the boundaries and the player
func (s *PhysicsSystem) AdvanceStatic(field *entity.Field, dt float64) {
	for _, b := range field.Statics() {
		b.Update(dt)
	}
}

// AdvanceObstacles integrates every obstacle in queue order. If any obstacle
// ends the frame at x <= 0 the oldest queued obstacle is dropped, at most
// once per frame. Returns the dropped obstacle or nil.
func (s *PhysicsSystem) AdvanceObstacles(field *entity.Field, dt float64) *entity.Obstacle {
	exited := false
	for _, o := range field.Obstacles() {
		o.Update(dt)
		if o.Exited() {
			exited = true
		}
	}
	if !exited {
		return nil
	}
	return field.DropOldest()
}

// ApplyControl sets the player vertical speed for the gameplay state.
// Flying ascends, releasing descends, game over stops. No smoothing.
func (s *PhysicsSystem) ApplyControl(player *entity.Player, gameplay state.Gameplay, flying bool) {
	switch gameplay {
	case state.GameplayPlaying:
		if flying {
			player.Speed.Y = s.config.FlySpeed
		} else {
			player.Speed.Y = s.config.FallSpeed
		}
	case state.GameplayGameOver:
		player.Speed.Y = 0
	}
}

// StartPlaying gives the player its initial descent
func (s *PhysicsSystem) StartPlaying(player *entity.Player) {
	player.Speed.Y = s.config.StartSpeed
}

// StartPosition returns where the player waits before a round
func (s *PhysicsSystem) StartPosition(canvas entity.Size) entity.Vec2 {
	return entity.Vec2{X: canvas.W * s.config.StartX, Y: canvas.H * s.config.StartY}
}
