package system

import (
	"github.com/younwookim/flycopter/internal/domain/entity"
	"github.com/younwookim/flycopter/internal/infrastructure/config"
)

// Rand is the random source used by the spawner. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Spawner creates obstacles at the right edge of the canvas
type Spawner struct {
	config *config.ObstacleConfig
	canvas entity.Size
	rng    Rand
}

// NewSpawner creates a new spawner
func NewSpawner(cfg *config.ObstacleConfig, canvas entity.Size, rng Rand) *Spawner {
	return &Spawner{
		config: cfg,
		canvas: canvas,
		rng:    rng,
	}
}

// Update rolls the spawn trigger once and, when it fires and more than the
// spawn interval has passed since the previous spawn, pushes a new obstacle.
// The caller resets its spawn timer when an obstacle is returned.
func (s *Spawner) Update(field *entity.Field, sinceLast, now float64) *entity.Obstacle {
	// Always draw, so the random sequence does not depend on the timer
	triggered := s.rng.Intn(s.config.SpawnOdds) == 0
	if !triggered || sinceLast <= s.config.SpawnInterval {
		return nil
	}

	o := s.newObstacle(now)
	field.PushObstacle(o)
	return o
}

func (s *Spawner) newObstacle(now float64) *entity.Obstacle {
	cfg := s.config
	y := s.rng.Intn(int(s.canvas.H)-cfg.Margin) + cfg.Margin
	h := s.rng.Intn(cfg.HeightRange) + cfg.MinHeight

	return &entity.Obstacle{
		Body: entity.Body{
			Anchor:   entity.AnchorCenter | entity.AnchorRight,
			Position: entity.Vec2{X: s.canvas.W + cfg.Offset, Y: float64(y)},
			Size:     entity.Size{W: cfg.Width, H: float64(h)},
			Speed:    entity.Vec2{X: cfg.Speed},
		},
		SpawnAt: now,
	}
}
