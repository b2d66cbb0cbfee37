package system

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/flycopter/internal/domain/entity"
)

var _ Rand = (*rand.Rand)(nil)

func TestSpawner_SpawnsAfterInterval(t *testing.T) {
	rng := &scriptedRand{values: []int{0, 310, 50}}
	field := newTestField()
	s := NewSpawner(obstacleConfig(), testCanvas, rng)

	o := s.Update(field, 0.76, 12.5)

	require.NotNil(t, o)
	assert.Equal(t, 1, field.ObstacleCount())
	assert.Same(t, o, field.Obstacles()[0])
	assert.Equal(t, 1355.0, o.Position.X)
	assert.Equal(t, 360.0, o.Position.Y)
	assert.Equal(t, 75.0, o.Size.W)
	assert.Equal(t, 150.0, o.Size.H)
	assert.Equal(t, entity.Vec2{X: -400}, o.Speed)
	assert.Equal(t, entity.AnchorCenter|entity.AnchorRight, o.Anchor)
	assert.Equal(t, 12.5, o.SpawnAt)
	assert.Equal(t, []int{51, 670, 200}, rng.bounds)
}

func TestSpawner_Gates(t *testing.T) {
	tests := []struct {
		name      string
		draw      int
		sinceLast float64
		want      bool
	}{
		{"trigger and interval passed", 0, 0.76, true},
		{"trigger at exact interval", 0, 0.75, false},
		{"trigger before interval", 0, 0.2, false},
		{"no trigger", 7, 5.0, false},
		{"highest draw", 50, 5.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &scriptedRand{values: []int{tt.draw}}
			field := newTestField()
			s := NewSpawner(obstacleConfig(), testCanvas, rng)

			o := s.Update(field, tt.sinceLast, 0)

			assert.Equal(t, tt.want, o != nil)
			assert.Equal(t, tt.want, field.ObstacleCount() == 1)
			assert.Equal(t, 51, rng.bounds[0], "trigger is drawn every frame")
		})
	}
}

func TestSpawner_RangeLimits(t *testing.T) {
	tests := []struct {
		name  string
		draws []int
		wantY float64
		wantH float64
	}{
		{"lowest", []int{0, 0, 0}, 50, 100},
		{"highest", []int{0, 669, 199}, 719, 299},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := newTestField()
			s := NewSpawner(obstacleConfig(), testCanvas, &scriptedRand{values: tt.draws})

			o := s.Update(field, 1, 0)

			require.NotNil(t, o)
			assert.Equal(t, tt.wantY, o.Position.Y)
			assert.Equal(t, tt.wantH, o.Size.H)
		})
	}
}

func TestSpawner_MinimumIntervalHolds(t *testing.T) {
	const (
		frames = 10000
		dt     = 1.0 / 60.0
	)

	field := newTestField()
	s := NewSpawner(obstacleConfig(), testCanvas, &scriptedRand{fallback: 0})

	var spawns []float64
	sinceLast := 0.0
	for i := 0; i < frames; i++ {
		now := float64(i) * dt
		sinceLast += dt
		if o := s.Update(field, sinceLast, now); o != nil {
			spawns = append(spawns, now)
			sinceLast = 0
		}
	}

	require.Greater(t, len(spawns), 100)
	for i := 1; i < len(spawns); i++ {
		assert.GreaterOrEqual(t, spawns[i]-spawns[i-1], 0.75-1e-9, "spawn %d", i)
	}
}

func TestSpawner_SeededSourceIsDeterministic(t *testing.T) {
	run := func() []float64 {
		field := newTestField()
		s := NewSpawner(obstacleConfig(), testCanvas, rand.New(rand.NewSource(42)))
		var ys []float64
		for i := 0; i < 2000; i++ {
			if o := s.Update(field, 1, 0); o != nil {
				ys = append(ys, o.Position.Y)
			}
		}
		return ys
	}

	first := run()
	assert.NotEmpty(t, first)
	assert.Equal(t, first, run())
}
