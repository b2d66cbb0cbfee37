package system

import (
	"errors"

	"github.com/younwookim/flycopter/internal/application/asset"
	"github.com/younwookim/flycopter/internal/application/render"
	"github.com/younwookim/flycopter/internal/domain/entity"
	"github.com/younwookim/flycopter/internal/infrastructure/config"
)

// scriptedRand returns queued values, then fallback
type scriptedRand struct {
	values   []int
	fallback int
	bounds   []int
}

func (r *scriptedRand) Intn(n int) int {
	r.bounds = append(r.bounds, n)
	if len(r.values) == 0 {
		return r.fallback
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

type sizedTexture struct{ w, h float64 }

func (t sizedTexture) Width() float64  { return t.w }
func (t sizedTexture) Height() float64 { return t.h }

// fakeProvider hands out contexts that fail on listed paths
type fakeProvider struct {
	unavailable bool
	fail        map[string]bool
	acquired    int
	released    int
	loads       []string
}

func (p *fakeProvider) Acquire() (asset.Context, bool) {
	if p.unavailable {
		return nil, false
	}
	p.acquired++
	return &fakeContext{p: p}, true
}

type fakeContext struct{ p *fakeProvider }

func (c *fakeContext) Load(path string) (render.Texture, error) {
	c.p.loads = append(c.p.loads, path)
	if c.p.fail[path] {
		return nil, errors.New("no such file")
	}
	return sizedTexture{w: 64, h: 32}, nil
}

func (c *fakeContext) Release() { c.p.released++ }

var (
	testCanvas = entity.Size{W: 1280, H: 720}
	copterSize = entity.Size{W: 96, H: 48}
)

func newTestField() *entity.Field {
	f := entity.NewField(testCanvas)
	f.Populate(copterSize)
	f.Player().Place(entity.Vec2{X: 256, Y: 360})
	return f
}

func obstacleConfig() *config.ObstacleConfig {
	cfg := config.Default().Obstacle
	return &cfg
}

func playerConfig() *config.PlayerConfig {
	cfg := config.Default().Player
	return &cfg
}
