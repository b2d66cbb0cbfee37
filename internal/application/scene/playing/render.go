package playing

import (
	"github.com/younwookim/flycopter/internal/application/render"
	"github.com/younwookim/flycopter/internal/application/state"
	"github.com/younwookim/flycopter/internal/domain/entity"
	"github.com/younwookim/flycopter/internal/infrastructure/config"
)

// Render draws the scene (implements scene.Scene)
func (p *Playing) Render(c render.Canvas) {
	if p.suspended {
		return
	}

	c.Clear()

	switch p.state {
	case state.SceneLoading:
		p.drawAt(c, texLoading, p.config.HUD.Loading)
	case state.SceneRunning:
		p.renderPlayfield(c)
	case state.ScenePaused:
		p.drawAt(c, texContinue, p.config.HUD.Continue)
	case state.SceneError:
		// Nothing beyond the clear
	}
}

func (p *Playing) renderPlayfield(c render.Canvas) {
	wall := p.cache.Get(texWall)
	copter := p.cache.Get(texCopter)

	if wall != nil {
		render.FillBody(c, &p.field.Top().Body, wall)
		render.FillBody(c, &p.field.Bottom().Body, wall)
	}
	if copter != nil {
		render.FillBody(c, &p.field.Player().Body, copter)
	}
	if wall != nil {
		for _, o := range p.field.Obstacles() {
			render.FillBody(c, &o.Body, wall)
		}
	}

	switch p.gameplay {
	case state.GameplayPlaying:
		p.drawAt(c, texStop, p.config.HUD.Stop)
	case state.GameplayGameOver:
		p.drawAt(c, texLogo, p.config.HUD.Logo)
		p.drawAt(c, texBack, p.config.HUD.Back)
	}
}

// drawAt draws a cached texture centered at a canvas fraction, skipping it if not loaded
func (p *Playing) drawAt(c render.Canvas, id string, at config.Placement) {
	tex := p.cache.Get(id)
	if tex == nil {
		return
	}
	center := entity.Vec2{X: p.canvas.W * at.X, Y: p.canvas.H * at.Y}
	c.FillRectangle(center, render.TextureSize(tex, at.Scale), tex)
}
