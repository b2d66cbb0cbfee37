package main

import (
	"fmt"

	"github.com/benbjohnson/clock"

	"github.com/younwookim/flycopter/internal/application/game"
	"github.com/younwookim/flycopter/internal/application/replay"
	"github.com/younwookim/flycopter/internal/infrastructure/config"
	"github.com/younwookim/flycopter/internal/infrastructure/headless"
)

// replayResult is the state reached at the end of a replay
type replayResult struct {
	Frames int
	Scene  string
}

func (r replayResult) String() string {
	return fmt.Sprintf("replayed %d frames, final scene: %s", r.Frames, r.Scene)
}

// runReplay loads a recording and plays it back headless
func runReplay(filename string, cfg *config.Config) (replayResult, error) {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return replayResult{}, err
	}
	return playBack(*data, cfg)
}

// playBack feeds every recorded frame to a director running on headless
// textures. The mock clock advances by each frame's recorded duration, so
// timers see the same time as during recording.
func playBack(data replay.ReplayData, cfg *config.Config) (replayResult, error) {
	clk := clock.NewMock()
	r := replay.NewReplayer(data)

	director, err := game.NewDirector(game.Setup{
		Config:   cfg.Game,
		Assets:   cfg.Assets,
		Provider: headless.NewProvider(cfg.Assets),
		Clock:    clk,
		Seed:     r.Seed(),
	})
	if err != nil {
		return replayResult{}, err
	}
	director.SetDT(1.0 / float64(cfg.Game.Display.TPS))

	canvas := headless.NewCanvas()
	for {
		frame, ok := r.Next()
		if !ok {
			break
		}
		clk.Add(frame.Elapsed)
		if err := director.Step(frame.Events); err != nil {
			return replayResult{}, fmt.Errorf("frame %d: %w", frame.Index, err)
		}
		canvas.Reset()
		director.Render(canvas)
	}

	return replayResult{
		Frames: r.CurrentFrame(),
		Scene:  fmt.Sprint(director.Current()),
	}, nil
}
