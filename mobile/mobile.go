//go:build mobile

// Package mobile is the ebitenmobile binding entry point.
//
// Built only with -tags mobile:
//
//	ebitenmobile bind -target android -tags mobile -javapkg com.flycopter -o build/flycopter.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/Flycopter.xcframework ./mobile
package mobile

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/younwookim/flycopter/internal/application/game"
	"github.com/younwookim/flycopter/internal/application/system"
	"github.com/younwookim/flycopter/internal/domain/entity"
	"github.com/younwookim/flycopter/internal/infrastructure/config"
	"github.com/younwookim/flycopter/internal/infrastructure/graphics"
)

func init() {
	cfg, assets := config.Default(), config.DefaultAssets()
	display := cfg.Display

	director, err := game.NewDirector(game.Setup{
		Config:   cfg,
		Assets:   assets,
		Provider: graphics.NewPlaceholders(assets),
		Seed:     time.Now().UnixNano(),
	},
		game.WithInput(system.NewInputSystem(entity.Size{W: display.Width, H: display.Height})),
		game.WithFocus(ebiten.IsFocused),
	)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	mobile.SetGame(director)
}

// Dummy is a dummy exported function.
//
// gomobile doesn't compile a package that doesn't include any exported function.
// Dummy forces gomobile to compile this package.
func Dummy() {}
