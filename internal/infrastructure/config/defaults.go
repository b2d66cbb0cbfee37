package config

// Default returns the built-in game configuration
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			Width:       1280,
			Height:      720,
			WindowScale: 0.75,
			TPS:         60,
			Title:       "Fly the Copter",
		},
		Player: PlayerConfig{
			StartSpeed: -300,
			FlySpeed:   350,
			FallSpeed:  -300,
			StartX:     0.2,
			StartY:     0.5,
		},
		Obstacle: ObstacleConfig{
			Width:         75,
			MinHeight:     100,
			HeightRange:   200,
			Speed:         -400,
			SpawnOdds:     51,
			SpawnInterval: 0.75,
			Margin:        50,
			Offset:        75,
		},
		Loading: LoadingConfig{Dwell: 1.0},
		Pause:   PauseConfig{ZoneWidth: 200, ZoneHeight: 150},
		HUD: HUDConfig{
			Stop:     Placement{X: 0.9, Y: 0.85, Scale: 0.75},
			Logo:     Placement{X: 0.5, Y: 0.6, Scale: 0.9},
			Back:     Placement{X: 0.5, Y: 0.25, Scale: 1},
			Continue: Placement{X: 0.5, Y: 0.5, Scale: 1},
			Loading:  Placement{X: 0.5, Y: 0.5, Scale: 1},
		},
		Intro: IntroConfig{FadeIn: 1.0, Hold: 2.0, FadeOut: 0.5},
		Menu: MenuConfig{
			Logo:       Placement{X: 0.5, Y: 0.7, Scale: 1},
			Help:       Placement{X: 0.5, Y: 0.5, Scale: 1},
			OptionsTop: 0.05,
		},
	}
}

// DefaultAssets returns the built-in texture manifest
func DefaultAssets() *AssetsConfig {
	return &AssetsConfig{
		Root: "assets",
		Gameplay: []TextureConfig{
			{ID: "loading", Path: "game-scene/loading.png", Width: 400, Height: 120, Color: "#202030"},
			{ID: "copter", Path: "game-scene/copter.png", Width: 96, Height: 48, Color: "#64c864"},
			{ID: "wall", Path: "game-scene/wall.png", Width: 75, Height: 200, Color: "#505064"},
		},
		UI: []TextureConfig{
			{ID: "back", Path: "volverMenu.png", Width: 320, Height: 80, Color: "#c8c8c8"},
			{ID: "logo", Path: "CopterLogo.png", Width: 600, Height: 200, Color: "#ffd700"},
			{ID: "stop", Path: "pause.png", Width: 120, Height: 120, Color: "#c86464"},
			{ID: "continue", Path: "continuar.png", Width: 400, Height: 120, Color: "#64a0c8"},
		},
		Intro: []TextureConfig{
			{ID: "studio", Path: "EsneLogo.png", Width: 500, Height: 250, Color: "#e0e0e0"},
			{ID: "logo", Path: "CopterLogo.png", Width: 600, Height: 200, Color: "#ffd700"},
		},
		Menu: []TextureConfig{
			{ID: "play", Path: "PlayButton.png", Width: 240, Height: 80, Color: "#64c864"},
			{ID: "logo", Path: "CopterLogo.png", Width: 600, Height: 200, Color: "#ffd700"},
			{ID: "help", Path: "ayuda.png", Width: 240, Height: 80, Color: "#64a0c8"},
			{ID: "helpText", Path: "texto.png", Width: 900, Height: 500, Color: "#303040"},
		},
	}
}
