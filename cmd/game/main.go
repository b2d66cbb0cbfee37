package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/flycopter/internal/application/game"
	"github.com/younwookim/flycopter/internal/application/replay"
	"github.com/younwookim/flycopter/internal/application/system"
	"github.com/younwookim/flycopter/internal/domain/entity"
	"github.com/younwookim/flycopter/internal/infrastructure/config"
	"github.com/younwookim/flycopter/internal/infrastructure/graphics"
)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Run a recorded session headless and print the final state")
	seedFlag := flag.Int64("seed", 0, "Obstacle RNG seed (0 picks one from the clock)")
	configFlag := flag.String("config", "", "Directory with game.yaml and assets.yaml (default: embedded)")
	debugFlag := flag.Bool("debug", false, "Show TPS and scene state")
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		result, err := runReplay(*replayFlag, cfg)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		fmt.Println(result)
		return
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Seed: %d", seed)

	display := cfg.Game.Display
	provider := graphics.NewFSProvider(os.DirFS("."), cfg.Assets.Root).
		WithFallback(graphics.NewPlaceholders(cfg.Assets))

	wall := clock.New()
	frame := game.FrameClock(wall)

	opts := []game.Option{
		game.WithFrameClock(frame, wall),
		game.WithInput(system.NewInputSystem(entity.Size{W: display.Width, H: display.Height})),
		game.WithFocus(ebiten.IsFocused),
		game.WithDebug(*debugFlag),
	}

	var recorder *replay.Recorder
	if *recordFlag != "" {
		recorder = replay.NewRecorder(seed, frame)
		opts = append(opts, game.WithRecorder(recorder))
		log.Printf("Recording to: %s", *recordFlag)
	}

	director, err := game.NewDirector(game.Setup{
		Config:   cfg.Game,
		Assets:   cfg.Assets,
		Provider: provider,
		Clock:    frame,
		Seed:     seed,
	}, opts...)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	// Set up ebiten
	ebiten.SetWindowSize(int(display.Width*display.WindowScale), int(display.Height*display.WindowScale))
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.TPS)
	director.SetDT(1.0 / float64(display.TPS))

	// Run game
	runErr := ebiten.RunGame(director)

	if recorder != nil {
		saveRecording(recorder, *recordFlag)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}

// loadConfig reads the configs from dir, or the embedded copies when dir is empty
func loadConfig(dir string) (*config.Config, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll()
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadAll()
}

// saveRecording saves the current recording to file
func saveRecording(r *replay.Recorder, filename string) {
	r.Stop()
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := r.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, r.FrameCount())
	}
}
