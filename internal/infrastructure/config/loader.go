package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all loaded configurations
type Config struct {
	Game   *GameConfig
	Assets *AssetsConfig
}

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.yaml on top of the defaults
func (l *Loader) LoadGame() (*GameConfig, error) {
	cfg := Default()
	if err := l.decode("game.yaml", cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game.yaml: %w", err)
	}
	return cfg, nil
}

// LoadAssets loads assets.yaml. Lists in the file replace the default lists.
func (l *Loader) LoadAssets() (*AssetsConfig, error) {
	cfg := DefaultAssets()
	if err := l.decode("assets.yaml", cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid assets.yaml: %w", err)
	}
	return cfg, nil
}

// LoadAll loads all configurations (game, assets)
func (l *Loader) LoadAll() (*Config, error) {
	game, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	assets, err := l.LoadAssets()
	if err != nil {
		return nil, err
	}

	return &Config{
		Game:   game,
		Assets: assets,
	}, nil
}

func (l *Loader) decode(name string, out any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
