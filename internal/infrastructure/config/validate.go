package config

import (
	"fmt"
	"regexp"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks the game configuration for values the scenes cannot run with
func (c *GameConfig) Validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display size must be positive, got %vx%v", c.Display.Width, c.Display.Height)
	}
	if c.Display.TPS <= 0 {
		return fmt.Errorf("display.tps must be positive, got %d", c.Display.TPS)
	}
	if c.Display.WindowScale <= 0 {
		return fmt.Errorf("display.windowScale must be positive, got %v", c.Display.WindowScale)
	}

	o := c.Obstacle
	if o.Width <= 0 {
		return fmt.Errorf("obstacle.width must be positive, got %v", o.Width)
	}
	if o.MinHeight <= 0 || o.HeightRange <= 0 {
		return fmt.Errorf("obstacle height must be positive, got min %d range %d", o.MinHeight, o.HeightRange)
	}
	if o.SpawnOdds < 1 {
		return fmt.Errorf("obstacle.spawnOdds must be >= 1, got %d", o.SpawnOdds)
	}
	if o.SpawnInterval < 0 {
		return fmt.Errorf("obstacle.spawnInterval must be >= 0, got %v", o.SpawnInterval)
	}
	// Spawn rows are drawn from [margin, int(height))
	if o.Margin < 0 || o.Margin >= int(c.Display.Height) {
		return fmt.Errorf("obstacle.margin must be within the canvas height, got %d", o.Margin)
	}

	if c.Loading.Dwell < 0 {
		return fmt.Errorf("loading.dwell must be >= 0, got %v", c.Loading.Dwell)
	}
	if c.Pause.ZoneWidth <= 0 || c.Pause.ZoneHeight <= 0 {
		return fmt.Errorf("pause zone must be positive, got %vx%v", c.Pause.ZoneWidth, c.Pause.ZoneHeight)
	}
	if c.Intro.FadeIn <= 0 || c.Intro.FadeOut <= 0 || c.Intro.Hold < 0 {
		return fmt.Errorf("intro timings must be positive, got %+v", c.Intro)
	}
	return nil
}

// Validate checks the texture manifest
func (a *AssetsConfig) Validate() error {
	if len(a.Gameplay) == 0 {
		return fmt.Errorf("gameplay textures cannot be empty")
	}
	groups := map[string][]TextureConfig{
		"gameplay": a.Gameplay,
		"ui":       a.UI,
		"intro":    a.Intro,
		"menu":     a.Menu,
	}
	for name, group := range groups {
		seen := make(map[string]bool, len(group))
		for i, t := range group {
			if err := t.validate(); err != nil {
				return fmt.Errorf("%s[%d]: %w", name, i, err)
			}
			if seen[t.ID] {
				return fmt.Errorf("%s: duplicate texture id %q", name, t.ID)
			}
			seen[t.ID] = true
		}
	}
	return nil
}

func (t TextureConfig) validate() error {
	if t.ID == "" || t.Path == "" {
		return fmt.Errorf("texture id and path cannot be empty")
	}
	if t.Width <= 0 || t.Height <= 0 {
		return fmt.Errorf("texture %s size must be positive, got %vx%v", t.ID, t.Width, t.Height)
	}
	if t.Color != "" && !hexColor.MatchString(t.Color) {
		return fmt.Errorf("texture %s color must be #RRGGBB, got %q", t.ID, t.Color)
	}
	return nil
}
