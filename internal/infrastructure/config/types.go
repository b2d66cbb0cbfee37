package config

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display  DisplayConfig  `yaml:"display"`
	Player   PlayerConfig   `yaml:"player"`
	Obstacle ObstacleConfig `yaml:"obstacle"`
	Loading  LoadingConfig  `yaml:"loading"`
	Pause    PauseConfig    `yaml:"pause"`
	HUD      HUDConfig      `yaml:"hud"`
	Intro    IntroConfig    `yaml:"intro"`
	Menu     MenuConfig     `yaml:"menu"`
}

type DisplayConfig struct {
	Width       float64 `yaml:"width"`       // Virtual canvas width
	Height      float64 `yaml:"height"`      // Virtual canvas height
	WindowScale float64 `yaml:"windowScale"` // Desktop window size relative to the canvas
	TPS         int     `yaml:"tps"`
	Title       string  `yaml:"title"`
}

type PlayerConfig struct {
	StartSpeed float64 `yaml:"startSpeed"` // Vertical speed applied when a round starts
	FlySpeed   float64 `yaml:"flySpeed"`   // Vertical speed while the touch is held
	FallSpeed  float64 `yaml:"fallSpeed"`  // Vertical speed while released
	StartX     float64 `yaml:"startX"`     // Fraction of the canvas width
	StartY     float64 `yaml:"startY"`     // Fraction of the canvas height
}

type ObstacleConfig struct {
	Width         float64 `yaml:"width"`
	MinHeight     int     `yaml:"minHeight"`
	HeightRange   int     `yaml:"heightRange"`   // Height is MinHeight + rand[0, HeightRange)
	Speed         float64 `yaml:"speed"`         // Horizontal speed, negative is leftward
	SpawnOdds     int     `yaml:"spawnOdds"`     // One spawn chance in SpawnOdds per frame
	SpawnInterval float64 `yaml:"spawnInterval"` // Minimum seconds between spawns
	Margin        int     `yaml:"margin"`        // Lowest spawn y
	Offset        float64 `yaml:"offset"`        // Spawn x beyond the right edge
}

type LoadingConfig struct {
	Dwell float64 `yaml:"dwell"` // Minimum seconds on the loading screen
}

type PauseConfig struct {
	ZoneWidth  float64 `yaml:"zoneWidth"`  // Hot-zone measured from the right edge
	ZoneHeight float64 `yaml:"zoneHeight"` // Hot-zone measured from the top edge
}

// Placement positions a texture by canvas fractions at a given scale
type Placement struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Scale float64 `yaml:"scale"`
}

type HUDConfig struct {
	Stop     Placement `yaml:"stop"`
	Logo     Placement `yaml:"logo"`
	Back     Placement `yaml:"back"`
	Continue Placement `yaml:"continue"`
	Loading  Placement `yaml:"loading"`
}

type IntroConfig struct {
	FadeIn  float64 `yaml:"fadeIn"`
	Hold    float64 `yaml:"hold"`
	FadeOut float64 `yaml:"fadeOut"`
}

type MenuConfig struct {
	Logo       Placement `yaml:"logo"`
	Help       Placement `yaml:"help"`
	OptionsTop float64   `yaml:"optionsTop"` // Fraction of the canvas height above which the options stack
}

// TextureConfig names one texture and the placeholder used when its file is absent
type TextureConfig struct {
	ID     string  `yaml:"id"`
	Path   string  `yaml:"path"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"` // #RRGGBB
}

// AssetsConfig is the root config for assets.yaml
type AssetsConfig struct {
	Root     string          `yaml:"root"`     // Directory holding the texture files
	Gameplay []TextureConfig `yaml:"gameplay"` // Loaded one per frame, the first is the loading screen
	UI       []TextureConfig `yaml:"ui"`       // Loaded together after the gameplay set
	Intro    []TextureConfig `yaml:"intro"`
	Menu     []TextureConfig `yaml:"menu"`
}

// All returns every texture in load order
func (a *AssetsConfig) All() []TextureConfig {
	all := make([]TextureConfig, 0, len(a.Gameplay)+len(a.UI)+len(a.Intro)+len(a.Menu))
	all = append(all, a.Intro...)
	all = append(all, a.Menu...)
	all = append(all, a.Gameplay...)
	all = append(all, a.UI...)
	return all
}
