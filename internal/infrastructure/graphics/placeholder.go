package graphics

import (
	"fmt"
	"image/color"
	"io/fs"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/flycopter/internal/application/asset"
	"github.com/younwookim/flycopter/internal/application/render"
	"github.com/younwookim/flycopter/internal/infrastructure/config"
)

var colorOutline = color.RGBA{255, 255, 255, 160}

// Placeholders draws flat labelled textures from the sizes and colors of the
// asset manifest, for running without image files.
type Placeholders struct {
	entries map[string]config.TextureConfig
	made    map[string]*Texture
}

var _ asset.Provider = (*Placeholders)(nil)

// NewPlaceholders indexes every texture of the manifest by path
func NewPlaceholders(assets *config.AssetsConfig) *Placeholders {
	p := &Placeholders{
		entries: make(map[string]config.TextureConfig),
		made:    make(map[string]*Texture),
	}
	for _, t := range assets.All() {
		p.entries[t.Path] = t
	}
	return p
}

// Acquire implements asset.Provider
func (p *Placeholders) Acquire() (asset.Context, bool) {
	return placeholderContext{p: p}, true
}

type placeholderContext struct {
	p *Placeholders
}

func (c placeholderContext) Load(name string) (render.Texture, error) {
	return c.p.load(name)
}

func (c placeholderContext) Release() {}

func (p *Placeholders) load(name string) (*Texture, error) {
	if t, ok := p.made[name]; ok {
		return t, nil
	}
	entry, ok := p.entries[name]
	if !ok {
		return nil, &fs.PathError{Op: "placeholder", Path: name, Err: fs.ErrNotExist}
	}
	fill, err := ParseColor(entry.Color)
	if err != nil {
		return nil, fmt.Errorf("placeholder %s: %w", name, err)
	}

	w, h := int(entry.Width), int(entry.Height)
	img := ebiten.NewImage(w, h)
	img.Fill(fill)
	vector.StrokeRect(img, 1, 1, float32(w-2), float32(h-2), 2, colorOutline, false)
	ebitenutil.DebugPrintAt(img, entry.ID, 4, 4)

	t := NewTexture(img)
	p.made[name] = t
	return t, nil
}

// ParseColor parses a "#RRGGBB" color
func ParseColor(hex string) (color.RGBA, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid color %q", hex)
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
