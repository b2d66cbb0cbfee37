// Package graphics draws scenes with ebiten and loads their textures.
package graphics

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/flycopter/internal/application/render"
	"github.com/younwookim/flycopter/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG      = color.RGBA{26, 26, 46, 255}
	colorMissing = color.RGBA{255, 0, 255, 255}
)

// Texture is an ebiten image usable as a render.Texture
type Texture struct {
	img *ebiten.Image
}

var _ render.Texture = (*Texture)(nil)

// NewTexture wraps an image
func NewTexture(img *ebiten.Image) *Texture {
	return &Texture{img: img}
}

func (t *Texture) Width() float64  { return float64(t.img.Bounds().Dx()) }
func (t *Texture) Height() float64 { return float64(t.img.Bounds().Dy()) }

// Image returns the wrapped image
func (t *Texture) Image() *ebiten.Image {
	return t.img
}

// Canvas draws on an ebiten screen. Canvas coordinates have their origin at
// the bottom-left corner and are flipped to screen coordinates here.
type Canvas struct {
	screen *ebiten.Image
	height float64
	alpha  float32
}

var _ render.Canvas = (*Canvas)(nil)

// NewCanvas wraps the screen of one frame
func NewCanvas(screen *ebiten.Image, height float64) *Canvas {
	return &Canvas{screen: screen, height: height, alpha: 1}
}

// Clear fills the screen with the background and resets the opacity
func (c *Canvas) Clear() {
	c.screen.Fill(colorBG)
	c.alpha = 1
}

// SetOpacity sets the opacity of the following fills
func (c *Canvas) SetOpacity(alpha float64) {
	c.alpha = float32(clamp01(alpha))
}

// FillRectangle draws tex stretched over the box centered on center.
// Textures that are not ebiten images are drawn as a flat box.
func (c *Canvas) FillRectangle(center entity.Vec2, size entity.Size, tex render.Texture) {
	left, top := ScreenOrigin(center, size, c.height)

	t, ok := tex.(*Texture)
	if !ok || t == nil || t.img == nil {
		vector.DrawFilledRect(c.screen, float32(left), float32(top), float32(size.W), float32(size.H),
			fade(colorMissing, c.alpha), false)
		return
	}

	b := t.img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size.W/float64(b.Dx()), size.H/float64(b.Dy()))
	op.GeoM.Translate(left, top)
	op.ColorScale.ScaleAlpha(c.alpha)
	op.Filter = ebiten.FilterLinear
	c.screen.DrawImage(t.img, op)
}

// ScreenOrigin returns the top-left screen corner of a box given by its
// canvas center
func ScreenOrigin(center entity.Vec2, size entity.Size, height float64) (left, top float64) {
	return center.X - size.W/2, height - (center.Y + size.H/2)
}

func fade(c color.RGBA, alpha float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
