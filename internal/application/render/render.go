// Package render defines the drawing surface scenes render onto.
//
// Scenes only issue draw requests; rasterization belongs to the Canvas
// implementation (ebiten in the game binary, a recorder in tests).
package render

import "github.com/younwookim/flycopter/internal/domain/entity"

// Texture is a loaded image. Scenes borrow textures from the asset cache and
// never keep them past the scene lifetime.
type Texture interface {
	Width() float64
	Height() float64
}

// Canvas is the virtual 1280x720 drawing surface (origin bottom-left)
type Canvas interface {
	// Clear wipes the surface and resets the opacity to 1.
	Clear()

	// SetOpacity sets the alpha applied to subsequent fills (0..1).
	SetOpacity(alpha float64)

	// FillRectangle draws tex stretched over a box centered at center.
	FillRectangle(center entity.Vec2, size entity.Size, tex Texture)
}

// TextureSize returns the natural size of tex scaled by factor
func TextureSize(tex Texture, factor float64) entity.Size {
	return entity.Size{W: tex.Width() * factor, H: tex.Height() * factor}
}

// FillBody draws tex over the bounds of a body
func FillBody(c Canvas, b *entity.Body, tex Texture) {
	r := b.Bounds()
	c.FillRectangle(r.Center(), r.Size(), tex)
}
