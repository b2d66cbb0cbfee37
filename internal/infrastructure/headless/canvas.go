package headless

import (
	"github.com/younwookim/flycopter/internal/application/render"
	"github.com/younwookim/flycopter/internal/domain/entity"
)

// Op identifies a recorded canvas call
type Op int

const (
	OpClear Op = iota
	OpOpacity
	OpFill
)

// Call is one recorded canvas call
type Call struct {
	Op      Op
	Center  entity.Vec2
	Size    entity.Size
	Texture render.Texture
	Opacity float64 // Opacity in effect for fills, the new value for OpOpacity
}

// Canvas records draw calls
type Canvas struct {
	Calls   []Call
	opacity float64
}

// NewCanvas creates an empty recording canvas
func NewCanvas() *Canvas {
	return &Canvas{opacity: 1}
}

func (c *Canvas) Clear() {
	c.opacity = 1
	c.Calls = append(c.Calls, Call{Op: OpClear, Opacity: 1})
}

func (c *Canvas) SetOpacity(alpha float64) {
	c.opacity = alpha
	c.Calls = append(c.Calls, Call{Op: OpOpacity, Opacity: alpha})
}

func (c *Canvas) FillRectangle(center entity.Vec2, size entity.Size, tex render.Texture) {
	c.Calls = append(c.Calls, Call{
		Op:      OpFill,
		Center:  center,
		Size:    size,
		Texture: tex,
		Opacity: c.opacity,
	})
}

// Fills returns the fill calls in order
func (c *Canvas) Fills() []Call {
	var fills []Call
	for _, call := range c.Calls {
		if call.Op == OpFill {
			fills = append(fills, call)
		}
	}
	return fills
}

// Paths returns the texture path of every fill in order
func (c *Canvas) Paths() []string {
	fills := c.Fills()
	paths := make([]string, len(fills))
	for i, f := range fills {
		if t, ok := f.Texture.(*Texture); ok {
			paths[i] = t.Path
		}
	}
	return paths
}

// Reset forgets every recorded call
func (c *Canvas) Reset() {
	c.Calls = c.Calls[:0]
	c.opacity = 1
}
