package entity

// EntityID is a unique identifier for an entity (never recycled within a field)
type EntityID uint32

// Vec2 is a point or velocity in virtual canvas units.
// The canvas origin is the bottom-left corner and Y grows upward.
type Vec2 struct {
	X, Y float64
}

// Size is a width/height pair in virtual canvas units
type Size struct {
	W, H float64
}

// Anchor selects which point of a box its position refers to.
// Horizontal and vertical flags combine with |; the zero value is the center.
type Anchor uint8

const (
	AnchorCenter Anchor = 0
	AnchorLeft   Anchor = 1 << iota
	AnchorRight
	AnchorTop
	AnchorBottom
)

// Rect is an axis-aligned box in canvas coordinates (Bottom < Top)
type Rect struct {
	Left, Bottom, Right, Top float64
}

// Intersects reports whether the two boxes overlap.
// Edges that touch count as overlapping.
func (r Rect) Intersects(o Rect) bool {
	return r.Left <= o.Right && o.Left <= r.Right &&
		r.Bottom <= o.Top && o.Bottom <= r.Top
}

// Center returns the middle point of the box
func (r Rect) Center() Vec2 {
	return Vec2{X: (r.Left + r.Right) / 2, Y: (r.Bottom + r.Top) / 2}
}

// Size returns the box dimensions
func (r Rect) Size() Size {
	return Size{W: r.Right - r.Left, H: r.Top - r.Bottom}
}
