package entity

// Body represents the physical body of an entity.
// Position refers to the point selected by Anchor; speed is in units per second.
type Body struct {
	Anchor   Anchor
	Position Vec2
	Size     Size
	Speed    Vec2
}

// Update integrates the position over dt seconds
func (b *Body) Update(dt float64) {
	b.Position.X += b.Speed.X * dt
	b.Position.Y += b.Speed.Y * dt
}

// Bounds returns the body box in canvas coordinates
func (b *Body) Bounds() Rect {
	var left, bottom float64

	switch {
	case b.Anchor&AnchorLeft != 0:
		left = b.Position.X
	case b.Anchor&AnchorRight != 0:
		left = b.Position.X - b.Size.W
	default:
		left = b.Position.X - b.Size.W/2
	}

	switch {
	case b.Anchor&AnchorBottom != 0:
		bottom = b.Position.Y
	case b.Anchor&AnchorTop != 0:
		bottom = b.Position.Y - b.Size.H
	default:
		bottom = b.Position.Y - b.Size.H/2
	}

	return Rect{Left: left, Bottom: bottom, Right: left + b.Size.W, Top: bottom + b.Size.H}
}

// Intersects reports whether the two bodies overlap
func (b *Body) Intersects(o *Body) bool {
	return b.Bounds().Intersects(o.Bounds())
}

// Player represents the copter controlled by the user.
// Its horizontal position never changes once placed.
type Player struct {
	Body
}

// Place puts the player at the given point and stops it
func (p *Player) Place(at Vec2) {
	p.Position = at
	p.Speed = Vec2{}
}

// Side identifies a boundary bar
type Side int

const (
	SideTop Side = iota
	SideBottom
)

// Boundary is a static bar along the top or bottom edge of the canvas
type Boundary struct {
	Body
	Side Side
}

// NewBoundary creates a bar spanning the canvas width on the given side.
// The bar thickness is 1/15 of the canvas height.
func NewBoundary(side Side, canvas Size) *Boundary {
	b := &Boundary{Side: side}
	b.Size = Size{W: canvas.W, H: canvas.H / 15}

	if side == SideTop {
		b.Anchor = AnchorTop | AnchorLeft
		b.Position = Vec2{X: 0, Y: canvas.H}
	} else {
		b.Anchor = AnchorBottom | AnchorLeft
		b.Position = Vec2{X: 0, Y: 0}
	}
	return b
}

// Obstacle is a scrolling bar the player has to avoid
type Obstacle struct {
	Body
	ID      EntityID
	SpawnAt float64 // Seconds on the scene clock when spawned
}

// Exited reports whether the obstacle anchor has reached the left edge
func (o *Obstacle) Exited() bool {
	return o.Position.X <= 0
}
