package entity

// Field owns every entity of a gameplay scene.
//
// The player and the two boundaries sit in fixed slots that are filled once
// by Populate and never move, so pointers returned by Player, Top and Bottom
// stay valid for the field's lifetime. Obstacles live in a separate FIFO
// queue; removing from it never touches the fixed slots.
type Field struct {
	canvas    Size
	populated bool

	player Player
	top    Boundary
	bottom Boundary

	obstacles []*Obstacle
	nextID    EntityID
}

// NewField creates an empty field for a canvas of the given size
func NewField(canvas Size) *Field {
	return &Field{
		canvas:    canvas,
		obstacles: make([]*Obstacle, 0, 16),
		nextID:    1, // 0 is "nil"
	}
}

// Canvas returns the virtual canvas size
func (f *Field) Canvas() Size {
	return f.canvas
}

// Populate creates the boundaries and the player. Calling it again is a no-op.
func (f *Field) Populate(playerSize Size) {
	if f.populated {
		return
	}
	f.top = *NewBoundary(SideTop, f.canvas)
	f.bottom = *NewBoundary(SideBottom, f.canvas)
	f.player = Player{Body: Body{Anchor: AnchorCenter, Size: playerSize}}
	f.populated = true
}

// Populated reports whether Populate has run
func (f *Field) Populated() bool {
	return f.populated
}

// Player returns the player slot
func (f *Field) Player() *Player {
	return &f.player
}

// Top returns the top boundary slot
func (f *Field) Top() *Boundary {
	return &f.top
}

// Bottom returns the bottom boundary slot
func (f *Field) Bottom() *Boundary {
	return &f.bottom
}

// Statics returns the fixed bodies in draw order: top, bottom, player
func (f *Field) Statics() []*Body {
	return []*Body{&f.top.Body, &f.bottom.Body, &f.player.Body}
}

// PushObstacle appends an obstacle to the back of the queue and assigns its ID
func (f *Field) PushObstacle(o *Obstacle) {
	o.ID = f.nextID
	f.nextID++
	f.obstacles = append(f.obstacles, o)
}

// Obstacles returns the queue, oldest first. Callers must not retain the slice.
func (f *Field) Obstacles() []*Obstacle {
	return f.obstacles
}

// ObstacleCount returns the queue length
func (f *Field) ObstacleCount() int {
	return len(f.obstacles)
}

// DropOldest removes the obstacle at the front of the queue.
// Returns the removed obstacle, or nil when the queue is empty.
func (f *Field) DropOldest() *Obstacle {
	if len(f.obstacles) == 0 {
		return nil
	}
	oldest := f.obstacles[0]
	f.obstacles[0] = nil
	f.obstacles = f.obstacles[1:]
	return oldest
}

// ClearObstacles empties the queue
func (f *Field) ClearObstacles() {
	for i := range f.obstacles {
		f.obstacles[i] = nil
	}
	f.obstacles = f.obstacles[:0]
}
