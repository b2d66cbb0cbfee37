package system

import "github.com/younwookim/flycopter/internal/domain/entity"

// HitKind identifies what the player ran into
type HitKind int

const (
	HitNone HitKind = iota
	HitTop
	HitBottom
	HitObstacle
)

// String returns the hit kind name
func (k HitKind) String() string {
	switch k {
	case HitNone:
		return "None"
	case HitTop:
		return "Top"
	case HitBottom:
		return "Bottom"
	case HitObstacle:
		return "Obstacle"
	default:
		return "Unknown"
	}
}

// Hit is the result of a collision check.
// Index is the queue position of the obstacle for HitObstacle, -1 otherwise.
type Hit struct {
	Kind  HitKind
	Index int
}

// Collided reports whether anything was hit
func (h Hit) Collided() bool {
	return h.Kind != HitNone
}

// CheckCollisions tests the player against the top boundary, the bottom
// boundary and then every obstacle in queue order. The first hit wins.
func CheckCollisions(field *entity.Field) Hit {
	player := &field.Player().Body

	if player.Intersects(&field.Top().Body) {
		return Hit{Kind: HitTop, Index: -1}
	}
	if player.Intersects(&field.Bottom().Body) {
		return Hit{Kind: HitBottom, Index: -1}
	}
	for i, o := range field.Obstacles() {
		if player.Intersects(&o.Body) {
			return Hit{Kind: HitObstacle, Index: i}
		}
	}
	return Hit{Kind: HitNone, Index: -1}
}
