// Package event defines the decoded pointer events delivered to scenes.
package event

// Kind identifies a pointer event
type Kind int

const (
	TouchStarted Kind = iota
	TouchMoved
	TouchEnded
)

// String returns the wire name of the event kind
func (k Kind) String() string {
	switch k {
	case TouchStarted:
		return "touch-started"
	case TouchMoved:
		return "touch-moved"
	case TouchEnded:
		return "touch-ended"
	default:
		return "unknown"
	}
}

// ParseKind converts a wire name back into a Kind
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "touch-started":
		return TouchStarted, true
	case "touch-moved":
		return TouchMoved, true
	case "touch-ended":
		return TouchEnded, true
	default:
		return 0, false
	}
}

// Event is a pointer event in virtual canvas coordinates (origin bottom-left).
// HasPos is false when the source could not provide a position.
type Event struct {
	Kind   Kind
	X, Y   float64
	HasPos bool
}

// At builds an event carrying a position
func At(kind Kind, x, y float64) Event {
	return Event{Kind: kind, X: x, Y: y, HasPos: true}
}

// Bare builds an event without a position
func Bare(kind Kind) Event {
	return Event{Kind: kind}
}
