package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/flycopter/internal/application/event"
	"github.com/younwookim/flycopter/internal/domain/entity"
)

// mouseID is the pointer id used for the left mouse button (touch ids are >= 0)
const mouseID = -1

type pointerPhase int

const (
	phasePressed pointerPhase = iota
	phaseHeld
	phaseReleased
)

// pointerSample is the raw state of one pointer in screen coordinates
type pointerSample struct {
	id    int
	x, y  int
	phase pointerPhase
}

// InputSystem turns touch and mouse state into scene events.
// Screen coordinates (origin top-left) are flipped into canvas coordinates
// (origin bottom-left).
type InputSystem struct {
	canvas entity.Size

	// Last known screen position per pointer, released pointers report it
	last map[int][2]int

	touchIDs []ebiten.TouchID
}

// NewInputSystem creates a new input system for the given canvas size
func NewInputSystem(canvas entity.Size) *InputSystem {
	return &InputSystem{
		canvas: canvas,
		last:   make(map[int][2]int),
	}
}

// Poll reads this tick's pointer state and returns the resulting events
func (s *InputSystem) Poll() []event.Event {
	return s.translate(s.sample())
}

// ToCanvas converts a screen position into canvas coordinates
func (s *InputSystem) ToCanvas(x, y int) entity.Vec2 {
	return entity.Vec2{X: float64(x), Y: s.canvas.H - float64(y)}
}

func (s *InputSystem) sample() []pointerSample {
	var samples []pointerSample

	s.touchIDs = inpututil.AppendJustReleasedTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		samples = append(samples, pointerSample{id: int(id), phase: phaseReleased})
	}

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		x, y := ebiten.TouchPosition(id)
		phase := phaseHeld
		if inpututil.TouchPressDuration(id) == 1 {
			phase = phasePressed
		}
		samples = append(samples, pointerSample{id: int(id), x: x, y: y, phase: phase})
	}

	mx, my := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		samples = append(samples, pointerSample{id: mouseID, x: mx, y: my, phase: phasePressed})
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		samples = append(samples, pointerSample{id: mouseID, x: mx, y: my, phase: phaseReleased})
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		samples = append(samples, pointerSample{id: mouseID, x: mx, y: my, phase: phaseHeld})
	}

	return samples
}

// translate converts samples into events. Presses come first, then moves,
// then releases; each group is ordered by pointer id.
func (s *InputSystem) translate(samples []pointerSample) []event.Event {
	sort.SliceStable(samples, func(i, j int) bool {
		if samples[i].phase != samples[j].phase {
			return samples[i].phase < samples[j].phase
		}
		return samples[i].id < samples[j].id
	})

	var events []event.Event
	for _, p := range samples {
		switch p.phase {
		case phasePressed:
			s.last[p.id] = [2]int{p.x, p.y}
			events = append(events, s.eventAt(event.TouchStarted, p.x, p.y))

		case phaseHeld:
			prev, known := s.last[p.id]
			s.last[p.id] = [2]int{p.x, p.y}
			if !known {
				// Pointer went down before we started tracking
				events = append(events, s.eventAt(event.TouchStarted, p.x, p.y))
			} else if prev != [2]int{p.x, p.y} {
				events = append(events, s.eventAt(event.TouchMoved, p.x, p.y))
			}

		case phaseReleased:
			x, y := p.x, p.y
			if p.id != mouseID {
				prev, known := s.last[p.id]
				if !known {
					events = append(events, event.Bare(event.TouchEnded))
					continue
				}
				x, y = prev[0], prev[1]
			}
			delete(s.last, p.id)
			events = append(events, s.eventAt(event.TouchEnded, x, y))
		}
	}
	return events
}

func (s *InputSystem) eventAt(kind event.Kind, x, y int) event.Event {
	pos := s.ToCanvas(x, y)
	return event.At(kind, pos.X, pos.Y)
}
