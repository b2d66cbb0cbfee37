// Package replay records and plays back the pointer events of a session.
package replay

import (
	"errors"
	"fmt"

	"github.com/younwookim/flycopter/internal/application/event"
)

// Version of the replay file format
const Version = "2.0"

// ErrNoFrames is returned when saving a recording without frames
var ErrNoFrames = errors.New("no frames to save")

// EventInput records one pointer event
type EventInput struct {
	K string  `json:"k"`           // Kind (touch-started, touch-moved, touch-ended)
	X float64 `json:"x,omitempty"` // Canvas X
	Y float64 `json:"y,omitempty"` // Canvas Y
	P bool    `json:"p,omitempty"` // Has position
}

// FrameInput records the events delivered during a single frame
type FrameInput struct {
	F int          `json:"f"`           // Frame number
	T float64      `json:"t"`           // Wall seconds since the previous frame
	E []EventInput `json:"e,omitempty"` // Events
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Validate checks that every recorded event can be decoded
func (d *ReplayData) Validate() error {
	for _, f := range d.Frames {
		if f.T < 0 {
			return fmt.Errorf("frame %d: negative duration %v", f.F, f.T)
		}
		for _, e := range f.E {
			if _, ok := event.ParseKind(e.K); !ok {
				return fmt.Errorf("frame %d: unknown event kind %q", f.F, e.K)
			}
		}
	}
	return nil
}

// EncodeEvents converts events into their recorded form
func EncodeEvents(events []event.Event) []EventInput {
	if len(events) == 0 {
		return nil
	}
	out := make([]EventInput, len(events))
	for i, e := range events {
		out[i] = EventInput{K: e.Kind.String(), X: e.X, Y: e.Y, P: e.HasPos}
	}
	return out
}

// DecodeEvents converts recorded events back. Unknown kinds are skipped.
func DecodeEvents(in []EventInput) []event.Event {
	if len(in) == 0 {
		return nil
	}
	out := make([]event.Event, 0, len(in))
	for _, e := range in {
		kind, ok := event.ParseKind(e.K)
		if !ok {
			continue
		}
		out = append(out, event.Event{Kind: kind, X: e.X, Y: e.Y, HasPos: e.P})
	}
	return out
}
