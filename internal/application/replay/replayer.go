package replay

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/younwookim/flycopter/internal/application/event"
)

// Frame is one recorded frame ready to be fed to the director
type Frame struct {
	Index   int
	Elapsed time.Duration // Wall time since the previous frame
	Events  []event.Event
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("invalid replay: %w", err)
	}

	return &data, nil
}

// Next returns the current frame and advances
func (r *Replayer) Next() (Frame, bool) {
	if r.frame >= len(r.data.Frames) {
		return Frame{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return Frame{
		Index:   fi.F,
		Elapsed: time.Duration(math.Round(fi.T * float64(time.Second))),
		Events:  DecodeEvents(fi.E),
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (no input, fixed frame time)
func CreateTestReplayData(frames int, dt float64) ReplayData {
	data := ReplayData{
		Version:   Version,
		Seed:      12345,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i, T: dt}
	}

	return data
}
