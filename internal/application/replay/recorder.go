package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/younwookim/flycopter/internal/application/event"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	clk       clock.Clock
	last      time.Time
	recording bool
	frame     int
}

// NewRecorder creates a new recorder with seed for deterministic replay.
// Frame durations are measured on clk; nil uses the wall clock.
func NewRecorder(seed int64, clk clock.Clock) *Recorder {
	if clk == nil {
		clk = clock.New()
	}
	now := clk.Now()
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Seed:      seed,
			StartTime: now.Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		clk:       clk,
		last:      now,
		recording: true,
	}
}

// RecordFrame records a single frame's events and the time since the previous frame
func (r *Recorder) RecordFrame(events []event.Event) {
	if !r.recording {
		return
	}

	now := r.clk.Now()
	r.data.Frames = append(r.data.Frames, FrameInput{
		F: r.frame,
		T: now.Sub(r.last).Seconds(),
		E: EncodeEvents(events),
	})
	r.last = now
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
