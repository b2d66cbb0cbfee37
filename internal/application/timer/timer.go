// Package timer measures elapsed wall-clock time for scenes.
//
// Timers read a clock.Clock and are never paused: time spent while a scene
// is suspended counts as elapsed.
package timer

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Timer is a resettable elapsed-time counter
type Timer struct {
	clk   clock.Clock
	start time.Time
}

// New creates a timer started now. A nil clock uses the real wall clock.
func New(clk clock.Clock) *Timer {
	if clk == nil {
		clk = clock.New()
	}
	return &Timer{clk: clk, start: clk.Now()}
}

// Reset restarts the count from now
func (t *Timer) Reset() {
	t.start = t.clk.Now()
}

// Elapsed returns the time since the last reset
func (t *Timer) Elapsed() time.Duration {
	return t.clk.Since(t.start)
}

// ElapsedSeconds returns the time since the last reset in seconds
func (t *Timer) ElapsedSeconds() float64 {
	return t.Elapsed().Seconds()
}

// Now returns the current time of the underlying clock
func (t *Timer) Now() time.Time {
	return t.clk.Now()
}
