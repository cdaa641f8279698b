package game

import (
	"fmt"
	"strings"
	"time"
)

// Lap is one timed stage of a frame.
type Lap struct {
	Stage   string
	Elapsed time.Duration
}

// Timesheet records how long each stage of a frame took. Every Lap call
// measures the time since the previous one.
type Timesheet struct {
	now  func() time.Time
	last time.Time
	laps []Lap
	prev []Lap
}

// NewTimesheet returns a timesheet reading the wall clock.
func NewTimesheet() *Timesheet {
	return newTimesheetWithClock(time.Now)
}

func newTimesheetWithClock(now func() time.Time) *Timesheet {
	return &Timesheet{now: now, last: now()}
}

// Begin starts a new frame, dropping laps of a frame that was never finished.
func (ts *Timesheet) Begin() {
	ts.laps = ts.laps[:0]
	ts.last = ts.now()
}

// Lap closes the current stage under the given name.
func (ts *Timesheet) Lap(stage string) {
	t := ts.now()
	ts.laps = append(ts.laps, Lap{Stage: stage, Elapsed: t.Sub(ts.last)})
	ts.last = t
}

// Finish ends the frame: its laps become Previous and a new frame starts.
func (ts *Timesheet) Finish() {
	ts.prev = append(ts.prev[:0], ts.laps...)
	ts.laps = ts.laps[:0]
}

// Current returns the laps recorded so far in this frame.
func (ts *Timesheet) Current() []Lap { return ts.laps }

// Previous returns the laps of the last finished frame.
func (ts *Timesheet) Previous() []Lap { return ts.prev }

// Total sums the previous frame's laps.
func (ts *Timesheet) Total() time.Duration {
	var d time.Duration
	for _, l := range ts.prev {
		d += l.Elapsed
	}
	return d
}

// Lines formats the previous frame, one "stage: 1.234ms" line per lap.
func (ts *Timesheet) Lines() []string {
	out := make([]string, 0, len(ts.prev))
	for _, l := range ts.prev {
		out = append(out, fmt.Sprintf("%s: %.3fms", l.Stage, float64(l.Elapsed.Microseconds())/1000))
	}
	return out
}

// String joins Lines with newlines.
func (ts *Timesheet) String() string {
	return strings.Join(ts.Lines(), "\n")
}
