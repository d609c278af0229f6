// Package timer implements a start/stop stopwatch over a monotonic clock
// source, with human-friendly duration formatting.
package timer

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/mugendi/wraptimer/pkg/clock"
)

var (
	// ErrNotStarted is returned when reading a timer that was never started.
	ErrNotStarted = errors.New("timer has not been started")
	// ErrNotStopped is returned when reading a timer that is still running.
	ErrNotStopped = errors.New("timer has not been stopped")
)

// Timer measures the interval between Start and Stop.
type Timer struct {
	clk       clock.Clock
	startNS   int64
	stopNS    int64
	started   bool
	stopped   bool
	running   bool
	disableGC bool
	gcOff     bool
	prevGC    int
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock sets the clock source. Defaults to clock.Wall.
func WithClock(clk clock.Clock) Option {
	return func(t *Timer) {
		t.clk = clk
	}
}

// WithGCDisabled pauses the garbage collector between Start and Stop so a
// collection cycle does not inflate a high-precision measurement.
func WithGCDisabled() Option {
	return func(t *Timer) {
		t.disableGC = true
	}
}

// New creates a stopped, unstarted timer.
func New(opts ...Option) *Timer {
	t := &Timer{clk: clock.Wall}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start begins measuring. Calling Start on a running timer is a no-op.
func (t *Timer) Start() {
	if t.running {
		return
	}
	if t.disableGC && !t.gcOff {
		t.prevGC = debug.SetGCPercent(-1)
		t.gcOff = true
	}
	t.startNS = t.clk.Nanoseconds()
	t.started = true
	t.running = true
}

// Stop ends the measurement.
func (t *Timer) Stop() {
	t.stopNS = t.clk.Nanoseconds()
	if t.gcOff {
		debug.SetGCPercent(t.prevGC)
		t.gcOff = false
	}
	t.stopped = true
	t.running = false
}

// Running reports whether the timer has been started but not yet stopped.
func (t *Timer) Running() bool {
	return t.running
}

// Elapsed returns the duration between Start and Stop. It fails if the
// timer was never started or has not been stopped.
func (t *Timer) Elapsed() (time.Duration, error) {
	if !t.started {
		return 0, ErrNotStarted
	}
	if !t.stopped || t.running {
		return 0, ErrNotStopped
	}
	return time.Duration(t.stopNS - t.startNS), nil
}

// Format renders a duration using the largest unit (s, ms, µs, ns) whose
// value exceeds one, e.g. "1.501589155 s" or "29.476 µs".
func Format(d time.Duration) string {
	ns := float64(d.Nanoseconds())
	units := []struct {
		name  string
		scale float64
	}{
		{"s", 1e9},
		{"ms", 1e6},
		{"µs", 1e3},
		{"ns", 1},
	}
	for _, u := range units {
		if v := ns / u.scale; v > 1 {
			return fmt.Sprintf("%v %s", v, u.name)
		}
	}
	return fmt.Sprintf("%v ns", ns)
}
