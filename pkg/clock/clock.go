// Package clock provides monotonic counter sources for timers.
package clock

import (
	"fmt"
	"time"
)

// Clock is a monotonic counter. Readings are only meaningful relative to
// other readings from the same clock.
type Clock interface {
	// Nanoseconds returns the current counter reading.
	Nanoseconds() int64
}

// Kind identifies a clock source.
type Kind string

const (
	// KindWall measures elapsed wall time, sleep and blocking included.
	KindWall Kind = "wall"
	// KindProcess measures CPU time consumed by the process, so time spent
	// sleeping or blocked does not advance it.
	KindProcess Kind = "process"
)

// Wall is the default clock. It reads Go's monotonic clock, which keeps
// increasing even when the system date or time is changed.
var Wall Clock = wallClock{}

// Process reads CPU time (user + system) consumed by the current process.
var Process Clock = processClock{}

// New returns the clock for the given kind.
func New(kind Kind) (Clock, error) {
	switch kind {
	case KindWall:
		return Wall, nil
	case KindProcess:
		return Process, nil
	default:
		return nil, fmt.Errorf("unknown clock kind %q", kind)
	}
}

var base = time.Now()

type wallClock struct{}

func (wallClock) Nanoseconds() int64 {
	return time.Since(base).Nanoseconds()
}

type processClock struct{}

func (processClock) Nanoseconds() int64 {
	return processNanoseconds()
}
