package timeit

import (
	"sync"
	"time"
)

// Mode identifies how an invocation was measured.
type Mode string

const (
	// ModeFunc is whole-function timing with no per-step breakdown.
	ModeFunc Mode = "func"
	// ModeByline is per-step timing recorded through a Trace.
	ModeByline Mode = "byline"
)

// LineTiming is the elapsed time attributed to a single step of a traced
// function body. Line is zero for the synthetic closing entry, which
// carries the "return" label instead.
type LineTiming struct {
	File  string
	Line  int
	Label string
	Took  time.Duration
}

// Report captures the timing data of one invocation of a wrapped function.
type Report struct {
	Name  string
	Mode  Mode
	Async bool
	Args  []any
	Total time.Duration
	Lines []LineTiming
	At    time.Time
}

// collector accumulates reports across invocations.
type collector struct {
	mu      sync.RWMutex
	reports []Report
}

func (c *collector) record(r Report) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reports = append(c.reports, r)
}

// Reports returns a copy of all recorded reports, in invocation order.
func (c *collector) Reports() []Report {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Report, len(c.reports))
	copy(out, c.reports)
	return out
}

// LastReport returns the most recently recorded report, if any.
func (c *collector) LastReport() (Report, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.reports) == 0 {
		return Report{}, false
	}
	return c.reports[len(c.reports)-1], true
}

// Reset discards all recorded reports.
func (c *collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reports = nil
}
