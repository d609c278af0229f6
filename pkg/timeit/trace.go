package timeit

import (
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/mugendi/wraptimer/pkg/clock"
)

// Trace records per-step timings inside a byline-wrapped function body.
// Each Step call attributes the time elapsed since the previous step (or
// since the body was entered) to the source line of the call site. A Trace
// is safe for concurrent use, though steps from spawned goroutines are
// appended in whatever order their calls win the lock.
type Trace struct {
	clk    clock.Clock
	mu     sync.Mutex
	lastNS int64
	lines  []LineTiming
	closed bool
}

func newTrace(clk clock.Clock) *Trace {
	return &Trace{clk: clk, lastNS: clk.Nanoseconds()}
}

// Step records the elapsed delta against the calling source line.
func (tr *Trace) Step() {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file, line = "unknown", 0
	}
	tr.append(LineTiming{File: filepath.Base(file), Line: line})
}

// Mark is Step with an explicit label attached to the entry.
func (tr *Trace) Mark(label string) {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file, line = "unknown", 0
	}
	tr.append(LineTiming{File: filepath.Base(file), Line: line, Label: label})
}

// append stamps the entry's delta and stores it. The clock reads happen
// under the lock so concurrent steps never share an interval start.
func (tr *Trace) append(lt LineTiming) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	if tr.closed {
		return
	}
	lt.Took = time.Duration(tr.clk.Nanoseconds() - tr.lastNS)
	tr.lines = append(tr.lines, lt)
	// Restart the interval after bookkeeping so Step's own overhead is not
	// charged to the next step.
	tr.lastNS = tr.clk.Nanoseconds()
}

// close appends the synthetic closing entry covering the time between the
// last step and the body's return. Further steps are ignored.
func (tr *Trace) close() {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	if tr.closed {
		return
	}
	tr.lines = append(tr.lines, LineTiming{
		Label: "return",
		Took:  time.Duration(tr.clk.Nanoseconds() - tr.lastNS),
	})
	tr.closed = true
}

// Lines returns the recorded entries in execution order.
func (tr *Trace) Lines() []LineTiming {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	out := make([]LineTiming, len(tr.lines))
	copy(out, tr.lines)
	return out
}
