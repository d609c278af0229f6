// Package timeit provides whole-function and per-step execution timing for
// both blocking and context-aware calls.
//
// Two modes are exposed. Func-mode wrappers time a whole call:
//
//	ti := timeit.New()
//	slow := timeit.Func(ti, "slow", func() int {
//		time.Sleep(time.Second)
//		return 42
//	})
//	v := slow() // prints the duration, returns 42
//
// Byline-mode wrappers thread a *Trace through the body; each Step call
// attributes the time since the previous step to its own source line:
//
//	traced := timeit.Byline(ti, "traced", func(tr *timeit.Trace) int {
//		a := expensive()
//		tr.Step()
//		b := cheap(a)
//		tr.Step()
//		return b
//	})
//
// Wrapping never alters return values, errors, or panics.
package timeit

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mugendi/wraptimer/pkg/clock"
	"github.com/mugendi/wraptimer/pkg/timer"
)

// TimeIt measures wrapped function invocations and reports their timings.
// A single TimeIt is safe for concurrent use by wrapped functions.
type TimeIt struct {
	collector

	verbose  bool
	showArgs bool
	out      io.Writer
	outMu    sync.Mutex
	clk      clock.Clock
	log      logrus.FieldLogger
	handler  func(Report)
}

// Option configures a TimeIt.
type Option func(*TimeIt)

// WithVerbose controls whether reports are rendered to the writer as they
// are produced. Defaults to true. Non-verbose instances still record every
// report, retrievable via Reports or a report handler.
func WithVerbose(verbose bool) Option {
	return func(ti *TimeIt) {
		ti.verbose = verbose
	}
}

// WithShowArgs includes the wrapped call's arguments in rendered reports,
// for wrappers whose signature exposes them. Defaults to false.
func WithShowArgs(show bool) Option {
	return func(ti *TimeIt) {
		ti.showArgs = show
	}
}

// WithWriter sets the destination for rendered reports. Defaults to stdout.
func WithWriter(w io.Writer) Option {
	return func(ti *TimeIt) {
		ti.out = w
	}
}

// WithClock sets the clock source for all measurements. Defaults to
// clock.Wall, so totals include time spent sleeping or blocked.
func WithClock(clk clock.Clock) Option {
	return func(ti *TimeIt) {
		ti.clk = clk
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(log logrus.FieldLogger) Option {
	return func(ti *TimeIt) {
		ti.log = log.WithField("component", "timeit")
	}
}

// WithReportHandler registers a callback invoked with every report, after
// it has been recorded. Useful for feeding timings somewhere other than
// the console.
func WithReportHandler(handler func(Report)) Option {
	return func(ti *TimeIt) {
		ti.handler = handler
	}
}

// New creates a TimeIt with the given options.
func New(opts ...Option) *TimeIt {
	ti := &TimeIt{
		verbose: true,
		out:     os.Stdout,
		clk:     clock.Wall,
	}
	for _, opt := range opts {
		opt(ti)
	}
	if ti.log == nil {
		log := logrus.New()
		log.SetOutput(io.Discard)
		ti.log = log.WithField("component", "timeit")
	}
	return ti
}

// Track times a scope via defer:
//
//	defer ti.Track("load")()
//
// The returned func stops the measurement and reports it.
func (ti *TimeIt) Track(name string) func() {
	t := timer.New(timer.WithClock(ti.clk))
	t.Start()
	return func() {
		t.Stop()
		total, _ := t.Elapsed()
		ti.finish(&Report{Name: name, Mode: ModeFunc, Total: total})
	}
}

// newTimer returns a started timer on this instance's clock.
func (ti *TimeIt) newTimer() *timer.Timer {
	t := timer.New(timer.WithClock(ti.clk))
	t.Start()
	return t
}

// finish records, hands off, and optionally renders a completed report.
// Called from the wrappers' defers so panicking bodies still report.
func (ti *TimeIt) finish(r *Report) {
	r.At = time.Now()
	ti.record(*r)
	ti.log.WithField("name", r.Name).WithField("took", r.Total).Debug("invocation measured")
	if ti.handler != nil {
		ti.handler(*r)
	}
	if ti.verbose {
		ti.render(*r)
	}
}

// stop closes out a timer into the report total.
func (ti *TimeIt) stop(r *Report, t *timer.Timer) {
	t.Stop()
	total, err := t.Elapsed()
	if err != nil {
		ti.log.WithError(err).Warn("reading timer")
	}
	r.Total = total
	ti.finish(r)
}
