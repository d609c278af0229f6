package timeit

import (
	"context"

	"github.com/mugendi/wraptimer/pkg/timer"
)

// Func wraps a niladic function so every call is timed and reported.
// The return value passes through unchanged.
func Func[R any](ti *TimeIt, name string, fn func() R) func() R {
	return func() (out R) {
		r := Report{Name: name, Mode: ModeFunc}
		t := ti.newTimer()
		defer ti.stop(&r, t)
		out = fn()
		return out
	}
}

// FuncErr wraps a function returning (R, error). The error passes through
// unchanged; the invocation is reported either way.
func FuncErr[R any](ti *TimeIt, name string, fn func() (R, error)) func() (R, error) {
	return func() (out R, err error) {
		r := Report{Name: name, Mode: ModeFunc}
		t := ti.newTimer()
		defer ti.stop(&r, t)
		out, err = fn()
		return out, err
	}
}

// Func1 wraps a single-argument function. The argument is included in the
// report so WithShowArgs instances can render it.
func Func1[A, R any](ti *TimeIt, name string, fn func(A) R) func(A) R {
	return func(a A) (out R) {
		r := Report{Name: name, Mode: ModeFunc, Args: []any{a}}
		t := ti.newTimer()
		defer ti.stop(&r, t)
		out = fn(a)
		return out
	}
}

// FuncCtx wraps a context-aware function, the suspending counterpart of
// Func. Under the wall clock the total includes time spent blocked or
// waiting inside the call.
func FuncCtx[R any](ti *TimeIt, name string, fn func(context.Context) (R, error)) func(context.Context) (R, error) {
	return func(ctx context.Context) (out R, err error) {
		r := Report{Name: name, Mode: ModeFunc, Async: true}
		t := ti.newTimer()
		defer ti.stop(&r, t)
		out, err = fn(ctx)
		return out, err
	}
}

// Byline wraps a function whose body records per-step timings through the
// supplied Trace. The wrapper appends the closing "return" entry when the
// body finishes.
func Byline[R any](ti *TimeIt, name string, fn func(*Trace) R) func() R {
	return func() (out R) {
		r := Report{Name: name, Mode: ModeByline}
		t := ti.newTimer()
		tr := newTrace(ti.clk)
		defer ti.stopTraced(&r, t, tr)
		out = fn(tr)
		return out
	}
}

// Byline1 is Byline for a single-argument function.
func Byline1[A, R any](ti *TimeIt, name string, fn func(*Trace, A) R) func(A) R {
	return func(a A) (out R) {
		r := Report{Name: name, Mode: ModeByline, Args: []any{a}}
		t := ti.newTimer()
		tr := newTrace(ti.clk)
		defer ti.stopTraced(&r, t, tr)
		out = fn(tr, a)
		return out
	}
}

// BylineErr is Byline for a function returning (R, error).
func BylineErr[R any](ti *TimeIt, name string, fn func(*Trace) (R, error)) func() (R, error) {
	return func() (out R, err error) {
		r := Report{Name: name, Mode: ModeByline}
		t := ti.newTimer()
		tr := newTrace(ti.clk)
		defer ti.stopTraced(&r, t, tr)
		out, err = fn(tr)
		return out, err
	}
}

// BylineCtx is Byline for a context-aware function.
func BylineCtx[R any](ti *TimeIt, name string, fn func(context.Context, *Trace) (R, error)) func(context.Context) (R, error) {
	return func(ctx context.Context) (out R, err error) {
		r := Report{Name: name, Mode: ModeByline, Async: true}
		t := ti.newTimer()
		tr := newTrace(ti.clk)
		defer ti.stopTraced(&r, t, tr)
		out, err = fn(ctx, tr)
		return out, err
	}
}

// stopTraced closes the trace before finishing the report.
func (ti *TimeIt) stopTraced(r *Report, t *timer.Timer, tr *Trace) {
	tr.close()
	r.Lines = tr.Lines()
	ti.stop(r, t)
}
