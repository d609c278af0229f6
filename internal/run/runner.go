// Package run executes external commands under a timer and collects
// per-run durations.
package run

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/mugendi/wraptimer/internal/stats"
	"github.com/mugendi/wraptimer/pkg/clock"
	"github.com/mugendi/wraptimer/pkg/timer"
)

var (
	errNoCommand       = errors.New("no command to run")
	errInvalidRuns     = errors.New("runs must be at least 1")
	errInvalidParallel = errors.New("parallel must be at least 1")
)

// Result is the timing of a single run.
type Result struct {
	Index    int
	Duration time.Duration
}

// Options configures a Runner.
type Options struct {
	// Argv is the command and its arguments.
	Argv []string
	// Runs is the number of measured executions.
	Runs int
	// Warmup is the number of unmeasured executions performed first.
	Warmup int
	// Parallel is the maximum number of concurrent measured executions.
	Parallel int
	// Clock selects what a run's duration means. KindWall (the default)
	// is elapsed wall time; KindProcess is CPU time consumed by the
	// command itself, read from its rusage after it exits.
	Clock clock.Kind
}

// Runner executes a command repeatedly and reports per-run timings.
type Runner interface {
	Run(ctx context.Context) ([]Result, stats.Summary, error)
}

type runner struct {
	log  logrus.FieldLogger
	opts Options
}

// NewRunner creates a new command runner
func NewRunner(log logrus.FieldLogger, opts Options) (Runner, error) {
	if len(opts.Argv) == 0 {
		return nil, errNoCommand
	}
	if opts.Runs < 1 {
		return nil, errInvalidRuns
	}
	if opts.Parallel == 0 {
		opts.Parallel = 1
	}
	if opts.Parallel < 1 {
		return nil, errInvalidParallel
	}
	if opts.Clock == "" {
		opts.Clock = clock.KindWall
	}
	if _, err := clock.New(opts.Clock); err != nil {
		return nil, err
	}
	return &runner{
		log:  log.WithField("component", "run.runner"),
		opts: opts,
	}, nil
}

func (r *runner) Run(ctx context.Context) ([]Result, stats.Summary, error) {
	for i := 0; i < r.opts.Warmup; i++ {
		r.log.WithField("warmup", i+1).Debug("warmup run")
		if _, err := r.execute(ctx); err != nil {
			return nil, stats.Summary{}, fmt.Errorf("warmup run %d: %w", i+1, err)
		}
	}

	results := make([]Result, r.opts.Runs)

	if r.opts.Parallel == 1 {
		for i := 0; i < r.opts.Runs; i++ {
			d, err := r.execute(ctx)
			if err != nil {
				return nil, stats.Summary{}, fmt.Errorf("run %d: %w", i+1, err)
			}
			results[i] = Result{Index: i, Duration: d}
			r.log.WithField("run", i+1).WithField("took", d).Debug("run complete")
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.opts.Parallel)
		for i := 0; i < r.opts.Runs; i++ {
			g.Go(func() error {
				d, err := r.execute(gctx)
				if err != nil {
					return fmt.Errorf("run %d: %w", i+1, err)
				}
				results[i] = Result{Index: i, Duration: d}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, stats.Summary{}, err
		}
	}

	durations := make([]time.Duration, len(results))
	for i, res := range results {
		durations[i] = res.Duration
	}

	return results, stats.Summarize(durations), nil
}

func (r *runner) execute(ctx context.Context) (time.Duration, error) {
	cmd := exec.CommandContext(ctx, r.opts.Argv[0], r.opts.Argv[1:]...) //nolint:gosec // command comes from the CLI user
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	t := timer.New()
	t.Start()
	err := cmd.Run()
	t.Stop()
	if err != nil {
		return 0, fmt.Errorf("running %s: %w", r.opts.Argv[0], err)
	}

	// The process clock means the child's CPU time, not ours, so it is
	// read from the exited command rather than from clock.Process.
	if r.opts.Clock == clock.KindProcess {
		return cmd.ProcessState.UserTime() + cmd.ProcessState.SystemTime(), nil
	}

	return t.Elapsed()
}

// Compile-time interface compliance check
var _ Runner = (*runner)(nil)
