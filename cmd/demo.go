package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mugendi/wraptimer/internal/config"
	"github.com/mugendi/wraptimer/pkg/clock"
	"github.com/mugendi/wraptimer/pkg/timeit"
)

var (
	demoByline bool
	demoFunc   bool
	demoAsync  bool
)

var demoCmd = &cobra.Command{
	Use:   "demo [--byline|--func] [--async]",
	Short: "Show func and byline timing on built-in workloads",
	Long: `Runs a set of built-in sleepy workloads through the timeit wrappers so
you can see both modes' console output: whole-function timing, per-step
byline timing, and their context-aware (suspending) variants.

By default all workloads run. --byline or --func restricts the timing
mode, and --async restricts to the context-aware variants.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		clk, err := clock.New(cfg.Clock)
		if err != nil {
			return err
		}

		ti := timeit.New(
			timeit.WithVerbose(cfg.Verbose),
			timeit.WithShowArgs(cfg.ShowArgs),
			timeit.WithClock(clk),
			timeit.WithLogger(Logger),
			timeit.WithWriter(cmd.OutOrStdout()),
		)

		filter := demoFilter{
			byline: demoByline,
			funcs:  demoFunc,
			async:  demoAsync,
		}

		return runDemos(cmd.Context(), cmd.OutOrStdout(), ti, filter)
	},
}

func init() {
	demoCmd.Flags().BoolVar(&demoByline, "byline", false, "run only the byline (per-step) workloads")
	demoCmd.Flags().BoolVar(&demoFunc, "func", false, "run only the whole-function workloads")
	demoCmd.Flags().BoolVar(&demoAsync, "async", false, "run only the context-aware workloads")
	demoCmd.MarkFlagsMutuallyExclusive("byline", "func")
	rootCmd.AddCommand(demoCmd)
}

// demoFilter selects which workloads run. Zero value means all of them.
type demoFilter struct {
	byline bool
	funcs  bool
	async  bool
}

func (f demoFilter) include(mode timeit.Mode, async bool) bool {
	if f.byline && mode != timeit.ModeByline {
		return false
	}
	if f.funcs && mode != timeit.ModeFunc {
		return false
	}
	if f.async && !async {
		return false
	}
	return true
}

// Sleep lengths for the demo workloads. Variables so tests can shrink them.
var demoNaps = struct {
	byline     time.Duration
	bylineWait time.Duration
	scale      time.Duration
	scaleWait  time.Duration
}{
	byline:     800 * time.Millisecond,
	bylineWait: 1250 * time.Millisecond,
	scale:      1500 * time.Millisecond,
	scaleWait:  2340 * time.Millisecond,
}

func runDemos(ctx context.Context, out io.Writer, ti *timeit.TimeIt, filter demoFilter) error {
	if filter.include(timeit.ModeByline, false) {
		byline := timeit.Byline(ti, "sum_with_sleep", func(tr *timeit.Trace) []int {
			a := 10
			tr.Step()
			b := 20
			tr.Step()
			time.Sleep(demoNaps.byline)
			tr.Step()
			c := a + b
			tr.Step()
			return []int{a, b, c}
		})
		fmt.Fprintln(out, "response:", byline())
	}

	if filter.include(timeit.ModeByline, true) {
		bylineCtx := timeit.BylineCtx(ti, "sum_after_wait", func(ctx context.Context, tr *timeit.Trace) ([]int, error) {
			a := 10
			tr.Step()
			b := 20
			tr.Step()
			if err := sleepCtx(ctx, demoNaps.bylineWait); err != nil {
				return nil, err
			}
			tr.Step()
			return []int{a, b}, nil
		})
		resp, err := bylineCtx(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "response:", resp)
	}

	if filter.include(timeit.ModeFunc, false) {
		scale := timeit.Func1(ti, "scale", func(v int) int {
			time.Sleep(demoNaps.scale)
			return v * 50
		})
		fmt.Fprintln(out, "response:", scale(200))
	}

	if filter.include(timeit.ModeFunc, true) {
		scaleCtx := timeit.FuncCtx(ti, "scale_after_wait", func(ctx context.Context) (int, error) {
			if err := sleepCtx(ctx, demoNaps.scaleWait); err != nil {
				return 0, err
			}
			return 200 * 50, nil
		})

		// Run the suspending variant twice concurrently, collecting the
		// responses so lines are printed whole once both calls finish.
		responses := make([]int, 2)
		g, gctx := errgroup.WithContext(ctx)
		for i := range responses {
			g.Go(func() error {
				v, err := scaleCtx(gctx)
				if err != nil {
					return err
				}
				responses[i] = v
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		for _, v := range responses {
			fmt.Fprintln(out, "response:", v)
		}
	}

	return nil
}

// sleepCtx blocks for d or until the context is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
