package cmd

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/mugendi/wraptimer/internal/config"
	"github.com/mugendi/wraptimer/internal/report"
	"github.com/mugendi/wraptimer/internal/run"
	"github.com/mugendi/wraptimer/pkg/clock"
)

var (
	runRuns     int
	runWarmup   int
	runParallel int
	runClock    string
	runProfile  string
)

var runCmd = &cobra.Command{
	Use:   "run [flags] -- <command> [args...]",
	Short: "Time an external command",
	Long: `Executes a command one or more times and reports per-run durations and
a summary (total, min, mean, std dev, max).

With --profile, the positional argument names a workload from a yaml
profile instead of a command:

  wraptimer run --profile bench.yaml build`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, name, err := resolveRunOptions(cmd, args)
		if err != nil {
			return err
		}

		runner, err := run.NewRunner(Logger, *opts)
		if err != nil {
			return fmt.Errorf("invalid run options: %w", err)
		}

		results, summary, err := runner.Run(cmd.Context())
		if err != nil {
			return fmt.Errorf("timing %s: %w", name, err)
		}

		formatter := report.NewRunsFormatter(Logger, report.NewRenderer(Logger))
		fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRuns(name, results))
		fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSummary(summary))

		return nil
	},
}

func init() {
	runCmd.Flags().IntVar(&runRuns, "runs", 0, "number of measured runs (default 1, or profile value)")
	runCmd.Flags().IntVar(&runWarmup, "warmup", 0, "number of unmeasured warmup runs")
	runCmd.Flags().IntVar(&runParallel, "parallel", 0, "maximum concurrent runs (default 1)")
	runCmd.Flags().StringVar(&runClock, "clock", "", "what a run's duration means: wall time or the command's process CPU time (wall|process)")
	runCmd.Flags().StringVar(&runProfile, "profile", "", "yaml profile of named workloads")
	rootCmd.AddCommand(runCmd)
}

// resolveRunOptions merges env config, profile values and flags. Flags win
// over the profile, which wins over the environment.
func resolveRunOptions(cmd *cobra.Command, args []string) (*run.Options, string, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", fmt.Errorf("loading config: %w", err)
	}

	opts := &run.Options{
		Runs:     cfg.Runs,
		Warmup:   cfg.Warmup,
		Parallel: cfg.Parallel,
		Clock:    cfg.Clock,
	}
	name := strings.Join(args, " ")

	if runProfile != "" {
		loader := config.NewProfileLoader(Logger)
		profile, err := loader.Load(runProfile)
		if err != nil {
			return nil, "", err
		}

		workload, err := profile.Workload(args[0])
		if err != nil {
			return nil, "", err
		}

		argv, err := shellquote.Split(workload.Command)
		if err != nil {
			return nil, "", fmt.Errorf("parsing workload command: %w", err)
		}

		opts.Argv = argv
		opts.Runs = workload.Runs
		opts.Warmup = workload.Warmup
		opts.Parallel = workload.Parallel
		name = workload.Name
	} else {
		opts.Argv = args
	}

	if cmd.Flags().Changed("runs") {
		opts.Runs = runRuns
	}
	if cmd.Flags().Changed("warmup") {
		opts.Warmup = runWarmup
	}
	if cmd.Flags().Changed("parallel") {
		opts.Parallel = runParallel
	}
	if cmd.Flags().Changed("clock") {
		opts.Clock = clock.Kind(runClock)
	}

	return opts, name, nil
}
