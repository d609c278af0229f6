package report

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/mugendi/wraptimer/internal/run"
	"github.com/mugendi/wraptimer/internal/stats"
	"github.com/mugendi/wraptimer/pkg/timer"
)

// RunsFormatter formats per-run timings and their summary as tables.
type RunsFormatter struct {
	log      logrus.FieldLogger
	renderer Renderer

	// Colors; Sprint falls back to plain text when colors are disabled.
	header *color.Color
	good   *color.Color
	warn   *color.Color
	muted  *color.Color
}

// NewRunsFormatter creates a new runs table formatter.
func NewRunsFormatter(log logrus.FieldLogger, renderer Renderer) *RunsFormatter {
	return &RunsFormatter{
		log:      log.WithField("component", "report.runs_formatter"),
		renderer: renderer,
		header:   color.New(color.FgCyan, color.Bold),
		good:     color.New(color.FgGreen),
		warn:     color.New(color.FgYellow),
		muted:    color.New(color.FgHiBlack),
	}
}

// FormatRuns converts per-run results into a formatted table string.
func (f *RunsFormatter) FormatRuns(name string, results []run.Result) string {
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		rows = append(rows, []string{
			strconv.Itoa(res.Index + 1),
			timer.Format(res.Duration),
		})
	}

	title := f.header.Sprint(fmt.Sprintf("Runs: %s", name))

	return title + "\n" + f.renderer.RenderToString([]string{"Run", "Took"}, rows)
}

// FormatSummary converts a summary into a formatted table string.
func (f *RunsFormatter) FormatSummary(summary stats.Summary) string {
	rows := [][]string{
		{"Runs", strconv.Itoa(summary.Runs)},
		{"Total", timer.Format(summary.Total)},
		{"Min", f.good.Sprint(timer.Format(summary.Min))},
		{"Mean", timer.Format(summary.Mean)},
		{"Std Dev", f.muted.Sprint(timer.Format(summary.StdDev))},
		{"Max", f.warn.Sprint(timer.Format(summary.Max))},
	}

	title := f.header.Sprint("Summary")

	return title + "\n" + f.renderer.RenderToString([]string{"Metric", "Value"}, rows)
}
