package cmd

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mugendi/wraptimer/pkg/timeit"
)

func TestDemoFilter_Include(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filter   demoFilter
		mode     timeit.Mode
		async    bool
		expected bool
	}{
		{
			name:     "zero filter includes sync func",
			filter:   demoFilter{},
			mode:     timeit.ModeFunc,
			expected: true,
		},
		{
			name:     "zero filter includes async byline",
			filter:   demoFilter{},
			mode:     timeit.ModeByline,
			async:    true,
			expected: true,
		},
		{
			name:     "byline filter excludes func",
			filter:   demoFilter{byline: true},
			mode:     timeit.ModeFunc,
			expected: false,
		},
		{
			name:     "byline filter includes byline",
			filter:   demoFilter{byline: true},
			mode:     timeit.ModeByline,
			expected: true,
		},
		{
			name:     "func filter excludes byline",
			filter:   demoFilter{funcs: true},
			mode:     timeit.ModeByline,
			expected: false,
		},
		{
			name:     "async filter excludes sync",
			filter:   demoFilter{async: true},
			mode:     timeit.ModeFunc,
			expected: false,
		},
		{
			name:     "async filter includes async",
			filter:   demoFilter{async: true},
			mode:     timeit.ModeFunc,
			async:    true,
			expected: true,
		},
		{
			name:     "byline and async combine",
			filter:   demoFilter{byline: true, async: true},
			mode:     timeit.ModeByline,
			async:    true,
			expected: true,
		},
		{
			name:     "byline and async exclude sync byline",
			filter:   demoFilter{byline: true, async: true},
			mode:     timeit.ModeByline,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.filter.include(tt.mode, tt.async))
		})
	}
}

func shrinkDemoNaps(t *testing.T) {
	t.Helper()

	saved := demoNaps
	demoNaps.byline = time.Millisecond
	demoNaps.bylineWait = time.Millisecond
	demoNaps.scale = time.Millisecond
	demoNaps.scaleWait = time.Millisecond
	t.Cleanup(func() { demoNaps = saved })
}

func TestRunDemos_AllWorkloads(t *testing.T) {
	shrinkDemoNaps(t)

	buf := &bytes.Buffer{}
	ti := timeit.New(timeit.WithVerbose(false), timeit.WithWriter(io.Discard))

	require.NoError(t, runDemos(context.Background(), buf, ti, demoFilter{}))

	// Four workloads, with the concurrent one responding twice. Every line
	// must be a whole response, not fragments interleaved by goroutines.
	lines := nonEmptyLines(t, buf)
	require.Len(t, lines, 5)
	for _, line := range lines {
		require.True(t, strings.HasPrefix(line, "response: "), "unexpected line %q", line)
	}

	require.Len(t, ti.Reports(), 5)
}

func TestRunDemos_BylineOnly(t *testing.T) {
	shrinkDemoNaps(t)

	buf := &bytes.Buffer{}
	ti := timeit.New(timeit.WithVerbose(false), timeit.WithWriter(io.Discard))

	require.NoError(t, runDemos(context.Background(), buf, ti, demoFilter{byline: true}))

	require.Len(t, nonEmptyLines(t, buf), 2)
	for _, r := range ti.Reports() {
		require.Equal(t, timeit.ModeByline, r.Mode)
	}
}

func TestRunDemos_AsyncOnly(t *testing.T) {
	shrinkDemoNaps(t)

	buf := &bytes.Buffer{}
	ti := timeit.New(timeit.WithVerbose(false), timeit.WithWriter(io.Discard))

	require.NoError(t, runDemos(context.Background(), buf, ti, demoFilter{async: true}))

	// The async byline workload plus the two concurrent func calls.
	require.Len(t, nonEmptyLines(t, buf), 3)
	for _, r := range ti.Reports() {
		require.True(t, r.Async)
	}
}

func TestRunDemos_FuncAsync(t *testing.T) {
	shrinkDemoNaps(t)

	buf := &bytes.Buffer{}
	ti := timeit.New(timeit.WithVerbose(false), timeit.WithWriter(io.Discard))

	require.NoError(t, runDemos(context.Background(), buf, ti, demoFilter{funcs: true, async: true}))

	require.Len(t, nonEmptyLines(t, buf), 2)
	for _, r := range ti.Reports() {
		require.Equal(t, timeit.ModeFunc, r.Mode)
		require.True(t, r.Async)
	}
}

func TestRunDemos_CanceledContext(t *testing.T) {
	shrinkDemoNaps(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ti := timeit.New(timeit.WithVerbose(false), timeit.WithWriter(io.Discard))
	err := runDemos(ctx, io.Discard, ti, demoFilter{byline: true, async: true})
	require.ErrorIs(t, err, context.Canceled)
}

func nonEmptyLines(t *testing.T, buf *bytes.Buffer) []string {
	t.Helper()

	var lines []string
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	require.NoError(t, scanner.Err())
	return lines
}
