package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		durations []time.Duration
		expected  Summary
	}{
		{
			name:      "empty",
			durations: nil,
			expected:  Summary{},
		},
		{
			name:      "single sample has zero stddev",
			durations: []time.Duration{100 * time.Millisecond},
			expected: Summary{
				Runs:  1,
				Total: 100 * time.Millisecond,
				Min:   100 * time.Millisecond,
				Max:   100 * time.Millisecond,
				Mean:  100 * time.Millisecond,
			},
		},
		{
			name: "three samples",
			durations: []time.Duration{
				100 * time.Millisecond,
				200 * time.Millisecond,
				300 * time.Millisecond,
			},
			expected: Summary{
				Runs:   3,
				Total:  600 * time.Millisecond,
				Min:    100 * time.Millisecond,
				Max:    300 * time.Millisecond,
				Mean:   200 * time.Millisecond,
				StdDev: 100 * time.Millisecond,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Summarize(tt.durations)
			require.Equal(t, tt.expected.Runs, got.Runs)
			require.Equal(t, tt.expected.Total, got.Total)
			require.Equal(t, tt.expected.Min, got.Min)
			require.Equal(t, tt.expected.Max, got.Max)
			assert.InDelta(t, tt.expected.Mean, got.Mean, float64(time.Microsecond))
			assert.InDelta(t, tt.expected.StdDev, got.StdDev, float64(time.Microsecond))
		})
	}
}

func TestSummarize_UnorderedInput(t *testing.T) {
	t.Parallel()

	got := Summarize([]time.Duration{
		300 * time.Millisecond,
		100 * time.Millisecond,
		200 * time.Millisecond,
	})

	require.Equal(t, 100*time.Millisecond, got.Min)
	require.Equal(t, 300*time.Millisecond, got.Max)
}
