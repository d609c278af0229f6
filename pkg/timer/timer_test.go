package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimer_ElapsedBeforeStart(t *testing.T) {
	t.Parallel()

	tm := New()
	_, err := tm.Elapsed()
	require.ErrorIs(t, err, ErrNotStarted)
}

func TestTimer_ElapsedBeforeStop(t *testing.T) {
	t.Parallel()

	tm := New()
	tm.Start()
	_, err := tm.Elapsed()
	require.ErrorIs(t, err, ErrNotStopped)
	require.True(t, tm.Running())
}

func TestTimer_MeasuresSleep(t *testing.T) {
	t.Parallel()

	const nap = 20 * time.Millisecond

	tm := New()
	tm.Start()
	time.Sleep(nap)
	tm.Stop()

	d, err := tm.Elapsed()
	require.NoError(t, err)
	require.GreaterOrEqual(t, d, nap)
	require.False(t, tm.Running())
}

func TestTimer_StartWhileRunningIsNoop(t *testing.T) {
	t.Parallel()

	tm := New()
	tm.Start()
	time.Sleep(5 * time.Millisecond)
	tm.Start() // must not reset the start reading
	tm.Stop()

	d, err := tm.Elapsed()
	require.NoError(t, err)
	require.GreaterOrEqual(t, d, 5*time.Millisecond)
}

func TestTimer_WithGCDisabled(t *testing.T) {
	tm := New(WithGCDisabled())
	tm.Start()
	time.Sleep(time.Millisecond)
	tm.Stop()

	d, err := tm.Elapsed()
	require.NoError(t, err)
	require.Positive(t, d)
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{
			name:     "seconds",
			duration: 1500 * time.Millisecond,
			expected: "1.5 s",
		},
		{
			name:     "milliseconds",
			duration: 2500 * time.Microsecond,
			expected: "2.5 ms",
		},
		{
			name:     "microseconds",
			duration: 29476 * time.Nanosecond,
			expected: "29.476 µs",
		},
		{
			name:     "nanoseconds",
			duration: 500 * time.Nanosecond,
			expected: "500 ns",
		},
		{
			name:     "zero",
			duration: 0,
			expected: "0 ns",
		},
		{
			name:     "exactly one microsecond stays in nanoseconds",
			duration: time.Microsecond,
			expected: "1000 ns",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Format(tt.duration))
		})
	}
}
