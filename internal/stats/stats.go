// Package stats aggregates run durations into summary statistics.
package stats

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// Summary holds aggregate statistics over a set of run durations.
type Summary struct {
	Runs   int
	Total  time.Duration
	Min    time.Duration
	Max    time.Duration
	Mean   time.Duration
	StdDev time.Duration
}

// Summarize computes summary statistics for the given durations. The
// standard deviation is zero when fewer than two samples are present.
func Summarize(durations []time.Duration) Summary {
	if len(durations) == 0 {
		return Summary{}
	}

	samples := make([]float64, len(durations))
	s := Summary{
		Runs: len(durations),
		Min:  durations[0],
		Max:  durations[0],
	}
	for i, d := range durations {
		samples[i] = float64(d)
		s.Total += d
		if d < s.Min {
			s.Min = d
		}
		if d > s.Max {
			s.Max = d
		}
	}

	s.Mean = time.Duration(stat.Mean(samples, nil))
	if len(samples) > 1 {
		s.StdDev = time.Duration(stat.StdDev(samples, nil))
	}

	return s
}
