// Package stats summarises per-trial throughput samples.
package stats

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// ErrInvalidArgument is returned for inputs the statistics are undefined on.
var ErrInvalidArgument = errors.New("invalid argument")

// Summary of a set of samples.
type Summary struct {
	Mean   float64
	Median float64
	// StdDev is the population standard deviation: squared deviations are
	// divided by n, not n-1.
	StdDev float64
}

// Compute returns the mean, median and population standard deviation of
// samples. The input is not modified. An empty input is rejected with
// ErrInvalidArgument.
func Compute(samples []float64) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, errors.Wrap(ErrInvalidArgument, "no samples")
	}
	avg := mean(samples)
	return Summary{
		Mean:   avg,
		Median: median(samples),
		StdDev: stdDev(samples, avg),
	}, nil
}

// mean of a non-empty sample set.
func mean(samples []float64) float64 {
	sum := 0.0
	for _, s := range samples {
		sum += s
	}
	return sum / float64(len(samples))
}

// median sorts a copy ascending. sort.Float64s orders NaN before every other
// value, which gives a total order.
func median(samples []float64) float64 {
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func stdDev(samples []float64, avg float64) float64 {
	sumSquaredDiff := 0.0
	for _, s := range samples {
		diff := s - avg
		sumSquaredDiff += diff * diff
	}
	return math.Sqrt(sumSquaredDiff / float64(len(samples)))
}

// Speedup is the ratio of batch to individual average throughput. No
// clamping or rounding is applied.
func Speedup(batchAvg, individualAvg float64) float64 {
	return batchAvg / individualAvg
}

// Throughput converts a verification count over d seconds into verifications per second.
func Throughput(count uint64, seconds float64) float64 {
	return float64(count) / seconds
}
