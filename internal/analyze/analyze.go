package analyze

import (
	"errors"
	"fmt"
	"sort"

	"github.com/montanaflynn/stats"
)

// Errors returned by Summarize for inputs that yield no summary. Both are
// reported and the file is skipped; neither aborts the run.
var (
	ErrNoValidSamples = errors.New("no valid samples after filtering")
	ErrTooFewSamples  = errors.New("too few valid samples for quantile estimation")
)

// Summary is the derived, immutable statistics snapshot for one file's valid
// samples. All values are nanoseconds. Percentile fields are monotonically
// non-decreasing in the order Min, P25, P50, P75, P90, P99, P999, Max.
type Summary struct {
	Min  float64
	P25  float64
	P50  float64
	P75  float64
	P90  float64
	P99  float64
	P999 float64
	Max  float64

	// Extras surfaced in verbose mode.
	Mean   float64
	StdDev float64

	ValidCount int
}

// Tail percentiles fall back to Max below these sample counts. The fallback
// is a deliberate simplification inherited from the harness, not a rigorous
// estimator; keep as is.
const (
	minSamplesP90  = 10
	minSamplesP99  = 100
	minSamplesP999 = 1000
)

// Summarize partitions samples into valid (>= 0) and excluded (< 0) groups
// and computes the summary over the valid group. It returns the summary, the
// exclusion count, and an error when no summary is possible: all samples
// invalid (ErrNoValidSamples) or fewer than two valid samples, where the
// quantile estimator is undefined (ErrTooFewSamples).
func Summarize(samples []int64) (*Summary, int, error) {
	valid := make([]float64, 0, len(samples))
	excluded := 0
	for _, v := range samples {
		if v >= 0 {
			valid = append(valid, float64(v))
		} else {
			excluded++
		}
	}

	if len(valid) == 0 {
		return nil, excluded, ErrNoValidSamples
	}
	if len(valid) < 2 {
		return nil, excluded, fmt.Errorf("%w (have %d)", ErrTooFewSamples, len(valid))
	}

	sort.Float64s(valid)
	data := stats.Float64Data(valid)

	min, err := data.Min()
	if err != nil {
		return nil, excluded, fmt.Errorf("min: %w", err)
	}
	max, err := data.Max()
	if err != nil {
		return nil, excluded, fmt.Errorf("max: %w", err)
	}
	mean, err := data.Mean()
	if err != nil {
		return nil, excluded, fmt.Errorf("mean: %w", err)
	}
	stdDev, err := data.StandardDeviation()
	if err != nil {
		return nil, excluded, fmt.Errorf("stddev: %w", err)
	}

	s := &Summary{
		Min:        min,
		Max:        max,
		Mean:       mean,
		StdDev:     stdDev,
		ValidCount: len(valid),
	}

	// Quartiles always have enough data here (len >= 2). For very small
	// sets the exclusive estimator extrapolates past the observed range;
	// pin to [min, max] so the summary stays monotone.
	s.P25 = clamp(cutPoint(valid, 1, 4), min, max)
	s.P50 = clamp(cutPoint(valid, 2, 4), min, max)
	s.P75 = clamp(cutPoint(valid, 3, 4), min, max)

	s.P90 = tailPercentile(valid, 9, 10, minSamplesP90, max)
	s.P99 = tailPercentile(valid, 99, 100, minSamplesP99, max)
	s.P999 = tailPercentile(valid, 999, 1000, minSamplesP999, max)

	return s, excluded, nil
}

// tailPercentile returns cut point i of n, or max when the sample count is
// below the fallback threshold.
func tailPercentile(sorted []float64, i, n, minSamples int, max float64) float64 {
	if len(sorted) < minSamples {
		return max
	}
	return cutPoint(sorted, i, n)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
