// Package statistics provides the order-statistic helpers behind the
// engine's resampled confidence intervals.
package statistics

import (
	"math"
	"sort"
)

// Percentile returns the q-th percentile (0-100) of sorted, interpolating
// linearly between the two nearest order statistics. sorted must be in
// ascending order; an empty slice yields 0.
func Percentile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	pos := q / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// PercentileInterval sorts draws in place and returns the central interval
// covering the given confidence level, e.g. 0.95 for [2.5, 97.5].
// Fewer than 2 draws yield a degenerate interval at the single value.
func PercentileInterval(draws []float64, confidenceLevel float64) (lower, upper float64) {
	if len(draws) == 0 {
		return 0, 0
	}
	if len(draws) == 1 {
		return draws[0], draws[0]
	}
	sort.Float64s(draws)
	alpha := (1 - confidenceLevel) / 2 * 100
	return Percentile(draws, alpha), Percentile(draws, 100-alpha)
}
