// internal/sim/stats.go
//
// Aggregation of per-game guess counts into a Summary.

package sim

import (
	"math"
	"sort"
)

// summarize reduces one strategy's guess counts to descriptive statistics.
// counts must be non-empty.
func summarize(strategy Strategy, counts []int) Summary {
	n := len(counts)
	sorted := append([]int(nil), counts...)
	sort.Ints(sorted)

	var sum, wins int
	for _, c := range counts {
		sum += c
		if c <= SuccessAttempts {
			wins++
		}
	}
	mean := float64(sum) / float64(n)

	var varSum float64
	for _, c := range counts {
		d := float64(c) - mean
		varSum += d * d
	}

	return Summary{
		Strategy:    strategy,
		Games:       n,
		Mean:        mean,
		Median:      median(sorted),
		StdDev:      math.Sqrt(varSum / float64(n)),
		Min:         sorted[0],
		Max:         sorted[n-1],
		SuccessRate: float64(wins) / float64(n),
	}
}

// median of an already-sorted slice; even lengths average the middle pair.
func median(sorted []int) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}
