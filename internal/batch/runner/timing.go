package runner

import (
	"slices"
	"time"
)

// Timing summarises how long the measured runs of one case took.
type Timing struct {
	Runs int           `json:"runs"`
	Min  time.Duration `json:"min"`
	Max  time.Duration `json:"max"`
	Mean time.Duration `json:"mean"`
	P50  time.Duration `json:"p50"`
	P95  time.Duration `json:"p95"`
	P99  time.Duration `json:"p99"`
}

func newTiming(samples []time.Duration) Timing {
	if len(samples) == 0 {
		return Timing{}
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	var total time.Duration
	for _, d := range sorted {
		total += d
	}

	return Timing{
		Runs: len(sorted),
		Min:  sorted[0],
		Max:  sorted[len(sorted)-1],
		Mean: total / time.Duration(len(sorted)),
		P50:  nearestRank(sorted, 50),
		P95:  nearestRank(sorted, 95),
		P99:  nearestRank(sorted, 99),
	}
}

// nearestRank picks the smallest sample with at least p percent of the
// samples at or below it. sorted must be non-empty and ascending.
func nearestRank(sorted []time.Duration, p int) time.Duration {
	rank := (p*len(sorted) + 99) / 100
	return sorted[max(rank, 1)-1]
}
