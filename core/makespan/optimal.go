package makespan

import (
	"fmt"
	"math"
	"sort"

	"github.com/kilianp07/approx/core/model"
)

// MaxOptimalJobs bounds the input size accepted by Optimal.
const MaxOptimalJobs = 16

// Optimal computes the exact minimum makespan by depth-first branch and bound.
// It is exponential in the number of jobs and refuses more than
// MaxOptimalJobs jobs with model.ErrInputTooLarge.
func Optimal(jobs []float64, processors int) (float64, error) {
	return OptimalLimit(jobs, processors, MaxOptimalJobs)
}

// OptimalLimit is Optimal with a caller supplied job limit.
func OptimalLimit(jobs []float64, processors int, limit int) (float64, error) {
	if err := model.ValidateProcessors(processors); err != nil {
		return 0, err
	}
	if err := model.ValidateValues("job", jobs); err != nil {
		return 0, err
	}
	if len(jobs) > limit {
		return 0, fmt.Errorf("%w: %d jobs exceeds limit of %d", model.ErrInputTooLarge, len(jobs), limit)
	}
	if len(jobs) == 0 {
		return 0, nil
	}

	sorted := append([]float64(nil), jobs...)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	lb, err := LowerBound(sorted, processors)
	if err != nil {
		return 0, err
	}
	best, err := Schedule(sorted, processors)
	if err != nil {
		return 0, err
	}
	if best <= lb {
		return best, nil
	}

	m := processors
	if m > len(sorted) {
		m = len(sorted)
	}
	loads := make([]float64, m)

	var search func(i int, current float64)
	search = func(i int, current float64) {
		if current >= best {
			return
		}
		if i == len(sorted) {
			best = current
			return
		}
		for p := 0; p < m; p++ {
			if seenLoad(loads[:p], loads[p]) {
				continue
			}
			old := loads[p]
			loads[p] = old + sorted[i]
			search(i+1, math.Max(current, loads[p]))
			loads[p] = old
			if best <= lb {
				return
			}
		}
	}
	search(0, 0)
	return best, nil
}

// seenLoad reports whether an earlier processor already has this load, in
// which case placing the job there again yields a symmetric subtree.
func seenLoad(prev []float64, load float64) bool {
	for _, l := range prev {
		if l == load {
			return true
		}
	}
	return false
}
