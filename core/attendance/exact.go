package attendance

import (
	"fmt"
	"sort"

	"github.com/kilianp07/approx/core/model"
)

const (
	// DefaultMaxExactGroups is the guard applied by Exact.
	DefaultMaxExactGroups = 24
	// MaxMaskGroups is the largest input a uint64 subset mask can enumerate.
	MaxMaskGroups = 62
)

// Exact returns the optimal admitted total by enumerating every subset of
// groups. It refuses more than DefaultMaxExactGroups groups with
// model.ErrInputTooLarge.
func Exact(groups []float64, capacity float64) (float64, error) {
	return ExactLimit(groups, capacity, DefaultMaxExactGroups)
}

// ExactLimit is Exact with a caller supplied guard. A limit <= 0 only applies
// the hard ceiling of the subset mask. The run time is O(2^n * n); callers
// raising the limit are responsible for bounding n.
func ExactLimit(groups []float64, capacity float64, limit int) (float64, error) {
	if err := model.ValidateCapacity(capacity); err != nil {
		return 0, err
	}
	if err := model.ValidateValues("group", groups); err != nil {
		return 0, err
	}
	if limit <= 0 || limit > MaxMaskGroups {
		limit = MaxMaskGroups
	}
	n := len(groups)
	if n > limit {
		return 0, fmt.Errorf("%w: %d groups exceeds limit of %d", model.ErrInputTooLarge, n, limit)
	}

	// Subsets are summed in ascending order so that a subset rounds to the
	// same total whatever the input order.
	sorted := append([]float64(nil), groups...)
	sort.Float64s(sorted)

	// Greedy totals are feasible subsets and seed the search, so
	// Greedy <= Exact holds even when a descending sum rounds differently.
	d := greedyWalks(sorted, capacity)
	best := d.Best()
	for mask := uint64(0); mask < uint64(1)<<uint(n); mask++ {
		var total float64
		for i := 0; i < n; i++ {
			if mask&(uint64(1)<<uint(i)) != 0 {
				total += sorted[i]
			}
		}
		if total <= capacity && total > best {
			best = total
		}
	}
	return best, nil
}
