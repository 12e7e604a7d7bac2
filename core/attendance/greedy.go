package attendance

import (
	"math"
	"sort"

	"github.com/kilianp07/approx/core/model"
)

// Detail reports the totals of both greedy strategies.
type Detail struct {
	// SmallFirst is the total admitted walking groups in ascending order.
	SmallFirst float64
	// LargeFirst is the total admitted walking groups in descending order.
	LargeFirst float64
}

// Best returns the larger of the two strategy totals.
func (d Detail) Best() float64 {
	return math.Max(d.SmallFirst, d.LargeFirst)
}

// Greedy returns the best of the small-first and large-first admission totals.
func Greedy(groups []float64, capacity float64) (float64, error) {
	d, err := GreedyDetail(groups, capacity)
	if err != nil {
		return 0, err
	}
	return d.Best(), nil
}

// GreedyDetail runs both greedy strategies and returns their totals. The
// input slice is not modified.
func GreedyDetail(groups []float64, capacity float64) (Detail, error) {
	if err := model.ValidateCapacity(capacity); err != nil {
		return Detail{}, err
	}
	if err := model.ValidateValues("group", groups); err != nil {
		return Detail{}, err
	}

	sorted := append([]float64(nil), groups...)
	sort.Float64s(sorted)
	return greedyWalks(sorted, capacity), nil
}

// greedyWalks runs both walks over groups sorted in ascending order.
func greedyWalks(sorted []float64, capacity float64) Detail {
	var d Detail
	for _, g := range sorted {
		if d.SmallFirst+g > capacity {
			break
		}
		d.SmallFirst += g
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		g := sorted[i]
		if d.LargeFirst+g > capacity {
			break
		}
		d.LargeFirst += g
	}
	return d
}
