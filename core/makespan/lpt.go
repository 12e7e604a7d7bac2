package makespan

import (
	"container/heap"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/kilianp07/approx/core/model"
)

// Assignment is the outcome of an LPT pass.
type Assignment struct {
	// Makespan is the maximum processor load.
	Makespan float64
	// Loads holds the final load of every processor that can receive a job,
	// indexed by processor. Processors beyond the job count stay idle and are
	// not listed.
	Loads []float64
	// Jobs lists, per processor, the indices of the input jobs it received
	// in the order they were assigned.
	Jobs [][]int
}

// Schedule returns the makespan obtained by assigning jobs to processors
// with the LPT heuristic. An empty job list yields 0.
func Schedule(jobs []float64, processors int) (float64, error) {
	a, err := Assign(jobs, processors)
	if err != nil {
		return 0, err
	}
	return a.Makespan, nil
}

// Assign runs the LPT heuristic and returns the full assignment. The input
// slice is not modified.
func Assign(jobs []float64, processors int) (Assignment, error) {
	if err := model.ValidateProcessors(processors); err != nil {
		return Assignment{}, err
	}
	if err := model.ValidateValues("job", jobs); err != nil {
		return Assignment{}, err
	}

	if len(jobs) == 0 {
		return Assignment{}, nil
	}

	order := make([]int, len(jobs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return jobs[order[a]] > jobs[order[b]]
	})

	// Processors beyond the job count never receive work.
	m := min(processors, len(jobs))
	h := make(loadHeap, m)
	for i := range h {
		h[i] = processor{id: i}
	}
	heap.Init(&h)

	assigned := make([][]int, m)
	for _, j := range order {
		p := heap.Pop(&h).(processor)
		p.load += jobs[j]
		assigned[p.id] = append(assigned[p.id], j)
		heap.Push(&h, p)
	}

	loads := make([]float64, m)
	for _, p := range h {
		loads[p.id] = p.load
	}
	return Assignment{
		Makespan: floats.Max(loads),
		Loads:    loads,
		Jobs:     assigned,
	}, nil
}
