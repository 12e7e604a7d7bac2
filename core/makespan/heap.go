package makespan

// processor is one load accumulator tracked by the LPT heap.
type processor struct {
	id   int
	load float64
}

// loadHeap is a min-heap of processors ordered by load. Ties are broken by id
// so that assignments are deterministic.
type loadHeap []processor

func (h loadHeap) Len() int { return len(h) }

func (h loadHeap) Less(i, j int) bool {
	if h[i].load == h[j].load {
		return h[i].id < h[j].id
	}
	return h[i].load < h[j].load
}

func (h loadHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *loadHeap) Push(x any) {
	*h = append(*h, x.(processor))
}

func (h *loadHeap) Pop() any {
	old := *h
	n := len(old)
	p := old[n-1]
	*h = old[:n-1]
	return p
}
