// Package makespan assigns jobs to identical parallel processors with the
// Longest Processing Time first heuristic. Jobs are sorted by decreasing
// duration and each one is handed to the least loaded processor, selected
// through a binary min-heap. The resulting makespan is at most three times the
// optimum. Optimal provides an exact branch and bound reference for small
// inputs and LowerBound the classic max(longest job, average load) bound.
package makespan
