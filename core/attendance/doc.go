// Package attendance selects whole groups under a capacity bound so that the
// admitted total is as large as possible.
//
// Greedy runs two prefix walks over the sorted groups, one from the smallest
// and one from the largest, each stopping at the first group that would
// overflow the capacity, and keeps the better total. It admits at least half
// of the optimum. Exact enumerates every subset and serves as a reference for
// small inputs.
package attendance
