package bench

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// MakespanReport is the outcome of one makespan case.
type MakespanReport struct {
	ID         string
	Time       time.Time
	Case       MakespanCase
	Makespan   float64
	Loads      []float64
	LowerBound float64
	Optimal    float64
	HasOptimal bool

	HeuristicTime time.Duration
	OptimalTime   time.Duration
}

// Ratio returns makespan / optimum, or makespan / lower bound when the
// optimum was not computed.
func (r MakespanReport) Ratio() float64 {
	if r.HasOptimal {
		return ratio(r.Makespan, r.Optimal)
	}
	return ratio(r.Makespan, r.LowerBound)
}

// Passed reports whether the makespan stays within the case's expected value
// and, when known, within three times the optimum.
func (r MakespanReport) Passed() bool {
	if r.Case.Expected > 0 && r.Makespan > r.Case.Expected {
		return false
	}
	if r.HasOptimal && r.Makespan > 3*r.Optimal {
		return false
	}
	return true
}

// AttendanceReport compares the greedy heuristic with the exact optimum on
// one instance.
type AttendanceReport struct {
	ID       string
	Time     time.Time
	Groups   []float64
	Capacity float64

	Approx     float64
	SmallFirst float64
	LargeFirst float64
	Optimal    float64

	GreedyTime time.Duration
	ExactTime  time.Duration
}

// Ratio returns approx / optimum. An optimum of 0 counts as fully matched.
func (r AttendanceReport) Ratio() float64 {
	return ratio(r.Approx, r.Optimal)
}

// Percent returns the share of the optimum admitted by the heuristic.
func (r AttendanceReport) Percent() float64 {
	return r.Ratio() * 100
}

// Passed reports whether the heuristic is feasible and within half of the
// optimum.
func (r AttendanceReport) Passed() bool {
	return r.Approx <= r.Optimal && 2*r.Approx >= r.Optimal
}

func ratio(value, reference float64) float64 {
	if reference == 0 {
		return 1
	}
	return value / reference
}

const (
	makespanRule   = "-------------------------------"
	attendanceRule = "----------------------------------------------------"
)

// WriteMakespanText renders a makespan report the way the console harness
// prints it. n is the 1-based position of the case in its table.
func WriteMakespanText(w io.Writer, n int, r MakespanReport) error {
	status := "Passed"
	if !r.Passed() {
		status = "Failed"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Test Case %d (%s):\n", n, r.Case.Name)
	fmt.Fprintf(&b, "Jobs: %s\n", formatValues(r.Case.Jobs))
	fmt.Fprintf(&b, "Processors: %d\n", r.Case.Processors)
	if r.Case.Expected > 0 {
		fmt.Fprintf(&b, "Expected Makespan: %s\n", formatFloat(r.Case.Expected))
	}
	fmt.Fprintf(&b, "Computed Makespan: %s\n", formatFloat(r.Makespan))
	fmt.Fprintf(&b, "Processor Loads: %s\n", formatValues(r.Loads))
	fmt.Fprintf(&b, "Lower Bound: %s\n", formatFloat(r.LowerBound))
	if r.HasOptimal {
		fmt.Fprintf(&b, "Optimal Makespan: %s (ratio %.3f)\n", formatFloat(r.Optimal), r.Ratio())
		fmt.Fprintf(&b, "Optimal Time: %.6f seconds\n", r.OptimalTime.Seconds())
	}
	fmt.Fprintf(&b, "Algorithm Time: %.6f seconds\n", r.HeuristicTime.Seconds())
	fmt.Fprintf(&b, "Test %s\n", status)
	b.WriteString(makespanRule + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteAttendanceText renders an attendance report the way the console
// harness prints it.
func WriteAttendanceText(w io.Writer, r AttendanceReport) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Groups: %s\n", formatValues(r.Groups))
	fmt.Fprintf(&b, "Capacity: %s\n", formatFloat(r.Capacity))
	fmt.Fprintf(&b, "Algorithm Approximate Attendance: %s\n", formatFloat(r.Approx))
	fmt.Fprintf(&b, "Optimal Attendance (Brute Force): %s\n", formatFloat(r.Optimal))
	fmt.Fprintf(&b, "Algorithm guarantees at least %.2f%% of the optimal solution\n", r.Percent())
	fmt.Fprintf(&b, "Algorithm Time: %.6f seconds\n", r.GreedyTime.Seconds())
	fmt.Fprintf(&b, "Brute Force Time: %.6f seconds\n", r.ExactTime.Seconds())
	b.WriteString(attendanceRule + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatValues(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatFloat(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
