package bench

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/approx/core/model"
)

// Stats summarises a sample.
type Stats struct {
	N    int
	Min  float64
	Max  float64
	Mean float64
	Std  float64
}

// CalcStats computes min, max, mean and sample standard deviation. The
// deviation of fewer than two values is 0.
func CalcStats(values []float64) Stats {
	s := Stats{N: len(values)}
	if s.N == 0 {
		return s
	}
	s.Min = floats.Min(values)
	s.Max = floats.Max(values)
	if s.N < 2 {
		s.Mean = values[0]
		return s
	}
	s.Mean, s.Std = stat.MeanStdDev(values, nil)
	return s
}

// Summary aggregates the reports of one kind.
type Summary struct {
	Kind        model.RunKind
	Runs        int
	Passed      int
	Ratio       Stats
	HeuristicMs Stats
	ExactMs     Stats
}

// SummarizeMakespan aggregates makespan reports. Exact timings only cover
// the cases where the optimum was computed.
func SummarizeMakespan(reports []MakespanReport) Summary {
	s := Summary{Kind: model.KindMakespan, Runs: len(reports)}
	ratios := make([]float64, 0, len(reports))
	heur := make([]float64, 0, len(reports))
	var exact []float64
	for _, r := range reports {
		if r.Passed() {
			s.Passed++
		}
		ratios = append(ratios, r.Ratio())
		heur = append(heur, millis(r.HeuristicTime.Microseconds()))
		if r.HasOptimal {
			exact = append(exact, millis(r.OptimalTime.Microseconds()))
		}
	}
	s.Ratio = CalcStats(ratios)
	s.HeuristicMs = CalcStats(heur)
	s.ExactMs = CalcStats(exact)
	return s
}

// SummarizeAttendance aggregates attendance reports.
func SummarizeAttendance(reports []AttendanceReport) Summary {
	s := Summary{Kind: model.KindAttendance, Runs: len(reports)}
	ratios := make([]float64, 0, len(reports))
	heur := make([]float64, 0, len(reports))
	exact := make([]float64, 0, len(reports))
	for _, r := range reports {
		if r.Passed() {
			s.Passed++
		}
		ratios = append(ratios, r.Ratio())
		heur = append(heur, millis(r.GreedyTime.Microseconds()))
		exact = append(exact, millis(r.ExactTime.Microseconds()))
	}
	s.Ratio = CalcStats(ratios)
	s.HeuristicMs = CalcStats(heur)
	s.ExactMs = CalcStats(exact)
	return s
}

func millis(us int64) float64 { return float64(us) / 1000.0 }
