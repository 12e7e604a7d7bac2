package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/kilianp07/approx/core/bench"
)

// Row is one run of a suite in export form.
type Row struct {
	Kind        string    `json:"kind"`
	ID          string    `json:"id"`
	Case        string    `json:"case,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Size        int       `json:"size"`
	Heuristic   float64   `json:"heuristic"`
	Exact       float64   `json:"exact"`
	HasExact    bool      `json:"has_exact"`
	Ratio       float64   `json:"ratio"`
	HeuristicUS int64     `json:"heuristic_us"`
	ExactUS     int64     `json:"exact_us"`
	Passed      bool      `json:"passed"`
}

// SummaryRow is the export form of bench.Summary.
type SummaryRow struct {
	Kind          string  `json:"kind"`
	Runs          int     `json:"runs"`
	Passed        int     `json:"passed"`
	RatioMin      float64 `json:"ratio_min"`
	RatioMax      float64 `json:"ratio_max"`
	RatioMean     float64 `json:"ratio_mean"`
	RatioStd      float64 `json:"ratio_std"`
	HeuristicMsMu float64 `json:"heuristic_ms_mean"`
	ExactMsMu     float64 `json:"exact_ms_mean"`
}

// Rows flattens the reports of a suite, makespan runs first.
func Rows(res bench.SuiteResult) []Row {
	rows := make([]Row, 0, len(res.Makespan)+len(res.Attendance))
	for _, r := range res.Makespan {
		rows = append(rows, Row{
			Kind:        "makespan",
			ID:          r.ID,
			Case:        r.Case.Name,
			Timestamp:   r.Time,
			Size:        len(r.Case.Jobs),
			Heuristic:   r.Makespan,
			Exact:       r.Optimal,
			HasExact:    r.HasOptimal,
			Ratio:       r.Ratio(),
			HeuristicUS: r.HeuristicTime.Microseconds(),
			ExactUS:     r.OptimalTime.Microseconds(),
			Passed:      r.Passed(),
		})
	}
	for _, r := range res.Attendance {
		rows = append(rows, Row{
			Kind:        "attendance",
			ID:          r.ID,
			Timestamp:   r.Time,
			Size:        len(r.Groups),
			Heuristic:   r.Approx,
			Exact:       r.Optimal,
			HasExact:    true,
			Ratio:       r.Ratio(),
			HeuristicUS: r.GreedyTime.Microseconds(),
			ExactUS:     r.ExactTime.Microseconds(),
			Passed:      r.Passed(),
		})
	}
	return rows
}

// Summaries converts the suite summaries to their export form.
func Summaries(sums []bench.Summary) []SummaryRow {
	out := make([]SummaryRow, len(sums))
	for i, s := range sums {
		out[i] = SummaryRow{
			Kind:          s.Kind.String(),
			Runs:          s.Runs,
			Passed:        s.Passed,
			RatioMin:      s.Ratio.Min,
			RatioMax:      s.Ratio.Max,
			RatioMean:     s.Ratio.Mean,
			RatioStd:      s.Ratio.Std,
			HeuristicMsMu: s.HeuristicMs.Mean,
			ExactMsMu:     s.ExactMs.Mean,
		}
	}
	return out
}

// WriteJSON writes the runs and summaries of a suite to w.
func WriteJSON(w io.Writer, res bench.SuiteResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Runs      []Row        `json:"runs"`
		Summaries []SummaryRow `json:"summaries"`
	}{Rows(res), Summaries(res.Summaries)})
}

// WriteCSV writes one line per run of the suite to w.
func WriteCSV(w io.Writer, res bench.SuiteResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"kind", "id", "case", "timestamp", "size", "heuristic", "exact", "ratio", "heuristic_us", "exact_us", "passed"}); err != nil {
		return err
	}
	for _, r := range Rows(res) {
		exact := ""
		if r.HasExact {
			exact = formatFloat(r.Exact)
		}
		rec := []string{
			r.Kind,
			r.ID,
			r.Case,
			r.Timestamp.Format(time.RFC3339Nano),
			strconv.Itoa(r.Size),
			formatFloat(r.Heuristic),
			exact,
			formatFloat(r.Ratio),
			strconv.FormatInt(r.HeuristicUS, 10),
			strconv.FormatInt(r.ExactUS, 10),
			strconv.FormatBool(r.Passed),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSummaryCSV writes one line per summary to w.
func WriteSummaryCSV(w io.Writer, sums []bench.Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"kind", "runs", "passed", "ratio_min", "ratio_max", "ratio_mean", "ratio_std", "heuristic_ms_mean", "exact_ms_mean"}); err != nil {
		return err
	}
	for _, s := range Summaries(sums) {
		rec := []string{
			s.Kind,
			strconv.Itoa(s.Runs),
			strconv.Itoa(s.Passed),
			formatFloat(s.RatioMin),
			formatFloat(s.RatioMax),
			formatFloat(s.RatioMean),
			formatFloat(s.RatioStd),
			formatFloat(s.HeuristicMsMu),
			formatFloat(s.ExactMsMu),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
