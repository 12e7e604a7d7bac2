package mqtt

import (
	"time"

	coremetrics "github.com/kilianp07/approx/core/metrics"
)

// RunMessage is the JSON payload published for each run.
type RunMessage struct {
	RunID       string    `json:"run_id"`
	Kind        string    `json:"kind"`
	Case        string    `json:"case,omitempty"`
	Size        int       `json:"size"`
	Heuristic   float64   `json:"heuristic"`
	Exact       *float64  `json:"exact,omitempty"`
	Ratio       float64   `json:"ratio"`
	HeuristicUS int64     `json:"heuristic_us"`
	ExactUS     int64     `json:"exact_us,omitempty"`
	Passed      bool      `json:"passed"`
	Timestamp   time.Time `json:"timestamp"`
}

// SummaryMessage is the JSON payload published at the end of a suite.
type SummaryMessage struct {
	Kind      string    `json:"kind"`
	Runs      int       `json:"runs"`
	Passed    int       `json:"passed"`
	RatioMin  float64   `json:"ratio_min"`
	RatioMax  float64   `json:"ratio_max"`
	RatioMean float64   `json:"ratio_mean"`
	Timestamp time.Time `json:"timestamp"`
}

func newRunMessage(ev coremetrics.RunEvent) RunMessage {
	m := RunMessage{
		RunID:       ev.RunID,
		Kind:        ev.Kind.String(),
		Case:        ev.Case,
		Size:        ev.Size,
		Heuristic:   ev.Heuristic,
		Ratio:       ev.Ratio,
		HeuristicUS: ev.HeuristicTime.Microseconds(),
		Passed:      ev.Passed,
		Timestamp:   ev.Time,
	}
	if ev.HasExact {
		exact := ev.Exact
		m.Exact = &exact
		m.ExactUS = ev.ExactTime.Microseconds()
	}
	return m
}

func newSummaryMessage(ev coremetrics.SummaryEvent) SummaryMessage {
	return SummaryMessage{
		Kind:      ev.Kind.String(),
		Runs:      ev.Runs,
		Passed:    ev.Passed,
		RatioMin:  ev.RatioMin,
		RatioMax:  ev.RatioMax,
		RatioMean: ev.RatioMean,
		Timestamp: ev.Time,
	}
}
