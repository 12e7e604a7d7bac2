package metrics

import (
	"time"

	"github.com/kilianp07/approx/core/model"
)

// RunEvent describes one heuristic run, optionally compared with the exact
// solver.
type RunEvent struct {
	RunID string
	Kind  model.RunKind
	// Case names the table entry for makespan runs; empty for random runs.
	Case string
	// Size is the number of jobs or groups in the input.
	Size          int
	Heuristic     float64
	Exact         float64
	HasExact      bool
	Ratio         float64
	HeuristicTime time.Duration
	ExactTime     time.Duration
	Passed        bool
	Time          time.Time
}

// MetricsSink records run events for observability purposes.
type MetricsSink interface {
	RecordRun(ev RunEvent) error
}

// SummaryEvent aggregates the runs of one kind at the end of a suite.
type SummaryEvent struct {
	Kind      model.RunKind
	Runs      int
	Passed    int
	RatioMin  float64
	RatioMax  float64
	RatioMean float64
	Time      time.Time
}

// SummaryRecorder is implemented by sinks able to record suite summaries.
type SummaryRecorder interface {
	RecordSummary(ev SummaryEvent) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordRun(RunEvent) error { return nil }

// RecordSummary discards the summary.
func (NopSink) RecordSummary(SummaryEvent) error { return nil }
