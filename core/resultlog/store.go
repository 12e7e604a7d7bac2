package resultlog

import (
	"context"
	"time"

	"github.com/kilianp07/approx/core/model"
)

// Record captures one heuristic run and its comparison with the exact solver.
type Record struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Kind      model.RunKind `json:"kind"`
	Case      string        `json:"case,omitempty"`
	Input     []float64     `json:"input"`
	// Processors is set for makespan runs, Capacity for attendance runs.
	Processors int     `json:"processors,omitempty"`
	Capacity   float64 `json:"capacity,omitempty"`
	// Expected is the upper bound a makespan case must not exceed; 0 when unset.
	Expected        float64 `json:"expected,omitempty"`
	Heuristic       float64 `json:"heuristic"`
	Exact           float64 `json:"exact"`
	ExactComputed   bool    `json:"exact_computed"`
	Ratio           float64 `json:"ratio"`
	HeuristicMicros int64   `json:"heuristic_us"`
	ExactMicros     int64   `json:"exact_us"`
	Passed          bool    `json:"passed"`
}

// Query defines filters for retrieving records.
type Query struct {
	Start time.Time
	End   time.Time
	Kind  model.RunKind
	Case  string
	// Limit keeps only the most recent matches when positive.
	Limit int
}

// Match reports whether r satisfies the time, kind and case filters.
func (q Query) Match(r Record) bool {
	if !q.Start.IsZero() && r.Timestamp.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && r.Timestamp.After(q.End) {
		return false
	}
	if q.Kind != 0 && r.Kind != q.Kind {
		return false
	}
	if q.Case != "" && r.Case != q.Case {
		return false
	}
	return true
}

func (q Query) tail(recs []Record) []Record {
	if q.Limit > 0 && len(recs) > q.Limit {
		return recs[len(recs)-q.Limit:]
	}
	return recs
}

// Store persists Records in append-only fashion and supports querying.
type Store interface {
	Append(ctx context.Context, rec Record) error
	Query(ctx context.Context, q Query) ([]Record, error)
	Close() error
}
