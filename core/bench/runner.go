package bench

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/approx/core/attendance"
	"github.com/kilianp07/approx/core/logger"
	"github.com/kilianp07/approx/core/makespan"
	"github.com/kilianp07/approx/core/metrics"
	"github.com/kilianp07/approx/core/model"
	"github.com/kilianp07/approx/core/resultlog"
)

// Runner times the heuristics against their exact references and reports
// every run to the result log and the metrics sink. All collaborators are
// optional.
type Runner struct {
	Store resultlog.Store
	Sink  metrics.MetricsSink
	Log   logger.Logger
	// Out receives the text reports of RunSuite; nil discards them.
	Out io.Writer
	// MaxExactGroups is the brute-force guard; 0 uses attendance.DefaultMaxExactGroups.
	MaxExactGroups int
	// MaxOptimalJobs caps the exact makespan search; 0 uses makespan.MaxOptimalJobs.
	MaxOptimalJobs int
}

// SuiteResult holds every report of a suite run.
type SuiteResult struct {
	Makespan   []MakespanReport
	Attendance []AttendanceReport
	Summaries  []Summary
}

func (r *Runner) log() logger.Logger {
	if r.Log == nil {
		return logger.NopLogger{}
	}
	return r.Log
}

func (r *Runner) sink() metrics.MetricsSink {
	if r.Sink == nil {
		return metrics.NopSink{}
	}
	return r.Sink
}

func (r *Runner) exactLimit() int {
	if r.MaxExactGroups == 0 {
		return attendance.DefaultMaxExactGroups
	}
	return r.MaxExactGroups
}

func (r *Runner) optimalLimit() int {
	if r.MaxOptimalJobs == 0 {
		return makespan.MaxOptimalJobs
	}
	return r.MaxOptimalJobs
}

// RunMakespan schedules one case with LPT. With optimal set, cases small
// enough for the exact search are also solved exactly.
func (r *Runner) RunMakespan(ctx context.Context, c MakespanCase, optimal bool) (MakespanReport, error) {
	rep := MakespanReport{ID: uuid.NewString(), Time: time.Now(), Case: c}

	start := time.Now()
	a, err := makespan.Assign(c.Jobs, c.Processors)
	rep.HeuristicTime = time.Since(start)
	if err != nil {
		return MakespanReport{}, fmt.Errorf("case %s: %w", c.Name, err)
	}
	rep.Makespan = a.Makespan
	rep.Loads = a.Loads

	lb, err := makespan.LowerBound(c.Jobs, c.Processors)
	if err != nil {
		return MakespanReport{}, fmt.Errorf("case %s: %w", c.Name, err)
	}
	rep.LowerBound = lb

	if optimal {
		if len(c.Jobs) > r.optimalLimit() {
			r.log().Warnf("case %s: %d jobs, skipping exact makespan", c.Name, len(c.Jobs))
		} else {
			start = time.Now()
			opt, err := makespan.OptimalLimit(c.Jobs, c.Processors, r.optimalLimit())
			rep.OptimalTime = time.Since(start)
			if err != nil {
				return MakespanReport{}, fmt.Errorf("case %s: %w", c.Name, err)
			}
			rep.Optimal = opt
			rep.HasOptimal = true
		}
	}

	r.log().Debugw("makespan run", map[string]any{
		"case":       c.Name,
		"jobs":       len(c.Jobs),
		"processors": c.Processors,
		"makespan":   rep.Makespan,
		"passed":     rep.Passed(),
	})
	r.record(ctx, makespanRecord(rep), makespanEvent(rep))
	return rep, nil
}

// RunAttendance runs the greedy heuristic and the brute-force oracle on one
// instance.
func (r *Runner) RunAttendance(ctx context.Context, groups []float64, capacity float64) (AttendanceReport, error) {
	rep := AttendanceReport{ID: uuid.NewString(), Time: time.Now(), Groups: groups, Capacity: capacity}

	start := time.Now()
	d, err := attendance.GreedyDetail(groups, capacity)
	rep.GreedyTime = time.Since(start)
	if err != nil {
		return AttendanceReport{}, err
	}
	rep.Approx = d.Best()
	rep.SmallFirst = d.SmallFirst
	rep.LargeFirst = d.LargeFirst

	start = time.Now()
	opt, err := attendance.ExactLimit(groups, capacity, r.exactLimit())
	rep.ExactTime = time.Since(start)
	if err != nil {
		return AttendanceReport{}, err
	}
	rep.Optimal = opt

	r.log().Debugw("attendance run", map[string]any{
		"groups":   len(groups),
		"capacity": capacity,
		"approx":   rep.Approx,
		"optimal":  rep.Optimal,
		"percent":  rep.Percent(),
	})
	r.record(ctx, attendanceRecord(rep), attendanceEvent(rep))
	return rep, nil
}

// RunSuite runs every configured makespan case followed by the random
// attendance instances. Cancellation is checked between runs.
func (r *Runner) RunSuite(ctx context.Context, cfg SuiteConfig) (SuiteResult, error) {
	var res SuiteResult
	out := r.Out
	if out == nil {
		out = io.Discard
	}

	for i, c := range cfg.MakespanCases {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		rep, err := r.RunMakespan(ctx, c, cfg.Optimal)
		if err != nil {
			return res, fmt.Errorf("makespan case %d: %w", i+1, err)
		}
		res.Makespan = append(res.Makespan, rep)
		if err := WriteMakespanText(out, i+1, rep); err != nil {
			return res, err
		}
	}

	a := cfg.Attendance
	for i := 0; i < a.Runs; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		groups, capacity := RandomAttendance(randForSeed(a.Seed+int64(i)), a)
		rep, err := r.RunAttendance(ctx, groups, capacity)
		if err != nil {
			return res, fmt.Errorf("attendance run %d: %w", i, err)
		}
		res.Attendance = append(res.Attendance, rep)
		if err := WriteAttendanceText(out, rep); err != nil {
			return res, err
		}
	}

	if len(res.Makespan) > 0 {
		res.Summaries = append(res.Summaries, SummarizeMakespan(res.Makespan))
	}
	if len(res.Attendance) > 0 {
		res.Summaries = append(res.Summaries, SummarizeAttendance(res.Attendance))
	}
	for _, s := range res.Summaries {
		r.log().Infof("%s: %d/%d passed, ratio mean=%.4f min=%.4f max=%.4f",
			s.Kind, s.Passed, s.Runs, s.Ratio.Mean, s.Ratio.Min, s.Ratio.Max)
		if rec, ok := r.sink().(metrics.SummaryRecorder); ok {
			if err := rec.RecordSummary(summaryEvent(s)); err != nil {
				r.log().Errorf("record summary: %v", err)
			}
		}
	}
	return res, nil
}

// record persists the run and forwards it to the metrics sink. Failures are
// logged so that a broken sink never discards computed results.
func (r *Runner) record(ctx context.Context, rec resultlog.Record, ev metrics.RunEvent) {
	if r.Store != nil {
		if err := r.Store.Append(ctx, rec); err != nil {
			r.log().Errorf("append result log: %v", err)
		}
	}
	if err := r.sink().RecordRun(ev); err != nil {
		r.log().Errorf("record run metrics: %v", err)
	}
}

func makespanRecord(rep MakespanReport) resultlog.Record {
	return resultlog.Record{
		ID:              rep.ID,
		Timestamp:       rep.Time,
		Kind:            model.KindMakespan,
		Case:            rep.Case.Name,
		Input:           rep.Case.Jobs,
		Processors:      rep.Case.Processors,
		Expected:        rep.Case.Expected,
		Heuristic:       rep.Makespan,
		Exact:           rep.Optimal,
		ExactComputed:   rep.HasOptimal,
		Ratio:           rep.Ratio(),
		HeuristicMicros: rep.HeuristicTime.Microseconds(),
		ExactMicros:     rep.OptimalTime.Microseconds(),
		Passed:          rep.Passed(),
	}
}

func makespanEvent(rep MakespanReport) metrics.RunEvent {
	return metrics.RunEvent{
		RunID:         rep.ID,
		Kind:          model.KindMakespan,
		Case:          rep.Case.Name,
		Size:          len(rep.Case.Jobs),
		Heuristic:     rep.Makespan,
		Exact:         rep.Optimal,
		HasExact:      rep.HasOptimal,
		Ratio:         rep.Ratio(),
		HeuristicTime: rep.HeuristicTime,
		ExactTime:     rep.OptimalTime,
		Passed:        rep.Passed(),
		Time:          rep.Time,
	}
}

func attendanceRecord(rep AttendanceReport) resultlog.Record {
	return resultlog.Record{
		ID:              rep.ID,
		Timestamp:       rep.Time,
		Kind:            model.KindAttendance,
		Input:           rep.Groups,
		Capacity:        rep.Capacity,
		Heuristic:       rep.Approx,
		Exact:           rep.Optimal,
		ExactComputed:   true,
		Ratio:           rep.Ratio(),
		HeuristicMicros: rep.GreedyTime.Microseconds(),
		ExactMicros:     rep.ExactTime.Microseconds(),
		Passed:          rep.Passed(),
	}
}

func attendanceEvent(rep AttendanceReport) metrics.RunEvent {
	return metrics.RunEvent{
		RunID:         rep.ID,
		Kind:          model.KindAttendance,
		Size:          len(rep.Groups),
		Heuristic:     rep.Approx,
		Exact:         rep.Optimal,
		HasExact:      true,
		Ratio:         rep.Ratio(),
		HeuristicTime: rep.GreedyTime,
		ExactTime:     rep.ExactTime,
		Passed:        rep.Passed(),
		Time:          rep.Time,
	}
}

func summaryEvent(s Summary) metrics.SummaryEvent {
	return metrics.SummaryEvent{
		Kind:      s.Kind,
		Runs:      s.Runs,
		Passed:    s.Passed,
		RatioMin:  s.Ratio.Min,
		RatioMax:  s.Ratio.Max,
		RatioMean: s.Ratio.Mean,
		Time:      time.Now(),
	}
}
