package metrics

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/approx/core/metrics"
)

// PromSink records heuristic runs in Prometheus metrics.
type PromSink struct {
	runs      *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	ratio     *prometheus.HistogramVec
	lastRatio *prometheus.GaugeVec
	suiteMean *prometheus.GaugeVec
}

// NewPromSink registers run metrics on the default Prometheus registerer.
// The HTTP endpoint is started separately with StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "approx_runs_total",
		Help: "Total number of heuristic runs",
	}, []string{"kind", "passed"}))
	if err != nil {
		return nil, err
	}
	duration, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "approx_run_duration_seconds",
		Help:    "Wall time of heuristic and exact solver calls",
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
	}, []string{"kind", "solver"}))
	if err != nil {
		return nil, err
	}
	ratio, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "approx_ratio",
		Help:    "Heuristic value divided by the exact reference",
		Buckets: []float64{0.5, 0.6, 0.7, 0.8, 0.9, 0.95, 1, 1.05, 1.1, 1.25, 1.5, 2, 3},
	}, []string{"kind"}))
	if err != nil {
		return nil, err
	}
	lastRatio, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "approx_last_ratio",
		Help: "Ratio of the most recent run",
	}, []string{"kind"}))
	if err != nil {
		return nil, err
	}
	suiteMean, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "approx_suite_ratio_mean",
		Help: "Mean ratio of the last suite",
	}, []string{"kind"}))
	if err != nil {
		return nil, err
	}
	return &PromSink{runs: runs, duration: duration, ratio: ratio, lastRatio: lastRatio, suiteMean: suiteMean}, nil
}

// register adds c to reg, reusing an identical collector registered earlier.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, err
	}
	return c, nil
}

// RecordRun updates the counters, timings and ratios for one run.
func (s *PromSink) RecordRun(ev coremetrics.RunEvent) error {
	kind := ev.Kind.String()
	s.runs.WithLabelValues(kind, strconv.FormatBool(ev.Passed)).Inc()
	s.duration.WithLabelValues(kind, "heuristic").Observe(ev.HeuristicTime.Seconds())
	if ev.HasExact {
		s.duration.WithLabelValues(kind, "exact").Observe(ev.ExactTime.Seconds())
		s.ratio.WithLabelValues(kind).Observe(ev.Ratio)
	}
	s.lastRatio.WithLabelValues(kind).Set(ev.Ratio)
	return nil
}

// RecordSummary sets the suite mean ratio gauge.
func (s *PromSink) RecordSummary(ev coremetrics.SummaryEvent) error {
	s.suiteMean.WithLabelValues(ev.Kind.String()).Set(ev.RatioMean)
	return nil
}
