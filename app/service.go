package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/kilianp07/approx/config"
	"github.com/kilianp07/approx/core/bench"
	coremetrics "github.com/kilianp07/approx/core/metrics"
	"github.com/kilianp07/approx/core/resultlog"
	"github.com/kilianp07/approx/infra/logger"
	"github.com/kilianp07/approx/infra/metrics"

	// registers the mqtt metrics sink
	_ "github.com/kilianp07/approx/infra/mqtt"
)

// Service wires the runner to the result log and metrics sinks described by
// the configuration.
type Service struct {
	Runner *bench.Runner
	Store  resultlog.Store
	Sink   coremetrics.MetricsSink
	cfg    *config.Config
	log    logger.Logger
}

// New creates a Service from the configuration. Text reports are written to
// out.
func New(cfg *config.Config, out io.Writer) (*Service, error) {
	logg := logger.New("service")
	store, err := resultlog.Open(cfg.Logging.Backend, cfg.Logging.Path, cfg.Logging.Rotation())
	if err != nil {
		return nil, fmt.Errorf("result log: %w", err)
	}
	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		if store != nil {
			_ = store.Close()
		}
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	runner := &bench.Runner{
		Store:          store,
		Sink:           sink,
		Log:            logger.New("runner"),
		Out:            out,
		MaxExactGroups: cfg.Limits.MaxExactGroups,
		MaxOptimalJobs: cfg.Limits.MaxOptimalJobs,
	}
	return &Service{Runner: runner, Store: store, Sink: sink, cfg: cfg, log: logg}, nil
}

// Suite runs the configured suite.
func (s *Service) Suite(ctx context.Context) (bench.SuiteResult, error) {
	return s.Runner.RunSuite(ctx, s.cfg.Suite)
}

// SuiteConfig returns the suite parameters of the configuration.
func (s *Service) SuiteConfig() bench.SuiteConfig { return s.cfg.Suite }

// ServeMetrics exposes the Prometheus registry on metrics.prometheus_addr
// until ctx is cancelled.
func (s *Service) ServeMetrics(ctx context.Context) {
	go func() {
		if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr); err != nil {
			s.log.Errorf("prom server: %v", err)
		}
	}()
}

// Query reads the result log. It fails when the log is disabled.
func (s *Service) Query(ctx context.Context, q resultlog.Query) ([]resultlog.Record, error) {
	if s.Store == nil {
		return nil, fmt.Errorf("result log backend is %s", s.cfg.Logging.Backend)
	}
	return s.Store.Query(ctx, q)
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	var errs []error
	if s.Store != nil {
		if err := s.Store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("result log: %w", err))
		}
	}
	closeSink(s.Sink)
	return errors.Join(errs...)
}

func closeSink(sink coremetrics.MetricsSink) {
	switch c := sink.(type) {
	case interface{ Close() }:
		c.Close()
	case *coremetrics.MultiSink:
		for _, inner := range c.Sinks {
			closeSink(inner)
		}
	}
}
