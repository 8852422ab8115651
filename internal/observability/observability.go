package observability

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/cricket-club/internal/config"
	"github.com/riskibarqy/cricket-club/internal/platform/logging"
)

// Runtime holds the process-wide telemetry started for one service run.
type Runtime struct {
	logger *logging.Logger

	tracingShutdown func(context.Context) error
	profiler        stopper
	debug           *debugServer
}

type stopper interface {
	Stop() error
}

// Start brings up tracing, continuous profiling and the debug listener in
// that order. Anything already started is stopped again when a later step fails.
func Start(cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}
	rt := &Runtime{logger: logger}

	rt.tracingShutdown = startTracing(cfg, logger)

	profiler, err := startProfiler(cfg, logger)
	if err != nil {
		_ = rt.Stop(context.Background())
		return nil, errors.Wrap(err, "start pyroscope")
	}
	rt.profiler = profiler

	debug, err := startDebugServer(cfg, logger)
	if err != nil {
		_ = rt.Stop(context.Background())
		return nil, errors.Wrap(err, "start pprof")
	}
	rt.debug = debug

	return rt, nil
}

// Stop flushes and releases everything Start brought up, in reverse order.
func (r *Runtime) Stop(ctx context.Context) error {
	if r == nil {
		return nil
	}

	var errs error
	if r.debug != nil {
		if err := r.debug.shutdown(ctx); err != nil {
			errs = errors.CombineErrors(errs, errors.Wrap(err, "stop pprof"))
		}
	}
	if r.profiler != nil {
		if err := r.profiler.Stop(); err != nil {
			errs = errors.CombineErrors(errs, errors.Wrap(err, "stop pyroscope"))
		}
	}
	if r.tracingShutdown != nil {
		if err := r.tracingShutdown(ctx); err != nil {
			errs = errors.CombineErrors(errs, errors.Wrap(err, "flush traces"))
		}
	}
	return errs
}
