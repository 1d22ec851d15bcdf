package observability

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/kickoff-api/internal/config"
	"github.com/riskibarqy/kickoff-api/internal/platform/logging"
)

// Telemetry holds the process-wide tracing exporter, continuous profiler and
// pprof listener so they can be stopped together.
type Telemetry struct {
	logger          *logging.Logger
	shutdownTracing func(context.Context) error
	stopProfiler    func() error
	pprof           *PprofServer
}

func Start(cfg config.Config, logger *logging.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("telemetry")

	stopProfiler, err := initProfiler(cfg, logger)
	if err != nil {
		return nil, errors.Wrap(err, "start pyroscope")
	}

	return &Telemetry{
		logger:          logger,
		shutdownTracing: initTracing(cfg, logger),
		stopProfiler:    stopProfiler,
		pprof:           startPprofServer(cfg, logger),
	}, nil
}

// Shutdown flushes spans and profiles; it keeps going past individual failures.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	var errs error
	if err := t.pprof.Shutdown(ctx); err != nil {
		errs = errors.CombineErrors(errs, errors.Wrap(err, "shutdown pprof server"))
	}
	if err := t.stopProfiler(); err != nil {
		errs = errors.CombineErrors(errs, errors.Wrap(err, "stop pyroscope"))
	}
	if err := t.shutdownTracing(ctx); err != nil {
		errs = errors.CombineErrors(errs, errors.Wrap(err, "shutdown tracing"))
	}
	return errs
}
