package observability

import (
	"context"
	stderrors "errors"

	"github.com/kbukum/viewkit/logger"
)

// ShutdownFunc flushes and stops the installed providers.
type ShutdownFunc func(context.Context) error

// Setup installs the meter and tracer providers described by cfg. When
// telemetry is disabled it installs nothing and returns a no-op shutdown.
func Setup(ctx context.Context, cfg Config, service, version, environment string) (ShutdownFunc, error) {
	if !cfg.Enabled {
		logger.Get(logger.ComponentObservability).Debug("telemetry disabled")
		return func(context.Context) error { return nil }, nil
	}

	mp, err := InitMeter(ctx, cfg.meterConfig(service, version, environment))
	if err != nil {
		return nil, err
	}
	tp, err := InitTracer(ctx, cfg.tracerConfig(service, version, environment))
	if err != nil {
		_ = mp.Shutdown(ctx)
		return nil, err
	}

	return func(ctx context.Context) error {
		return stderrors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
	}, nil
}
