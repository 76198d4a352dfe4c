package metrics

import (
	"context"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/fx"

	config "github.com/beubi/sampleapp/pkg/sample/core/config"
	metrics "github.com/beubi/sampleapp/pkg/sample/core/metrics"
	logger "github.com/beubi/sampleapp/pkg/sample/support/util/logger"
)

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// NewMetricRecorder returns a PrometheusRecorder when metrics are enabled
// and a no-op recorder otherwise.
func NewMetricRecorder(cfg *config.Config) metrics.MetricRecorder {
	if !cfg.Sample.Metrics.Enabled {
		logger.Debugf("Metrics disabled, using NoOpMetricRecorder")
		return metrics.NewNoOpMetricRecorder()
	}
	return NewPrometheusRecorder(cfg.Sample.Metrics.Namespace)
}

// NewTracer returns an OpenTelemetryTracer when tracing is enabled and a
// no-op tracer otherwise.
func NewTracer(cfg *config.Config) metrics.Tracer {
	if !cfg.Sample.Tracing.Enabled {
		logger.Debugf("Tracing disabled, using NoOpTracer")
		return metrics.NewNoOpTracer()
	}
	return NewOpenTelemetryTracer(cfg.Sample.Tracing.InstrumentationName)
}

// registerShutdown stops every observability component that needs it when
// the application stops, reporting all failures together.
func registerShutdown(lc fx.Lifecycle, recorder metrics.MetricRecorder, tracer metrics.Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			var result *multierror.Error
			for _, c := range []interface{}{recorder, tracer} {
				if s, ok := c.(shutdowner); ok {
					if err := s.Shutdown(ctx); err != nil {
						result = multierror.Append(result, err)
					}
				}
			}
			return result.ErrorOrNil()
		},
	})
}

// Module provides the MetricRecorder and Tracer selected by configuration.
var Module = fx.Options(
	fx.Provide(NewMetricRecorder),
	fx.Provide(NewTracer),
	fx.Invoke(registerShutdown),
)
