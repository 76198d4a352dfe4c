package metrics

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	model "github.com/beubi/sampleapp/pkg/sample/core/domain/model"
	metrics "github.com/beubi/sampleapp/pkg/sample/core/metrics"
	logger "github.com/beubi/sampleapp/pkg/sample/support/util/logger"
)

// GreetingSpanName is the name of the span started for every greeting run.
const GreetingSpanName = "greeting.launch"

// OpenTelemetryTracer implements metrics.Tracer on an OpenTelemetry SDK
// tracer provider. No exporter is installed unless one is passed as an
// option, so spans stay in process.
type OpenTelemetryTracer struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
}

// NewOpenTelemetryTracer creates a tracer named instrumentationName.
func NewOpenTelemetryTracer(instrumentationName string, opts ...sdktrace.TracerProviderOption) *OpenTelemetryTracer {
	provider := sdktrace.NewTracerProvider(opts...)
	return &OpenTelemetryTracer{
		provider: provider,
		tracer:   provider.Tracer(instrumentationName),
	}
}

// StartGreetingSpan starts a span for execution. The returned function
// stamps the exit status on the span and ends it.
func (t *OpenTelemetryTracer) StartGreetingSpan(ctx context.Context, execution *model.GreetingExecution) (context.Context, func()) {
	ctx, span := t.tracer.Start(ctx, GreetingSpanName, trace.WithAttributes(
		attribute.String("greeting.id", execution.ID),
		attribute.String("greeting.name", execution.Name),
	))
	return ctx, func() {
		span.SetAttributes(
			attribute.String("greeting.exit_status", execution.ExitStatus.String()),
			attribute.Int("greeting.bytes_written", execution.BytesWritten),
		)
		if execution.ExitStatus == model.ExitStatusCompleted {
			span.SetStatus(codes.Ok, "")
		} else {
			span.SetStatus(codes.Error, execution.ExitStatus.String())
		}
		span.End()
	}
}

// RecordError records err on the span carried by ctx.
func (t *OpenTelemetryTracer) RecordError(ctx context.Context, module string, err error) {
	span := trace.SpanFromContext(ctx)
	span.RecordError(err, trace.WithAttributes(attribute.String("module", module)))
	span.SetStatus(codes.Error, err.Error())
}

// RecordEvent adds an event to the span carried by ctx.
func (t *OpenTelemetryTracer) RecordEvent(ctx context.Context, name string, attributes map[string]interface{}) {
	trace.SpanFromContext(ctx).AddEvent(name, trace.WithAttributes(toAttributes(attributes)...))
}

// Shutdown flushes pending spans and stops the provider.
func (t *OpenTelemetryTracer) Shutdown(ctx context.Context) error {
	var result *multierror.Error
	if err := t.provider.ForceFlush(ctx); err != nil {
		result = multierror.Append(result, fmt.Errorf("flush tracer provider: %w", err))
	}
	if err := t.provider.Shutdown(ctx); err != nil {
		result = multierror.Append(result, fmt.Errorf("shutdown tracer provider: %w", err))
	}
	logger.Debugf("Tracer: OpenTelemetry provider shut down")
	return result.ErrorOrNil()
}

func toAttributes(attributes map[string]interface{}) []attribute.KeyValue {
	kvs := make([]attribute.KeyValue, 0, len(attributes))
	for k, v := range attributes {
		switch val := v.(type) {
		case string:
			kvs = append(kvs, attribute.String(k, val))
		case int:
			kvs = append(kvs, attribute.Int(k, val))
		case int64:
			kvs = append(kvs, attribute.Int64(k, val))
		case float64:
			kvs = append(kvs, attribute.Float64(k, val))
		case bool:
			kvs = append(kvs, attribute.Bool(k, val))
		default:
			kvs = append(kvs, attribute.String(k, fmt.Sprintf("%v", val)))
		}
	}
	return kvs
}

var _ metrics.Tracer = (*OpenTelemetryTracer)(nil)
