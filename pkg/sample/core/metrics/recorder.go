// Package metrics defines the observability ports of sample-app.
// Concrete prometheus and OpenTelemetry implementations live in
// pkg/sample/infrastructure/metrics.
package metrics

import (
	"context"
	"time"

	model "github.com/beubi/sampleapp/pkg/sample/core/domain/model"
)

// MetricRecorder records metrics about greeting runs.
type MetricRecorder interface {
	// RecordGreetingStart records that a run has begun.
	RecordGreetingStart(ctx context.Context, execution *model.GreetingExecution)

	// RecordGreetingEnd records the outcome and duration of a finished run.
	RecordGreetingEnd(ctx context.Context, execution *model.GreetingExecution)

	// RecordDuration records the execution time of an arbitrary operation.
	//
	// tags: additional labels, e.g. `{"operation": "write"}`.
	RecordDuration(ctx context.Context, name string, duration time.Duration, tags map[string]string)
}

// Tracer is an abstraction over distributed tracing.
type Tracer interface {
	// StartGreetingSpan starts a span for a run. The returned function ends
	// it and should be deferred.
	StartGreetingSpan(ctx context.Context, execution *model.GreetingExecution) (context.Context, func())

	// RecordError records err on the current span.
	RecordError(ctx context.Context, module string, err error)

	// RecordEvent adds a named event to the current span.
	RecordEvent(ctx context.Context, name string, attributes map[string]interface{})
}
