package metrics_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	config "github.com/beubi/sampleapp/pkg/sample/core/config"
	model "github.com/beubi/sampleapp/pkg/sample/core/domain/model"
	coremetrics "github.com/beubi/sampleapp/pkg/sample/core/metrics"
	metrics "github.com/beubi/sampleapp/pkg/sample/infrastructure/metrics"
)

func completedExecution() *model.GreetingExecution {
	exec := model.NewGreetingExecution("sampleApp")
	exec.MarkAsCompleted(13)
	return exec
}

func TestPrometheusRecorder_RecordsGreeting(t *testing.T) {
	r := metrics.NewPrometheusRecorder("sample")
	ctx := context.Background()
	exec := completedExecution()

	r.RecordGreetingStart(ctx, exec)
	r.RecordGreetingEnd(ctx, exec)

	count, err := testutil.GatherAndCount(r.Registry(),
		"sample_greeting_started_total",
		"sample_greeting_status_total",
		"sample_greeting_duration_seconds",
		"sample_greeting_bytes_written_total",
	)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestPrometheusRecorder_CountsEveryRun(t *testing.T) {
	r := metrics.NewPrometheusRecorder("sample")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		exec := completedExecution()
		r.RecordGreetingStart(ctx, exec)
		r.RecordGreetingEnd(ctx, exec)
	}

	mfs, err := r.Registry().Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() != nil {
				values[mf.GetName()] += m.GetCounter().GetValue()
			}
		}
	}
	assert.Equal(t, 3.0, values["sample_greeting_started_total"])
	assert.Equal(t, 3.0, values["sample_greeting_status_total"])
	assert.Equal(t, 39.0, values["sample_greeting_bytes_written_total"])
}

func TestPrometheusRecorder_OnlyGreetingMetrics(t *testing.T) {
	r := metrics.NewPrometheusRecorder("sample")
	exec := completedExecution()
	r.RecordGreetingStart(context.Background(), exec)
	r.RecordGreetingEnd(context.Background(), exec)

	mfs, err := r.Registry().Gather()
	require.NoError(t, err)
	require.NotEmpty(t, mfs)
	for _, mf := range mfs {
		assert.True(t, strings.HasPrefix(mf.GetName(), "sample_"), mf.GetName())
	}
}

func TestPrometheusRecorder_RecordDuration(t *testing.T) {
	r := metrics.NewPrometheusRecorder("sample")
	r.RecordDuration(context.Background(), "write", 0, map[string]string{"stream": "stdout"})

	count, err := testutil.GatherAndCount(r.Registry(), "sample_operation_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestOpenTelemetryTracer_EndsSpan(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tracer := metrics.NewOpenTelemetryTracer("test", sdktrace.WithSpanProcessor(sr))

	exec := model.NewGreetingExecution("sampleApp")
	ctx, end := tracer.StartGreetingSpan(context.Background(), exec)
	tracer.RecordEvent(ctx, "greeting.written", map[string]interface{}{"bytes": 13, "stream": "stdout"})
	exec.MarkAsCompleted(13)
	end()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, metrics.GreetingSpanName, span.Name())
	assert.Equal(t, codes.Ok, span.Status().Code)
	require.Len(t, span.Events(), 1)
	assert.Equal(t, "greeting.written", span.Events()[0].Name)

	attrs := map[string]string{}
	for _, kv := range span.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, exec.ID, attrs["greeting.id"])
	assert.Equal(t, "COMPLETED", attrs["greeting.exit_status"])

	require.NoError(t, tracer.Shutdown(context.Background()))
}

func TestOpenTelemetryTracer_RecordError(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tracer := metrics.NewOpenTelemetryTracer("test", sdktrace.WithSpanProcessor(sr))

	exec := model.NewGreetingExecution("sampleApp")
	ctx, end := tracer.StartGreetingSpan(context.Background(), exec)
	tracer.RecordError(ctx, "launcher", errors.New("broken pipe"))
	exec.MarkAsFailed(0, errors.New("broken pipe"))
	end()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestModule_SelectsImplementations(t *testing.T) {
	var (
		recorder coremetrics.MetricRecorder
		tracer   coremetrics.Tracer
	)
	app := fxtest.New(t,
		fx.Supply(config.NewConfig()),
		metrics.Module,
		fx.Populate(&recorder, &tracer),
	)
	app.RequireStart()
	app.RequireStop()

	assert.IsType(t, &metrics.PrometheusRecorder{}, recorder)
	assert.IsType(t, &metrics.OpenTelemetryTracer{}, tracer)
}

func TestModule_Disabled(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Sample.Metrics.Enabled = false
	cfg.Sample.Tracing.Enabled = false

	var (
		recorder coremetrics.MetricRecorder
		tracer   coremetrics.Tracer
	)
	app := fxtest.New(t,
		fx.Supply(cfg),
		metrics.Module,
		fx.Populate(&recorder, &tracer),
	)
	app.RequireStart()
	app.RequireStop()

	assert.IsType(t, &coremetrics.NoOpMetricRecorder{}, recorder)
	assert.IsType(t, &coremetrics.NoOpTracer{}, tracer)
}
