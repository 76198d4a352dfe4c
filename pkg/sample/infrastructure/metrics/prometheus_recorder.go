package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	model "github.com/beubi/sampleapp/pkg/sample/core/domain/model"
	metrics "github.com/beubi/sampleapp/pkg/sample/core/metrics"
	logger "github.com/beubi/sampleapp/pkg/sample/support/util/logger"
)

// PrometheusRecorder is a prometheus implementation of metrics.MetricRecorder.
// It keeps its own registry; nothing is served over the network.
type PrometheusRecorder struct {
	registry *prometheus.Registry

	greetingStartedTotal    *prometheus.CounterVec
	greetingStatusTotal     *prometheus.CounterVec
	greetingDurationSeconds *prometheus.HistogramVec
	greetingBytesTotal      *prometheus.CounterVec
	operationDuration       *prometheus.HistogramVec
}

// NewPrometheusRecorder creates a recorder whose metric names are prefixed
// with namespace.
func NewPrometheusRecorder(namespace string) *PrometheusRecorder {
	registry := prometheus.NewRegistry()

	r := &PrometheusRecorder{
		registry: registry,
		greetingStartedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "greeting_started_total",
			Help:      "Total number of greeting runs started.",
		}, []string{"name"}),
		greetingStatusTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "greeting_status_total",
			Help:      "Total number of finished greeting runs by exit status.",
		}, []string{"name", "exit_status"}),
		greetingDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "greeting_duration_seconds",
			Help:      "Duration of greeting runs.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"name", "exit_status"}),
		greetingBytesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "greeting_bytes_written_total",
			Help:      "Total bytes written to standard output.",
		}, []string{"name"}),
		operationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of named operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	registry.MustRegister(
		r.greetingStartedTotal,
		r.greetingStatusTotal,
		r.greetingDurationSeconds,
		r.greetingBytesTotal,
		r.operationDuration,
	)
	return r
}

// Registry exposes the recorder's registry, mainly for tests.
func (r *PrometheusRecorder) Registry() *prometheus.Registry {
	return r.registry
}

// RecordGreetingStart increments the started counter.
func (r *PrometheusRecorder) RecordGreetingStart(ctx context.Context, execution *model.GreetingExecution) {
	r.greetingStartedTotal.WithLabelValues(execution.Name).Inc()
}

// RecordGreetingEnd records status, duration and bytes written.
func (r *PrometheusRecorder) RecordGreetingEnd(ctx context.Context, execution *model.GreetingExecution) {
	status := execution.ExitStatus.String()
	r.greetingStatusTotal.WithLabelValues(execution.Name, status).Inc()
	r.greetingDurationSeconds.WithLabelValues(execution.Name, status).Observe(execution.Duration().Seconds())
	r.greetingBytesTotal.WithLabelValues(execution.Name).Add(float64(execution.BytesWritten))
}

// RecordDuration observes duration under the "operation" label. Tags are
// only logged since the label set of a histogram is fixed.
func (r *PrometheusRecorder) RecordDuration(ctx context.Context, name string, duration time.Duration, tags map[string]string) {
	r.operationDuration.WithLabelValues(name).Observe(duration.Seconds())
	if len(tags) > 0 {
		logger.Debugf("Metrics: duration %s=%v tags=%v", name, duration, tags)
	}
}

var _ metrics.MetricRecorder = (*PrometheusRecorder)(nil)
