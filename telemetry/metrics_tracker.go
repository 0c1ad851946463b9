package telemetry

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "userquery"

// EventsTotal counts pipeline events by name. Event names are a closed set
// defined by the userquery package, so cardinality stays bounded.
var EventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_total",
		Help:      "Total number of pipeline telemetry events, by event name.",
	},
	[]string{"event"},
)

// OperationDuration measures end-to-end pipeline call latency, labelled by
// the success/error event that closed the call.
var OperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "operation_duration_seconds",
		Help:      "Duration of user query pipeline calls from entry to result.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"event"},
)

// MetricsTracker exports pipeline events as Prometheus metrics. It records
// process-level counters and latencies; it is not a product analytics
// backend.
type MetricsTracker struct{}

// NewMetricsTracker returns a Tracker backed by the default Prometheus
// registry.
func NewMetricsTracker() MetricsTracker { return MetricsTracker{} }

func (MetricsTracker) TrackEvent(ctx context.Context, name string, params map[string]any) {
	EventsTotal.WithLabelValues(name).Inc()
	if ms, ok := params["duration_ms"].(int64); ok {
		OperationDuration.WithLabelValues(name).Observe(float64(ms) / 1000.0)
	}
}
