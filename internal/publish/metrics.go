package publish

import "github.com/prometheus/client_golang/prometheus"

var (
	publishedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "govee_publish_messages_total",
			Help: "Readings handed to external publishers",
		},
		[]string{"publisher", "result"},
	)
	droppedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "govee_publish_dropped_total",
			Help: "Readings dropped because the publish queue was full",
		},
	)
)

// MetricsCollectors exposes shared publisher collectors.
func MetricsCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		publishedTotal,
		droppedTotal,
	}
}
