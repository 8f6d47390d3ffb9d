package refresh

import "github.com/prometheus/client_golang/prometheus"

var (
	activeSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "govee_stream_sessions",
		Help: "Open push sessions (gRPC streams and WebSockets)",
	})
	refreshCycles = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "govee_stream_refresh_cycles_total",
		Help: "Snapshots computed for push sessions",
	})
	refreshDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "govee_stream_refresh_duration_seconds",
		Help:    "Time spent building one session snapshot",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
	})
)

// MetricsCollectors exposes shared session collectors.
func MetricsCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		activeSessions,
		refreshCycles,
		refreshDuration,
	}
}
