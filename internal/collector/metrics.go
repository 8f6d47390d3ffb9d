package collector

import (
	"github.com/joshp123/govee-collector/internal/h5075"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects ingestion counters and per-device gauges. A nil *Metrics
// records nothing.
type Metrics struct {
	events       *prometheus.CounterVec
	decodeErrors *prometheus.CounterVec
	dropped      prometheus.Counter
	knownDevices prometheus.Gauge

	temperatureCelsius *prometheus.GaugeVec
	humidityPercent    *prometheus.GaugeVec
	batteryPercent     *prometheus.GaugeVec
	lastUpdate         *prometheus.GaugeVec
}

func NewMetrics() *Metrics {
	deviceLabels := []string{"device"}
	return &Metrics{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "govee_collector_events_total",
			Help: "Radio events consumed by the collector",
		}, []string{"kind"}),
		decodeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "govee_collector_decode_errors_total",
			Help: "Advertisements from configured devices that failed to decode",
		}, []string{"reason"}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "govee_collector_unknown_updates_total",
			Help: "Advertisement updates dropped because the sender was never named",
		}),
		knownDevices: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "govee_collector_known_devices",
			Help: "Adapter identifiers mapped to a configured sensor",
		}),
		temperatureCelsius: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "govee_sensor_temperature_celsius",
			Help: "Last reported temperature (C)",
		}, deviceLabels),
		humidityPercent: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "govee_sensor_humidity_percent",
			Help: "Last reported relative humidity (%)",
		}, deviceLabels),
		batteryPercent: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "govee_sensor_battery_percent",
			Help: "Last reported battery level (%)",
		}, deviceLabels),
		lastUpdate: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "govee_sensor_last_update_timestamp_seconds",
			Help: "Capture time of the last decoded advertisement (epoch seconds)",
		}, deviceLabels),
	}
}

func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.events.Describe(ch)
	m.decodeErrors.Describe(ch)
	m.dropped.Describe(ch)
	m.knownDevices.Describe(ch)
	m.temperatureCelsius.Describe(ch)
	m.humidityPercent.Describe(ch)
	m.batteryPercent.Describe(ch)
	m.lastUpdate.Describe(ch)
}

func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.events.Collect(ch)
	m.decodeErrors.Collect(ch)
	m.dropped.Collect(ch)
	m.knownDevices.Collect(ch)
	m.temperatureCelsius.Collect(ch)
	m.humidityPercent.Collect(ch)
	m.batteryPercent.Collect(ch)
	m.lastUpdate.Collect(ch)
}

func (m *Metrics) observeEvent(kind string) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(kind).Inc()
}

func (m *Metrics) observeDecodeError(reason string) {
	if m == nil {
		return
	}
	m.decodeErrors.WithLabelValues(reason).Inc()
}

func (m *Metrics) observeDropped() {
	if m == nil {
		return
	}
	m.dropped.Inc()
}

func (m *Metrics) setKnown(n int) {
	if m == nil {
		return
	}
	m.knownDevices.Set(float64(n))
}

func (m *Metrics) observeReading(name string, reading h5075.Reading) {
	if m == nil {
		return
	}
	m.temperatureCelsius.WithLabelValues(name).Set(float64(reading.TemperatureC()))
	m.humidityPercent.WithLabelValues(name).Set(float64(reading.Humidity()))
	m.batteryPercent.WithLabelValues(name).Set(float64(reading.Battery()))
	m.lastUpdate.WithLabelValues(name).Set(float64(reading.Time().Unix()))
}
