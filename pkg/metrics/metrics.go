package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus collectors exposed by the service.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	constLabels prometheus.Labels
}

// New registers and returns the service collectors. serviceName becomes the
// constant "service" label on every metric.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		constLabels: constLabels,

		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests processed.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency in seconds.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),
	}
}

// TrackActiveAppointments exposes an appointments_active gauge whose value is
// read from count on every scrape.
func (m *Metrics) TrackActiveAppointments(count func() int) {
	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name:        "appointments_active",
		Help:        "Number of non-cancelled appointments currently stored.",
		ConstLabels: m.constLabels,
	}, func() float64 {
		return float64(count())
	})
}
