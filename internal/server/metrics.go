package server

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/dogyears/internal/metrics"
)

// Metrics holds the HTTP collectors and the submission recorder, all on
// one registry.
type Metrics struct {
	recorder *metrics.Prometheus
	requests *prometheus.CounterVec
	active   prometheus.Gauge
	handler  http.Handler
}

// NewMetrics creates a fresh registry with the request and submission
// series.
func NewMetrics() *Metrics {
	rec := metrics.NewPrometheus()
	m := &Metrics{
		recorder: rec,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dogyears",
			Name:      "requests_total",
			Help:      "HTTP requests by path and status code.",
		}, []string{"path", "code"}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "dogyears",
			Name:      "active_requests",
			Help:      "HTTP requests currently being served.",
		}),
	}
	rec.Registry().MustRegister(m.requests, m.active)
	m.handler = rec.Handler()
	return m
}

// Recorder returns the submission recorder for per-request controllers.
func (m *Metrics) Recorder() metrics.Recorder { return m.recorder }

// IncrementActiveRequests marks a request as started.
func (m *Metrics) IncrementActiveRequests() { m.active.Inc() }

// DecrementActiveRequests marks a request as finished.
func (m *Metrics) DecrementActiveRequests() { m.active.Dec() }

// ObserveRequest counts a finished request.
func (m *Metrics) ObserveRequest(path string, code int) {
	m.requests.WithLabelValues(path, strconv.Itoa(code)).Inc()
}

// WritePrometheus writes the registry in the exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
