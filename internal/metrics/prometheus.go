package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dogyears"

// Prometheus is a Recorder backed by Prometheus collectors.
type Prometheus struct {
	registry *prometheus.Registry

	submissions prometheus.Counter
	fetchTime   prometheus.Histogram
	failures    prometheus.Counter
	stale       prometheus.Counter
}

// NewPrometheus creates a recorder with its own registry. The Go runtime
// and process collectors are registered alongside the dogyears series.
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		submissions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Number of accepted age submissions.",
		}),
		fetchTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fact_fetch_seconds",
			Help:      "Latency of fact provider calls.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fact_failures_total",
			Help:      "Number of fact provider calls that failed.",
		}),
		stale: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_results_total",
			Help:      "Number of fact outcomes discarded after a reset or resubmission.",
		}),
	}
	p.registry.MustRegister(
		p.submissions, p.fetchTime, p.failures, p.stale,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return p
}

// Registry exposes the underlying registry so callers can add collectors.
func (p *Prometheus) Registry() *prometheus.Registry { return p.registry }

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

func (p *Prometheus) SubmissionStarted() { p.submissions.Inc() }

func (p *Prometheus) FactFetched(d time.Duration, err error) {
	p.fetchTime.Observe(d.Seconds())
	if err != nil {
		p.failures.Inc()
	}
}

func (p *Prometheus) SubmissionDiscarded() { p.stale.Inc() }
