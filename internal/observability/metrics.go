package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "launch_score"

// Metrics holds the Prometheus collectors for the launch score service.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec // labels: route, outcome={ok,error}

	// Upstream weather provider metrics.
	UpstreamRequests *prometheus.CounterVec   // labels: endpoint={weather,forecast}, outcome={success,rate_limited,upstream_error,network_error}
	UpstreamDuration *prometheus.HistogramVec // labels: endpoint={weather,forecast}

	CompositeScore prometheus.Histogram

	// Score event publishing metrics.
	ScoreEventsPublished prometheus.Counter
	ScorePublishErrors   prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.HTTPRequests,
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.CompositeScore,
		m.ScoreEventsPublished,
		m.ScorePublishErrors,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "API requests by route and outcome.",
		}, []string{"route", "outcome"}),
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Weather provider requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_duration_seconds",
			Help:      "Weather provider request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),
		CompositeScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "composite_score",
			Help:      "Distribution of computed composite launch scores.",
			Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		}),
		ScoreEventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "score_events_published_total",
			Help:      "Score events written to the event sink.",
		}),
		ScorePublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "score_publish_errors_total",
			Help:      "Score events that failed to publish.",
		}),
	}
}
