// Package metrics holds the Prometheus collectors for the PetNet server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "petnet",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "petnet",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "petnet",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	postsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "petnet",
			Subsystem: "feed",
			Name:      "posts_created_total",
			Help:      "Total number of posts created.",
		},
	)

	followToggles = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "petnet",
			Subsystem: "social",
			Name:      "follow_toggles_total",
			Help:      "Total number of follow toggles, by resulting state.",
		},
		[]string{"result"},
	)

	reportsFiled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "petnet",
			Subsystem: "moderation",
			Name:      "reports_filed_total",
			Help:      "Total number of moderation reports filed.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		postsCreated,
		followToggles,
		reportsFiled,
	)
}

// Handler returns the /metrics endpoint handler for the registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// IncrementInFlight marks a request as started.
func IncrementInFlight() { httpInFlight.Inc() }

// DecrementInFlight marks a request as finished.
func DecrementInFlight() { httpInFlight.Dec() }

// RecordHTTPRequest records one completed HTTP request.
func RecordHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequests.WithLabelValues(method, path, status).Inc()
	httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordPostCreated counts a new post.
func RecordPostCreated() { postsCreated.Inc() }

// RecordFollowToggle counts a follow toggle. result is "followed" or
// "unfollowed".
func RecordFollowToggle(result string) { followToggles.WithLabelValues(result).Inc() }

// RecordReportFiled counts a new moderation report.
func RecordReportFiled() { reportsFiled.Inc() }
