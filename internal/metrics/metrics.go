package metrics

import "github.com/prometheus/client_golang/prometheus"

// Upstream call outcomes used as the "outcome" label.
const (
	OutcomeOK        = "ok"
	OutcomeHTTPError = "http_error"
	OutcomeTransport = "transport_error"
)

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewUpstreamRequestsTotal counts calls to the upstream table service by operation and outcome.
func NewUpstreamRequestsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_requests_total",
		Help: "Total number of requests sent to the upstream table service",
	}, []string{"op", "outcome"})
}

// NewOrphanedUploadsTotal counts files stored upstream whose row patch failed.
func NewOrphanedUploadsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "photo_orphaned_uploads_total",
		Help: "Total number of uploaded files that could not be attached to their row",
	})
}

// NewPhotoEventsFailedTotal counts photo events that could not be published.
func NewPhotoEventsFailedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "photo_events_publish_failed_total",
		Help: "Total number of photo.attached events that failed to publish",
	})
}
