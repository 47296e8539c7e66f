package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/dig"

	mw "shipment-photo-dashboard/internal/http/middleware"
	"shipment-photo-dashboard/internal/metrics"
)

// appMetrics are the service's own collectors, all registered on one
// registry that /metrics serves.
type appMetrics struct {
	HTTP          *mw.HTTPMetrics
	RateLimited   prometheus.Counter
	Upstream      *prometheus.CounterVec
	Orphaned      prometheus.Counter
	EventFailures prometheus.Counter
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func newAppMetrics(reg *prometheus.Registry) (*appMetrics, error) {
	httpMetrics, err := mw.NewHTTPMetrics(reg)
	if err != nil {
		return nil, err
	}
	m := &appMetrics{
		HTTP:          httpMetrics,
		RateLimited:   metrics.NewRateLimitExceededTotal(),
		Upstream:      metrics.NewUpstreamRequestsTotal(),
		Orphaned:      metrics.NewOrphanedUploadsTotal(),
		EventFailures: metrics.NewPhotoEventsFailedTotal(),
	}
	for _, c := range []prometheus.Collector{m.RateLimited, m.Upstream, m.Orphaned, m.EventFailures} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func registerMetrics(container *dig.Container) error {
	return provideAll(container,
		newRegistry,
		func(reg *prometheus.Registry) prometheus.Gatherer { return reg },
		newAppMetrics,
	)
}
