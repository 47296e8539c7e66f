package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shipment-photo-dashboard/internal/http/handlers"
	mw "shipment-photo-dashboard/internal/http/middleware"
	"shipment-photo-dashboard/internal/logx"
)

// readTimeout bounds every route except the upload, which streams a whole
// photo upstream and relies on the server write timeout instead.
const readTimeout = 15 * time.Second

// Deps groups everything the router mounts. Orphans and RateLimit are
// optional.
type Deps struct {
	Logger    logx.Logger
	Metrics   *mw.HTTPMetrics
	Gatherer  prometheus.Gatherer
	Base      *handlers.Handlers
	Dashboard *handlers.DashboardHandler
	Records   *handlers.RecordsHandler
	Upload    *handlers.UploadHandler
	Orphans   *handlers.OrphansHandler
	RateLimit func(http.Handler) http.Handler
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.Observability(d.Logger, d.Metrics))
	r.Use(middleware.Recoverer)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(readTimeout))

		r.Get("/", d.Dashboard.Page)
		r.Get("/api/records", d.Records.List)
		if d.Orphans != nil {
			r.Get("/api/orphans", d.Orphans.List)
		}
		r.Get("/ping", d.Base.Ping)
		r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
		if d.Gatherer != nil {
			r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
		}
	})

	r.Group(func(r chi.Router) {
		if d.RateLimit != nil {
			r.Use(d.RateLimit)
		}
		// every method lands in the handler so non-POST gets the JSON 405
		r.HandleFunc("/api/upload", d.Upload.Upload)
	})

	r.NotFound(d.Base.NotFound)
	r.MethodNotAllowed(d.Base.MethodNotAllowed)

	return r
}
