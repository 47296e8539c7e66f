package app

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"shipment-photo-dashboard/internal/config"
	"shipment-photo-dashboard/internal/http/handlers"
	"shipment-photo-dashboard/internal/http/middleware/ratelimit"
	"shipment-photo-dashboard/internal/http/pprofserver"
	"shipment-photo-dashboard/internal/http/router"
	"shipment-photo-dashboard/internal/logx"
	"shipment-photo-dashboard/internal/repository"
	"shipment-photo-dashboard/internal/service/records"
	"shipment-photo-dashboard/internal/service/upload"
)

const pprofServerName = "pprof_server"

type routerIn struct {
	dig.In

	Logger    logx.Logger
	Metrics   *appMetrics
	Gatherer  prometheus.Gatherer
	Base      *handlers.Handlers
	Dashboard *handlers.DashboardHandler
	Records   *handlers.RecordsHandler
	Upload    *handlers.UploadHandler
	Orphans   *handlers.OrphansHandler
	RateLimit *ratelimit.Middleware
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Deps{
		Logger:    in.Logger,
		Metrics:   in.Metrics.HTTP,
		Gatherer:  in.Gatherer,
		Base:      in.Base,
		Dashboard: in.Dashboard,
		Records:   in.Records,
		Upload:    in.Upload,
		Orphans:   in.Orphans,
		RateLimit: in.RateLimit.Handler(),
	})
}

func newPprofServer(cfg *config.Config) *http.Server {
	if !cfg.Pprof.Enabled {
		return nil
	}
	return pprofserver.NewServer(pprofserver.Config{
		Addr: cfg.Pprof.Addr,
		User: cfg.Pprof.User,
		Pass: cfg.Pprof.Pass,
	})
}

// newBaseHandlers adds a database check to the healthcheck when the orphan
// ledger is enabled.
func newBaseHandlers(l logx.Logger, pool *pgxpool.Pool) *handlers.Handlers {
	if pool == nil {
		return handlers.New(l)
	}
	return handlers.New(l, handlers.Check{Name: "postgres", Fn: pool.Ping})
}

func registerHTTP(container *dig.Container) error {
	if err := provideAll(container,
		newBaseHandlers,
		func(l logx.Logger, s *records.Service) *handlers.DashboardHandler {
			return handlers.NewDashboardHandler(l, s)
		},
		func(l logx.Logger, s *records.Service) *handlers.RecordsHandler {
			return handlers.NewRecordsHandler(l, s)
		},
		func(l logx.Logger, s *upload.Service, cfg *config.Config) *handlers.UploadHandler {
			return handlers.NewUploadHandler(l, s, cfg.Upload.MaxFileSize)
		},
		func(l logx.Logger, repo *repository.OrphanRepo) *handlers.OrphansHandler {
			if repo == nil {
				return nil
			}
			return handlers.NewOrphansHandler(l, repo)
		},
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		newHTTPServer,
	); err != nil {
		return err
	}
	return container.Provide(newPprofServer, dig.Name(pprofServerName))
}
