package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"
	"golang.org/x/sync/errgroup"

	"shipment-photo-dashboard/internal/logx"
	"shipment-photo-dashboard/internal/transport/kafka"
)

const shutdownTimeout = 15 * time.Second

type runIn struct {
	dig.In

	Ctx      context.Context
	Logger   logx.Logger
	Server   *http.Server
	Pprof    *http.Server `name:"pprof_server"`
	Pool     *pgxpool.Pool
	Producer *kafka.Producer
}

// MustRun starts the servers from the container and blocks until the
// container context is canceled.
func MustRun(container *dig.Container) {
	if err := run(container); err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			log.Println("shutdown requested, exiting")
		case errors.Is(err, context.DeadlineExceeded):
			log.Println("startup aborted: startup timeout exceeded")
		default:
			log.Fatalf("run error: %v", err)
		}
	}
}

func run(container *dig.Container) error {
	return container.Invoke(func(in runIn) error {
		return serve(in)
	})
}

func serve(in runIn) error {
	servers := []*http.Server{in.Server}
	if in.Pprof != nil {
		servers = append(servers, in.Pprof)
	}

	g, gctx := errgroup.WithContext(in.Ctx)
	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			in.Logger.Info("listening", logx.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		in.Logger.Info("shutting down service-dashboard")
		return shutdown(servers, in.Logger)
	})

	var result *multierror.Error
	if err := g.Wait(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := closeResources(in); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

func shutdown(servers []*http.Server, logger logx.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var result *multierror.Error
	for _, srv := range servers {
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("graceful shutdown failed", logx.String("addr", srv.Addr), logx.Err(err))
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

func closeResources(in runIn) error {
	var result *multierror.Error
	if err := in.Producer.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	if in.Pool != nil {
		in.Pool.Close()
	}
	if err := in.Logger.Sync(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}
