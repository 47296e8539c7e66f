package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"shipment-photo-dashboard/internal/config"
	"shipment-photo-dashboard/internal/gateway/baserow"
	"shipment-photo-dashboard/internal/logx"
	"shipment-photo-dashboard/internal/repository"
	"shipment-photo-dashboard/internal/service/records"
	"shipment-photo-dashboard/internal/service/upload"
	"shipment-photo-dashboard/internal/transport/kafka"
)

const schemaTimeout = 5 * time.Second

type (
	dbConnectFunc   func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error)
	newProducerFunc func(logx.Logger, []string, string) (*kafka.Producer, error)
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	loadConfig  func() (*config.Config, error)
	newLogger   func() logx.Logger
	dbConnect   dbConnectFunc
	newProducer newProducerFunc
	logFatalf   func(string, ...interface{})
}

// NewContainerBuilder returns a builder wired to the real environment.
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		loadConfig:  config.Load,
		newLogger:   NewLogger,
		dbConnect:   connectDbWithRetry,
		newProducer: kafka.NewProducer,
		logFatalf:   log.Fatalf,
	}
}

// WithConfig replaces config loading with a fixed config.
func (b *ContainerBuilder) WithConfig(cfg *config.Config) *ContainerBuilder {
	if cfg != nil {
		b.loadConfig = func() (*config.Config, error) { return cfg, nil }
	}
	return b
}

// WithLogger replaces the JSON stdout logger.
func (b *ContainerBuilder) WithLogger(l logx.Logger) *ContainerBuilder {
	if l != nil {
		b.newLogger = func() logx.Logger { return l }
	}
	return b
}

// WithDBConnect sets the database connection function.
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithProducer sets the Kafka producer constructor.
func (b *ContainerBuilder) WithProducer(fn newProducerFunc) *ContainerBuilder {
	if fn != nil {
		b.newProducer = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function.
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, b.loadConfig, b.newLogger); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerMetrics(container); err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	if err := registerInfra(container, b.dbConnect, b.newProducer); err != nil {
		return nil, fmt.Errorf("infra: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds the production container.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(
	container *dig.Container,
	ctx context.Context,
	loadConfig func() (*config.Config, error),
	newLogger func() logx.Logger,
) error {
	return provideAll(container,
		func() context.Context { return ctx },
		newLogger,
		loadConfig,
	)
}

// registerInfra provides the optional Postgres pool, orphan ledger and
// Kafka producer. Each is nil when its settings are absent.
func registerInfra(container *dig.Container, dbConnect dbConnectFunc, newProducer newProducerFunc) error {
	providePool := func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*pgxpool.Pool, error) {
		if !cfg.DB.Enabled() {
			logger.Info("orphan ledger disabled: POSTGRES_DSN not set")
			return nil, nil
		}
		return dbConnect(ctx, logger, cfg.DB.DSN, 10, time.Second)
	}
	provideOrphans := func(ctx context.Context, pool *pgxpool.Pool) (*repository.OrphanRepo, error) {
		if pool == nil {
			return nil, nil
		}
		repo := repository.NewOrphanRepo(pool)
		schemaCtx, cancel := context.WithTimeout(ctx, schemaTimeout)
		defer cancel()
		if err := repo.EnsureSchema(schemaCtx); err != nil {
			return nil, fmt.Errorf("orphan ledger schema: %w", err)
		}
		return repo, nil
	}
	provideProducer := func(cfg *config.Config, logger logx.Logger) (*kafka.Producer, error) {
		return newProducer(logger, cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}
	return provideAll(container, providePool, provideOrphans, provideProducer)
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config, logger logx.Logger, m *appMetrics) *baserow.Client {
			return baserow.NewClient(baserow.Config{
				BaseURL: cfg.Baserow.BaseURL,
				Token:   cfg.Baserow.Token,
				TableID: cfg.Baserow.TableID,
			}, nil, logger, m.Upstream)
		},
		func(c *baserow.Client, logger logx.Logger) *records.Service {
			return records.NewService(c, logger)
		},
		newUploadService,
	)
}

func newUploadService(
	c *baserow.Client,
	orphans *repository.OrphanRepo,
	events *kafka.Producer,
	m *appMetrics,
	logger logx.Logger,
) *upload.Service {
	um := upload.Metrics{Orphaned: m.Orphaned, EventFailures: m.EventFailures}
	// a nil *OrphanRepo must not reach the service as a non-nil interface
	if orphans == nil {
		return upload.NewService(c, nil, events, um, logger)
	}
	return upload.NewService(c, orphans, events, um, logger)
}

func newHTTPServer(cfg *config.Config, mux http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.HTTP.WriteTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}
}
