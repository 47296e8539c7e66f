package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"shipment-photo-dashboard/internal/logx"
	"shipment-photo-dashboard/internal/repository"
)

const (
	dbAttemptTimeout = 3 * time.Second
	dbMaxBackoff     = 8 * time.Second
)

var newPool = repository.NewPool

// connectDbWithRetry opens the ledger pool at startup. The wait between
// attempts starts at delay and doubles up to dbMaxBackoff.
func connectDbWithRetry(ctx context.Context, logger logx.Logger, dsn string, attempts int, delay time.Duration) (*pgxpool.Pool, error) {
	var lastErr error
	wait := delay
	for attempt := 1; attempt <= attempts; attempt++ {
		pool, err := tryConnect(ctx, dsn)
		if err == nil {
			logger.Info("db connected", logx.Int("attempt", attempt))
			return pool, nil
		}
		lastErr = err
		logger.Warn("db connect failed",
			logx.Int("attempt", attempt),
			logx.Int("attempts", attempts),
			logx.Duration("next_wait", wait),
			logx.Err(err),
		)
		if attempt == attempts {
			break
		}
		if err := sleepCtx(ctx, wait); err != nil {
			return nil, err
		}
		wait = min(wait*2, dbMaxBackoff)
	}
	return nil, fmt.Errorf("db connect failed after %d attempts: %w", attempts, lastErr)
}

func tryConnect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, dbAttemptTimeout)
	defer cancel()
	return newPool(attemptCtx, dsn)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
