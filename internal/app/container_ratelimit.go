package app

import (
	"shipment-photo-dashboard/internal/config"
	"shipment-photo-dashboard/internal/http/middleware/ratelimit"
	"shipment-photo-dashboard/internal/logx"
)

func newRateLimiter(cfg *config.Config) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return ratelimit.AllowAll{}
	}
	return ratelimit.NewKeyedLimiter(nil, ratelimit.Config{
		Rate:       rl.Rate,
		Burst:      rl.Burst,
		TTL:        rl.TTL,
		MaxBuckets: rl.MaxBuckets,
	})
}

func newRateLimitMiddleware(logger logx.Logger, m *appMetrics, limiter ratelimit.Limiter) *ratelimit.Middleware {
	return ratelimit.New(logger, m.RateLimited, limiter)
}
