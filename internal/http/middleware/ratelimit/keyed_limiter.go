package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Config stores KeyedLimiter settings.
type Config struct {
	Rate       float64       // tokens per second
	Burst      int           // bucket capacity
	TTL        time.Duration // idle keys are forgotten after this (0 keeps them)
	MaxBuckets int           // upper bound on tracked keys (0 is unbounded)
}

type entry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// KeyedLimiter keeps one token bucket per key.
type KeyedLimiter struct {
	cfg   Config
	clock Clock

	mu          sync.Mutex
	entries     map[string]*entry
	lastCleanup time.Time
}

// NewKeyedLimiter normalizes cfg and returns a limiter. A nil clock means
// wall time.
func NewKeyedLimiter(clock Clock, cfg Config) *KeyedLimiter {
	if clock == nil {
		clock = realClock{}
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MaxBuckets < 0 {
		cfg.MaxBuckets = 0
	}
	return &KeyedLimiter{
		cfg:     cfg,
		clock:   clock,
		entries: make(map[string]*entry),
	}
}

// Allow consumes one token for key. New keys are refused once MaxBuckets
// keys are tracked.
func (l *KeyedLimiter) Allow(key string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	l.cleanupLocked(now)
	e, ok := l.entries[key]
	if !ok {
		if l.cfg.MaxBuckets > 0 && len(l.entries) >= l.cfg.MaxBuckets {
			l.mu.Unlock()
			return false
		}
		e = &entry{lim: rate.NewLimiter(rate.Limit(l.cfg.Rate), l.cfg.Burst)}
		l.entries[key] = e
	}
	e.lastSeen = now
	l.mu.Unlock()

	return e.lim.AllowN(now, 1)
}

// Len reports the number of tracked keys.
func (l *KeyedLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *KeyedLimiter) cleanupLocked(now time.Time) {
	if l.cfg.TTL <= 0 {
		return
	}
	interval := time.Minute
	if half := l.cfg.TTL / 2; half > interval {
		interval = half
	}
	if !l.lastCleanup.IsZero() && now.Sub(l.lastCleanup) < interval {
		return
	}
	l.lastCleanup = now

	for k, e := range l.entries {
		if now.Sub(e.lastSeen) > l.cfg.TTL {
			delete(l.entries, k)
		}
	}
}
