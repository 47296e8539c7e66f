package ratelimit

import "time"

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(key string) bool
}

// Clock provides current time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// AllowAll never limits.
type AllowAll struct{}

// Allow always returns true.
func (AllowAll) Allow(string) bool { return true }
