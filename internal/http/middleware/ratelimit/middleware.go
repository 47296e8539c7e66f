package ratelimit

import (
	"io"
	"net"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"shipment-photo-dashboard/internal/logx"
)

type counter interface {
	Inc()
}

// Middleware rejects requests over the per-client limit with 429.
type Middleware struct {
	logger  logx.Logger
	denied  counter
	limiter Limiter
}

// New builds the middleware. A nil limiter lets everything through and a
// nil counter is not incremented.
func New(logger logx.Logger, denied counter, limiter Limiter) *Middleware {
	if limiter == nil {
		limiter = AllowAll{}
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Middleware{logger: logger, denied: denied, limiter: limiter}
}

// Handler returns chi-style middleware.
func (m *Middleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r)
			if m.limiter.Allow(key) {
				next.ServeHTTP(w, r)
				return
			}

			if m.denied != nil {
				m.denied.Inc()
			}
			m.logger.Warn("rate limit exceeded",
				logx.String("client", key),
				logx.String("method", r.Method),
				logx.String("path", r.URL.Path),
				logx.String("request_id", chimw.GetReqID(r.Context())),
			)

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			if _, err := io.WriteString(w, `{"error":"too many requests"}`); err != nil {
				m.logger.Debug("rate limit response write failed", logx.Err(err))
			}
		})
	}
}

// clientKey relies on chi's RealIP having already rewritten RemoteAddr.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
