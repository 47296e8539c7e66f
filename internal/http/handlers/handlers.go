package handlers

import (
	"context"
	"net/http"
	"time"

	"shipment-photo-dashboard/internal/logx"
)

const checkTimeout = 2 * time.Second

// Check reports whether an optional dependency is reachable.
type Check struct {
	Name string
	Fn   func(ctx context.Context) error
}

// Handlers holds the service-level endpoints.
type Handlers struct {
	Logger logx.Logger
	checks []Check
}

// New creates a Handlers instance; a nil logger discards output. The
// healthcheck fails when any of checks fails.
func New(logger logx.Logger, checks ...Check) *Handlers {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Handlers{Logger: logger, checks: checks}
}

// Ping handles GET /ping and returns 200 with {"message":"pong"}.
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, map[string]string{"message": "pong"})
}

// HealthcheckHead handles HEAD /healthcheck: 204 when every check passes,
// 503 otherwise.
func (h *Handlers) HealthcheckHead(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	for _, c := range h.checks {
		if err := c.Fn(ctx); err != nil {
			h.Logger.Warn("healthcheck failed",
				logx.String("request_id", reqID(r.Context())),
				logx.String("check", c.Name),
				logx.Err(err),
			)
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// NotFound returns a JSON 404 error for unknown routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(h.Logger, w, r, http.StatusNotFound, "route not found")
}

// MethodNotAllowed returns a JSON 405 for known routes hit with the wrong method.
func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(h.Logger, w, r, http.StatusMethodNotAllowed, "Method Not Allowed")
}
