package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	json "github.com/goccy/go-json"

	"shipment-photo-dashboard/internal/apperr"
	"shipment-photo-dashboard/internal/logx"
)

const unexpectedError = "Unexpected error"

func reqID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return "-"
}

func writeJSON(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		logger.Warn("json encode failed",
			logx.String("request_id", reqID(r.Context())),
			logx.Err(err),
		)
	}
}

type errResponse struct {
	Error string `json:"error"`
}

func writeError(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, msg string) {
	logger.Info("http error",
		logx.String("request_id", reqID(r.Context())),
		logx.Int("status", status),
		logx.String("msg", msg),
	)
	writeJSON(logger, w, r, status, errResponse{Error: msg})
}

var clientErrors = []error{
	apperr.ErrMethodNotAllowed,
	apperr.ErrMalformedRequest,
	apperr.ErrMissingFile,
	apperr.ErrInvalidRecordID,
	apperr.ErrFileTooLarge,
}

// errorMessage picks the text shown to the client: the upstream's own
// message, the text of a known local error, or a generic fallback.
func errorMessage(err error) string {
	if ue, ok := apperr.IsUpstream(err); ok {
		return ue.Error()
	}
	for _, known := range clientErrors {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return unexpectedError
}
