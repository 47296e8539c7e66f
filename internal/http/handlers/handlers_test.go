package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"shipment-photo-dashboard/internal/http/handlers"
	"shipment-photo-dashboard/internal/logx"
	testlog "shipment-photo-dashboard/internal/testutil"
)

func testLogger() logx.Logger { return logx.Nop() }

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body.Error
}

func TestHandlers_Ping(t *testing.T) {
	t.Parallel()

	h := handlers.New(nil)
	rr := httptest.NewRecorder()
	h.Ping(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	require.JSONEq(t, `{"message":"pong"}`, rr.Body.String())
}

func TestHandlers_HealthcheckHead(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	handlers.New(testLogger()).HealthcheckHead(rr, httptest.NewRequest(http.MethodHead, "/healthcheck", nil))
	require.Equal(t, http.StatusNoContent, rr.Code)
	require.Empty(t, rr.Body.String())
}

func TestHandlers_NotFound(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	handlers.New(testLogger()).NotFound(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "route not found", decodeError(t, rr))
}

func TestHandlers_HealthcheckHead_FailingCheck(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	h := handlers.New(rec.Logger(),
		handlers.Check{Name: "ok", Fn: func(context.Context) error { return nil }},
		handlers.Check{Name: "postgres", Fn: func(context.Context) error { return errors.New("connection refused") }},
	)

	rr := httptest.NewRecorder()
	h.HealthcheckHead(rr, httptest.NewRequest(http.MethodHead, "/healthcheck", nil))

	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	check, ok := rec.Field("healthcheck failed", "check")
	require.True(t, ok)
	require.Equal(t, "postgres", check)
}

func TestHandlers_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	handlers.New(testLogger()).MethodNotAllowed(rr, httptest.NewRequest(http.MethodDelete, "/api/records", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	require.Equal(t, "Method Not Allowed", decodeError(t, rr))
}
