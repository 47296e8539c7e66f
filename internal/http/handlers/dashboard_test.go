package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"shipment-photo-dashboard/internal/domain"
	"shipment-photo-dashboard/internal/http/handlers"
	testlog "shipment-photo-dashboard/internal/testutil"
)

func TestDashboardHandler_RendersRecords(t *testing.T) {
	t.Parallel()

	records := sampleRecords()
	records[1].CustomerName = "<b>Evil</b>"
	h := handlers.NewDashboardHandler(testLogger(), &stubRecords{
		listFn: func(context.Context) ([]domain.ShipmentRecord, error) { return records, nil },
	})

	rr := httptest.NewRecorder()
	h.Page(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	body := rr.Body.String()
	require.Contains(t, body, `data-row-id="1"`)
	require.Contains(t, body, "Acme")
	require.Contains(t, body, `src="https://files/a_small.png"`)
	require.Contains(t, body, "&lt;b&gt;Evil&lt;/b&gt;")
	require.NotContains(t, body, "<b>Evil</b>")
	require.Contains(t, body, `action="/api/upload"`)
	require.Contains(t, body, `<progress id="progress" max="100" value="0" hidden></progress>`)
	require.Contains(t, body, "xhr.upload.onprogress")
	require.Contains(t, body, `<img id="preview"`)
	require.Contains(t, body, "URL.createObjectURL")
	require.NotContains(t, body, "No records found")
}

func TestDashboardHandler_FetchFailureRendersEmptyTable(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	h := handlers.NewDashboardHandler(rec.Logger(), &stubRecords{
		listFn: func(context.Context) ([]domain.ShipmentRecord, error) { return nil, errors.New("boom") },
	})

	rr := httptest.NewRecorder()
	h.Page(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "No records found for this table.")
	require.True(t, rec.Has("error", "unable to load initial records"))
}
