package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"shipment-photo-dashboard/internal/domain"
	"shipment-photo-dashboard/internal/http/handlers"
	testlog "shipment-photo-dashboard/internal/testutil"
)

type stubRecords struct {
	listFn func(ctx context.Context) ([]domain.ShipmentRecord, error)
}

func (s *stubRecords) List(ctx context.Context) ([]domain.ShipmentRecord, error) {
	return s.listFn(ctx)
}

func sampleRecords() []domain.ShipmentRecord {
	return []domain.ShipmentRecord{
		{
			ID:              1,
			CustomerName:    "Acme",
			InboundOutbound: "Inbound",
			OrderType:       "N/A",
			CarrierName:     "DHL",
			Invoiced:        true,
			Photo: []domain.Attachment{{
				Name: "a.png",
				URL:  "https://files/a.png",
				Thumbnails: map[string]domain.Thumbnail{
					domain.ThumbnailSmall: {URL: "https://files/a_small.png"},
				},
			}},
		},
		{ID: 2, CustomerName: "Unknown", InboundOutbound: "N/A", OrderType: "N/A", CarrierName: "N/A", Photo: []domain.Attachment{}},
	}
}

func TestRecordsHandler_List_OK(t *testing.T) {
	t.Parallel()

	want := sampleRecords()
	h := handlers.NewRecordsHandler(testLogger(), &stubRecords{
		listFn: func(context.Context) ([]domain.ShipmentRecord, error) { return want, nil },
	})

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/api/records", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var got struct {
		Rows []domain.ShipmentRecord `json:"rows"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	if diff := cmp.Diff(want, got.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordsHandler_List_EmptyIsArray(t *testing.T) {
	t.Parallel()

	h := handlers.NewRecordsHandler(testLogger(), &stubRecords{
		listFn: func(context.Context) ([]domain.ShipmentRecord, error) { return nil, nil },
	})

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/api/records", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"rows":[]}`, rr.Body.String())
}

func TestRecordsHandler_List_UpstreamFailure(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	h := handlers.NewRecordsHandler(rec.Logger(), &stubRecords{
		listFn: func(context.Context) ([]domain.ShipmentRecord, error) {
			return nil, errors.New("list shipment records: dial tcp: refused")
		},
	})

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/api/records", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, "Unable to load records from Baserow.", decodeError(t, rr))
	require.True(t, rec.Has("error", "fetch records failed"))
}
