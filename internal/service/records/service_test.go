package records

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"shipment-photo-dashboard/internal/apperr"
	"shipment-photo-dashboard/internal/gateway/baserow"
	testlog "shipment-photo-dashboard/internal/testutil"
)

type stubRowLister struct {
	listFn func(ctx context.Context) (baserow.Page, error)
}

func (s stubRowLister) ListRows(ctx context.Context) (baserow.Page, error) {
	if s.listFn == nil {
		panic("ListRows not expected")
	}
	return s.listFn(ctx)
}

func rowsFromJSON(t *testing.T, s string) []baserow.RawRow {
	t.Helper()
	var rows []baserow.RawRow
	require.NoError(t, json.Unmarshal([]byte(s), &rows))
	return rows
}

func TestService_List_MinimalRow(t *testing.T) {
	t.Parallel()

	rows := rowsFromJSON(t, `[{"id": 1, "Customer Name": "Acme"}]`)
	svc := NewService(stubRowLister{listFn: func(context.Context) (baserow.Page, error) {
		return baserow.Page{Rows: rows, Count: 1}, nil
	}}, nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)

	rec := got[0]
	require.Equal(t, int64(1), rec.ID)
	require.Equal(t, "Acme", rec.CustomerName)
	require.Equal(t, "N/A", rec.OrderType)
	require.Equal(t, "N/A", rec.CarrierName)
	require.Equal(t, "N/A", rec.InboundOutbound)
	require.False(t, rec.Invoiced)
	require.NotNil(t, rec.Photo)
	require.Empty(t, rec.Photo)
}

func TestService_List_HeterogeneousFields(t *testing.T) {
	t.Parallel()

	rows := rowsFromJSON(t, `[{
		"id": 5,
		"Customer Name": "   ",
		"Inbound/Outbound": {"id": 3, "value": "Inbound", "color": "blue"},
		"Order Type": [{"id": 1, "value": "LTL"}, {"id": 2, "value": ""}, null, "Rush"],
		"Carrier Name": {"id": 9},
		"Invoiced": "yes",
		"Photo": [
			{"name": "a.png", "url": "https://files/a.png", "thumbnails": {"small": {"url": "https://files/a_small.png", "width": 48, "height": 48}}},
			{"name": "b.png", "url": "https://files/b.png"}
		]
	}]`)
	svc := NewService(stubRowLister{listFn: func(context.Context) (baserow.Page, error) {
		return baserow.Page{Rows: rows}, nil
	}}, nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)

	rec := got[0]
	require.Equal(t, "Unknown", rec.CustomerName)
	require.Equal(t, "Inbound", rec.InboundOutbound)
	require.Equal(t, "LTL, Rush", rec.OrderType)
	require.Equal(t, "N/A", rec.CarrierName)
	require.True(t, rec.Invoiced)
	require.Len(t, rec.Photo, 2)
	require.Equal(t, "a.png", rec.Photo[0].Name, "photo order is preserved")
	require.Equal(t, "https://files/a_small.png", rec.PreviewURL())
}

func TestService_List_SkipsRowsWithoutID(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	rows := rowsFromJSON(t, `[{"Customer Name": "NoID"}, {"id": 0}, {"id": "x"}, {"id": 2.5}, {"id": 3}]`)
	svc := NewService(stubRowLister{listFn: func(context.Context) (baserow.Page, error) {
		return baserow.Page{Rows: rows}, nil
	}}, rec.Logger())

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, int64(3), got[0].ID)
	require.True(t, rec.Has("warn", "skipping upstream row"))
}

func TestService_List_MalformedPhotoIsEmpty(t *testing.T) {
	t.Parallel()

	rows := rowsFromJSON(t, `[{"id": 1, "Photo": "not-a-list"}, {"id": 2, "Photo": [1, 2]}]`)
	svc := NewService(stubRowLister{listFn: func(context.Context) (baserow.Page, error) {
		return baserow.Page{Rows: rows}, nil
	}}, nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Empty(t, got[0].Photo)
	require.Empty(t, got[1].Photo)
}

func TestService_List_WarnsWhenTruncated(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	svc := NewService(stubRowLister{listFn: func(context.Context) (baserow.Page, error) {
		return baserow.Page{Rows: rowsFromJSON(t, `[{"id":1}]`), Count: 250, HasMore: true}, nil
	}}, rec.Logger())

	_, err := svc.List(context.Background())
	require.NoError(t, err)
	total, ok := rec.Field("upstream has more rows than the first page", "total")
	require.True(t, ok)
	require.Equal(t, 250, total)
}

func TestService_List_UpstreamErrorKeepsStatus(t *testing.T) {
	t.Parallel()

	svc := NewService(stubRowLister{listFn: func(context.Context) (baserow.Page, error) {
		return baserow.Page{}, &apperr.UpstreamError{Op: baserow.OpListRows, Status: http.StatusServiceUnavailable}
	}}, nil)

	got, err := svc.List(context.Background())
	require.Nil(t, got)
	ue, ok := apperr.IsUpstream(err)
	require.True(t, ok)
	require.Equal(t, http.StatusServiceUnavailable, ue.Status)
}

func TestService_List_TransportError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("dial tcp: refused")
	svc := NewService(stubRowLister{listFn: func(context.Context) (baserow.Page, error) {
		return baserow.Page{}, wantErr
	}}, nil)

	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, wantErr)
}

func TestService_List_EmptyPage(t *testing.T) {
	t.Parallel()

	svc := NewService(stubRowLister{listFn: func(context.Context) (baserow.Page, error) {
		return baserow.Page{Count: -1}, nil
	}}, nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}
