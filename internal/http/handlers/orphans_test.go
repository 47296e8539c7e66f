package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"shipment-photo-dashboard/internal/domain"
	"shipment-photo-dashboard/internal/http/handlers"
)

type stubOrphans struct {
	gotLimit int
	list     []domain.OrphanedUpload
	err      error
}

func (s *stubOrphans) ListRecent(_ context.Context, limit int) ([]domain.OrphanedUpload, error) {
	s.gotLimit = limit
	return s.list, s.err
}

func TestOrphansHandler_List(t *testing.T) {
	t.Parallel()

	repo := &stubOrphans{list: []domain.OrphanedUpload{{
		ID:         uuid.MustParse("7d1f7b8e-1a4e-4c55-9a55-51f5d8a1c0aa"),
		RowID:      9,
		Attachment: domain.Attachment{Name: "x.png", URL: "https://files/x.png"},
		Reason:     "row not found",
		CreatedAt:  time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}}}
	h := handlers.NewOrphansHandler(testLogger(), repo)

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/api/orphans?limit=5", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, 5, repo.gotLimit)
	require.Contains(t, rr.Body.String(), `"rowId":9`)
	require.Contains(t, rr.Body.String(), `"reason":"row not found"`)
}

func TestOrphansHandler_List_DefaultLimitAndEmpty(t *testing.T) {
	t.Parallel()

	repo := &stubOrphans{}
	rr := httptest.NewRecorder()
	handlers.NewOrphansHandler(nil, repo).List(rr, httptest.NewRequest(http.MethodGet, "/api/orphans", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Zero(t, repo.gotLimit)
	require.JSONEq(t, `{"orphans":[]}`, rr.Body.String())
}

func TestOrphansHandler_List_InvalidLimit(t *testing.T) {
	t.Parallel()

	for _, q := range []string{"abc", "0", "-2", "100000"} {
		rr := httptest.NewRecorder()
		handlers.NewOrphansHandler(testLogger(), &stubOrphans{}).
			List(rr, httptest.NewRequest(http.MethodGet, "/api/orphans?limit="+q, nil))
		require.Equal(t, http.StatusBadRequest, rr.Code, q)
		require.Equal(t, "invalid limit", decodeError(t, rr))
	}
}

func TestOrphansHandler_List_RepoError(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	handlers.NewOrphansHandler(testLogger(), &stubOrphans{err: errors.New("db down")}).
		List(rr, httptest.NewRequest(http.MethodGet, "/api/orphans", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, "internal error", decodeError(t, rr))
}
