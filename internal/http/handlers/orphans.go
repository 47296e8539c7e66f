package handlers

import (
	"net/http"
	"strconv"

	"shipment-photo-dashboard/internal/domain"
	"shipment-photo-dashboard/internal/logx"
)

const maxOrphansLimit = 500

type orphansResponse struct {
	Orphans []domain.OrphanedUpload `json:"orphans"`
}

// OrphansHandler exposes the ledger of uploads that never got attached.
type OrphansHandler struct {
	repo   orphanLister
	logger logx.Logger
}

// NewOrphansHandler wires the orphan ledger into HTTP handlers.
func NewOrphansHandler(logger logx.Logger, repo orphanLister) *OrphansHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &OrphansHandler{repo: repo, logger: logger}
}

// List handles GET /api/orphans?limit=N.
func (h *OrphansHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 || v > maxOrphansLimit {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = v
	}

	list, err := h.repo.ListRecent(r.Context(), limit)
	if err != nil {
		h.logger.Error("list orphaned uploads failed",
			logx.String("request_id", reqID(r.Context())),
			logx.Err(err),
		)
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if list == nil {
		list = []domain.OrphanedUpload{}
	}
	writeJSON(h.logger, w, r, http.StatusOK, orphansResponse{Orphans: list})
}
