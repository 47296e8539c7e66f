package handlers

import (
	"net/http"

	"shipment-photo-dashboard/internal/domain"
	"shipment-photo-dashboard/internal/logx"
)

const recordsUnavailable = "Unable to load records from Baserow."

type recordsResponse struct {
	Rows []domain.ShipmentRecord `json:"rows"`
}

// RecordsHandler serves the shipment list.
type RecordsHandler struct {
	uc     recordsLister
	logger logx.Logger
}

// NewRecordsHandler wires a records lister into HTTP handlers.
func NewRecordsHandler(logger logx.Logger, uc recordsLister) *RecordsHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &RecordsHandler{uc: uc, logger: logger}
}

// List handles GET /api/records.
func (h *RecordsHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.uc.List(r.Context())
	if err != nil {
		h.logger.Error("fetch records failed",
			logx.String("request_id", reqID(r.Context())),
			logx.Err(err),
		)
		writeError(h.logger, w, r, http.StatusInternalServerError, recordsUnavailable)
		return
	}
	if rows == nil {
		rows = []domain.ShipmentRecord{}
	}
	writeJSON(h.logger, w, r, http.StatusOK, recordsResponse{Rows: rows})
}
