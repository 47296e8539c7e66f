package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"shipment-photo-dashboard/internal/domain"
	"shipment-photo-dashboard/internal/logx"
)

//go:embed templates/dashboard.html
var templatesFS embed.FS

var dashboardTmpl = template.Must(template.ParseFS(templatesFS, "templates/dashboard.html"))

type dashboardView struct {
	Records []domain.ShipmentRecord
}

// DashboardHandler renders the records table with the upload form.
type DashboardHandler struct {
	uc     recordsLister
	logger logx.Logger
}

// NewDashboardHandler wires a records lister into the page handler.
func NewDashboardHandler(logger logx.Logger, uc recordsLister) *DashboardHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &DashboardHandler{uc: uc, logger: logger}
}

// Page handles GET /. A failed fetch still renders the page, with an empty
// table.
func (h *DashboardHandler) Page(w http.ResponseWriter, r *http.Request) {
	rows, err := h.uc.List(r.Context())
	if err != nil {
		h.logger.Error("unable to load initial records",
			logx.String("request_id", reqID(r.Context())),
			logx.Err(err),
		)
		rows = nil
	}

	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, dashboardView{Records: rows}); err != nil {
		h.logger.Error("render dashboard failed", logx.Err(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
