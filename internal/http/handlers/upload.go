package handlers

import (
	"net/http"

	"shipment-photo-dashboard/internal/apperr"
	"shipment-photo-dashboard/internal/logx"
)

// UploadHandler proxies photo uploads to the upstream table.
type UploadHandler struct {
	uc          photoAttacher
	maxFileSize int64
	logger      logx.Logger
}

// NewUploadHandler wires a photo attacher into HTTP handlers.
func NewUploadHandler(logger logx.Logger, uc photoAttacher, maxFileSize int64) *UploadHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &UploadHandler{uc: uc, maxFileSize: maxFileSize, logger: logger}
}

// Upload handles /api/upload. Only POST is served; the body is
// multipart/form-data with a "file" image part and a "recordId" field.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(h.logger, w, r, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}
	log := h.logger.With(logx.String("request_id", reqID(r.Context())))

	form, err := parseUploadForm(w, r, h.maxFileSize)
	if err != nil {
		h.fail(log, w, r, err)
		return
	}
	defer func() {
		if err := form.cleanup(); err != nil {
			log.Warn("remove spooled upload failed", logx.Err(err))
		}
	}()

	if form.file == nil {
		h.fail(log, w, r, apperr.ErrMissingFile)
		return
	}
	rowID, err := parseRecordID(form.recordID)
	if err != nil {
		h.fail(log, w, r, err)
		return
	}

	res, err := h.uc.Attach(r.Context(), rowID, form.file.uploadFile())
	if err != nil {
		h.fail(log, w, r, err)
		return
	}
	log.Info("photo attached",
		logx.Int64("row_id", res.RowID),
		logx.String("attachment", res.Photo.Name),
		logx.Int64("size", form.file.size),
	)
	writeJSON(h.logger, w, r, http.StatusOK, res)
}

func (h *UploadHandler) fail(log logx.Logger, w http.ResponseWriter, r *http.Request, err error) {
	log.Error("upload failed", logx.Err(err))
	writeError(h.logger, w, r, http.StatusInternalServerError, errorMessage(err))
}
