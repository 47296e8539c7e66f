package handlers

import (
	"context"

	"shipment-photo-dashboard/internal/domain"
)

type recordsLister interface {
	List(ctx context.Context) ([]domain.ShipmentRecord, error)
}

type photoAttacher interface {
	Attach(ctx context.Context, rowID int64, f domain.UploadFile) (domain.UploadResult, error)
}

type orphanLister interface {
	ListRecent(ctx context.Context, limit int) ([]domain.OrphanedUpload, error)
}
