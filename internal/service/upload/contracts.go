//go:generate mockgen -source=contracts.go -destination=upload_mocks_test.go -package=upload

package upload

import (
	"context"

	"shipment-photo-dashboard/internal/domain"
)

type upstream interface {
	UploadFile(ctx context.Context, f domain.UploadFile) (domain.Attachment, error)
	PatchRowPhoto(ctx context.Context, rowID int64, att domain.Attachment) error
}

type orphanTracker interface {
	Track(ctx context.Context, o domain.OrphanedUpload) error
}

type eventPublisher interface {
	PublishPhotoAttached(ctx context.Context, e domain.PhotoAttached) error
}

type counter interface {
	Inc()
}
