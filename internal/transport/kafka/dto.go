package kafka

import (
	"time"

	"shipment-photo-dashboard/internal/domain"
)

// EventTypePhotoAttached is sent in the event_type header.
const EventTypePhotoAttached = "photo.attached"

type photoAttachedDTO struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	RowID          int64     `json:"row_id"`
	AttachmentName string    `json:"attachment_name"`
	URL            string    `json:"url"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func toPhotoAttachedDTO(e domain.PhotoAttached) photoAttachedDTO {
	return photoAttachedDTO{
		EventID:        e.EventID.String(),
		EventType:      EventTypePhotoAttached,
		RowID:          e.RowID,
		AttachmentName: e.AttachmentName,
		URL:            e.URL,
		OccurredAt:     e.OccurredAt.UTC(),
	}
}
