package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrphanedUpload is a file that reached upstream storage but could not be
// attached to its row. Upstream offers no delete call for user files, so
// these are only tracked.
type OrphanedUpload struct {
	ID         uuid.UUID  `json:"id"`
	RowID      int64      `json:"rowId"`
	Attachment Attachment `json:"attachment"`
	Reason     string     `json:"reason"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// PhotoAttached is published after a photo replaced a row's photo list.
type PhotoAttached struct {
	EventID        uuid.UUID `json:"event_id"`
	RowID          int64     `json:"row_id"`
	AttachmentName string    `json:"attachment_name"`
	URL            string    `json:"url"`
	OccurredAt     time.Time `json:"occurred_at"`
}
