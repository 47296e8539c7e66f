package upload

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"shipment-photo-dashboard/internal/apperr"
	"shipment-photo-dashboard/internal/domain"
	"shipment-photo-dashboard/internal/logx"
)

// The row patch no longer follows the client's request context once the file
// is stored. Orphan tracking and event publishing get their own budget so a
// patch that ran out of time can still be recorded.
const (
	patchTimeout    = 30 * time.Second
	followupTimeout = 5 * time.Second
)

// Metrics holds the counters the service reports to. Nil counters are skipped.
type Metrics struct {
	Orphaned      counter
	EventFailures counter
}

// Service forwards an uploaded photo upstream and attaches it to a row.
type Service struct {
	upstream upstream
	orphans  orphanTracker
	events   eventPublisher
	metrics  Metrics
	logger   logx.Logger
	now      func() time.Time
	newID    func() uuid.UUID

	patchTimeout    time.Duration
	followupTimeout time.Duration
}

// NewService creates an upload Service. orphans and events may be nil.
func NewService(up upstream, orphans orphanTracker, events eventPublisher, m Metrics, logger logx.Logger) *Service {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		upstream: up,
		orphans:  orphans,
		events:   events,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.New,

		patchTimeout:    patchTimeout,
		followupTimeout: followupTimeout,
	}
}

// Attach uploads f and then replaces the photo list of rowID with the new
// attachment. The two upstream calls run strictly in sequence. The upload
// follows ctx; the patch is detached from ctx so that a stored file is still
// attached when the client goes away. A failed patch leaves the file
// orphaned upstream; it is tracked, not deleted.
func (s *Service) Attach(ctx context.Context, rowID int64, f domain.UploadFile) (domain.UploadResult, error) {
	if rowID <= 0 {
		return domain.UploadResult{}, apperr.ErrInvalidRecordID
	}
	log := s.logger.With(logx.Int64("row_id", rowID), logx.String("file", f.Name))

	att, err := s.upstream.UploadFile(ctx, f)
	if err != nil {
		log.Error("photo upload failed", logx.Err(err))
		return domain.UploadResult{}, fmt.Errorf("upload photo: %w", err)
	}

	detached := context.WithoutCancel(ctx)
	patchCtx, cancelPatch := context.WithTimeout(detached, s.patchTimeout)
	err = s.upstream.PatchRowPhoto(patchCtx, rowID, att)
	cancelPatch()

	followCtx, cancelFollow := context.WithTimeout(detached, s.followupTimeout)
	defer cancelFollow()

	if err != nil {
		s.recordOrphan(followCtx, log, rowID, att, err)
		return domain.UploadResult{}, fmt.Errorf("attach photo to row %d: %w", rowID, err)
	}
	log.Info("photo attached", logx.String("attachment", att.Name))

	s.publish(followCtx, log, rowID, att)
	return domain.UploadResult{RowID: rowID, Photo: att}, nil
}

func (s *Service) recordOrphan(ctx context.Context, log logx.Logger, rowID int64, att domain.Attachment, cause error) {
	if s.metrics.Orphaned != nil {
		s.metrics.Orphaned.Inc()
	}
	log.Error("photo stored upstream but row patch failed",
		logx.String("attachment", att.Name),
		logx.String("url", att.URL),
		logx.Err(cause),
	)
	if s.orphans == nil {
		return
	}
	o := domain.OrphanedUpload{
		ID:         s.newID(),
		RowID:      rowID,
		Attachment: att,
		Reason:     cause.Error(),
		CreatedAt:  s.now().UTC(),
	}
	if err := s.orphans.Track(ctx, o); err != nil {
		log.Error("orphan tracking failed", logx.String("attachment", att.Name), logx.Err(err))
	}
}

func (s *Service) publish(ctx context.Context, log logx.Logger, rowID int64, att domain.Attachment) {
	if s.events == nil {
		return
	}
	e := domain.PhotoAttached{
		EventID:        s.newID(),
		RowID:          rowID,
		AttachmentName: att.Name,
		URL:            att.URL,
		OccurredAt:     s.now().UTC(),
	}
	if err := s.events.PublishPhotoAttached(ctx, e); err != nil {
		if s.metrics.EventFailures != nil {
			s.metrics.EventFailures.Inc()
		}
		log.Warn("photo event publish failed", logx.Err(err))
	}
}
