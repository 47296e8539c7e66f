package records

import (
	"context"
	"fmt"

	"shipment-photo-dashboard/internal/domain"
	"shipment-photo-dashboard/internal/logx"
)

// Service lists shipment records from the upstream table.
type Service struct {
	rows   rowLister
	logger logx.Logger
}

// NewService creates a records Service.
func NewService(rows rowLister, logger logx.Logger) *Service {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{rows: rows, logger: logger}
}

// List fetches the first upstream page and maps every row. It does not
// retry, paginate or cache.
func (s *Service) List(ctx context.Context) ([]domain.ShipmentRecord, error) {
	page, err := s.rows.ListRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shipment records: %w", err)
	}
	if page.HasMore {
		s.logger.Warn("upstream has more rows than the first page",
			logx.Int("returned", len(page.Rows)),
			logx.Int("total", page.Count),
		)
	}

	out := make([]domain.ShipmentRecord, 0, len(page.Rows))
	for i, raw := range page.Rows {
		rec, err := toRecord(raw)
		if err != nil {
			s.logger.Warn("skipping upstream row", logx.Int("index", i), logx.Err(err))
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
