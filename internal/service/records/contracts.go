package records

import (
	"context"

	"shipment-photo-dashboard/internal/gateway/baserow"
)

type rowLister interface {
	ListRows(ctx context.Context) (baserow.Page, error)
}
