package records

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"shipment-photo-dashboard/internal/domain"
	"shipment-photo-dashboard/internal/fieldvalue"
	"shipment-photo-dashboard/internal/gateway/baserow"
)

// Upstream column names, requested with user_field_names=true.
const (
	fieldID              = "id"
	fieldCustomerName    = "Customer Name"
	fieldInboundOutbound = "Inbound/Outbound"
	fieldOrderType       = "Order Type"
	fieldCarrierName     = "Carrier Name"
	fieldInvoiced        = "Invoiced"
)

var errNoRowID = errors.New("row has no positive integer id")

// toRecord maps one raw row. Cells that cannot be decoded are treated as
// absent; only a missing or invalid id rejects the row.
func toRecord(raw baserow.RawRow) (domain.ShipmentRecord, error) {
	id, err := rowID(raw[fieldID])
	if err != nil {
		return domain.ShipmentRecord{}, err
	}
	return domain.ShipmentRecord{
		ID:              id,
		CustomerName:    fieldvalue.Display(cell(raw, fieldCustomerName), fieldvalue.FallbackUnknown),
		InboundOutbound: fieldvalue.Select(cell(raw, fieldInboundOutbound), fieldvalue.FallbackNA),
		OrderType:       fieldvalue.Display(cell(raw, fieldOrderType), fieldvalue.FallbackNA),
		CarrierName:     fieldvalue.Display(cell(raw, fieldCarrierName), fieldvalue.FallbackNA),
		Invoiced:        fieldvalue.Truthy(cell(raw, fieldInvoiced)),
		Photo:           photos(raw[baserow.PhotoField]),
	}, nil
}

func cell(raw baserow.RawRow, name string) fieldvalue.Value {
	v, err := fieldvalue.Parse(raw[name])
	if err != nil {
		return fieldvalue.Absent()
	}
	return v
}

func rowID(raw json.RawMessage) (int64, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return 0, errNoRowID
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err != nil {
		return 0, fmt.Errorf("%w: %v", errNoRowID, err)
	}
	id, err := n.Int64()
	if err != nil || id <= 0 {
		return 0, errNoRowID
	}
	return id, nil
}

// photos decodes the attachment list in upstream order. Anything that is
// not a list of attachments yields an empty list.
func photos(raw json.RawMessage) []domain.Attachment {
	out := []domain.Attachment{}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return []domain.Attachment{}
	}
	return out
}
