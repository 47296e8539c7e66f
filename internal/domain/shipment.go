package domain

// ShipmentRecord is the canonical view of one upstream shipment row.
// Records are rebuilt on every fetch and never patched locally.
type ShipmentRecord struct {
	ID              int64        `json:"id"`
	CustomerName    string       `json:"customerName"`
	InboundOutbound string       `json:"inboundOutbound"`
	OrderType       string       `json:"orderType"`
	CarrierName     string       `json:"carrierName"`
	Invoiced        bool         `json:"invoiced"`
	Photo           []Attachment `json:"photo"`
}

// PreviewURL returns the URL used to preview the primary (first) photo:
// its "small" thumbnail when present, otherwise the full-size URL.
// Empty when the record has no photo.
func (r ShipmentRecord) PreviewURL() string {
	if len(r.Photo) == 0 {
		return ""
	}
	return r.Photo[0].PreviewURL()
}
