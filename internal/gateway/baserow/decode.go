package baserow

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

type envelope struct {
	Count   *int            `json:"count"`
	Next    *string         `json:"next"`
	Results json.RawMessage `json:"results"`
}

// decodePage accepts {"results": [...]} or a bare array. Any other shape is
// an empty page; invalid JSON is an error.
func decodePage(body []byte) (Page, error) {
	body = bytes.TrimSpace(body)
	page := Page{Count: -1}
	if len(body) == 0 {
		return page, nil
	}

	var items json.RawMessage
	switch body[0] {
	case '[':
		items = body
	case '{':
		var env envelope
		if err := json.Unmarshal(body, &env); err != nil {
			return Page{}, fmt.Errorf("decode rows: %w", err)
		}
		if env.Count != nil {
			page.Count = *env.Count
		}
		page.HasMore = env.Next != nil && *env.Next != ""
		items = bytes.TrimSpace(env.Results)
	default:
		if !json.Valid(body) {
			return Page{}, fmt.Errorf("decode rows: invalid JSON")
		}
		return page, nil
	}

	if len(items) == 0 || items[0] != '[' {
		return page, nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(items, &raw); err != nil {
		return Page{}, fmt.Errorf("decode rows: %w", err)
	}
	page.Rows = make([]RawRow, 0, len(raw))
	for _, el := range raw {
		el = bytes.TrimSpace(el)
		if len(el) == 0 || el[0] != '{' {
			continue
		}
		var row RawRow
		if err := json.Unmarshal(el, &row); err != nil {
			return Page{}, fmt.Errorf("decode row: %w", err)
		}
		page.Rows = append(page.Rows, row)
	}
	return page, nil
}

// errorBody is the upstream error payload, e.g.
// {"error": "ERROR_REQUEST_BODY_VALIDATION", "detail": {...}}.
type errorBody struct {
	Error  string          `json:"error"`
	Detail json.RawMessage `json:"detail"`
}

func (b errorBody) detailText() string {
	d := strings.TrimSpace(string(b.Detail))
	var s string
	if err := json.Unmarshal(b.Detail, &s); err == nil {
		return s
	}
	return d
}

func parseErrorBody(body []byte) errorBody {
	var b errorBody
	if err := json.Unmarshal(body, &b); err != nil {
		return errorBody{}
	}
	return b
}
