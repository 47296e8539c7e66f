// Package fieldvalue models the polymorphic cell values returned by the
// upstream table service and turns them into stable display strings.
package fieldvalue

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// Kind is the variant tag of a Value.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindString
	KindNumber
	KindBool
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Option is an object cell, typically a single-select option or a link-row
// reference. Value is nil when the object carries no string "value".
type Option struct {
	ID    int64
	Value *string
	Color string
}

// Value is one raw cell. The zero Value is absent.
type Value struct {
	kind  Kind
	str   string
	num   float64
	lit   string
	b     bool
	opt   Option
	items []Value
}

// Absent returns the absent value.
func Absent() Value { return Value{} }

// String returns a plain string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// NumberLiteral returns a numeric value that keeps its wire text, so integers
// beyond float64 precision display unchanged.
func NumberLiteral(n json.Number) (Value, error) {
	f, err := n.Float64()
	if err != nil {
		return Value{}, fmt.Errorf("decode field value: number %q: %w", n, err)
	}
	return Value{kind: KindNumber, num: f, lit: n.String()}, nil
}

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Object returns an object value.
func Object(o Option) Value { return Value{kind: KindObject, opt: o} }

// SelectOption is shorthand for an object with a string value.
func SelectOption(id int64, value, color string) Value {
	return Object(Option{ID: id, Value: &value, Color: color})
}

// Array returns an array value holding items in order.
func Array(items ...Value) Value { return Value{kind: KindArray, items: items} }

// Kind reports the variant.
func (v Value) Kind() Kind { return v.kind }

// Items returns the elements of an array value.
func (v Value) Items() []Value { return v.items }

// Parse decodes a raw JSON cell. Empty input and JSON null are absent.
func Parse(raw json.RawMessage) (Value, error) {
	var v Value
	if err := v.UnmarshalJSON(raw); err != nil {
		return Value{}, err
	}
	return v, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*v = Value{}
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return fmt.Errorf("decode field value: %w", err)
	}
	out, err := fromAny(decoded)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

func fromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Absent(), nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return NumberLiteral(t)
	case []any:
		items := make([]Value, 0, len(t))
		for _, el := range t {
			iv, err := fromAny(el)
			if err != nil {
				return Value{}, err
			}
			items = append(items, iv)
		}
		return Array(items...), nil
	case map[string]any:
		var o Option
		if s, ok := t["value"].(string); ok {
			o.Value = &s
		}
		if n, ok := t["id"].(json.Number); ok {
			if id, err := n.Int64(); err == nil {
				o.ID = id
			}
		}
		if c, ok := t["color"].(string); ok {
			o.Color = c
		}
		return Object(o), nil
	default:
		return Value{}, fmt.Errorf("decode field value: unsupported type %T", x)
	}
}
