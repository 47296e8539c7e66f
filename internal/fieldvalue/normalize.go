package fieldvalue

import (
	"math"
	"strconv"
	"strings"
)

// Fallbacks substituted when a cell has nothing to display.
const (
	FallbackNA      = "N/A"
	FallbackUnknown = "Unknown"
)

const listSeparator = ", "

// Normalize renders v depth-first. The boolean is false when v has no
// displayable content: absent values, objects without a string value and
// arrays whose elements all normalize to nothing or to blank strings.
// Strings are returned untrimmed.
func Normalize(v Value) (string, bool) {
	switch v.kind {
	case KindString:
		return v.str, true
	case KindNumber:
		return formatNumber(v), true
	case KindBool:
		return strconv.FormatBool(v.b), true
	case KindArray:
		parts := make([]string, 0, len(v.items))
		for _, it := range v.items {
			s, ok := Normalize(it)
			if !ok || strings.TrimSpace(s) == "" {
				continue
			}
			parts = append(parts, s)
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, listSeparator), true
	case KindObject:
		if v.opt.Value == nil {
			return "", false
		}
		return *v.opt.Value, true
	default:
		return "", false
	}
}

// Display normalizes v, trims the result and substitutes fallback when
// nothing is left.
func Display(v Value, fallback string) string {
	s, ok := Normalize(v)
	if !ok {
		return fallback
	}
	if s = strings.TrimSpace(s); s == "" {
		return fallback
	}
	return s
}

// Select is the strict path for single-select cells. Strings and numbers are
// used directly, an object contributes its value, and every other shape
// (arrays included) yields fallback.
func Select(v Value, fallback string) string {
	var s string
	switch v.kind {
	case KindString:
		s = v.str
	case KindNumber:
		s = formatNumber(v)
	case KindObject:
		if v.opt.Value == nil {
			return fallback
		}
		s = *v.opt.Value
	default:
		return fallback
	}
	if s = strings.TrimSpace(s); s == "" {
		return fallback
	}
	return s
}

// Truthy coerces v to a flag: empty strings, zero, false and absent values
// are false; objects and arrays are always true.
func Truthy(v Value) bool {
	switch v.kind {
	case KindString:
		return v.str != ""
	case KindNumber:
		return v.num != 0
	case KindBool:
		return v.b
	case KindObject, KindArray:
		return true
	default:
		return false
	}
}

// formatNumber prints integer literals as received and every other number
// in its shortest round-trip form, switching to exponent notation outside
// [1e-6, 1e21) the way the table service's own UI does.
func formatNumber(v Value) string {
	if isIntegerLiteral(v.lit) {
		if strings.TrimLeft(v.lit, "-0") == "" {
			return "0"
		}
		return v.lit
	}
	f := v.num
	if abs := math.Abs(f); abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func isIntegerLiteral(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
