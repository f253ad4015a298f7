package xlquick

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueKind is the type tag of a cell value.
type ValueKind int

const (
	KindEmpty ValueKind = iota
	KindText
	KindNumber
)

// String returns a human-readable name for the ValueKind.
func (k ValueKind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindText:
		return "Text"
	case KindNumber:
		return "Number"
	default:
		return "Unknown"
	}
}

// Value is a single cell value. The kind is fixed when the grid is read from the host,
// so transforms never need to probe runtime types.
type Value struct {
	Kind ValueKind
	Str  string
	Num  float64
}

// Empty returns the absent value.
func Empty() Value { return Value{} }

// Text returns a text value.
func Text(s string) Value { return Value{Kind: KindText, Str: s} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{Kind: KindNumber, Num: f} }

// TextOrEmpty returns Empty for "" and Text(s) otherwise.
func TextOrEmpty(s string) Value {
	if s == "" {
		return Empty()
	}
	return Text(s)
}

// IsEmpty reports whether the value is absent.
func (v Value) IsEmpty() bool { return v.Kind == KindEmpty }

// String renders the value as it would appear in a plain-text export.
// Numbers use the shortest representation that round-trips.
func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return v.Str
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	default:
		return ""
	}
}

// Any returns the value as a plain Go value: nil, string or float64.
func (v Value) Any() any {
	switch v.Kind {
	case KindText:
		return v.Str
	case KindNumber:
		return v.Num
	default:
		return nil
	}
}

// Equal compares two values after normalizing Empty to the empty string.
// A number never equals a text, even when they render the same.
func (v Value) Equal(o Value) bool {
	a, b := v.normalized(), o.normalized()
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == KindNumber {
		return a.Num == b.Num
	}
	return a.Str == b.Str
}

func (v Value) normalized() Value {
	if v.Kind == KindEmpty {
		return Text("")
	}
	return v
}

// IsBlank reports whether a value carries no data: absent, empty text, or whitespace-only text.
// Numbers, including zero, are never blank.
func IsBlank(v Value) bool {
	switch v.Kind {
	case KindEmpty:
		return true
	case KindText:
		return strings.TrimSpace(v.Str) == ""
	default:
		return false
	}
}

// ValueOf converts a Go value produced by user code (expressions, callers) into a Value.
func ValueOf(x any) Value {
	switch t := x.(type) {
	case nil:
		return Empty()
	case Value:
		return t
	case string:
		return TextOrEmpty(t)
	case bool:
		if t {
			return Text("TRUE")
		}
		return Text("FALSE")
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int8:
		return Number(float64(t))
	case int16:
		return Number(float64(t))
	case int32:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case uint:
		return Number(float64(t))
	case uint8:
		return Number(float64(t))
	case uint16:
		return Number(float64(t))
	case uint32:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case HyperlinkValue:
		return TextOrEmpty(t.String())
	default:
		return TextOrEmpty(fmt.Sprint(t))
	}
}
