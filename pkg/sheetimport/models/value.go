// Package models defines data structures for spreadsheet import.
package models

import (
	"encoding/json"
	"strconv"
)

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	// KindEmpty is an absent or blank cell.
	KindEmpty ValueKind = iota
	// KindNumber is a native numeric cell.
	KindNumber
	// KindBool is a native boolean cell.
	KindBool
	// KindDate is a date cell, stored as ISO "2006-01-02" text.
	KindDate
	// KindText is any other textual content.
	KindText
)

func (k ValueKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Value is the canonical scalar content of one cell.
// Only the field matching Kind is meaningful; dates keep their ISO text in Text.
type Value struct {
	Kind ValueKind
	Num  float64
	Bool bool
	Text string
}

// Empty returns the empty value.
func Empty() Value { return Value{} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{Kind: KindNumber, Num: f} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Date returns a date value from its ISO text.
func Date(iso string) Value { return Value{Kind: KindDate, Text: iso} }

// Text returns a text value. The empty string yields the empty value.
func Text(s string) Value {
	if s == "" {
		return Value{}
	}
	return Value{Kind: KindText, Text: s}
}

// IsEmpty reports whether v carries no content.
func (v Value) IsEmpty() bool {
	return v.Kind == KindEmpty || ((v.Kind == KindText || v.Kind == KindDate) && v.Text == "")
}

// String renders the value the way a spreadsheet would display it.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindBool:
		if v.Bool {
			return "TRUE"
		}
		return "FALSE"
	case KindDate, KindText:
		return v.Text
	default:
		return ""
	}
}

// Interface returns the Go value suitable for a spreadsheet writer.
func (v Value) Interface() any {
	switch v.Kind {
	case KindNumber:
		return v.Num
	case KindBool:
		return v.Bool
	case KindDate, KindText:
		return v.Text
	default:
		return nil
	}
}

// MarshalJSON encodes the value as a bare JSON scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// UnmarshalJSON decodes a bare JSON scalar. Strings become text values.
func (v *Value) UnmarshalJSON(data []byte) error {
	var x any
	if err := json.Unmarshal(data, &x); err != nil {
		return err
	}
	switch t := x.(type) {
	case nil:
		*v = Empty()
	case float64:
		*v = Number(t)
	case bool:
		*v = Bool(t)
	case string:
		*v = Text(t)
	}
	return nil
}
