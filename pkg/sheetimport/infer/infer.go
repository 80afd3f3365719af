// Package infer classifies normalized cell values into semantic data types.
package infer

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/models"
)

// dateLayouts are tried in order when a text value is checked for a date.
var dateLayouts = []string{
	"2006-01-02",
	"2006/1/2",
	"1/2/2006",
	"2.1.2006",
	"1-2-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
}

// Classify returns the data type of v. The first matching check wins:
// empty, native number, native boolean, native date, then text tests for
// email, number-as-text, date-as-text and finally plain text.
func Classify(v models.Value) models.DataType {
	if v.IsEmpty() {
		return models.TypeEmpty
	}
	switch v.Kind {
	case models.KindNumber:
		if isInteger(v.Num) {
			return models.TypeInteger
		}
		return models.TypeDecimal
	case models.KindBool:
		return models.TypeBoolean
	case models.KindDate:
		return models.TypeDate
	case models.KindText:
		return classifyText(v.Text)
	}
	return models.TypeUnknown
}

func classifyText(s string) models.DataType {
	if IsEmailLike(s) {
		return models.TypeEmail
	}
	if _, ok := ParseNumber(s); ok {
		return models.TypeNumberAsText
	}
	if _, ok := ParseDate(s); ok {
		return models.TypeDateAsText
	}
	return models.TypeText
}

// IsEmailLike is the loose email heuristic: an "@", a "." and more than 5 characters.
func IsEmailLike(s string) bool {
	return len(s) > 5 && strings.Contains(s, "@") && strings.Contains(s, ".")
}

// ParseNumber parses s as a finite number after trimming.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParseDate parses s against the known calendar layouts.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, lay := range dateLayouts {
		if t, err := time.Parse(lay, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func isInteger(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f)
}

// Matches reports whether a value of type got satisfies an expected type.
// Empty values always match; integers satisfy decimal columns and the
// "as text" variants satisfy their native counterparts.
func Matches(expected, got models.DataType) bool {
	if got == models.TypeEmpty || expected == got {
		return true
	}
	switch expected {
	case models.TypeDecimal:
		return got == models.TypeInteger || got == models.TypeNumberAsText
	case models.TypeInteger:
		return got == models.TypeNumberAsText
	case models.TypeDate:
		return got == models.TypeDateAsText
	case models.TypeText:
		return true
	}
	return false
}
