package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/models"
	"github.com/xuri/excelize/v2"
)

// RawCell is everything a reader knows about one source cell.
// It is the only place where format-specific cell details appear.
type RawCell struct {
	// Type is the stored cell type.
	Type excelize.CellType
	// Value is the raw stored value; for formulas it is the cached result.
	Value string
	// Formula is the cell formula, if any.
	Formula string
	// Display is the computed or formatted text, used when a formula has no cached result.
	Display string
	// NumFmtID is the number format id applied to the cell.
	NumFmtID int
	// NumFmtCode is the custom number format code, if any.
	NumFmtCode string
	// Date1904 selects the 1904 date system for serial dates.
	Date1904 bool
	// RichText holds the runs of a rich text cell.
	RichText []excelize.RichTextRun
}

// Normalize returns the canonical scalar of a cell. In priority order:
// formula results (cached, else display text), dates as ISO text,
// rich text joined, then the raw scalar.
func Normalize(c RawCell) models.Value {
	if c.Formula != "" && c.Value == "" {
		return models.Text(c.Display)
	}

	if iso, ok := dateValue(c); ok {
		return models.Date(iso)
	}

	if len(c.RichText) > 0 {
		var b strings.Builder
		for _, run := range c.RichText {
			b.WriteString(run.Text)
		}
		return models.Text(b.String())
	}

	return scalarValue(c)
}

// dateValue converts ISO date cells and date-formatted serial numbers.
// The time of day is discarded.
func dateValue(c RawCell) (string, bool) {
	switch c.Type {
	case excelize.CellTypeDate:
		return isoDate(c.Value)
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		if c.Value == "" || !IsDateFormat(c.NumFmtID, c.NumFmtCode) {
			return "", false
		}
		serial, err := strconv.ParseFloat(c.Value, 64)
		if err != nil {
			return "", false
		}
		t, err := excelize.ExcelDateToTime(serial, c.Date1904)
		if err != nil {
			return "", false
		}
		return t.Format(time.DateOnly), true
	}
	return "", false
}

func isoDate(s string) (string, bool) {
	for _, lay := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", time.DateOnly} {
		if t, err := time.Parse(lay, s); err == nil {
			return t.Format(time.DateOnly), true
		}
	}
	if len(s) >= 10 {
		if t, err := time.Parse(time.DateOnly, s[:10]); err == nil {
			return t.Format(time.DateOnly), true
		}
	}
	return "", false
}

// scalarValue maps the raw stored value by its cell type.
func scalarValue(c RawCell) models.Value {
	switch c.Type {
	case excelize.CellTypeBool:
		switch strings.ToUpper(strings.TrimSpace(c.Value)) {
		case "1", "TRUE":
			return models.Bool(true)
		case "0", "FALSE":
			return models.Bool(false)
		}
		return models.Text(c.Value)
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		return parseValue(c.Value)
	default:
		return models.Text(c.Value)
	}
}

// parseValue attempts to parse a stored numeric string.
// Returns a number for numeric input, or the original text.
func parseValue(s string) models.Value {
	if s == "" {
		return models.Empty()
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.Number(float64(i))
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return models.Number(f)
	}
	return models.Text(s)
}
