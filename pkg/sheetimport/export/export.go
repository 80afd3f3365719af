// Package export writes a cleaned copy of a parsed document as an xlsx workbook.
package export

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tiendc/go-deepcopy"
	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/models"
	"github.com/xuri/excelize/v2"
)

const (
	minColumnWidth = 8
	maxColumnWidth = 60
)

// MaxRowCount is the number of rows an xlsx worksheet can hold.
const MaxRowCount = excelize.TotalRows

// ExportCleaned returns the xlsx bytes of every sheet of doc holding data.
// Headers are copied unchanged and data rows keep their order; text cells are
// cleaned according to cfg. doc is never modified.
func ExportCleaned(doc *models.PreviewDocument, cfg models.ImportConfiguration) ([]byte, error) {
	if doc == nil || !doc.HasData() {
		return nil, &SerializationError{Err: fmt.Errorf("no sheet holds data rows")}
	}
	for i := range doc.Sheets {
		s := &doc.Sheets[i]
		if s.HasData() && s.Truncated() {
			return nil, &SerializationError{Sheet: s.Name, Err: ErrRowsDiscarded}
		}
	}

	var clone models.PreviewDocument
	if err := deepcopy.Copy(&clone, doc); err != nil {
		return nil, &SerializationError{Err: err}
	}

	c := newCleaner(cfg)
	w, err := newWorkbook()
	if err != nil {
		return nil, &SerializationError{Err: err}
	}
	defer w.f.Close()

	for i := range clone.Sheets {
		s := &clone.Sheets[i]
		if !s.HasData() {
			continue
		}
		rows := s.AllRows()
		if c.enabled() {
			c.rows(rows)
		}
		if err := w.writeSheet(s.Name, s.Headers, rows); err != nil {
			return nil, &SerializationError{Sheet: s.Name, Err: err}
		}
	}

	buf, err := w.f.WriteToBuffer()
	if err != nil {
		return nil, &SerializationError{Err: err}
	}
	return buf.Bytes(), nil
}

// workbook tracks the sheets written to an output file.
type workbook struct {
	f           *excelize.File
	names       map[string]bool
	headerStyle int
	dateStyle   int
}

func newWorkbook() (*workbook, error) {
	f := excelize.NewFile()
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	if err != nil {
		f.Close()
		return nil, err
	}
	return &workbook{f: f, names: make(map[string]bool), headerStyle: headerStyle, dateStyle: dateStyle}, nil
}

// writeSheet streams a header row followed by rows into a new worksheet.
func (w *workbook) writeSheet(name string, headers []string, rows [][]models.Value) error {
	if len(rows)+1 > MaxRowCount {
		return fmt.Errorf("%d rows exceed the worksheet limit of %d", len(rows)+1, MaxRowCount)
	}

	name = w.uniqueName(name)
	if len(w.names) == 1 {
		if err := w.f.SetSheetName("Sheet1", name); err != nil {
			return err
		}
	} else if _, err := w.f.NewSheet(name); err != nil {
		return err
	}

	sw, err := w.f.NewStreamWriter(name)
	if err != nil {
		return err
	}

	for i, width := range columnWidths(headers, rows) {
		if err := sw.SetColWidth(i+1, i+1, width); err != nil {
			return err
		}
	}

	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = excelize.Cell{StyleID: w.headerStyle, Value: h}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for r, row := range rows {
		cells := make([]any, len(row))
		for i, v := range row {
			cells[i] = w.cell(v)
		}
		axis, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(axis, cells); err != nil {
			return fmt.Errorf("%s: %w", axis, err)
		}
	}
	return sw.Flush()
}

// cell maps a value to a stream writer cell. Dates are written as date serials.
func (w *workbook) cell(v models.Value) any {
	switch v.Kind {
	case models.KindEmpty:
		return nil
	case models.KindDate:
		if t, err := time.Parse(time.DateOnly, v.Text); err == nil {
			return excelize.Cell{StyleID: w.dateStyle, Value: t}
		}
		return v.Text
	default:
		if v.IsEmpty() {
			return nil
		}
		return v.Interface()
	}
}

// uniqueName returns a valid worksheet name not used yet in this workbook.
func (w *workbook) uniqueName(name string) string {
	base := sanitizeSheetName(name)
	candidate := base
	for n := 2; w.names[strings.ToLower(candidate)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		candidate = truncate(base, excelize.MaxSheetNameLength-len(suffix)) + suffix
	}
	w.names[strings.ToLower(candidate)] = true
	return candidate
}

// sanitizeSheetName replaces characters xlsx forbids in sheet names.
func sanitizeSheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, name)
	name = strings.Trim(name, "'")
	if strings.TrimSpace(name) == "" {
		name = "Sheet"
	}
	return truncate(name, excelize.MaxSheetNameLength)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// columnWidths sizes each column to its longest text, within bounds.
func columnWidths(headers []string, rows [][]models.Value) []float64 {
	n := len(headers)
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	longest := make([]int, n)
	for i, h := range headers {
		longest[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, v := range row {
			if l := utf8.RuneCountInString(v.String()); l > longest[i] {
				longest[i] = l
			}
		}
	}
	widths := make([]float64, n)
	for i, l := range longest {
		width := l + 2
		if width < minColumnWidth {
			width = minColumnWidth
		}
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		widths[i] = float64(width)
	}
	return widths
}
