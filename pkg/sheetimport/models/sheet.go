package models

import (
	"strconv"
	"strings"
)

// SheetPreview represents one parsed worksheet.
type SheetPreview struct {
	// Name is the worksheet name. Duplicates across a document are preserved.
	Name string `json:"name"`
	// Headers holds the first row, padded with "" up to ColumnCount.
	Headers []string `json:"headers"`
	// Rows is the capped preview of non-empty data rows.
	Rows [][]Value `json:"rows"`
	// Data holds every retained data row (nil when parsed in preview-only mode).
	Data [][]Value `json:"-"`
	// SourceRows holds the 1-based source row number of each row in AllRows.
	SourceRows []int `json:"-"`
	// RowCount is the number of non-empty data rows in the source sheet.
	RowCount int `json:"row_count"`
	// ColumnCount is the widest of the header row and all data rows.
	ColumnCount int `json:"column_count"`
	// IsActive is true for the selected tab of the workbook.
	IsActive bool `json:"is_active"`
	// Hidden is true when the sheet is hidden in the workbook.
	Hidden bool `json:"hidden,omitempty"`
	// EmptyRows lists the 1-based source row numbers of dropped blank rows.
	EmptyRows []int `json:"empty_rows,omitempty"`
	// DuplicateRows lists 1-based source row numbers that repeat an earlier row.
	// Only populated when duplicate detection is requested.
	DuplicateRows []int `json:"duplicate_rows,omitempty"`
	// Stats holds the tallies collected while parsing (nil for hand-built sheets).
	Stats *SheetStatistics `json:"stats,omitempty"`
}

// HasData reports whether the sheet holds at least one data row.
func (s *SheetPreview) HasData() bool {
	return s.RowCount > 0
}

// AllRows returns the full retained rows, falling back to the preview.
func (s *SheetPreview) AllRows() [][]Value {
	if s.Data != nil {
		return s.Data
	}
	return s.Rows
}

// RowNumber returns the 1-based source row of the i-th row in AllRows.
// Sheets built without source numbers assume one header row and no gaps.
func (s *SheetPreview) RowNumber(i int) int {
	if i < len(s.SourceRows) {
		return s.SourceRows[i]
	}
	return i + 2
}

// Truncated reports whether rows beyond the preview were discarded.
func (s *SheetPreview) Truncated() bool {
	return s.Data == nil && len(s.Rows) < s.RowCount
}

// HeaderIndex returns the position of the first header equal to name, or -1.
func (s *SheetPreview) HeaderIndex(name string) int {
	key := HeaderKey(name)
	for i, h := range s.Headers {
		if HeaderKey(h) == key {
			return i
		}
	}
	return -1
}

// SheetStatistics holds per-sheet tallies gathered in the parse pass.
type SheetStatistics struct {
	// TotalCells is RowCount * ColumnCount.
	TotalCells int `json:"total_cells"`
	// FilledCells counts non-empty cells.
	FilledCells int `json:"filled_cells"`
	// TypeCounts counts non-empty cells per inferred type.
	TypeCounts map[DataType]int `json:"type_counts"`
	// ColumnFilled counts non-empty cells per column index.
	ColumnFilled []int `json:"column_filled"`
}

// RowKey returns an exact key for comparing rows: two rows share a key only
// when every cell has the same kind and text. Trailing empty cells are ignored.
func RowKey(row []Value) string {
	n := len(row)
	for n > 0 && row[n-1].IsEmpty() {
		n--
	}
	var b strings.Builder
	for _, v := range row[:n] {
		s := v.String()
		b.WriteString(v.Kind.String())
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(len(s)))
		b.WriteByte(':')
		b.WriteString(s)
	}
	return b.String()
}
