// Package output renders import results as JSON.
package output

import (
	"encoding/json"

	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/models"
)

// ToJSON serializes v, typically an import result or a document.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// RowView is one data row with its source row number.
type RowView struct {
	// R is the 1-based source row number.
	R int `json:"r"`
	// C holds the normalized cells, padded to the sheet width.
	C []models.Value `json:"c"`
}

// SheetView is a sheet with every retained row, not only the preview.
type SheetView struct {
	Name        string    `json:"name"`
	Headers     []string  `json:"headers"`
	RowCount    int       `json:"row_count"`
	ColumnCount int       `json:"column_count"`
	Truncated   bool      `json:"truncated,omitempty"`
	Rows        []RowView `json:"rows"`
}

// NewSheetView builds the view of s.
func NewSheetView(s *models.SheetPreview) SheetView {
	all := s.AllRows()
	view := SheetView{
		Name:        s.Name,
		Headers:     s.Headers,
		RowCount:    s.RowCount,
		ColumnCount: s.ColumnCount,
		Truncated:   s.Truncated(),
		Rows:        make([]RowView, len(all)),
	}
	for i, row := range all {
		view.Rows[i] = RowView{R: s.RowNumber(i), C: row}
	}
	return view
}

// SheetToJSON serializes one sheet with all its retained rows.
func SheetToJSON(s *models.SheetPreview, pretty bool) ([]byte, error) {
	return ToJSON(NewSheetView(s), pretty)
}
