package parser

import (
	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/models"
	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/stats"
)

// sheetBuilder assembles a SheetPreview in a single pass over its rows.
type sheetBuilder struct {
	sheet   models.SheetPreview
	opts    Options
	acc     *stats.Accumulator
	width   int
	seen    map[string]bool
	hasHead bool
}

func newSheetBuilder(name string, opts Options) *sheetBuilder {
	b := &sheetBuilder{
		sheet: models.SheetPreview{Name: name},
		opts:  opts,
		acc:   stats.NewAccumulator(),
	}
	if opts.DetectDuplicateRows {
		b.seen = make(map[string]bool)
	}
	return b
}

// header records the first source row.
func (b *sheetBuilder) header(values []models.Value) {
	b.hasHead = true
	headers := make([]string, len(values))
	for i, v := range values {
		headers[i] = v.String()
	}
	b.sheet.Headers = headers
	b.widen(len(headers))
}

// row records one data row; blank rows are counted as dropped.
func (b *sheetBuilder) row(rowNum int, values []models.Value) {
	if !b.hasHead {
		b.header(values)
		return
	}
	if isEmptyRow(values) {
		b.sheet.EmptyRows = append(b.sheet.EmptyRows, rowNum)
		return
	}
	values = trimTrailingEmpty(values)
	b.widen(len(values))

	b.sheet.RowCount++
	b.acc.Add(values)

	if b.seen != nil {
		key := models.RowKey(values)
		if b.seen[key] {
			b.sheet.DuplicateRows = append(b.sheet.DuplicateRows, rowNum)
		}
		b.seen[key] = true
	}

	if len(b.sheet.Rows) < b.opts.previewRows() {
		b.sheet.Rows = append(b.sheet.Rows, values)
		if b.opts.PreviewOnly {
			b.sheet.SourceRows = append(b.sheet.SourceRows, rowNum)
		}
	}
	if !b.opts.PreviewOnly {
		b.sheet.Data = append(b.sheet.Data, values)
		b.sheet.SourceRows = append(b.sheet.SourceRows, rowNum)
	}
}

func (b *sheetBuilder) widen(n int) {
	if n > b.width {
		b.width = n
	}
}

// finish pads headers and rows to the sheet width and attaches the tallies.
func (b *sheetBuilder) finish() models.SheetPreview {
	s := b.sheet
	s.ColumnCount = b.width
	s.Headers = padStrings(s.Headers, b.width)
	if s.Headers == nil {
		s.Headers = []string{}
	}
	for i := range s.Rows {
		s.Rows[i] = padValues(s.Rows[i], b.width)
	}
	for i := range s.Data {
		s.Data[i] = padValues(s.Data[i], b.width)
	}
	if s.Rows == nil {
		s.Rows = [][]models.Value{}
	}
	s.Stats = b.acc.Finish(b.width)
	return s
}

func isEmptyRow(values []models.Value) bool {
	for _, v := range values {
		if !v.IsEmpty() {
			return false
		}
	}
	return true
}

func trimTrailingEmpty(values []models.Value) []models.Value {
	n := len(values)
	for n > 0 && values[n-1].IsEmpty() {
		n--
	}
	return values[:n]
}

func padStrings(s []string, n int) []string {
	for len(s) < n {
		s = append(s, "")
	}
	return s
}

// padValues extends a row with empty cells up to n.
func padValues(v []models.Value, n int) []models.Value {
	if len(v) >= n {
		return v
	}
	out := make([]models.Value, n)
	copy(out, v)
	return out
}
