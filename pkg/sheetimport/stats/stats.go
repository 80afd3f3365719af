// Package stats aggregates fill rates and type distributions over parsed documents.
package stats

import (
	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/infer"
	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/models"
)

// Accumulator tallies one sheet row by row, so a parser can discard rows
// beyond its preview and still report full statistics.
type Accumulator struct {
	rows         int
	widest       int
	filled       int
	typeCounts   map[models.DataType]int
	columnFilled []int
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{typeCounts: make(map[models.DataType]int)}
}

// Add tallies one retained data row.
func (a *Accumulator) Add(row []models.Value) {
	a.rows++
	if len(row) > a.widest {
		a.widest = len(row)
	}
	for col, v := range row {
		t := infer.Classify(v)
		if t == models.TypeEmpty {
			continue
		}
		a.filled++
		a.typeCounts[t]++
		for len(a.columnFilled) <= col {
			a.columnFilled = append(a.columnFilled, 0)
		}
		a.columnFilled[col]++
	}
}

// Finish returns the tallies for a sheet of the given width.
// Rows wider than columnCount widen the sheet, so FilledCells never exceeds TotalCells.
func (a *Accumulator) Finish(columnCount int) *models.SheetStatistics {
	if a.widest > columnCount {
		columnCount = a.widest
	}
	colFilled := make([]int, columnCount)
	copy(colFilled, a.columnFilled)
	counts := make(map[models.DataType]int, len(a.typeCounts))
	for k, v := range a.typeCounts {
		counts[k] = v
	}
	return &models.SheetStatistics{
		TotalCells:   a.rows * columnCount,
		FilledCells:  a.filled,
		TypeCounts:   counts,
		ColumnFilled: colFilled,
	}
}

// Tally computes sheet statistics from rows directly.
func Tally(rows [][]models.Value, columnCount int) *models.SheetStatistics {
	a := NewAccumulator()
	for _, r := range rows {
		a.Add(r)
	}
	return a.Finish(columnCount)
}

// ForSheet returns the parse-time tallies of s, or computes them from its rows.
func ForSheet(s *models.SheetPreview) *models.SheetStatistics {
	if s.Stats != nil {
		return s.Stats
	}
	return Tally(s.AllRows(), s.ColumnCount)
}

// Compute aggregates statistics over every sheet of doc. It never modifies doc.
func Compute(doc *models.PreviewDocument) models.DataStatistics {
	res := models.DataStatistics{
		TypeDistribution: make(map[models.DataType]int),
	}
	if doc == nil {
		return res
	}

	columns := 0
	for i := range doc.Sheets {
		s := &doc.Sheets[i]
		st := ForSheet(s)
		res.TotalCells += st.TotalCells
		res.FilledCells += st.FilledCells
		for t, n := range st.TypeCounts {
			res.TypeDistribution[t] += n
		}
		columns += s.ColumnCount
	}

	if res.TotalCells > 0 {
		res.FillRate = float64(res.FilledCells) / float64(res.TotalCells)
	}
	if len(doc.Sheets) > 0 {
		res.AverageColumnsPerSheet = float64(columns) / float64(len(doc.Sheets))
	}
	return res
}
