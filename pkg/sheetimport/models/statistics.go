package models

// DataStatistics aggregates fill and type counts over a document.
type DataStatistics struct {
	// TotalCells counts every cell position of every data row.
	TotalCells int `json:"total_cells"`
	// FilledCells counts non-empty cells.
	FilledCells int `json:"filled_cells"`
	// FillRate is FilledCells / TotalCells, 0 when there are no cells.
	FillRate float64 `json:"fill_rate"`
	// AverageColumnsPerSheet is the mean ColumnCount, 0 when there are no sheets.
	AverageColumnsPerSheet float64 `json:"average_columns_per_sheet"`
	// TypeDistribution counts non-empty cells per inferred type.
	TypeDistribution map[DataType]int `json:"type_distribution"`
}
