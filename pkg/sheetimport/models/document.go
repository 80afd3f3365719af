package models

// PreviewDocument represents one parsed spreadsheet file.
type PreviewDocument struct {
	// FileName is the uploaded file name (no path).
	FileName string `json:"file_name"`
	// FileSizeBytes is the size of the raw input.
	FileSizeBytes int64 `json:"file_size_bytes"`
	// Format is the detected container format (e.g. "xlsx", "csv").
	Format string `json:"format"`
	// Sheets holds one entry per worksheet in source order.
	Sheets []SheetPreview `json:"sheets"`
}

// TotalRows sums RowCount across sheets.
func (d *PreviewDocument) TotalRows() int {
	n := 0
	for i := range d.Sheets {
		n += d.Sheets[i].RowCount
	}
	return n
}

// HasData reports whether any sheet holds data rows.
func (d *PreviewDocument) HasData() bool {
	for i := range d.Sheets {
		if d.Sheets[i].HasData() {
			return true
		}
	}
	return false
}

// Sheet returns the first sheet named name.
func (d *PreviewDocument) Sheet(name string) (*SheetPreview, bool) {
	for i := range d.Sheets {
		if d.Sheets[i].Name == name {
			return &d.Sheets[i], true
		}
	}
	return nil, false
}
