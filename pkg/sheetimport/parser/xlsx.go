package parser

import (
	"bytes"
	"fmt"

	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/models"
	"github.com/xuri/excelize/v2"
)

// xlsxReader reads worksheets of one opened workbook.
type xlsxReader struct {
	f        *excelize.File
	date1904 bool
	// styles caches number formats by style index.
	styles map[int]numFmt
}

type numFmt struct {
	id   int
	code string
}

// parseXLSX reads every worksheet of an xlsx workbook in file order.
func parseXLSX(fileName string, data []byte, opts Options) ([]models.SheetPreview, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &CorruptFileError{FileName: fileName, Err: err}
	}
	defer f.Close()

	// Get sheet names
	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, &CorruptFileError{FileName: fileName, Err: ErrNoSheets}
	}

	r := &xlsxReader{f: f, styles: make(map[int]numFmt)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		r.date1904 = *props.Date1904
	}
	active := f.GetActiveSheetIndex()

	sheets := make([]models.SheetPreview, 0, len(sheetList))
	for _, sheetName := range sheetList {
		sheet, err := r.readSheet(sheetName, opts)
		if err != nil {
			return nil, &CorruptFileError{FileName: fileName, Err: fmt.Errorf("sheet %q: %w", sheetName, err)}
		}

		if visible, err := f.GetSheetVisible(sheetName); err == nil {
			sheet.Hidden = !visible
		}
		if idx, err := f.GetSheetIndex(sheetName); err == nil {
			sheet.IsActive = idx == active && !sheet.Hidden
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

// readSheet streams the rows of one worksheet through a sheetBuilder.
func (r *xlsxReader) readSheet(sheetName string, opts Options) (models.SheetPreview, error) {
	rows, err := r.f.Rows(sheetName)
	if err != nil {
		return models.SheetPreview{}, err
	}
	defer rows.Close()

	b := newSheetBuilder(sheetName, opts)
	rowNum := 0
	for rows.Next() {
		rowNum++ // 1-based row index
		cols, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return models.SheetPreview{}, err
		}

		width := len(cols)
		if b.width > width {
			width = b.width
		}
		values := make([]models.Value, width)
		for colIdx := 0; colIdx < width; colIdx++ {
			// Cells past the last stored one hold neither a value nor a formula.
			if colIdx >= len(cols) {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return models.SheetPreview{}, err
			}
			values[colIdx] = Normalize(r.rawCell(sheetName, cell, cols[colIdx]))
		}
		b.row(rowNum, values)
	}
	if err := rows.Error(); err != nil {
		return models.SheetPreview{}, err
	}
	return b.finish(), nil
}

// rawCell collects the stored details of one cell, looking up only what
// Normalize needs for it. The cell getters load the worksheet DOM once per
// sheet and keep it for the remaining lookups; that memory cost is accepted.
func (r *xlsxReader) rawCell(sheetName, cell, raw string) RawCell {
	rc := RawCell{Value: raw, Date1904: r.date1904}

	if raw == "" {
		// Only a formula without a cached result can still produce a value.
		formula, _ := r.f.GetCellFormula(sheetName, cell)
		if formula == "" {
			return rc
		}
		rc.Formula = formula
		rc.Display, _ = r.f.CalcCellValue(sheetName, cell)
		return rc
	}

	rc.Type, _ = r.f.GetCellType(sheetName, cell)
	switch rc.Type {
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		nf := r.numFmt(sheetName, cell)
		rc.NumFmtID, rc.NumFmtCode = nf.id, nf.code
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		if runs, err := r.f.GetCellRichText(sheetName, cell); err == nil && len(runs) > 1 {
			rc.RichText = runs
		}
	}
	return rc
}

func (r *xlsxReader) numFmt(sheetName, cell string) numFmt {
	idx, err := r.f.GetCellStyle(sheetName, cell)
	if err != nil || idx == 0 {
		return numFmt{}
	}
	if nf, ok := r.styles[idx]; ok {
		return nf
	}
	var nf numFmt
	if style, err := r.f.GetStyle(idx); err == nil && style != nil {
		nf.id = style.NumFmt
		if style.CustomNumFmt != nil {
			nf.code = *style.CustomNumFmt
		}
	}
	r.styles[idx] = nf
	return nf
}
