// Package parser decodes spreadsheet bytes into preview documents.
package parser

import (
	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/models"
)

// DefaultPreviewRows is the number of data rows kept for display.
const DefaultPreviewRows = 10

// Options configures parsing.
type Options struct {
	// PreviewRows caps SheetPreview.Rows. Zero or negative means DefaultPreviewRows.
	PreviewRows int
	// PreviewOnly discards rows beyond the preview instead of keeping them in Data.
	// Row counts and statistics still cover every row.
	PreviewOnly bool
	// DetectDuplicateRows fills SheetPreview.DuplicateRows.
	DetectDuplicateRows bool
	// Charset forces the text encoding of delimited input (default: auto).
	Charset string
	// SheetName names the sheet of delimited input (default: file name).
	SheetName string
}

// DefaultOptions returns default parse options.
func DefaultOptions() Options {
	return Options{
		PreviewRows: DefaultPreviewRows,
	}
}

func (o Options) previewRows() int {
	if o.PreviewRows <= 0 {
		return DefaultPreviewRows
	}
	return o.PreviewRows
}

// Parse decodes data into a PreviewDocument.
// It fails with *CorruptFileError when the bytes cannot be decoded and with
// *UnsupportedFormatError when the container is recognized but not supported.
func Parse(fileName string, data []byte, opts Options) (*models.PreviewDocument, error) {
	format, err := DetectFormat(data)
	if err != nil {
		return nil, &CorruptFileError{FileName: fileName, Err: err}
	}

	var sheets []models.SheetPreview
	switch format {
	case FormatXLSX:
		sheets, err = parseXLSX(fileName, data, opts)
	case FormatCSV:
		sheets, err = parseCSV(fileName, data, opts)
	default:
		return nil, &UnsupportedFormatError{FileName: fileName, Format: format}
	}
	if err != nil {
		return nil, err
	}
	if len(sheets) == 0 {
		return nil, &CorruptFileError{FileName: fileName, Err: ErrNoSheets}
	}

	return &models.PreviewDocument{
		FileName:      fileName,
		FileSizeBytes: int64(len(data)),
		Format:        string(format),
		Sheets:        sheets,
	}, nil
}
