package parser

import (
	"errors"
	"fmt"
)

// ErrCorruptFile indicates the input cannot be decoded as a spreadsheet.
var ErrCorruptFile = errors.New("corrupt spreadsheet file")

// ErrUnsupportedFormat indicates a recognized container that is not xlsx or csv.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// ErrNoSheets indicates a workbook without worksheets.
var ErrNoSheets = errors.New("workbook contains no sheets")

// CorruptFileError reports a file that could not be decoded.
type CorruptFileError struct {
	FileName string
	Err      error
}

func (e *CorruptFileError) Error() string {
	return fmt.Sprintf("corrupt file %q: %v", e.FileName, e.Err)
}

func (e *CorruptFileError) Unwrap() error {
	return e.Err
}

// Is matches ErrCorruptFile.
func (e *CorruptFileError) Is(target error) bool {
	return target == ErrCorruptFile
}

// UnsupportedFormatError reports a recognized but unsupported container.
type UnsupportedFormatError struct {
	FileName string
	Format   Format
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q for file %q", e.Format, e.FileName)
}

// Is matches ErrUnsupportedFormat.
func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}
