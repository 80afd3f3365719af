package sheetimport

import (
	"errors"
	"fmt"

	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/export"
	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrFileTooLarge indicates the input exceeds the configured size limit.
var ErrFileTooLarge = errors.New("file too large")

// Re-exported from the parser and export packages.
var (
	ErrCorruptFile       = parser.ErrCorruptFile
	ErrUnsupportedFormat = parser.ErrUnsupportedFormat
	ErrNoSheets          = parser.ErrNoSheets
	ErrSerialization     = export.ErrSerialization
	ErrRowsDiscarded     = export.ErrRowsDiscarded
)

type (
	CorruptFileError       = parser.CorruptFileError
	UnsupportedFormatError = parser.UnsupportedFormatError
	SerializationError     = export.SerializationError
)

// FileTooLargeError reports input rejected before parsing.
type FileTooLargeError struct {
	FileName string
	// Size is the number of bytes read before giving up; at least Limit+1.
	Size  int64
	Limit int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file %q exceeds the size limit of %d bytes", e.FileName, e.Limit)
}

// Is matches ErrFileTooLarge.
func (e *FileTooLargeError) Is(target error) bool {
	return target == ErrFileTooLarge
}
