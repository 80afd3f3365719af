package export

import (
	"errors"
	"fmt"
)

// ErrSerialization indicates the output workbook could not be built.
var ErrSerialization = errors.New("cannot serialize workbook")

// ErrRowsDiscarded indicates a sheet whose rows beyond the preview were not
// retained, so exporting it would drop rows.
var ErrRowsDiscarded = errors.New("sheet rows were discarded after preview")

// SerializationError reports a failed export. The source document stays valid.
type SerializationError struct {
	// Sheet is the sheet being written, empty for workbook-level failures.
	Sheet string
	Err   error
}

func (e *SerializationError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("serialization failed: %v", e.Err)
	}
	return fmt.Sprintf("serialization failed at sheet %q: %v", e.Sheet, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// Is matches ErrSerialization.
func (e *SerializationError) Is(target error) bool {
	return target == ErrSerialization
}
