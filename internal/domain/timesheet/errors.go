package timesheet

import (
	"errors"
	"fmt"
	"strings"
)

// Timesheet domain errors
var (
	ErrBatchNotFound   = errors.New("import batch not found")
	ErrEmptyWorksheet  = errors.New("worksheet is empty")
	ErrUnsupportedFile = errors.New("unsupported spreadsheet format")
	ErrNoUsableRows    = errors.New("no usable attendance rows in the uploaded file")
)

// MissingColumnsError rejects a whole upload when required headers are
// absent. Per-row anomalies never produce it; only the header check does.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}
