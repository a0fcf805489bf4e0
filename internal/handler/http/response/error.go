package response

import (
	"errors"
	"net/http"

	"github.com/punchsheet/punchsheet-backend-go/internal/domain/auth"
	"github.com/punchsheet/punchsheet-backend-go/internal/domain/timesheet"
	"github.com/punchsheet/punchsheet-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// A header missing required columns carries the column names
	var missingCols *timesheet.MissingColumnsError
	if errors.As(err, &missingCols) {
		details := make(map[string]string, len(missingCols.Columns))
		for _, col := range missingCols.Columns {
			details[col] = "column is missing from the worksheet header"
		}
		BadRequest(w, "Worksheet header is missing required columns", details)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrBatchNotFound):
		NotFound(w, "Import batch not found")
	case errors.Is(err, timesheet.ErrUnsupportedFile):
		BadRequest(w, "Unsupported file type, expected .xls or .xlsx", nil)
	case errors.Is(err, timesheet.ErrEmptyWorksheet):
		BadRequest(w, "Worksheet is empty", nil)
	case errors.Is(err, timesheet.ErrNoUsableRows):
		BadRequest(w, "Worksheet contains no usable attendance rows", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
