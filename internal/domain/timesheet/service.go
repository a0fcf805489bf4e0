package timesheet

import (
	"context"
	"io"
)

// TimesheetService defines business logic for spreadsheet imports and the
// derived reports.
type TimesheetService interface {
	// Import reads a punch-clock export, runs the reconciliation engine and
	// stores the batch with its daily and monthly rows.
	Import(ctx context.Context, fileName string, r io.Reader) (ImportResponse, error)

	// ListBatches lists previously imported batches.
	ListBatches(ctx context.Context) ([]BatchResponse, error)

	// GetDaily returns the daily detail rows of a batch.
	GetDaily(ctx context.Context, batchID string, filter DailyFilter) (ListDailyResponse, error)

	// GetMonthlySummary returns the per-person monthly summary of a batch.
	GetMonthlySummary(ctx context.Context, batchID string) (MonthlySummaryResponse, error)

	// ExportWorkbook renders the two-sheet output workbook for a batch.
	ExportWorkbook(ctx context.Context, batchID string, w io.Writer) error

	// ExportSummaryPDF renders the monthly summary as a PDF.
	ExportSummaryPDF(ctx context.Context, batchID string, w io.Writer) error
}
