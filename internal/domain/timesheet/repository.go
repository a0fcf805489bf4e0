package timesheet

import (
	"context"
)

// BatchRepository defines data access for import batches and their derived
// daily and monthly rows. Rows are written once per import and never updated.
type BatchRepository interface {
	// CreateBatch stores the batch header.
	CreateBatch(ctx context.Context, batch ImportBatch) error

	// GetBatch retrieves a batch header by ID.
	GetBatch(ctx context.Context, id string) (ImportBatch, error)

	// ListBatches retrieves all batch headers, newest first.
	ListBatches(ctx context.Context) ([]ImportBatch, error)

	// InsertDailyResults stores the processed daily rows of a batch.
	InsertDailyResults(ctx context.Context, batchID string, results []DailyResult) error

	// ListDaily retrieves daily rows of a batch with filters and pagination.
	ListDaily(ctx context.Context, batchID string, filter DailyFilter) ([]DailyResult, int64, error)

	// ListAllDaily retrieves every daily row of a batch, for export.
	ListAllDaily(ctx context.Context, batchID string) ([]DailyResult, error)

	// InsertMonthlyAggregates stores the monthly summary rows of a batch.
	InsertMonthlyAggregates(ctx context.Context, batchID string, aggregates []MonthlyAggregate) error

	// ListMonthly retrieves the monthly summary rows of a batch.
	ListMonthly(ctx context.Context, batchID string) ([]MonthlyAggregate, error)
}
