package postgresql

import (
	"context"
	"fmt"

	"github.com/punchsheet/punchsheet-backend-go/internal/pkg/database"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS attendance_batches (
		id UUID PRIMARY KEY,
		file_name TEXT NOT NULL,
		row_count INT NOT NULL,
		skipped_rows INT NOT NULL,
		imported_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS attendance_days (
		id BIGSERIAL PRIMARY KEY,
		batch_id UUID NOT NULL REFERENCES attendance_batches(id) ON DELETE CASCADE,
		person TEXT NOT NULL,
		department TEXT NOT NULL,
		role TEXT NOT NULL,
		work_date DATE NOT NULL,
		raw_clock_in TEXT NOT NULL,
		clock_in_result TEXT NOT NULL,
		raw_clock_out TEXT NOT NULL,
		clock_out_result TEXT NOT NULL,
		raw_approval TEXT NOT NULL,
		group_label TEXT NOT NULL,
		approval_category TEXT NOT NULL,
		approval_start TIMESTAMPTZ,
		approval_end TIMESTAMPTZ,
		effective_clock_in TIMESTAMPTZ,
		effective_clock_out TIMESTAMPTZ,
		morning_minutes INT NOT NULL,
		afternoon_minutes INT NOT NULL,
		evening_minutes INT NOT NULL,
		total_minutes INT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_days_batch ON attendance_days (batch_id, department, person, work_date)`,
	`CREATE TABLE IF NOT EXISTS monthly_summaries (
		id BIGSERIAL PRIMARY KEY,
		batch_id UUID NOT NULL REFERENCES attendance_batches(id) ON DELETE CASCADE,
		department TEXT NOT NULL,
		person TEXT NOT NULL,
		month CHAR(7) NOT NULL,
		total_hours NUMERIC(10,2) NOT NULL,
		days_worked NUMERIC(6,1) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_monthly_summaries_batch ON monthly_summaries (batch_id, department, person, month)`,
}

// EnsureSchema creates the attendance tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
