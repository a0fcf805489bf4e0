package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/punchsheet/punchsheet-backend-go/internal/domain/timesheet"
	"github.com/punchsheet/punchsheet-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type batchRepository struct {
	db *database.DB
}

func NewBatchRepository(db *database.DB) timesheet.BatchRepository {
	return &batchRepository{db: db}
}

// CreateBatch implements timesheet.BatchRepository.
func (r *batchRepository) CreateBatch(ctx context.Context, batch timesheet.ImportBatch) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_batches (id, file_name, row_count, skipped_rows, imported_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := q.Exec(ctx, query, batch.ID, batch.FileName, batch.RowCount, batch.SkippedRows, batch.ImportedAt); err != nil {
		return fmt.Errorf("failed to create import batch: %w", err)
	}
	return nil
}

// GetBatch implements timesheet.BatchRepository.
func (r *batchRepository) GetBatch(ctx context.Context, id string) (timesheet.ImportBatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, file_name, row_count, skipped_rows, imported_at
		FROM attendance_batches
		WHERE id = $1
	`
	var batch timesheet.ImportBatch
	err := q.QueryRow(ctx, query, id).Scan(
		&batch.ID, &batch.FileName, &batch.RowCount, &batch.SkippedRows, &batch.ImportedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.ImportBatch{}, timesheet.ErrBatchNotFound
		}
		return timesheet.ImportBatch{}, fmt.Errorf("failed to get import batch: %w", err)
	}
	return batch, nil
}

// ListBatches implements timesheet.BatchRepository.
func (r *batchRepository) ListBatches(ctx context.Context) ([]timesheet.ImportBatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, file_name, row_count, skipped_rows, imported_at
		FROM attendance_batches
		ORDER BY imported_at DESC
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list import batches: %w", err)
	}
	defer rows.Close()

	var batches []timesheet.ImportBatch
	for rows.Next() {
		var batch timesheet.ImportBatch
		if err := rows.Scan(&batch.ID, &batch.FileName, &batch.RowCount, &batch.SkippedRows, &batch.ImportedAt); err != nil {
			return nil, fmt.Errorf("failed to scan import batch: %w", err)
		}
		batches = append(batches, batch)
	}
	return batches, rows.Err()
}

// InsertDailyResults implements timesheet.BatchRepository.
func (r *batchRepository) InsertDailyResults(ctx context.Context, batchID string, results []timesheet.DailyResult) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_days (
			batch_id, person, department, role, work_date,
			raw_clock_in, clock_in_result, raw_clock_out, clock_out_result,
			raw_approval, group_label,
			approval_category, approval_start, approval_end,
			effective_clock_in, effective_clock_out,
			morning_minutes, afternoon_minutes, evening_minutes, total_minutes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		)
	`
	for _, d := range results {
		_, err := q.Exec(ctx, query,
			batchID,
			d.Record.Person,
			d.Record.Department,
			d.Record.Role,
			d.Record.Date,
			d.Record.RawClockIn,
			d.Record.ClockInResult,
			d.Record.RawClockOut,
			d.Record.ClockOutResult,
			d.Record.RawApproval,
			d.Record.Group,
			string(d.Approval.Category),
			d.Approval.Start,
			d.Approval.End,
			d.Interval.ClockIn,
			d.Interval.ClockOut,
			d.Durations.MorningMinutes,
			d.Durations.AfternoonMinutes,
			d.Durations.EveningMinutes,
			d.Durations.Total(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert daily result: %w", err)
		}
	}
	return nil
}

const dailyColumns = `
	person, department, role, work_date,
	raw_clock_in, clock_in_result, raw_clock_out, clock_out_result,
	raw_approval, group_label,
	approval_category, approval_start, approval_end,
	effective_clock_in, effective_clock_out,
	morning_minutes, afternoon_minutes, evening_minutes
`

// ListDaily implements timesheet.BatchRepository.
func (r *batchRepository) ListDaily(ctx context.Context, batchID string, filter timesheet.DailyFilter) ([]timesheet.DailyResult, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"batch_id = $1"}
	args := []interface{}{batchID}

	if filter.Person != "" {
		args = append(args, filter.Person)
		conditions = append(conditions, fmt.Sprintf("person = $%d", len(args)))
	}
	if filter.Department != "" {
		args = append(args, filter.Department)
		conditions = append(conditions, fmt.Sprintf("department = $%d", len(args)))
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM attendance_days WHERE " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count daily rows: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`
		SELECT %s FROM attendance_days
		WHERE %s
		ORDER BY department, person, work_date
		LIMIT $%d OFFSET $%d
	`, dailyColumns, where, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list daily rows: %w", err)
	}
	defer rows.Close()

	results, err := scanDailyRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// ListAllDaily implements timesheet.BatchRepository.
func (r *batchRepository) ListAllDaily(ctx context.Context, batchID string) ([]timesheet.DailyResult, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM attendance_days
		WHERE batch_id = $1
		ORDER BY department, person, work_date
	`, dailyColumns)

	rows, err := q.Query(ctx, query, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily rows: %w", err)
	}
	defer rows.Close()

	return scanDailyRows(rows)
}

func scanDailyRows(rows pgx.Rows) ([]timesheet.DailyResult, error) {
	var results []timesheet.DailyResult
	for rows.Next() {
		var d timesheet.DailyResult
		var category string
		err := rows.Scan(
			&d.Record.Person, &d.Record.Department, &d.Record.Role, &d.Record.Date,
			&d.Record.RawClockIn, &d.Record.ClockInResult, &d.Record.RawClockOut, &d.Record.ClockOutResult,
			&d.Record.RawApproval, &d.Record.Group,
			&category, &d.Approval.Start, &d.Approval.End,
			&d.Interval.ClockIn, &d.Interval.ClockOut,
			&d.Durations.MorningMinutes, &d.Durations.AfternoonMinutes, &d.Durations.EveningMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily row: %w", err)
		}
		d.Approval.Category = timesheet.ApprovalCategory(category)
		results = append(results, d)
	}
	return results, rows.Err()
}

// InsertMonthlyAggregates implements timesheet.BatchRepository.
func (r *batchRepository) InsertMonthlyAggregates(ctx context.Context, batchID string, aggregates []timesheet.MonthlyAggregate) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_summaries (batch_id, department, person, month, total_hours, days_worked)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, m := range aggregates {
		_, err := q.Exec(ctx, query,
			batchID, m.Department, m.Person, m.Month,
			m.TotalHours.String(), m.DaysWorked.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert monthly summary: %w", err)
		}
	}
	return nil
}

// ListMonthly implements timesheet.BatchRepository.
func (r *batchRepository) ListMonthly(ctx context.Context, batchID string) ([]timesheet.MonthlyAggregate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT department, person, month, total_hours::text, days_worked::text
		FROM monthly_summaries
		WHERE batch_id = $1
		ORDER BY department, person, month
	`
	rows, err := q.Query(ctx, query, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly summaries: %w", err)
	}
	defer rows.Close()

	var aggregates []timesheet.MonthlyAggregate
	for rows.Next() {
		var m timesheet.MonthlyAggregate
		var hours, days string
		if err := rows.Scan(&m.Department, &m.Person, &m.Month, &hours, &days); err != nil {
			return nil, fmt.Errorf("failed to scan monthly summary: %w", err)
		}
		if m.TotalHours, err = decimal.NewFromString(hours); err != nil {
			return nil, fmt.Errorf("failed to parse total hours: %w", err)
		}
		if m.DaysWorked, err = decimal.NewFromString(days); err != nil {
			return nil, fmt.Errorf("failed to parse days worked: %w", err)
		}
		aggregates = append(aggregates, m)
	}
	return aggregates, rows.Err()
}
