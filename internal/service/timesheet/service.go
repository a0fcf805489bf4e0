package timesheet

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/punchsheet/punchsheet-backend-go/internal/domain/timesheet"
	"github.com/punchsheet/punchsheet-backend-go/internal/pkg/database"
	"github.com/punchsheet/punchsheet-backend-go/internal/pkg/spreadsheet"
	"github.com/punchsheet/punchsheet-backend-go/internal/repository/postgresql"
)

type TimesheetServiceImpl struct {
	db     *database.DB
	engine *Engine
	timesheet.BatchRepository
}

func NewTimesheetService(db *database.DB, engine *Engine, batchRepository timesheet.BatchRepository) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		db:              db,
		engine:          engine,
		BatchRepository: batchRepository,
	}
}

// Import implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Import(ctx context.Context, fileName string, r io.Reader) (timesheet.ImportResponse, error) {
	if !spreadsheet.IsSupported(fileName) {
		return timesheet.ImportResponse{}, timesheet.ErrUnsupportedFile
	}

	rows, err := spreadsheet.ReadRows(r, fileName)
	if err != nil {
		return timesheet.ImportResponse{}, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	records, skipped, err := s.engine.ParseDataset(rows)
	if err != nil {
		return timesheet.ImportResponse{}, err
	}
	if len(records) == 0 {
		return timesheet.ImportResponse{}, timesheet.ErrNoUsableRows
	}

	daily := s.engine.ProcessAll(records)
	monthly := s.engine.Aggregate(daily)

	batch := timesheet.ImportBatch{
		ID:          uuid.NewString(),
		FileName:    fileName,
		RowCount:    len(records),
		SkippedRows: skipped,
		ImportedAt:  time.Now(),
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.CreateBatch(txCtx, batch); err != nil {
			return err
		}
		if err := s.InsertDailyResults(txCtx, batch.ID, daily); err != nil {
			return err
		}
		return s.InsertMonthlyAggregates(txCtx, batch.ID, monthly)
	})
	if err != nil {
		return timesheet.ImportResponse{}, err
	}

	if skipped > 0 {
		slog.Warn("import skipped unusable rows",
			"batch_id", batch.ID,
			"file_name", fileName,
			"skipped", skipped,
		)
	}

	people := make(map[string]struct{}, len(records))
	for _, rec := range records {
		people[rec.Person] = struct{}{}
	}

	return timesheet.ImportResponse{
		BatchID:     batch.ID,
		FileName:    batch.FileName,
		RowCount:    batch.RowCount,
		SkippedRows: batch.SkippedRows,
		People:      len(people),
		ImportedAt:  batch.ImportedAt.Format(time.RFC3339),
	}, nil
}

// ListBatches implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListBatches(ctx context.Context) ([]timesheet.BatchResponse, error) {
	batches, err := s.BatchRepository.ListBatches(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]timesheet.BatchResponse, 0, len(batches))
	for _, b := range batches {
		responses = append(responses, timesheet.BatchResponse{
			ID:          b.ID,
			FileName:    b.FileName,
			RowCount:    b.RowCount,
			SkippedRows: b.SkippedRows,
			ImportedAt:  b.ImportedAt.Format(time.RFC3339),
		})
	}
	return responses, nil
}

// GetDaily implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetDaily(ctx context.Context, batchID string, filter timesheet.DailyFilter) (timesheet.ListDailyResponse, error) {
	if err := filter.Validate(); err != nil {
		return timesheet.ListDailyResponse{}, err
	}

	if _, err := s.GetBatch(ctx, batchID); err != nil {
		return timesheet.ListDailyResponse{}, err
	}

	results, total, err := s.ListDaily(ctx, batchID, filter)
	if err != nil {
		return timesheet.ListDailyResponse{}, err
	}

	rows := make([]timesheet.DailyRowResponse, 0, len(results))
	for _, d := range results {
		rows = append(rows, toDailyRow(d))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return timesheet.ListDailyResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Rows:       rows,
	}, nil
}

// GetMonthlySummary implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetMonthlySummary(ctx context.Context, batchID string) (timesheet.MonthlySummaryResponse, error) {
	if _, err := s.GetBatch(ctx, batchID); err != nil {
		return timesheet.MonthlySummaryResponse{}, err
	}

	aggregates, err := s.ListMonthly(ctx, batchID)
	if err != nil {
		return timesheet.MonthlySummaryResponse{}, err
	}

	rows := make([]timesheet.MonthlyRowResponse, 0, len(aggregates))
	for _, m := range aggregates {
		rows = append(rows, timesheet.MonthlyRowResponse{
			Department: m.Department,
			Person:     m.Person,
			Month:      m.Month,
			TotalHours: m.TotalHours.StringFixed(2),
			DaysWorked: m.DaysWorked.StringFixed(1),
		})
	}

	return timesheet.MonthlySummaryResponse{
		BatchID: batchID,
		Rows:    rows,
	}, nil
}

// ExportWorkbook implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ExportWorkbook(ctx context.Context, batchID string, w io.Writer) error {
	if _, err := s.GetBatch(ctx, batchID); err != nil {
		return err
	}

	daily, err := s.ListAllDaily(ctx, batchID)
	if err != nil {
		return err
	}
	monthly, err := s.ListMonthly(ctx, batchID)
	if err != nil {
		return err
	}

	if err := spreadsheet.WriteWorkbook(w, daily, monthly); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// ExportSummaryPDF implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ExportSummaryPDF(ctx context.Context, batchID string, w io.Writer) error {
	batch, err := s.GetBatch(ctx, batchID)
	if err != nil {
		return err
	}

	monthly, err := s.ListMonthly(ctx, batchID)
	if err != nil {
		return err
	}

	if err := spreadsheet.WriteSummaryPDF(w, batch, monthly); err != nil {
		return fmt.Errorf("failed to write summary pdf: %w", err)
	}
	return nil
}

func toDailyRow(d timesheet.DailyResult) timesheet.DailyRowResponse {
	return timesheet.DailyRowResponse{
		Person:     d.Record.Person,
		Department: d.Record.Department,
		Role:       d.Record.Role,
		Date:       d.Record.Date.Format("2006-01-02"),

		RawClockIn:  d.Record.RawClockIn,
		RawClockOut: d.Record.RawClockOut,
		RawApproval: d.Record.RawApproval,

		ApprovalCategory: string(d.Approval.Category),
		ApprovalStart:    formatTimePtr(d.Approval.Start),
		ApprovalEnd:      formatTimePtr(d.Approval.End),

		EffectiveClockIn:  formatTimePtr(d.Interval.ClockIn),
		EffectiveClockOut: formatTimePtr(d.Interval.ClockOut),

		MorningMinutes:   d.Durations.MorningMinutes,
		AfternoonMinutes: d.Durations.AfternoonMinutes,
		EveningMinutes:   d.Durations.EveningMinutes,
		TotalMinutes:     d.Durations.Total(),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02 15:04")
	return &s
}
