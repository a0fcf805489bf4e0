package timesheet

import (
	"github.com/punchsheet/punchsheet-backend-go/internal/pkg/validator"
)

// ========================================
// IMPORT
// ========================================

type ImportResponse struct {
	BatchID     string `json:"batch_id"`
	FileName    string `json:"file_name"`
	RowCount    int    `json:"row_count"`
	SkippedRows int    `json:"skipped_rows"`
	People      int    `json:"people"`
	ImportedAt  string `json:"imported_at"`
}

type BatchResponse struct {
	ID          string `json:"id"`
	FileName    string `json:"file_name"`
	RowCount    int    `json:"row_count"`
	SkippedRows int    `json:"skipped_rows"`
	ImportedAt  string `json:"imported_at"`
}

// ========================================
// DAILY DETAIL
// ========================================

type DailyFilter struct {
	Person     string
	Department string
	Page       int
	Limit      int
}

func (f *DailyFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 31
	}
	if f.Limit > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 500",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DailyRowResponse struct {
	Person     string `json:"person"`
	Department string `json:"department"`
	Role       string `json:"role"`
	Date       string `json:"date"`

	RawClockIn  string `json:"raw_clock_in"`
	RawClockOut string `json:"raw_clock_out"`
	RawApproval string `json:"raw_approval,omitempty"`

	ApprovalCategory string  `json:"approval_category"`
	ApprovalStart    *string `json:"approval_start,omitempty"`
	ApprovalEnd      *string `json:"approval_end,omitempty"`

	EffectiveClockIn  *string `json:"effective_clock_in"`
	EffectiveClockOut *string `json:"effective_clock_out"`

	MorningMinutes   int `json:"morning_minutes"`
	AfternoonMinutes int `json:"afternoon_minutes"`
	EveningMinutes   int `json:"evening_minutes"`
	TotalMinutes     int `json:"total_minutes"`
}

type ListDailyResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Rows       []DailyRowResponse `json:"rows"`
}

// ========================================
// MONTHLY SUMMARY
// ========================================

type MonthlyRowResponse struct {
	Department string `json:"department"`
	Person     string `json:"person"`
	Month      string `json:"month"`
	TotalHours string `json:"total_hours"`
	DaysWorked string `json:"days_worked"`
}

type MonthlySummaryResponse struct {
	BatchID string               `json:"batch_id"`
	Rows    []MonthlyRowResponse `json:"rows"`
}
