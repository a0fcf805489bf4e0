package spreadsheet

import (
	"fmt"
	"io"
	"time"

	"github.com/punchsheet/punchsheet-backend-go/internal/domain/timesheet"
	"github.com/xuri/excelize/v2"
)

const (
	DailySheetName   = "每日明细"
	SummarySheetName = "月度汇总"
)

var dailyHeaders = []string{
	"部门", "姓名", "职位", "日期",
	"上班打卡时间", "下班打卡时间", "审批单",
	"有效上班", "有效下班",
	"上午分钟", "下午分钟", "晚间分钟", "全天分钟",
}

var summaryHeaders = []string{"部门", "姓名", "月份", "工时(小时)", "出勤天数"}

// WriteWorkbook renders the two-sheet output workbook: one daily detail row
// per processed record, plus the monthly summary.
func WriteWorkbook(w io.Writer, daily []timesheet.DailyResult, monthly []timesheet.MonthlyAggregate) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(DailySheetName); err != nil {
		return fmt.Errorf("failed to create daily sheet: %w", err)
	}
	if _, err := f.NewSheet(SummarySheetName); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeHeader(f, DailySheetName, dailyHeaders, headerStyle); err != nil {
		return err
	}
	for i, d := range daily {
		row := i + 2
		values := []interface{}{
			d.Record.Department, d.Record.Person, d.Record.Role,
			d.Record.Date.Format("2006-01-02"),
			d.Record.RawClockIn, d.Record.RawClockOut, d.Record.RawApproval,
			formatTime(d.Interval.ClockIn), formatTime(d.Interval.ClockOut),
			d.Durations.MorningMinutes, d.Durations.AfternoonMinutes,
			d.Durations.EveningMinutes, d.Durations.Total(),
		}
		if err := writeRow(f, DailySheetName, row, values); err != nil {
			return err
		}
	}

	if err := writeHeader(f, SummarySheetName, summaryHeaders, headerStyle); err != nil {
		return err
	}
	for i, m := range monthly {
		row := i + 2
		values := []interface{}{
			m.Department, m.Person, m.Month,
			m.TotalHours.StringFixed(2), m.DaysWorked.String(),
		}
		if err := writeRow(f, SummarySheetName, row, values); err != nil {
			return err
		}
	}

	_ = f.SetColWidth(DailySheetName, "A", "D", 14)
	_ = f.SetColWidth(DailySheetName, "E", "I", 16)
	_ = f.SetColWidth(SummarySheetName, "A", "E", 14)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to resolve header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header cell: %w", err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("failed to style header cell: %w", err)
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("failed to resolve cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to write cell: %w", err)
		}
	}
	return nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}
