package timesheet

import (
	"regexp"
	"strings"
	"time"

	"github.com/punchsheet/punchsheet-backend-go/internal/domain/timesheet"
)

// datePrefixRe matches the 6-digit YYMMDD prefix of the export's date column
// (the rest of the cell is a weekday label).
var datePrefixRe = regexp.MustCompile(`^\s*(\d{6})`)

// ParseDataset maps raw spreadsheet rows onto attendance records. The first
// row is the header; every required column must be present or the whole
// dataset is rejected with a MissingColumnsError naming the gaps. Rows whose
// attendance-group label equals the configured sentinel are excluded. Rows
// with an unparseable date, and duplicate (person, date) rows, are skipped
// and counted; per-row problems never abort the batch.
func (e *Engine) ParseDataset(rows [][]string) ([]timesheet.AttendanceRecord, int, error) {
	if len(rows) == 0 {
		return nil, 0, timesheet.ErrEmptyWorksheet
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		index[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, name := range e.lexicon.Columns.Required() {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, 0, &timesheet.MissingColumnsError{Columns: missing}
	}

	cell := func(row []string, name string) string {
		i := index[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	cols := e.lexicon.Columns
	seen := make(map[string]struct{})
	var records []timesheet.AttendanceRecord
	skipped := 0

	for _, row := range rows[1:] {
		group := cell(row, cols.Group)
		if group == e.lexicon.ExcludedGroupLabel {
			continue
		}

		date, ok := parseExportDate(cell(row, cols.Date))
		if !ok {
			skipped++
			continue
		}

		person := cell(row, cols.Person)
		dupKey := person + "\x00" + date.Format("2006-01-02")
		if _, dup := seen[dupKey]; dup {
			skipped++
			continue
		}
		seen[dupKey] = struct{}{}

		records = append(records, timesheet.AttendanceRecord{
			Person:         person,
			Department:     cell(row, cols.Department),
			Role:           cell(row, cols.Role),
			Date:           date,
			RawClockIn:     cell(row, cols.ClockIn),
			ClockInResult:  cell(row, cols.ClockInResult),
			RawClockOut:    cell(row, cols.ClockOut),
			ClockOutResult: cell(row, cols.ClockOutResult),
			RawApproval:    cell(row, cols.Approval),
			Group:          group,
		})
	}

	return records, skipped, nil
}

// parseExportDate reads the 6-digit YYMMDD prefix of the date cell.
func parseExportDate(s string) (time.Time, bool) {
	m := datePrefixRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	t, err := time.Parse("060102", m[1])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
