package timesheet

import (
	"strconv"
	"strings"
	"time"
)

// NormalizePunch parses a raw punch string against its calendar date and
// returns the absolute timestamp, or nil when the field is empty, the punch
// result marks the punch invalid, or the string matches neither "HH:MM" nor
// the next-day form. A nil result is a missing punch, not an error.
func (e *Engine) NormalizePunch(date time.Time, raw, result string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if e.isInvalidResult(result) {
		return nil
	}

	m := e.punchRe.FindStringSubmatch(raw)
	if m == nil {
		return nil
	}

	hour, _ := strconv.Atoi(m[2])
	minute, _ := strconv.Atoi(m[3])
	if hour > 23 || minute > 59 {
		return nil
	}

	day := date
	if m[1] != "" {
		// Next-day punches roll the date forward before combining.
		day = day.AddDate(0, 0, 1)
	}

	t := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, date.Location())
	return &t
}
