package timesheet

import (
	"strconv"
	"strings"
	"time"

	"github.com/punchsheet/punchsheet-backend-go/internal/domain/timesheet"
)

// ExtractApproval parses the free-text approval field into its structured
// form. The grammar is: category token, then "MM-DD HH:MM", then the range
// separator, then a second "MM-DD HH:MM", both interpreted in the record
// date's year. Every piece is optional: a category-only text yields a set
// category with nil timestamps, an unknown or absent category yields
// CategoryNone, and missing fragments yield nil on that side only.
func (e *Engine) ExtractApproval(date time.Time, raw string) timesheet.Approval {
	text := strings.TrimSpace(raw)
	if text == "" {
		return timesheet.Approval{Category: timesheet.CategoryNone}
	}

	categoryText := text
	if loc := fragmentRe.FindStringIndex(text); loc != nil {
		categoryText = text[:loc[0]]
	}
	categoryText = strings.TrimSpace(categoryText)
	// An end-only range ("出差 至 03-12 18:00") leaves the separator glued to
	// the category token; drop it before the lexicon lookup.
	categoryText = strings.TrimSpace(strings.TrimSuffix(categoryText, e.lexicon.RangeSeparator))

	category, ok := e.lexicon.Categories[categoryText]
	if !ok {
		category = timesheet.CategoryNone
	}

	approval := timesheet.Approval{Category: category}

	left := text
	var right string
	if i := strings.Index(text, e.lexicon.RangeSeparator); i >= 0 {
		left = text[:i]
		right = text[i+len(e.lexicon.RangeSeparator):]
	}

	approval.Start = parseFragment(date, left)
	if right != "" {
		approval.End = parseFragment(date, right)
	}
	return approval
}

// parseFragment extracts the first "MM-DD HH:MM" fragment of s as a
// timestamp in date's year, or nil when no valid fragment is present.
func parseFragment(date time.Time, s string) *time.Time {
	m := fragmentRe.FindStringSubmatch(s)
	if m == nil {
		return nil
	}

	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	hour, _ := strconv.Atoi(m[3])
	minute, _ := strconv.Atoi(m[4])
	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 {
		return nil
	}

	t := time.Date(date.Year(), time.Month(month), day, hour, minute, 0, 0, date.Location())
	return &t
}
