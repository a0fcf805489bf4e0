package timesheet

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ApprovalCategory is the closed set of approval-record categories extracted
// from the free-text approval field. Anything outside the set resolves to
// CategoryNone, which never contributes to the effective interval.
type ApprovalCategory string

const (
	CategoryNone          ApprovalCategory = "none"
	CategoryBusinessTrip  ApprovalCategory = "business_trip"
	CategoryOffSite       ApprovalCategory = "off_site"
	CategoryRetroPunch    ApprovalCategory = "retro_punch"
	CategoryOvertime      ApprovalCategory = "overtime"
	CategoryAnnualLeave   ApprovalCategory = "annual_leave"
	CategoryPersonalLeave ApprovalCategory = "personal_leave"
	CategorySickLeave     ApprovalCategory = "sick_leave"
	CategoryCompLeave     ApprovalCategory = "compensatory_leave"
)

// IsTravel reports whether the category carries usable start/end timestamps
// that can substitute for missing punches (business trip, off-site work,
// retroactive punch requests and overtime).
func (c ApprovalCategory) IsTravel() bool {
	switch c {
	case CategoryBusinessTrip, CategoryOffSite, CategoryRetroPunch, CategoryOvertime:
		return true
	}
	return false
}

// IsLeave reports whether the category is a leave type. Leave approvals never
// substitute timestamps on their own; they only unlock the segment-boundary
// default when the opposite punch proves presence.
func (c ApprovalCategory) IsLeave() bool {
	switch c {
	case CategoryAnnualLeave, CategoryPersonalLeave, CategorySickLeave, CategoryCompLeave:
		return true
	}
	return false
}

// AttendanceRecord is one raw row of the punch-clock export: one person, one
// calendar day, raw punch strings and the free-text approval field.
type AttendanceRecord struct {
	Person     string
	Department string
	Role       string
	Date       time.Time // midnight of the work day

	RawClockIn     string
	ClockInResult  string
	RawClockOut    string
	ClockOutResult string
	RawApproval    string
	Group          string
}

// Approval is the structured form of the approval-record text. Start and End
// are nil when the corresponding fragment was missing or unparseable;
// downstream resolution tolerates one-sided and empty approvals.
type Approval struct {
	Category ApprovalCategory
	Start    *time.Time
	End      *time.Time
}

// EffectiveInterval is the resolved clock-in/out pair for a day. Each
// endpoint is either a real punch, an approval-derived timestamp or a
// segment-boundary default; nil means unresolvable.
type EffectiveInterval struct {
	ClockIn  *time.Time
	ClockOut *time.Time
}

// SegmentDurations holds the minutes worked inside each fixed segment.
type SegmentDurations struct {
	MorningMinutes   int
	AfternoonMinutes int
	EveningMinutes   int
}

// Total is the daily total in minutes.
func (d SegmentDurations) Total() int {
	return d.MorningMinutes + d.AfternoonMinutes + d.EveningMinutes
}

// DailyResult is one processed row: the raw record plus everything derived
// from it.
type DailyResult struct {
	Record    AttendanceRecord
	Approval  Approval
	Interval  EffectiveInterval
	Durations SegmentDurations
}

// MonthlyAggregate is the per-person-per-month summary row.
type MonthlyAggregate struct {
	Department string
	Person     string
	Month      string // "2006-01"
	TotalHours decimal.Decimal
	DaysWorked decimal.Decimal
}

// ImportBatch records one processed upload.
type ImportBatch struct {
	ID          string
	FileName    string
	RowCount    int
	SkippedRows int
	ImportedAt  time.Time
}

// ClockTime is a wall-clock time of day without a date.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses "HH:MM".
func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// At anchors the clock time on the given day, in that day's location.
func (c ClockTime) At(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour, c.Minute, 0, 0, day.Location())
}

// MinuteOfDay returns the minutes elapsed since midnight.
func (c ClockTime) MinuteOfDay() int {
	return c.Hour*60 + c.Minute
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// SegmentConfig carries the institution's fixed segment boundaries and the
// minute thresholds used for the fractional days-worked credit. Evening has
// no upper bound; it is capped only by the actual clock-out.
type SegmentConfig struct {
	MorningBegin   ClockTime
	MorningEnd     ClockTime
	AfternoonBegin ClockTime
	AfternoonEnd   ClockTime
	EveningBegin   ClockTime

	MorningThresholdMinutes   int
	AfternoonThresholdMinutes int
}

// DefaultSegmentConfig returns the institution defaults: morning 09:00-12:00,
// afternoon 13:30-18:00, evening from 19:00, thresholds 120/210 minutes.
func DefaultSegmentConfig() SegmentConfig {
	return SegmentConfig{
		MorningBegin:              ClockTime{Hour: 9},
		MorningEnd:                ClockTime{Hour: 12},
		AfternoonBegin:            ClockTime{Hour: 13, Minute: 30},
		AfternoonEnd:              ClockTime{Hour: 18},
		EveningBegin:              ClockTime{Hour: 19},
		MorningThresholdMinutes:   120,
		AfternoonThresholdMinutes: 210,
	}
}

// Validate checks boundary ordering and threshold sanity.
func (c SegmentConfig) Validate() error {
	if c.MorningBegin.MinuteOfDay() >= c.MorningEnd.MinuteOfDay() {
		return fmt.Errorf("morning begin %s must be before morning end %s", c.MorningBegin, c.MorningEnd)
	}
	if c.MorningEnd.MinuteOfDay() > c.AfternoonBegin.MinuteOfDay() {
		return fmt.Errorf("morning end %s must not be after afternoon begin %s", c.MorningEnd, c.AfternoonBegin)
	}
	if c.AfternoonBegin.MinuteOfDay() >= c.AfternoonEnd.MinuteOfDay() {
		return fmt.Errorf("afternoon begin %s must be before afternoon end %s", c.AfternoonBegin, c.AfternoonEnd)
	}
	if c.AfternoonEnd.MinuteOfDay() > c.EveningBegin.MinuteOfDay() {
		return fmt.Errorf("afternoon end %s must not be after evening begin %s", c.AfternoonEnd, c.EveningBegin)
	}
	if c.MorningThresholdMinutes < 0 || c.AfternoonThresholdMinutes < 0 {
		return fmt.Errorf("thresholds must be non-negative")
	}
	return nil
}
