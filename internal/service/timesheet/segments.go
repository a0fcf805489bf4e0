package timesheet

import (
	"time"

	"github.com/punchsheet/punchsheet-backend-go/internal/domain/timesheet"
)

// SegmentMinutes apportions the effective interval into the three fixed
// segments of the record date. Both endpoints are required; if either is nil
// every segment is zero. Each segment is the overlap of [in, out) with the
// segment window [begin, end) in whole minutes; evening has no upper bound,
// so a next-day clock-out keeps counting past midnight.
func (e *Engine) SegmentMinutes(interval timesheet.EffectiveInterval, date time.Time) timesheet.SegmentDurations {
	if interval.ClockIn == nil || interval.ClockOut == nil {
		return timesheet.SegmentDurations{}
	}
	in := *interval.ClockIn
	out := *interval.ClockOut

	morningEnd := e.segments.MorningEnd.At(date)
	afternoonEnd := e.segments.AfternoonEnd.At(date)

	return timesheet.SegmentDurations{
		MorningMinutes:   overlapMinutes(in, out, e.segments.MorningBegin.At(date), &morningEnd),
		AfternoonMinutes: overlapMinutes(in, out, e.segments.AfternoonBegin.At(date), &afternoonEnd),
		EveningMinutes:   overlapMinutes(in, out, e.segments.EveningBegin.At(date), nil),
	}
}

// overlapMinutes returns the size of [in, out) ∩ [begin, end) in whole
// minutes, never negative. A nil end means the window is unbounded above.
// Comparisons are boundary-exact: in == end or out == begin yield zero.
func overlapMinutes(in, out, begin time.Time, end *time.Time) int {
	if !out.After(begin) {
		return 0
	}
	if end != nil && !in.Before(*end) {
		return 0
	}

	start := in
	if start.Before(begin) {
		start = begin
	}
	stop := out
	if end != nil && stop.After(*end) {
		stop = *end
	}

	minutes := int(stop.Sub(start).Minutes())
	if minutes < 0 {
		return 0
	}
	return minutes
}
