package timesheet

import (
	"time"

	"github.com/punchsheet/punchsheet-backend-go/internal/domain/timesheet"
)

// Resolve combines the normalized punches and the extracted approval into the
// day's effective interval. Each endpoint follows an ordered rule list with
// the precedence: real punch > approval-derived timestamp > opposite-punch
// default > absent. No rule ever errors; an unresolvable endpoint stays nil
// and downstream apportionment treats the day as zero worked time.
//
// Travel-category approvals (business trip, off-site, retroactive punch,
// overtime) use the span-aware policy: the exact start day takes the approval
// start as clock-in and the exact end day takes the approval end as
// clock-out, while days strictly inside the span fall back to the segment
// default boundary. Days outside the span ignore the approval.
func (e *Engine) Resolve(punchIn, punchOut *time.Time, approval timesheet.Approval, date time.Time) timesheet.EffectiveInterval {
	return timesheet.EffectiveInterval{
		ClockIn:  e.resolveClockIn(punchIn, punchOut, approval, date),
		ClockOut: e.resolveClockOut(punchIn, punchOut, approval, date),
	}
}

func (e *Engine) resolveClockIn(punchIn, punchOut *time.Time, approval timesheet.Approval, date time.Time) *time.Time {
	// Rule 1: an actual punch is never overridden.
	if punchIn != nil {
		return punchIn
	}

	// Rule 2: travel-category approvals substitute by span position.
	if approval.Category.IsTravel() {
		if approval.Start != nil && sameDay(date, *approval.Start) {
			return approval.Start
		}
		if spanCoversAfterStart(approval, date) {
			return timePtr(e.segments.MorningBegin.At(date))
		}
	}

	// Rule 3: leave approvals leave the endpoint absent unless the opposite
	// punch proves presence.
	if approval.Category.IsLeave() {
		if punchOut != nil {
			return timePtr(e.segments.MorningBegin.At(date))
		}
		return nil
	}

	// Rule 4: a lone opposite punch implies presence from the morning boundary.
	if punchOut != nil {
		return timePtr(e.segments.MorningBegin.At(date))
	}

	// Rule 5: absent.
	return nil
}

func (e *Engine) resolveClockOut(punchIn, punchOut *time.Time, approval timesheet.Approval, date time.Time) *time.Time {
	if punchOut != nil {
		return punchOut
	}

	if approval.Category.IsTravel() {
		if approval.End != nil && sameDay(date, *approval.End) {
			return approval.End
		}
		if spanCoversBeforeEnd(approval, date) {
			return timePtr(e.segments.AfternoonEnd.At(date))
		}
	}

	if approval.Category.IsLeave() {
		if punchIn != nil {
			return timePtr(e.segments.AfternoonEnd.At(date))
		}
		return nil
	}

	if punchIn != nil {
		return timePtr(e.segments.AfternoonEnd.At(date))
	}

	return nil
}

// spanCoversAfterStart reports whether date lies after the approval's start
// day and no later than its end day. Requires both span endpoints; one-sided
// approvals never claim span coverage.
func spanCoversAfterStart(approval timesheet.Approval, date time.Time) bool {
	if approval.Start == nil || approval.End == nil {
		return false
	}
	d := dayOf(date)
	return d.After(dayOf(*approval.Start)) && !d.After(dayOf(*approval.End))
}

// spanCoversBeforeEnd reports whether date lies before the approval's end day
// and no earlier than its start day.
func spanCoversBeforeEnd(approval timesheet.Approval, date time.Time) bool {
	if approval.Start == nil || approval.End == nil {
		return false
	}
	d := dayOf(date)
	return d.Before(dayOf(*approval.End)) && !d.Before(dayOf(*approval.Start))
}

func sameDay(a, b time.Time) bool {
	return dayOf(a).Equal(dayOf(b))
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func timePtr(t time.Time) *time.Time {
	return &t
}
