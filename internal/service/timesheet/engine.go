package timesheet

import (
	"regexp"
	"strings"

	"github.com/punchsheet/punchsheet-backend-go/internal/domain/timesheet"
)

// Engine is the attendance reconciliation and duration-apportionment engine.
// It is pure: every method is a function of its inputs plus the fixed segment
// and lexicon configuration, so re-running a dataset yields identical output.
type Engine struct {
	segments timesheet.SegmentConfig
	lexicon  timesheet.Lexicon

	punchRe        *regexp.Regexp
	invalidResults map[string]struct{}
}

// fragmentRe matches one "MM-DD HH:MM" fragment inside an approval text. The
// space between date and time is optional in the vendor export.
var fragmentRe = regexp.MustCompile(`(\d{2})-(\d{2})\s*(\d{1,2}):(\d{2})`)

func NewEngine(segments timesheet.SegmentConfig, lexicon timesheet.Lexicon) *Engine {
	marker := regexp.QuoteMeta(lexicon.NextDayMarker)
	invalid := make(map[string]struct{}, len(lexicon.InvalidPunchResults))
	for _, v := range lexicon.InvalidPunchResults {
		invalid[v] = struct{}{}
	}
	return &Engine{
		segments:       segments,
		lexicon:        lexicon,
		punchRe:        regexp.MustCompile(`^(` + marker + `)?\s*(\d{1,2}):(\d{2})$`),
		invalidResults: invalid,
	}
}

// Segments exposes the configured boundaries, for rendering.
func (e *Engine) Segments() timesheet.SegmentConfig {
	return e.segments
}

// Lexicon exposes the configured tokens, for rendering.
func (e *Engine) Lexicon() timesheet.Lexicon {
	return e.lexicon
}

// ProcessRecord runs one raw row through the whole pipeline: normalize both
// punches, extract the approval, resolve the effective interval, apportion
// segment minutes.
func (e *Engine) ProcessRecord(rec timesheet.AttendanceRecord) timesheet.DailyResult {
	clockIn := e.NormalizePunch(rec.Date, rec.RawClockIn, rec.ClockInResult)
	clockOut := e.NormalizePunch(rec.Date, rec.RawClockOut, rec.ClockOutResult)
	approval := e.ExtractApproval(rec.Date, rec.RawApproval)
	interval := e.Resolve(clockIn, clockOut, approval, rec.Date)
	durations := e.SegmentMinutes(interval, rec.Date)

	return timesheet.DailyResult{
		Record:    rec,
		Approval:  approval,
		Interval:  interval,
		Durations: durations,
	}
}

// ProcessAll processes every record independently. Rows do not share state.
func (e *Engine) ProcessAll(records []timesheet.AttendanceRecord) []timesheet.DailyResult {
	results := make([]timesheet.DailyResult, 0, len(records))
	for _, rec := range records {
		results = append(results, e.ProcessRecord(rec))
	}
	return results
}

func (e *Engine) isInvalidResult(result string) bool {
	_, bad := e.invalidResults[strings.TrimSpace(result)]
	return bad
}
