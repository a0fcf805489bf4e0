package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/punchsheet/punchsheet-backend-go/internal/domain/timesheet"
)

func interval(t *testing.T, in, out string) timesheet.EffectiveInterval {
	t.Helper()
	return timesheet.EffectiveInterval{
		ClockIn:  ts(t, in),
		ClockOut: ts(t, out),
	}
}

func TestSegmentMinutes_FullDay(t *testing.T) {
	engine := newTestEngine(t)
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	got := engine.SegmentMinutes(interval(t, "2024-03-11 09:00", "2024-03-11 18:00"), date)
	assert.Equal(t, 180, got.MorningMinutes)
	assert.Equal(t, 270, got.AfternoonMinutes)
	assert.Equal(t, 0, got.EveningMinutes)
	assert.Equal(t, 450, got.Total())
}

func TestSegmentMinutes_LunchGapNotCounted(t *testing.T) {
	engine := newTestEngine(t)
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	// 12:00 to 13:30 falls in no segment.
	got := engine.SegmentMinutes(interval(t, "2024-03-11 11:00", "2024-03-11 14:00"), date)
	assert.Equal(t, 60, got.MorningMinutes)
	assert.Equal(t, 30, got.AfternoonMinutes)
	assert.Equal(t, 0, got.EveningMinutes)
}

func TestSegmentMinutes_EveningUnboundedAcrossMidnight(t *testing.T) {
	engine := newTestEngine(t)
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	// 19:00 through next-day 00:30 is 330 evening minutes.
	got := engine.SegmentMinutes(interval(t, "2024-03-11 19:00", "2024-03-12 00:30"), date)
	assert.Equal(t, 0, got.MorningMinutes)
	assert.Equal(t, 0, got.AfternoonMinutes)
	assert.Equal(t, 330, got.EveningMinutes)
}

func TestSegmentMinutes_BoundaryExact(t *testing.T) {
	engine := newTestEngine(t)
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	// Clock-in exactly at the morning end yields no morning minutes.
	got := engine.SegmentMinutes(interval(t, "2024-03-11 12:00", "2024-03-11 13:30"), date)
	assert.Equal(t, 0, got.MorningMinutes)
	assert.Equal(t, 0, got.AfternoonMinutes)

	// Clock-out exactly at the morning begin yields no morning minutes.
	got = engine.SegmentMinutes(interval(t, "2024-03-11 08:00", "2024-03-11 09:00"), date)
	assert.Equal(t, 0, got.MorningMinutes)
}

func TestSegmentMinutes_MissingEndpoint(t *testing.T) {
	engine := newTestEngine(t)
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	in := ts(t, "2024-03-11 09:00")
	got := engine.SegmentMinutes(timesheet.EffectiveInterval{ClockIn: in}, date)
	assert.Equal(t, timesheet.SegmentDurations{}, got)

	out := ts(t, "2024-03-11 18:00")
	got = engine.SegmentMinutes(timesheet.EffectiveInterval{ClockOut: out}, date)
	assert.Equal(t, timesheet.SegmentDurations{}, got)
}

func TestSegmentMinutes_InvertedIntervalIsZero(t *testing.T) {
	engine := newTestEngine(t)
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	got := engine.SegmentMinutes(interval(t, "2024-03-11 18:00", "2024-03-11 09:00"), date)
	assert.Equal(t, timesheet.SegmentDurations{}, got)
}
