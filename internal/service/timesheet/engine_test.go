package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchsheet/punchsheet-backend-go/internal/domain/timesheet"
)

func TestProcessRecord_RegularDay(t *testing.T) {
	engine := newTestEngine(t)

	rec := timesheet.AttendanceRecord{
		Person:         "张三",
		Department:     "研发部",
		Date:           time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		RawClockIn:     "08:58",
		ClockInResult:  "正常",
		RawClockOut:    "18:05",
		ClockOutResult: "正常",
	}

	got := engine.ProcessRecord(rec)
	require.NotNil(t, got.Interval.ClockIn)
	require.NotNil(t, got.Interval.ClockOut)
	assert.Equal(t, 180, got.Durations.MorningMinutes)
	assert.Equal(t, 270, got.Durations.AfternoonMinutes)
	assert.Equal(t, 0, got.Durations.EveningMinutes)
}

func TestProcessRecord_MissingPunchWithLeaveApproval(t *testing.T) {
	engine := newTestEngine(t)

	rec := timesheet.AttendanceRecord{
		Person:         "张三",
		Department:     "研发部",
		Date:           time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		RawClockIn:     "09:00",
		ClockInResult:  "缺卡",
		RawClockOut:    "",
		ClockOutResult: "",
		RawApproval:    "病假 03-11 09:00 至 03-11 18:00",
	}

	got := engine.ProcessRecord(rec)
	assert.Equal(t, timesheet.CategorySickLeave, got.Approval.Category)
	assert.Nil(t, got.Interval.ClockIn)
	assert.Nil(t, got.Interval.ClockOut)
	assert.Equal(t, 0, got.Durations.Total())
}

func TestProcessRecord_OvernightShift(t *testing.T) {
	engine := newTestEngine(t)

	rec := timesheet.AttendanceRecord{
		Person:         "张三",
		Department:     "研发部",
		Date:           time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		RawClockIn:     "19:00",
		ClockInResult:  "正常",
		RawClockOut:    "次日00:30",
		ClockOutResult: "正常",
	}

	got := engine.ProcessRecord(rec)
	assert.Equal(t, 0, got.Durations.MorningMinutes)
	assert.Equal(t, 0, got.Durations.AfternoonMinutes)
	assert.Equal(t, 330, got.Durations.EveningMinutes)
}

func TestProcessAll_Deterministic(t *testing.T) {
	engine := newTestEngine(t)

	records := []timesheet.AttendanceRecord{
		{
			Person: "张三", Department: "研发部",
			Date:       time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
			RawClockIn: "08:58", ClockInResult: "正常",
			RawClockOut: "18:05", ClockOutResult: "正常",
		},
		{
			Person: "李四", Department: "行政部",
			Date:        time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
			RawApproval: "出差 03-11 09:00 至 03-12 18:00",
		},
	}

	first := engine.ProcessAll(records)
	second := engine.ProcessAll(records)
	assert.Equal(t, first, second)
	assert.Equal(t, engine.Aggregate(first), engine.Aggregate(second))
}

func TestProcessAll_TotalMatchesSegmentSum(t *testing.T) {
	engine := newTestEngine(t)

	records := []timesheet.AttendanceRecord{
		{
			Person: "张三", Department: "研发部",
			Date:       time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
			RawClockIn: "08:30", ClockInResult: "正常",
			RawClockOut: "次日01:00", ClockOutResult: "正常",
		},
	}

	for _, d := range engine.ProcessAll(records) {
		sum := d.Durations.MorningMinutes + d.Durations.AfternoonMinutes + d.Durations.EveningMinutes
		assert.Equal(t, sum, d.Durations.Total())
	}
}
