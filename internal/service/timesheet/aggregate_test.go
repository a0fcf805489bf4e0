package timesheet

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchsheet/punchsheet-backend-go/internal/domain/timesheet"
)

func dailyFor(t *testing.T, person, department string, date time.Time, durations timesheet.SegmentDurations) timesheet.DailyResult {
	t.Helper()
	return timesheet.DailyResult{
		Record: timesheet.AttendanceRecord{
			Person:     person,
			Department: department,
			Date:       date,
		},
		Durations: durations,
	}
}

func TestAggregate_FullDayEarnsOneDay(t *testing.T) {
	engine := newTestEngine(t)
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	days := []timesheet.DailyResult{
		dailyFor(t, "张三", "研发部", date, timesheet.SegmentDurations{
			MorningMinutes:   180,
			AfternoonMinutes: 270,
		}),
	}

	got := engine.Aggregate(days)
	require.Len(t, got, 1)
	assert.Equal(t, "张三", got[0].Person)
	assert.Equal(t, "研发部", got[0].Department)
	assert.Equal(t, "2024-03", got[0].Month)
	assert.Equal(t, "7.50", got[0].TotalHours.StringFixed(2))
	assert.Equal(t, "1.0", got[0].DaysWorked.StringFixed(1))
}

func TestAggregate_BelowThresholdEarnsNothing(t *testing.T) {
	engine := newTestEngine(t)
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	// Minutes accrue toward hours even when no threshold is met.
	days := []timesheet.DailyResult{
		dailyFor(t, "张三", "研发部", date, timesheet.SegmentDurations{
			MorningMinutes:   119,
			AfternoonMinutes: 209,
		}),
	}

	got := engine.Aggregate(days)
	require.Len(t, got, 1)
	assert.Equal(t, "0.0", got[0].DaysWorked.StringFixed(1))
	assert.Equal(t, "5.47", got[0].TotalHours.StringFixed(2))
}

func TestAggregate_EveningCountsHoursOnly(t *testing.T) {
	engine := newTestEngine(t)
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	days := []timesheet.DailyResult{
		dailyFor(t, "张三", "研发部", date, timesheet.SegmentDurations{
			EveningMinutes: 330,
		}),
	}

	got := engine.Aggregate(days)
	require.Len(t, got, 1)
	assert.Equal(t, "5.50", got[0].TotalHours.StringFixed(2))
	assert.Equal(t, "0.0", got[0].DaysWorked.StringFixed(1))
}

func TestAggregate_GroupsByPersonAndMonth(t *testing.T) {
	engine := newTestEngine(t)
	march := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	april := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	full := timesheet.SegmentDurations{MorningMinutes: 180, AfternoonMinutes: 270}
	days := []timesheet.DailyResult{
		dailyFor(t, "张三", "研发部", march, full),
		dailyFor(t, "张三", "研发部", march.AddDate(0, 0, 1), full),
		dailyFor(t, "张三", "研发部", april, full),
		dailyFor(t, "李四", "行政部", march, full),
	}

	got := engine.Aggregate(days)
	require.Len(t, got, 3)

	// Sorted by department, person, month; "研发部" sorts before "行政部".
	assert.Equal(t, "张三", got[0].Person)
	assert.Equal(t, "2024-03", got[0].Month)
	assert.Equal(t, "2.0", got[0].DaysWorked.StringFixed(1))
	assert.Equal(t, "15.00", got[0].TotalHours.StringFixed(2))
	assert.Equal(t, "2024-04", got[1].Month)
	assert.Equal(t, "李四", got[2].Person)
}

func TestAggregate_TwoDayMixedThresholds(t *testing.T) {
	engine := newTestEngine(t)
	day1 := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	// Day 1 meets both thresholds (150 >= 120, 220 >= 210); day 2 meets
	// neither (90 < 120, 200 < 210). Credit is exactly 1.0 day.
	days := []timesheet.DailyResult{
		dailyFor(t, "张三", "研发部", day1, timesheet.SegmentDurations{
			MorningMinutes:   150,
			AfternoonMinutes: 220,
		}),
		dailyFor(t, "张三", "研发部", day2, timesheet.SegmentDurations{
			MorningMinutes:   90,
			AfternoonMinutes: 200,
		}),
	}

	got := engine.Aggregate(days)
	require.Len(t, got, 1)
	assert.Equal(t, "1.0", got[0].DaysWorked.StringFixed(1))
	assert.Equal(t, "11.00", got[0].TotalHours.StringFixed(2))
}

func TestAggregate_ThresholdMonotonicity(t *testing.T) {
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	days := []timesheet.DailyResult{
		dailyFor(t, "张三", "研发部", date, timesheet.SegmentDurations{
			MorningMinutes:   150,
			AfternoonMinutes: 220,
		}),
		dailyFor(t, "张三", "研发部", date.AddDate(0, 0, 1), timesheet.SegmentDurations{
			MorningMinutes:   90,
			AfternoonMinutes: 200,
		}),
	}

	// Raising a threshold can only remove credit, never add it.
	prev := decimal.NewFromInt(2)
	for threshold := 0; threshold <= 300; threshold += 30 {
		cfg := timesheet.DefaultSegmentConfig()
		cfg.MorningThresholdMinutes = threshold

		engine := NewEngine(cfg, timesheet.DefaultLexicon())
		got := engine.Aggregate(days)
		require.Len(t, got, 1)
		assert.True(t, got[0].DaysWorked.LessThanOrEqual(prev),
			"days worked rose from %s to %s at morning threshold %d",
			prev, got[0].DaysWorked, threshold)
		prev = got[0].DaysWorked
	}
}

func TestAggregate_Empty(t *testing.T) {
	engine := newTestEngine(t)
	assert.Empty(t, engine.Aggregate(nil))
}
