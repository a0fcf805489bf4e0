package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchsheet/punchsheet-backend-go/internal/domain/timesheet"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(timesheet.DefaultSegmentConfig(), timesheet.DefaultLexicon())
}

func TestNormalizePunch_SameDay(t *testing.T) {
	engine := newTestEngine(t)
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	got := engine.NormalizePunch(date, "08:58", "正常")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 3, 11, 8, 58, 0, 0, time.UTC), *got)
}

func TestNormalizePunch_NextDayMarker(t *testing.T) {
	engine := newTestEngine(t)
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	got := engine.NormalizePunch(date, "次日00:30", "正常")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 3, 12, 0, 30, 0, 0, time.UTC), *got)
}

func TestNormalizePunch_MonthRollover(t *testing.T) {
	engine := newTestEngine(t)
	date := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)

	got := engine.NormalizePunch(date, "次日01:15", "正常")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 3, 1, 1, 15, 0, 0, time.UTC), *got)
}

func TestNormalizePunch_Missing(t *testing.T) {
	engine := newTestEngine(t)
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		raw    string
		result string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"invalid result missing punch", "09:00", "缺卡"},
		{"invalid result no punch", "09:00", "未打卡"},
		{"garbage text", "morning", "正常"},
		{"hour out of range", "25:00", "正常"},
		{"minute out of range", "09:61", "正常"},
		{"trailing text", "09:00 late", "正常"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, engine.NormalizePunch(date, tt.raw, tt.result))
		})
	}
}

func TestNormalizePunch_SingleDigitHour(t *testing.T) {
	engine := newTestEngine(t)
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	got := engine.NormalizePunch(date, "9:05", "正常")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 3, 11, 9, 5, 0, 0, time.UTC), *got)
}
