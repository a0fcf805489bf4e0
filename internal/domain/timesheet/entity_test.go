package timesheet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	ct, err := ParseClockTime("13:30")
	require.NoError(t, err)
	assert.Equal(t, 13, ct.Hour)
	assert.Equal(t, 30, ct.Minute)
	assert.Equal(t, "13:30", ct.String())
	assert.Equal(t, 810, ct.MinuteOfDay())

	_, err = ParseClockTime("25:00")
	assert.Error(t, err)
	_, err = ParseClockTime("morning")
	assert.Error(t, err)
}

func TestClockTimeAt(t *testing.T) {
	day := time.Date(2024, 3, 11, 17, 45, 0, 0, time.UTC)
	got := ClockTime{Hour: 9}.At(day)
	assert.Equal(t, time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC), got)
}

func TestSegmentConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultSegmentConfig().Validate())

	bad := DefaultSegmentConfig()
	bad.MorningEnd = ClockTime{Hour: 8}
	assert.Error(t, bad.Validate())

	bad = DefaultSegmentConfig()
	bad.AfternoonEnd = ClockTime{Hour: 20}
	assert.Error(t, bad.Validate())

	bad = DefaultSegmentConfig()
	bad.MorningThresholdMinutes = -1
	assert.Error(t, bad.Validate())
}

func TestApprovalCategoryKinds(t *testing.T) {
	assert.True(t, CategoryBusinessTrip.IsTravel())
	assert.True(t, CategoryRetroPunch.IsTravel())
	assert.False(t, CategoryBusinessTrip.IsLeave())
	assert.True(t, CategorySickLeave.IsLeave())
	assert.True(t, CategoryCompLeave.IsLeave())
	assert.False(t, CategoryNone.IsTravel())
	assert.False(t, CategoryNone.IsLeave())
}

func TestLoadLexicon_Override(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	content := []byte(`
next_day_marker: "+1"
columns:
  person: "Name"
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	lex, err := LoadLexicon(path)
	require.NoError(t, err)
	assert.Equal(t, "+1", lex.NextDayMarker)
	assert.Equal(t, "Name", lex.Columns.Person)
	// Untouched fields keep their defaults.
	assert.Equal(t, "至", lex.RangeSeparator)
	assert.Equal(t, "部门", lex.Columns.Department)
	assert.Equal(t, CategoryBusinessTrip, lex.Categories["出差"])
}

func TestLoadLexicon_MissingFile(t *testing.T) {
	_, err := LoadLexicon(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestDailyFilterValidate(t *testing.T) {
	f := DailyFilter{}
	require.NoError(t, f.Validate())
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 31, f.Limit)

	f = DailyFilter{Page: 2, Limit: 600}
	assert.Error(t, f.Validate())
}
