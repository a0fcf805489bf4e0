package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchsheet/punchsheet-backend-go/internal/domain/timesheet"
)

func datasetHeader() []string {
	return []string{"姓名", "部门", "职位", "日期", "上班打卡时间", "上班打卡结果", "下班打卡时间", "下班打卡结果", "审批单", "考勤组"}
}

func TestParseDataset_Basic(t *testing.T) {
	engine := newTestEngine(t)

	rows := [][]string{
		datasetHeader(),
		{"张三", "研发部", "工程师", "240311 星期一", "08:58", "正常", "18:05", "正常", "", "研发考勤组"},
	}

	records, skipped, err := engine.ParseDataset(rows)
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "张三", rec.Person)
	assert.Equal(t, "研发部", rec.Department)
	assert.Equal(t, "工程师", rec.Role)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), rec.Date)
	assert.Equal(t, "08:58", rec.RawClockIn)
	assert.Equal(t, "18:05", rec.RawClockOut)
}

func TestParseDataset_MissingColumns(t *testing.T) {
	engine := newTestEngine(t)

	rows := [][]string{
		{"姓名", "部门", "日期"},
	}

	_, _, err := engine.ParseDataset(rows)
	var missing *timesheet.MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Contains(t, missing.Columns, "职位")
	assert.Contains(t, missing.Columns, "审批单")
	assert.NotContains(t, missing.Columns, "姓名")
}

func TestParseDataset_Empty(t *testing.T) {
	engine := newTestEngine(t)

	_, _, err := engine.ParseDataset(nil)
	assert.ErrorIs(t, err, timesheet.ErrEmptyWorksheet)
}

func TestParseDataset_ExcludedGroupNotCounted(t *testing.T) {
	engine := newTestEngine(t)

	rows := [][]string{
		datasetHeader(),
		{"外包甲", "外包", "顾问", "240311 星期一", "", "", "", "", "", "未加入考勤组"},
		{"张三", "研发部", "工程师", "240311 星期一", "08:58", "正常", "18:05", "正常", "", "研发考勤组"},
	}

	records, skipped, err := engine.ParseDataset(rows)
	require.NoError(t, err)
	// Exclusion is not a skip; the row simply is not part of the dataset.
	assert.Equal(t, 0, skipped)
	require.Len(t, records, 1)
	assert.Equal(t, "张三", records[0].Person)
}

func TestParseDataset_BadDateSkipped(t *testing.T) {
	engine := newTestEngine(t)

	rows := [][]string{
		datasetHeader(),
		{"张三", "研发部", "工程师", "no date", "08:58", "正常", "18:05", "正常", "", "研发考勤组"},
	}

	records, skipped, err := engine.ParseDataset(rows)
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	assert.Empty(t, records)
}

func TestParseDataset_DuplicateSkipped(t *testing.T) {
	engine := newTestEngine(t)

	rows := [][]string{
		datasetHeader(),
		{"张三", "研发部", "工程师", "240311 星期一", "08:58", "正常", "18:05", "正常", "", "研发考勤组"},
		{"张三", "研发部", "工程师", "240311 星期一", "09:10", "正常", "18:30", "正常", "", "研发考勤组"},
	}

	records, skipped, err := engine.ParseDataset(rows)
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, records, 1)
	// First occurrence wins.
	assert.Equal(t, "08:58", records[0].RawClockIn)
}

func TestParseDataset_ShortRowTreatedAsBlank(t *testing.T) {
	engine := newTestEngine(t)

	rows := [][]string{
		datasetHeader(),
		{"张三", "研发部", "工程师", "240311 星期一"},
	}

	records, skipped, err := engine.ParseDataset(rows)
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].RawClockIn)
	assert.Empty(t, records[0].RawApproval)
}
