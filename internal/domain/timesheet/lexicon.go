package timesheet

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ColumnNames maps the required dataset columns to the header labels used by
// the punch-clock vendor's export.
type ColumnNames struct {
	Person         string `yaml:"person"`
	Department     string `yaml:"department"`
	Role           string `yaml:"role"`
	Date           string `yaml:"date"`
	ClockIn        string `yaml:"clock_in"`
	ClockInResult  string `yaml:"clock_in_result"`
	ClockOut       string `yaml:"clock_out"`
	ClockOutResult string `yaml:"clock_out_result"`
	Approval       string `yaml:"approval"`
	Group          string `yaml:"group"`
}

// Lexicon gathers every locale-coupled token the parsers depend on: the
// next-day punch marker, the range separator inside approval texts, the
// category tokens, the punch-result markers that invalidate a punch, the
// attendance-group sentinel and the column headers. Defaults match the
// vendor's Chinese-language export; a YAML file can override any field.
type Lexicon struct {
	NextDayMarker       string                      `yaml:"next_day_marker"`
	RangeSeparator      string                      `yaml:"range_separator"`
	Categories          map[string]ApprovalCategory `yaml:"categories"`
	InvalidPunchResults []string                    `yaml:"invalid_punch_results"`
	ExcludedGroupLabel  string                      `yaml:"excluded_group_label"`
	Columns             ColumnNames                 `yaml:"columns"`
}

// DefaultLexicon returns the tokens of the vendor export this system was
// built against.
func DefaultLexicon() Lexicon {
	return Lexicon{
		NextDayMarker:  "次日",
		RangeSeparator: "至",
		Categories: map[string]ApprovalCategory{
			"出差":   CategoryBusinessTrip,
			"外出":   CategoryOffSite,
			"补卡申请": CategoryRetroPunch,
			"加班":   CategoryOvertime,
			"年假":   CategoryAnnualLeave,
			"事假":   CategoryPersonalLeave,
			"病假":   CategorySickLeave,
			"调休":   CategoryCompLeave,
		},
		InvalidPunchResults: []string{"缺卡", "未打卡"},
		ExcludedGroupLabel:  "未加入考勤组",
		Columns: ColumnNames{
			Person:         "姓名",
			Department:     "部门",
			Role:           "职位",
			Date:           "日期",
			ClockIn:        "上班打卡时间",
			ClockInResult:  "上班打卡结果",
			ClockOut:       "下班打卡时间",
			ClockOutResult: "下班打卡结果",
			Approval:       "审批单",
			Group:          "考勤组",
		},
	}
}

// LoadLexicon reads a YAML override file on top of the defaults. Only fields
// present in the file replace the default values.
func LoadLexicon(path string) (Lexicon, error) {
	lex := DefaultLexicon()
	data, err := os.ReadFile(path)
	if err != nil {
		return Lexicon{}, fmt.Errorf("failed to read lexicon file: %w", err)
	}

	var override Lexicon
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Lexicon{}, fmt.Errorf("failed to parse lexicon file: %w", err)
	}

	if override.NextDayMarker != "" {
		lex.NextDayMarker = override.NextDayMarker
	}
	if override.RangeSeparator != "" {
		lex.RangeSeparator = override.RangeSeparator
	}
	if len(override.Categories) > 0 {
		lex.Categories = override.Categories
	}
	if len(override.InvalidPunchResults) > 0 {
		lex.InvalidPunchResults = override.InvalidPunchResults
	}
	if override.ExcludedGroupLabel != "" {
		lex.ExcludedGroupLabel = override.ExcludedGroupLabel
	}
	lex.Columns = mergeColumns(lex.Columns, override.Columns)
	return lex, nil
}

func mergeColumns(base, override ColumnNames) ColumnNames {
	pick := func(def, alt string) string {
		if alt != "" {
			return alt
		}
		return def
	}
	return ColumnNames{
		Person:         pick(base.Person, override.Person),
		Department:     pick(base.Department, override.Department),
		Role:           pick(base.Role, override.Role),
		Date:           pick(base.Date, override.Date),
		ClockIn:        pick(base.ClockIn, override.ClockIn),
		ClockInResult:  pick(base.ClockInResult, override.ClockInResult),
		ClockOut:       pick(base.ClockOut, override.ClockOut),
		ClockOutResult: pick(base.ClockOutResult, override.ClockOutResult),
		Approval:       pick(base.Approval, override.Approval),
		Group:          pick(base.Group, override.Group),
	}
}

// Required returns the required header labels in dataset order.
func (c ColumnNames) Required() []string {
	return []string{
		c.Person, c.Department, c.Role, c.Date,
		c.ClockIn, c.ClockInResult, c.ClockOut, c.ClockOutResult,
		c.Approval, c.Group,
	}
}
