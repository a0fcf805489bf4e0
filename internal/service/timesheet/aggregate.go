package timesheet

import (
	"sort"

	"github.com/punchsheet/punchsheet-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

var half = decimal.New(5, -1)

// Aggregate groups daily results by (department, person, month) and computes
// total hours (minutes / 60, rounded to 2 decimals) and the fractional
// days-worked credit: 0.5 per day whose morning minutes meet the morning
// threshold, plus 0.5 per day whose afternoon minutes meet the afternoon
// threshold. Evening minutes count toward hours only.
func (e *Engine) Aggregate(days []timesheet.DailyResult) []timesheet.MonthlyAggregate {
	type key struct {
		department string
		person     string
		month      string
	}
	type accumulator struct {
		totalMinutes int
		daysWorked   decimal.Decimal
	}

	groups := make(map[key]*accumulator)
	for _, d := range days {
		k := key{
			department: d.Record.Department,
			person:     d.Record.Person,
			month:      d.Record.Date.Format("2006-01"),
		}
		acc, ok := groups[k]
		if !ok {
			acc = &accumulator{daysWorked: decimal.Zero}
			groups[k] = acc
		}

		acc.totalMinutes += d.Durations.Total()
		if d.Durations.MorningMinutes >= e.segments.MorningThresholdMinutes {
			acc.daysWorked = acc.daysWorked.Add(half)
		}
		if d.Durations.AfternoonMinutes >= e.segments.AfternoonThresholdMinutes {
			acc.daysWorked = acc.daysWorked.Add(half)
		}
	}

	aggregates := make([]timesheet.MonthlyAggregate, 0, len(groups))
	for k, acc := range groups {
		aggregates = append(aggregates, timesheet.MonthlyAggregate{
			Department: k.department,
			Person:     k.person,
			Month:      k.month,
			TotalHours: decimal.NewFromInt(int64(acc.totalMinutes)).Div(decimal.NewFromInt(60)).Round(2),
			DaysWorked: acc.daysWorked,
		})
	}

	sort.Slice(aggregates, func(i, j int) bool {
		if aggregates[i].Department != aggregates[j].Department {
			return aggregates[i].Department < aggregates[j].Department
		}
		if aggregates[i].Person != aggregates[j].Person {
			return aggregates[i].Person < aggregates[j].Person
		}
		return aggregates[i].Month < aggregates[j].Month
	})
	return aggregates
}
