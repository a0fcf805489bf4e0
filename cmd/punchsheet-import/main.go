package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/punchsheet/punchsheet-backend-go/internal/domain/timesheet"
	"github.com/punchsheet/punchsheet-backend-go/internal/pkg/spreadsheet"
	serviceTimesheet "github.com/punchsheet/punchsheet-backend-go/internal/service/timesheet"
)

// punchsheet-import processes a punch-clock export offline, without the API
// or a database, and writes the two-sheet result workbook next to it.
func main() {
	var (
		input       = flag.String("in", "", "path to the punch-clock export (.xls or .xlsx)")
		output      = flag.String("out", "", "path for the result workbook (default <in>-result.xlsx)")
		lexiconFile = flag.String("lexicon", "", "optional YAML lexicon override")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *output == "" {
		*output = *input + "-result.xlsx"
	}

	if err := run(*input, *output, *lexiconFile); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}

func run(input, output, lexiconFile string) error {
	if !spreadsheet.IsSupported(input) {
		return timesheet.ErrUnsupportedFile
	}

	lexicon := timesheet.DefaultLexicon()
	if lexiconFile != "" {
		var err error
		lexicon, err = timesheet.LoadLexicon(lexiconFile)
		if err != nil {
			return fmt.Errorf("failed to load lexicon file: %w", err)
		}
	}

	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := spreadsheet.ReadRows(f, input)
	if err != nil {
		return fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	engine := serviceTimesheet.NewEngine(timesheet.DefaultSegmentConfig(), lexicon)
	records, skipped, err := engine.ParseDataset(rows)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return timesheet.ErrNoUsableRows
	}

	daily := engine.ProcessAll(records)
	monthly := engine.Aggregate(daily)

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := spreadsheet.WriteWorkbook(out, daily, monthly); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	color.Green("processed %d rows (%d skipped)", len(records), skipped)
	for _, m := range monthly {
		fmt.Printf("  %s / %s  %s: %s hours, %s days\n",
			m.Department, m.Person, m.Month,
			m.TotalHours.StringFixed(2), m.DaysWorked.StringFixed(1))
	}
	color.Cyan("wrote %s", output)
	return nil
}
