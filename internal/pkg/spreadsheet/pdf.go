package spreadsheet

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/punchsheet/punchsheet-backend-go/internal/domain/timesheet"
)

// WriteSummaryPDF renders the monthly summary table as a PDF. Labels are
// Latin-only; the core PDF fonts cannot render CJK glyphs, so person and
// department names outside that range come out transliterated by cp1252.
func WriteSummaryPDF(w io.Writer, batch timesheet.ImportBatch, monthly []timesheet.MonthlyAggregate) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Monthly Attendance Summary")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(40, 8, fmt.Sprintf("Source file: %s", tr(batch.FileName)))
	pdf.Ln(7)
	pdf.Cell(40, 8, fmt.Sprintf("Rows processed: %d (skipped %d)", batch.RowCount, batch.SkippedRows))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(45, 8, "Department")
	pdf.Cell(45, 8, "Person")
	pdf.Cell(30, 8, "Month")
	pdf.Cell(30, 8, "Hours")
	pdf.Cell(30, 8, "Days worked")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	for _, m := range monthly {
		pdf.Cell(45, 7, tr(m.Department))
		pdf.Cell(45, 7, tr(m.Person))
		pdf.Cell(30, 7, m.Month)
		pdf.Cell(30, 7, m.TotalHours.StringFixed(2))
		pdf.Cell(30, 7, m.DaysWorked.String())
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 8, fmt.Sprintf("Generated at %s", time.Now().Format("2006-01-02 15:04:05")))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}
