package summary

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/leonelquinteros/gotext"
)

// WritePDF exports the report as a one-column A4 document
func (r Report) WritePDF(w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Money Moves", true)
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// core fonts are cp1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 9, tr(r.Heading()), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, tr(r.StatLine()), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, tr(gotext.Get("Choices Timeline")))
	pdf.Ln(9)

	for _, s := range r.Steps {
		mark := "+"
		if !s.Correct {
			mark = "!"
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("%s %d. %s", mark, s.Number, s.Title)), "", "L", false)

		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(gotext.Get("You chose: ")+s.ChoiceText), "", "L", false)
		if s.Result != "" {
			pdf.SetTextColor(90, 90, 90)
			pdf.MultiCell(0, 5, tr(s.Result), "", "L", false)
			pdf.SetTextColor(0, 0, 0)
		}
		if s.Effects != "" {
			pdf.MultiCell(0, 5, tr(gotext.Get("Effects: ")+s.Effects), "", "L", false)
		}
		pdf.Ln(2)
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, tr(gotext.Get("What to take with you")))
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
	for _, l := range r.Lessons {
		pdf.MultiCell(0, 5, tr("- "+l.Title+": "+l.Text), "", "L", false)
	}
	pdf.Ln(2)
	pdf.MultiCell(0, 5, tr(r.Rule), "", "L", false)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write summary pdf: %w", err)
	}
	return nil
}
