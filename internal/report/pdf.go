package report

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"
)

// WritePDF renders the report as an A4 calculation sheet.
func WritePDF(w io.Writer, r *Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// core fonts are cp1252; this maps ² and friends
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(r.Title, true)
	pdf.SetAuthor(r.Author, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(r.Title))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	header := []string{
		fmt.Sprintf("Project: %s", r.Project),
		fmt.Sprintf("Author: %s", r.Author),
		fmt.Sprintf("Date: %s", r.Date),
		fmt.Sprintf("Code: %s", r.Code),
	}
	for _, line := range header {
		pdf.Cell(0, 6, tr(line))
		pdf.Ln(6)
	}
	if r.Description != "" {
		pdf.MultiCell(0, 6, tr(r.Description), "", "L", false)
	}
	pdf.Ln(4)

	heading := func(text string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, tr(text))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
	}

	heading("Inputs")
	for _, line := range r.Inputs {
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
	}
	pdf.Ln(3)

	heading("Summary")
	pdf.SetFont("Helvetica", "B", 10)
	for _, h := range []struct {
		text  string
		width float64
	}{{"Check", 40}, {"Value", 35}, {"Capacity / Limit", 35}, {"Unit", 25}, {"Result", 30}} {
		pdf.CellFormat(h.width, 7, h.text, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
	for _, c := range r.Checks {
		pdf.CellFormat(40, 7, c.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", c.Value), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", c.Limit), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, c.Unit, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 7, verdict(c), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	for _, s := range r.Sections {
		heading(s.Heading)
		for _, row := range s.Rows {
			pdf.CellFormat(70, 6, tr(row.Label), "", 0, "L", false, 0, "")
			pdf.MultiCell(0, 6, tr(row.Value), "", "L", false)
		}
		pdf.Ln(3)
	}

	if len(r.Notes) > 0 {
		heading("Notes")
		for _, n := range r.Notes {
			pdf.MultiCell(0, 5, tr("- "+n), "", "L", false)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}
