package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gorcd/internal/project"
)

const (
	reportSheet = "Report"
	batchSheet  = "Batch"
)

// sheetWriter appends rows to a sheet and keeps the first error.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
	bold  int
	err   error
}

func (s *sheetWriter) put(values ...any) {
	if s.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, s.row)
	if err != nil {
		s.err = err
		return
	}
	s.err = s.f.SetSheetRow(s.sheet, cell, &values)
	s.row++
}

func (s *sheetWriter) heading(text string) {
	cell, _ := excelize.CoordinatesToCellName(1, s.row)
	s.put(text)
	if s.err == nil {
		s.err = s.f.SetCellStyle(s.sheet, cell, cell, s.bold)
	}
}

func (s *sheetWriter) blank() { s.row++ }

// WriteXLSX writes the report to a single-sheet workbook.
func WriteXLSX(w io.Writer, r *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	s := &sheetWriter{f: f, sheet: reportSheet, row: 1, bold: bold}
	s.heading(r.Title)
	s.put("Project", r.Project)
	s.put("Author", r.Author)
	s.put("Date", r.Date)
	s.put("Code", r.Code)

	s.blank()
	s.heading("Inputs")
	for _, line := range r.Inputs {
		s.put(line)
	}

	s.blank()
	s.heading("Summary")
	s.put("Check", "Value", "Capacity / Limit", "Unit", "Result", "Message")
	for _, c := range r.Checks {
		s.put(c.Name, c.Value, c.Limit, c.Unit, verdict(c), c.Message)
	}

	for _, sec := range r.Sections {
		s.blank()
		s.heading(sec.Heading)
		for _, row := range sec.Rows {
			s.put(row.Label, row.Value)
		}
	}

	if len(r.Notes) > 0 {
		s.blank()
		s.heading("Notes")
		for _, n := range r.Notes {
			s.put(n)
		}
	}
	if s.err != nil {
		return s.err
	}

	if err := f.SetColWidth(reportSheet, "A", "A", 32); err != nil {
		return err
	}
	if err := f.SetColWidth(reportSheet, "B", "F", 18); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write XLSX: %w", err)
	}
	return nil
}

// BatchRow is one project in a batch run
type BatchRow struct {
	File   string
	Name   string
	Checks []project.Check
	Err    string
}

// Pass reports whether the project calculated and every check passed.
func (b BatchRow) Pass() bool {
	if b.Err != "" || len(b.Checks) == 0 {
		return false
	}
	for _, c := range b.Checks {
		if !c.Pass {
			return false
		}
	}
	return true
}

// WriteBatchXLSX writes one row per project with the utilisation of each
// check.
func WriteBatchXLSX(w io.Writer, rows []BatchRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", batchSheet); err != nil {
		return err
	}

	header := []any{"File", "Project", "Flexure", "Shear", "Cracking", "Result", "Error"}
	if err := f.SetSheetRow(batchSheet, "A1", &header); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(batchSheet, "A1", "G1", bold); err != nil {
		return err
	}

	for i, b := range rows {
		result := "FAIL"
		if b.Pass() {
			result = "PASS"
		}
		values := []any{b.File, b.Name, "", "", "", result, b.Err}
		for _, c := range b.Checks {
			col := map[string]int{"Flexure": 2, "Shear": 3, "Cracking": 4}[c.Name]
			if col == 0 {
				continue
			}
			values[col] = utilisation(c)
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(batchSheet, cell, &values); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(batchSheet, "A", "B", 28); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write XLSX: %w", err)
	}
	return nil
}

// utilisation is value/limit, or the verdict when no ratio applies.
func utilisation(c project.Check) any {
	if c.Limit <= 0 || (c.Value == 0 && !c.Pass) {
		return verdict(c)
	}
	return c.Value / c.Limit
}
