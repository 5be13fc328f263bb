// Package report turns a calculated project into a printable calculation
// sheet (PDF) or workbook (XLSX).
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexiusacademia/gorcd/internal/project"
	"github.com/alexiusacademia/gorcd/internal/version"
)

// ErrNotCalculated is returned when a report is requested for a project
// without results.
var ErrNotCalculated = errors.New("project has no calculation results")

// Row is one labelled value in a report section
type Row struct {
	Label string
	Value string
}

// Section groups rows under a heading
type Section struct {
	Heading string
	Rows    []Row
}

// Report is the printable form of a calculated project
type Report struct {
	Title       string
	Project     string
	Description string
	Author      string
	Date        string
	Code        string

	Inputs   []string
	Checks   []project.Check
	Sections []Section
	Notes    []string
}

// Build collects the inputs and results of p. The project must have been
// calculated.
func Build(p *project.Project, now time.Time) (*Report, error) {
	res := p.Results()
	if !res.Calculated {
		return nil, ErrNotCalculated
	}

	r := &Report{
		Title:       "RC Section Check",
		Project:     p.Name,
		Description: p.Description,
		Author:      p.Author,
		Date:        now.Format("2006-01-02"),
		Code:        version.Code,
		Inputs:      p.Summary(),
		Checks:      p.Checks(),
	}

	r.Sections = append(r.Sections, Section{
		Heading: "Actions",
		Rows: []Row{
			{"ULS moment", p.Actions.ULSMoment},
			{"ULS shear", p.Actions.ULSShear},
			{"SLS moment", p.Actions.SLSMoment},
		},
	})

	if f := res.Flexure; f != nil {
		rows := []Row{
			{"Effective depth d", mm(f.EffectiveDepth)},
			{"K", fmt.Sprintf("%.4f", f.K)},
			{"K'", fmt.Sprintf("%.4f", f.KPrime)},
			{"Lever arm z", mm(f.LeverArm)},
			{"Neutral axis depth x", mm(f.NeutralAxisDepth)},
			{"As,min", mm2(f.AsMin)},
			{"As,max", mm2(f.AsMax)},
			{"As,req", mm2(f.AsRequired)},
			{"As,prov", mm2(f.AsProvided)},
		}
		if f.IsDoublyReinforced {
			rows = append(rows,
				Row{"Compression steel depth d2", mm(f.CompressionDepth)},
				Row{"As2,req", mm2(f.AscRequired)},
				Row{"As2,prov", mm2(f.AscProvided)},
			)
		}
		if f.IsFlangedWeb {
			rows = append(rows, Row{"Flange outstand moment", fmt.Sprintf("%.2f kNm", f.FlangeMoment)})
		}
		rows = append(rows,
			Row{"Moment capacity", fmt.Sprintf("%.2f", f.Capacity)},
			Row{"Result", f.Message},
		)
		r.Sections = append(r.Sections, Section{Heading: "Flexure", Rows: rows})
	}

	if s := res.Shear; s != nil {
		rows := []Row{
			{"Lever arm z", mm(s.LeverArm)},
			{"VRd,c", fmt.Sprintf("%.2f", s.VRdC)},
		}
		if s.VRdMax > 0 {
			rows = append(rows,
				Row{"nu1", fmt.Sprintf("%.3f", s.Nu1)},
				Row{"fcd", fmt.Sprintf("%.2f MPa", s.Fcd)},
				Row{"cot theta", fmt.Sprintf("%.3f", s.CotTheta)},
				Row{"VRd,max", fmt.Sprintf("%.2f", s.VRdMax)},
				Row{"VRd,s", fmt.Sprintf("%.2f", s.VRdS)},
				Row{"Asw/s", fmt.Sprintf("%.1f mm²/m", s.AswPerMetre)},
				Row{"Required link spacing", mm(s.RequiredSpacing)},
				Row{"Maximum link spacing", mm(s.MaxSpacing)},
				Row{"Link ratio", fmt.Sprintf("%.5f (min %.5f)", s.LinkRatio, s.MinLinkRatio)},
			)
		}
		rows = append(rows,
			Row{"Shear capacity", fmt.Sprintf("%.2f", s.Capacity)},
			Row{"Result", s.Message},
		)
		r.Sections = append(r.Sections, Section{Heading: "Shear", Rows: rows})
	}

	switch c := res.Cracking; {
	case c != nil:
		r.Sections = append(r.Sections, Section{
			Heading: "Cracking",
			Rows: []Row{
				{"Cover c", mm(c.Cover)},
				{"Bar spacing limit 5(c + dia/2)", mm(c.SpacingLimit)},
				{"Steel stress", fmt.Sprintf("%.2f MPa", c.SteelStress)},
				{"Ac,eff", mm2(c.EffectiveTensionArea)},
				{"rho p,eff", fmt.Sprintf("%.5f", c.Rho)},
				{"alpha e", fmt.Sprintf("%.3f", c.AlphaE)},
				{"esm - ecm", fmt.Sprintf("%.6f", c.StrainDifference)},
				{"sr,max", mm(c.CrackSpacing)},
				{"wk", fmt.Sprintf("%.3f mm", c.CrackWidth)},
				{"Limit", fmt.Sprintf("%.3f mm", c.Limit)},
				{"Result", c.Message},
			},
		})
	case res.CrackingMessage != "":
		r.Sections = append(r.Sections, Section{
			Heading: "Cracking",
			Rows:    []Row{{"Result", res.CrackingMessage}},
		})
	}

	r.Notes = append(r.Notes, res.Validation...)
	r.Notes = append(r.Notes, res.PostValidation...)
	r.Notes = append(r.Notes, res.Messages...)

	return r, nil
}

// Pass reports whether every check passed.
func (r *Report) Pass() bool {
	for _, c := range r.Checks {
		if !c.Pass {
			return false
		}
	}
	return len(r.Checks) > 0
}

// Save writes the report in the format given by the extension of path
// (.pdf or .xlsx).
func Save(path string, r *Report) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".pdf" && ext != ".xlsx" {
		return fmt.Errorf("unsupported report format %q (use .pdf or .xlsx)", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	defer f.Close()

	if ext == ".pdf" {
		err = WritePDF(f, r)
	} else {
		err = WriteXLSX(f, r)
	}
	if err != nil {
		return err
	}
	return f.Close()
}

func mm(v float64) string  { return fmt.Sprintf("%.1f mm", v) }
func mm2(v float64) string { return fmt.Sprintf("%.1f mm²", v) }

func verdict(c project.Check) string {
	switch {
	case c.Pass:
		return "PASS"
	case c.Value == 0 && c.Limit > 0 && c.Name == "Cracking":
		return "NOT CHECKED"
	default:
		return "FAIL"
	}
}
