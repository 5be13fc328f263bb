package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcd/internal/report"
)

var reportOutput string

var projectReportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Write a PDF or Excel calculation report",
	Long: `Calculate a project and write the results as a calculation report.
The format follows the output extension: .pdf or .xlsx.

Examples:
  gorcd project report b1.rcd
  gorcd project report b1.rcd -o calcs/b1.xlsx`,
	Args: cobra.ExactArgs(1),
	Run:  runProjectReport,
}

func init() {
	projectCmd.AddCommand(projectReportCmd)

	projectReportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Report file (default: <project>.pdf)")
}

func runProjectReport(cmd *cobra.Command, args []string) {
	p, err := calculateProject(args[0])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	r, err := report.Build(p, time.Now())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		for _, m := range p.Results().Messages {
			fmt.Printf("  %s\n", m)
		}
		return
	}

	out := reportOutput
	if out == "" {
		out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".pdf"
	}

	if err := report.Save(out, r); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	slog.Info("report written", "path", out, "project", p.Name)
	fmt.Printf("Report for %q written to %s (%s)\n", p.Name, out, passFail(r.Pass()))
}
