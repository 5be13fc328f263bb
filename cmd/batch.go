package cmd

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcd/internal/project"
	"github.com/alexiusacademia/gorcd/internal/report"
)

var (
	batchDir  string
	batchXLSX string
)

var batchCmd = &cobra.Command{
	Use:   "batch [pattern]",
	Short: "Check every project file matching a glob pattern",
	Long: `Calculate every project file matching a doublestar glob pattern
(default "**/*.rcd") below a directory and print a pass/fail table.
Optionally write the table to an Excel workbook.

Examples:
  gorcd batch
  gorcd batch "level-2/**/*.rcd" --dir projects
  gorcd batch --xlsx summary.xlsx`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchDir, "dir", "d", ".", "Base directory for the pattern")
	batchCmd.Flags().StringVar(&batchXLSX, "xlsx", "", "Write the summary to an Excel file")
}

func runBatch(cmd *cobra.Command, args []string) {
	pattern := "**/*" + project.FileExtension
	if len(args) == 1 {
		pattern = args[0]
	}

	files, err := findProjects(batchDir, pattern)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(files) == 0 {
		fmt.Printf("No project files match %q in %s\n", pattern, batchDir)
		return
	}

	rows := checkProjects(batchDir, files)

	banner("BATCH SECTION CHECK")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  File\tProject\tFlexure\tShear\tCracking\tResult\n")
	fmt.Fprintf(w, "  ────\t───────\t───────\t─────\t────────\t──────\n")
	passed := 0
	for _, r := range rows {
		if r.Pass() {
			passed++
		}
		cells := map[string]string{"Flexure": "-", "Shear": "-", "Cracking": "-"}
		for _, c := range r.Checks {
			cells[c.Name] = passFail(c.Pass)
		}
		result := passFail(r.Pass())
		if r.Err != "" {
			result = color.RedString("ERROR")
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\n", r.File, r.Name, cells["Flexure"], cells["Shear"], cells["Cracking"], result)
	}
	w.Flush()
	fmt.Println()

	for _, r := range rows {
		if r.Err != "" {
			fmt.Printf("  %s: %s\n", r.File, r.Err)
		}
	}
	fmt.Printf("  %d of %d projects pass.\n", passed, len(rows))
	fmt.Println()

	if batchXLSX != "" {
		f, err := os.Create(batchXLSX)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer f.Close()
		if err := report.WriteBatchXLSX(f, rows); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("  Summary written to: %s\n", batchXLSX)
	}
}

// findProjects returns the files below base matching pattern, relative to
// base.
func findProjects(base, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	var files []string
	err := doublestar.GlobWalk(os.DirFS(base), pattern, func(path string, d fs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", base, err)
	}
	return files, nil
}

// checkProjects calculates each file. Failures are recorded per row so
// one bad file does not stop the batch.
func checkProjects(base string, files []string) []report.BatchRow {
	rows := make([]report.BatchRow, 0, len(files))
	for _, f := range files {
		row := report.BatchRow{File: f}

		p, err := calculateProject(filepath.Join(base, f))
		switch {
		case err != nil:
			row.Err = err.Error()
		case !p.Results().Calculated:
			row.Name = p.Name
			row.Err = strings.Join(p.Results().Messages, " ")
		default:
			row.Name = p.Name
			row.Checks = p.Checks()
		}

		if row.Err != "" {
			slog.Warn("project not checked", "file", f, "error", row.Err)
		}
		rows = append(rows, row)
	}
	return rows
}
