package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcd/internal/diagram"
	"github.com/alexiusacademia/gorcd/internal/project"
)

var (
	checkShowDiagram bool
	checkExportFile  string
	checkStrainFile  string
)

var projectCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Calculate and print the results of a project",
	Long: `Run reinforcement spacing validation, flexure, shear and crack
width checks on a project file and print the results.

Examples:
  gorcd project check b1.rcd
  gorcd project check b1.rcd --diagram
  gorcd project check b1.rcd -o b1-section.png --strain b1-strain.svg`,
	Args: cobra.ExactArgs(1),
	Run:  runProjectCheck,
}

func init() {
	projectCmd.AddCommand(projectCheckCmd)

	projectCheckCmd.Flags().BoolVar(&checkShowDiagram, "diagram", false, "Show ASCII section and strain diagrams")
	projectCheckCmd.Flags().StringVarP(&checkExportFile, "output", "o", "", "Export section diagram to file (png, svg, pdf)")
	projectCheckCmd.Flags().StringVar(&checkStrainFile, "strain", "", "Export strain diagram to file (png, svg, pdf)")
}

func runProjectCheck(cmd *cobra.Command, args []string) {
	p, err := calculateProject(args[0])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	banner("EUROCODE 2 SECTION CHECK: " + p.Name)

	heading("SECTION:")
	for _, line := range p.Summary() {
		fmt.Printf("  %s\n", line)
	}
	fmt.Println()

	res := p.Results()
	if !res.Calculated {
		printMessages("SETUP REQUIRED:", res.Messages)
		return
	}

	printMessages("DETAILING:", res.Validation)

	moment, shear := "kNm", "kN"
	if p.Element == project.ElementSlab {
		moment, shear = "kNm/m", "kN/m"
	}
	if res.Flexure != nil {
		printFlexure(res.Flexure, moment)
	}
	if res.Shear != nil {
		printShear(res.Shear, shear)
	}
	if res.Cracking != nil {
		printCracking(res.Cracking)
	} else if res.CrackingMessage != "" {
		printMessages("CRACKING:", []string{res.CrackingMessage})
	}

	printMessages("POST-CALCULATION CHECKS:", res.PostValidation)
	printMessages("NOTES:", res.Messages)
	printChecks(p.Checks())

	if checkShowDiagram || checkExportFile != "" || checkStrainFile != "" {
		data, err := diagram.FromProject(p)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if checkShowDiagram {
			fmt.Print(diagram.DrawSection(data))
			fmt.Print(diagram.DrawStrain(data))
			fmt.Println()
		}
		if checkExportFile != "" {
			if err := diagram.ExportSection(data, checkExportFile); err != nil {
				fmt.Printf("Error exporting diagram: %v\n", err)
			} else {
				slog.Info("section diagram exported", "path", checkExportFile)
				fmt.Printf("  Section diagram exported to: %s\n", checkExportFile)
			}
		}
		if checkStrainFile != "" {
			if err := diagram.ExportStrain(data, checkStrainFile); err != nil {
				fmt.Printf("Error exporting diagram: %v\n", err)
			} else {
				fmt.Printf("  Strain diagram exported to: %s\n", checkStrainFile)
			}
		}
	}
}
