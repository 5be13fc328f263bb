package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var projectShowCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print the inputs of a project",
	Args:  cobra.ExactArgs(1),
	Run:   runProjectShow,
}

func init() {
	projectCmd.AddCommand(projectShowCmd)
}

func runProjectShow(cmd *cobra.Command, args []string) {
	p, err := loadProject(args[0])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("          PROJECT: %s\n", p.Name)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ID:\t%s\n", p.ID)
	fmt.Fprintf(w, "  Element:\t%s\n", p.Element)
	if p.Author != "" {
		fmt.Fprintf(w, "  Author:\t%s\n", p.Author)
	}
	if p.Description != "" {
		fmt.Fprintf(w, "  Description:\t%s\n", p.Description)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("SECTION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	for _, line := range p.Summary() {
		fmt.Printf("  %s\n", line)
	}
	fmt.Println()

	fmt.Println("DESIGN PARAMETERS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	pr := p.Params
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Cover top / bottom / side:\t%.0f / %.0f / %.0f mm\n", pr.CoverTop, pr.CoverBottom, pr.CoverSide)
	fmt.Fprintf(w, "  fyk:\t%.0f MPa\n", pr.Fyk)
	fmt.Fprintf(w, "  Aggregate size:\t%.0f mm\n", pr.AggregateSize)
	fmt.Fprintf(w, "  γc / γs:\t%.2f / %.2f\n", pr.GammaC, pr.GammaS)
	if pr.RecommendedRedistribution {
		fmt.Fprintf(w, "  Redistribution:\tK' = 0.168 (recommended)\n")
	} else {
		fmt.Fprintf(w, "  Redistribution ratio δ:\t%.2f\n", pr.RedistributionRatio)
	}
	if pr.CheckCracking {
		fmt.Fprintf(w, "  Crack width limit:\t%.2f mm\n", pr.CrackWidthLimit)
	} else {
		fmt.Fprintf(w, "  Crack width:\tnot checked\n")
	}
	w.Flush()
	fmt.Println()

	fmt.Println("ACTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ULS moment:\t%s\n", orDash(p.Actions.ULSMoment))
	fmt.Fprintf(w, "  ULS shear:\t%s\n", orDash(p.Actions.ULSShear))
	fmt.Fprintf(w, "  SLS moment:\t%s\n", orDash(p.Actions.SLSMoment))
	w.Flush()
	fmt.Println()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
