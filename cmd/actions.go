package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcd/internal/ec2"
)

var (
	// Characteristic action effects (kNm or kN)
	actionsPermanent float64
	actionsVariable  float64
	actionsCategory  string

	// Options
	actionsShowAll bool
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "Calculate design actions using EN 1990 combinations",
	Long: `Calculate ULS and SLS design action effects from characteristic
permanent (Gk) and variable (Qk) effects, using the EN 1990 combinations
with UK National Annex factors.

The same combinations apply to moments (kNm) and shears (kN). The
quasi-permanent value is the SLS moment used for crack control.

Categories:
  A-H   Imposed loads (EN 1990 Table A1.1)
  SNOW  Snow, altitude <= 1000 m
  WIND  Wind

Examples:
  # Office floor beam
  gorcd actions --gk 120 --qk 80 --category B

  # Show every combination
  gorcd actions --gk 120 --qk 80 --all`,
	Run: runActions,
}

func init() {
	rootCmd.AddCommand(actionsCmd)

	actionsCmd.Flags().Float64VarP(&actionsPermanent, "gk", "g", 0, "Characteristic permanent effect Gk")
	actionsCmd.Flags().Float64VarP(&actionsVariable, "qk", "q", 0, "Characteristic variable effect Qk")
	actionsCmd.Flags().StringVarP(&actionsCategory, "category", "c", "B", "Variable action category (A-H, SNOW, WIND)")
	actionsCmd.Flags().BoolVarP(&actionsShowAll, "all", "a", false, "Show all combination results")
}

func runActions(cmd *cobra.Command, args []string) {
	a := ec2.CharacteristicActions{
		Permanent: actionsPermanent,
		Variable:  actionsVariable,
	}
	if a.Permanent == 0 && a.Variable == 0 {
		fmt.Println("Error: Please provide at least one characteristic effect.")
		fmt.Println("Use 'gorcd actions --help' for usage information.")
		return
	}

	cat, err := ec2.LookupCategory(actionsCategory)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          EN 1990 DESIGN ACTION CALCULATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("CHARACTERISTIC ACTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Permanent (Gk):\t%.2f\n", a.Permanent)
	fmt.Fprintf(w, "  Variable (Qk):\t%.2f\n", a.Variable)
	fmt.Fprintf(w, "  Category:\t%s - %s\n", cat.Code, cat.Description)
	fmt.Fprintf(w, "  ψ0 / ψ1 / ψ2:\t%.1f / %.1f / %.1f\n", cat.Psi0, cat.Psi1, cat.Psi2)
	w.Flush()
	fmt.Println()

	uls, ulsCombo := ec2.Governing(a, cat, ec2.ULSCombinations)

	if actionsShowAll {
		fmt.Println("COMBINATIONS (EN 1990 6.4.3.2 and 6.5.3):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  State\tCombination\tExpression\tValue\n")
		fmt.Fprintf(w, "  ─────\t───────────\t──────────\t─────\n")
		for _, lc := range ec2.ULSCombinations {
			marker := ""
			if lc.ID == ulsCombo.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\t%.2f%s\n", lc.LimitState, lc.ID, lc.Description, lc.Factored(a, cat), marker)
		}
		for _, lc := range ec2.SLSCombinations {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%.2f\n", lc.LimitState, lc.ID, lc.Description, lc.Factored(a, cat))
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing ULS Combination: %s (%s)\n", ulsCombo.ID, ulsCombo.Description)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════════════╗\n")
	fmt.Printf("  ║  ULS DESIGN VALUE      = %.2f\n", uls)
	fmt.Printf("  ║  SLS QUASI-PERMANENT   = %.2f\n", ec2.QuasiPermanent(a, cat))
	fmt.Printf("  ╚═══════════════════════════════════════════╝\n")
	fmt.Println()
}
