package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcd/internal/ec2"
)

var gradesShowBars bool

var gradesCmd = &cobra.Command{
	Use:   "grades",
	Short: "List supported concrete grades and bar sizes",
	Long: `List the concrete strength classes of EN 1992-1-1 Table 3.1 that
the simplified stress block covers (up to C50/60), and optionally the
standard reinforcing bar sizes.

Examples:
  gorcd grades
  gorcd grades --bars`,
	Run: runGrades,
}

func init() {
	rootCmd.AddCommand(gradesCmd)

	gradesCmd.Flags().BoolVarP(&gradesShowBars, "bars", "b", false, "Also list standard bar sizes")
}

func runGrades(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          CONCRETE STRENGTH CLASSES (EN 1992-1-1 Table 3.1)")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Grade\tfck\tfck,cube\tfcm\tfctm\tEcm\tεcu3\n")
	fmt.Fprintf(w, "  ─────\t───\t────────\t───\t────\t───\t────\n")
	for _, g := range ec2.Grades() {
		fmt.Fprintf(w, "  %s\t%.0f\t%.0f\t%.0f\t%.1f\t%.0f\t%.4f\n",
			g.Tag, g.Fck, g.FckCube, g.Fcm, g.Fctm, g.Ecm, g.EpsCu3)
	}
	w.Flush()
	fmt.Println()
	fmt.Println("  Strengths in MPa.")

	if gradesShowBars {
		fmt.Println()
		fmt.Println("STANDARD BARS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Size\tArea (mm²)\tMass (kg/m)\n")
		fmt.Fprintf(w, "  ────\t──────────\t───────────\n")
		for _, d := range ec2.StandardDiameters() {
			b := ec2.Bars[d]
			fmt.Fprintf(w, "  H%d\t%.1f\t%.3f\n", d, b.Area, b.MassPerMetre)
		}
		w.Flush()
	}
	fmt.Println()
}
