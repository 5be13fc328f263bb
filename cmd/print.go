package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/alexiusacademia/gorcd/internal/calc"
	"github.com/alexiusacademia/gorcd/internal/project"
)

func banner(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("          %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

func heading(title string) {
	fmt.Println(title)
	fmt.Println("───────────────────────────────────────────────────────────────")
}

func passFail(pass bool) string {
	if pass {
		return color.GreenString("PASS")
	}
	return color.RedString("FAIL")
}

func status(ok bool, message string) {
	mark := color.GreenString("✓")
	if !ok {
		mark = color.RedString("✗")
	}
	fmt.Printf("  %s %s\n", mark, message)
}

func printFlexure(f *calc.FlexureResult, unit string) {
	heading("FLEXURE:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Effective depth (d):\t%.1f mm\n", f.EffectiveDepth)
	fmt.Fprintf(w, "  K = M/(b·d²·fck):\t%.4f\n", f.K)
	fmt.Fprintf(w, "  K':\t%.4f\n", f.KPrime)
	fmt.Fprintf(w, "  Lever arm (z):\t%.1f mm\n", f.LeverArm)
	fmt.Fprintf(w, "  Neutral axis (x):\t%.1f mm\n", f.NeutralAxisDepth)
	if f.IsFlangedWeb {
		fmt.Fprintf(w, "  Flange outstand moment:\t%.2f kNm\n", f.FlangeMoment)
	}
	fmt.Fprintf(w, "  As,min:\t%.1f mm²\n", f.AsMin)
	fmt.Fprintf(w, "  As,max:\t%.1f mm²\n", f.AsMax)
	fmt.Fprintf(w, "  As,req:\t%.1f mm²\n", f.AsRequired)
	fmt.Fprintf(w, "  As,prov:\t%.1f mm²\n", f.AsProvided)
	if f.IsDoublyReinforced {
		fmt.Fprintf(w, "  d2:\t%.1f mm\n", f.CompressionDepth)
		fmt.Fprintf(w, "  As2,req:\t%.1f mm²\n", f.AscRequired)
		fmt.Fprintf(w, "  As2,prov:\t%.1f mm²\n", f.AscProvided)
	}
	fmt.Fprintf(w, "  Moment capacity:\t%.2f %s\n", f.Capacity, unit)
	w.Flush()
	status(f.IsAdequate, f.Message)
	fmt.Println()
}

func printShear(s *calc.ShearResult, unit string) {
	heading("SHEAR:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Lever arm (z = 0.9d):\t%.1f mm\n", s.LeverArm)
	fmt.Fprintf(w, "  VRd,c:\t%.2f %s\n", s.VRdC, unit)
	if s.VRdMax > 0 {
		fmt.Fprintf(w, "  ν1:\t%.3f\n", s.Nu1)
		fmt.Fprintf(w, "  cot θ:\t%.3f\n", s.CotTheta)
		fmt.Fprintf(w, "  VRd,max:\t%.2f %s\n", s.VRdMax, unit)
		fmt.Fprintf(w, "  VRd,s:\t%.2f %s\n", s.VRdS, unit)
		fmt.Fprintf(w, "  Asw/s provided:\t%.1f mm²/m\n", s.AswPerMetre)
		fmt.Fprintf(w, "  Required link spacing:\t%.1f mm\n", s.RequiredSpacing)
		fmt.Fprintf(w, "  Maximum link spacing:\t%.1f mm\n", s.MaxSpacing)
		fmt.Fprintf(w, "  ρw (min):\t%.5f (%.5f)\n", s.LinkRatio, s.MinLinkRatio)
	}
	fmt.Fprintf(w, "  Shear capacity:\t%.2f %s\n", s.Capacity, unit)
	w.Flush()
	status(s.IsAdequate, s.Message)
	fmt.Println()
}

func printCracking(c *calc.CrackingResult) {
	heading("CRACKING:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Cover to bar (c):\t%.1f mm\n", c.Cover)
	fmt.Fprintf(w, "  Spacing limit 5(c + φ/2):\t%.1f mm\n", c.SpacingLimit)
	fmt.Fprintf(w, "  Steel stress (σs):\t%.1f MPa\n", c.SteelStress)
	fmt.Fprintf(w, "  Ac,eff:\t%.0f mm²\n", c.EffectiveTensionArea)
	fmt.Fprintf(w, "  ρp,eff:\t%.5f\n", c.Rho)
	fmt.Fprintf(w, "  αe:\t%.3f\n", c.AlphaE)
	fmt.Fprintf(w, "  εsm − εcm:\t%.6f\n", c.StrainDifference)
	fmt.Fprintf(w, "  sr,max:\t%.1f mm\n", c.CrackSpacing)
	fmt.Fprintf(w, "  wk:\t%.3f mm (limit %.2f mm)\n", c.CrackWidth, c.Limit)
	w.Flush()
	status(c.IsAdequate, c.Message)
	fmt.Println()
}

func printMessages(title string, messages []string) {
	if len(messages) == 0 {
		return
	}
	heading(title)
	for _, m := range messages {
		fmt.Printf("  %s %s\n", color.YellowString("!"), m)
	}
	fmt.Println()
}

func printChecks(checks []project.Check) {
	heading("SUMMARY:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Check\tAction\tCapacity / Limit\tResult\n")
	fmt.Fprintf(w, "  ─────\t──────\t────────────────\t──────\n")
	for _, c := range checks {
		fmt.Fprintf(w, "  %s\t%.2f %s\t%.2f %s\t%s\n", c.Name, c.Value, c.Unit, c.Limit, c.Unit, passFail(c.Pass))
	}
	w.Flush()
	fmt.Println()
}
