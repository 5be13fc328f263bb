package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/gorcd/internal/ec2"
)

// Character grid used by DrawSection
const (
	asciiColumns = 40
	asciiRows    = 20
)

// DrawSection renders the section outline, bars and compression zone as
// text. The neutral axis row is marked when results are available.
func DrawSection(data SectionData) string {
	var sb strings.Builder

	cols, rows := asciiGrid(data)
	cellW := data.Width / float64(cols)
	cellH := data.Depth / float64(rows)

	inside := func(r, c int) bool {
		if r < 0 || r >= rows || c < 0 || c >= cols {
			return false
		}
		x := (float64(c) + 0.5) * cellW
		y := data.Depth - (float64(r)+0.5)*cellH
		minX, maxX := findWidthAtY(data.Outline, y, 0, data.Width)
		return x >= minX && x <= maxX
	}

	bars := make(map[[2]int]bool, len(data.Bars))
	for _, b := range data.Bars {
		r := int((data.Depth - b.Y) / cellH)
		c := int(b.X / cellW)
		bars[[2]int{min(r, rows-1), min(c, cols-1)}] = true
	}

	naRow := -1
	if data.HasNeutralAxis() {
		naRow = min(int((data.Depth-data.NeutralAxisY())/cellH), rows-1)
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  SECTION  %.0f x %.0f mm\n", data.Width, data.Depth))
	sb.WriteString("  ───────\n")

	for r := 0; r < rows; r++ {
		sb.WriteString("  ")
		for c := 0; c < cols; c++ {
			switch {
			case !inside(r, c):
				sb.WriteString(" ")
			case bars[[2]int{r, c}]:
				sb.WriteString("●")
			case !inside(r-1, c) || !inside(r+1, c):
				sb.WriteString("─")
			case !inside(r, c-1) || !inside(r, c+1):
				sb.WriteString("│")
			case data.inCompression(data.Depth - (float64(r)+0.5)*cellH):
				sb.WriteString("░")
			default:
				sb.WriteString(" ")
			}
		}
		if r == naRow {
			sb.WriteString(" ◄─ N.A.")
		}
		sb.WriteString("\n")
	}

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ●   = Reinforcement\n")
	if data.HasNeutralAxis() {
		sb.WriteString("  ░░░ = Compression zone\n")
		face := "top"
		if data.Hogging {
			face = "bottom"
		}
		sb.WriteString(fmt.Sprintf("  N.A. = Neutral axis at x = %.1f mm from %s\n", data.NeutralAxisDepth, face))
	}

	return sb.String()
}

// asciiGrid keeps the drawing roughly to scale within the character grid.
// Terminal cells are about twice as tall as they are wide.
func asciiGrid(data SectionData) (int, int) {
	cols, rows := asciiColumns, asciiRows
	if data.Width <= 0 || data.Depth <= 0 {
		return cols, rows
	}
	aspect := data.Depth / data.Width
	r := int(math.Round(float64(cols) * aspect / 2))
	if r < 6 {
		r = 6
	}
	if r < rows {
		rows = r
	}
	return cols, rows
}

// DrawStrain renders the linear strain profile from the compression face
// to the tension steel.
func DrawStrain(data SectionData) string {
	var sb strings.Builder
	if !data.HasNeutralAxis() {
		return "  No flexure results to draw.\n"
	}

	height := 15
	width := 40

	steelStrain := data.SteelStrain()
	maxStrain := math.Max(ec2.EpsilonCU3, math.Max(steelStrain, data.YieldStrain))
	scale := float64(width-10) / maxStrain

	sb.WriteString("\n")
	sb.WriteString("  STRAIN DISTRIBUTION\n")
	sb.WriteString("  ───────────────────\n\n")

	x := data.NeutralAxisDepth
	naLine := int(math.Round(x / data.Depth * float64(height)))
	steelLine := int(math.Round(data.EffectiveDepth / data.Depth * float64(height)))

	compression, tension := "Top", "Bottom"
	if data.Hogging {
		compression, tension = tension, compression
	}

	for i := 0; i <= height; i++ {
		// depth from the compression face
		depth := float64(i) / float64(height) * data.Depth
		strain := ec2.EpsilonCU3 * math.Abs(x-depth) / x
		bar := strings.Repeat("█", max(int(strain*scale), 0))

		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  %-6s │%s▶ εcu3=%.4f\n", compression, bar, ec2.EpsilonCU3))
		case i == naLine:
			sb.WriteString(fmt.Sprintf("  N.A.   ├%s (ε=0)\n", strings.Repeat("─", 5)))
		case i == steelLine:
			mark := ""
			if steelStrain >= data.YieldStrain {
				mark = " (yields)"
			}
			sb.WriteString(fmt.Sprintf("  Steel  │%s▶ εs=%.4f%s\n", bar, steelStrain, mark))
		case i == height:
			sb.WriteString(fmt.Sprintf("  %-6s │%s\n", tension, bar))
		default:
			sb.WriteString(fmt.Sprintf("         │%s\n", bar))
		}
	}

	yieldBar := int(data.YieldStrain * scale)
	sb.WriteString(fmt.Sprintf("\n  εy = %.4f %s (yield strain)\n", data.YieldStrain, strings.Repeat("─", yieldBar)+"┤"))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
