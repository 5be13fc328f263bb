package diagram

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gorcd/internal/ec2"
	"github.com/alexiusacademia/gorcd/internal/geometry"
)

var (
	compressionFill = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	compressionEdge = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	steelColor      = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	axisColor       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// ExportSection writes the section with its bars, compression zone and
// neutral axis to an image. The format follows the file extension
// (.png, .svg or .pdf); anything else gets ".png" appended.
func ExportSection(data SectionData, filename string) error {
	if len(data.Outline) < 3 {
		return errors.New("section outline needs at least three points")
	}

	p := plot.New()
	p.Title.Text = "Section"
	if data.Title != "" {
		p.Title.Text = data.Title
	}
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	outline := make(plotter.XYs, len(data.Outline)+1)
	for i, v := range data.Outline {
		outline[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	outline[len(data.Outline)] = outline[0]

	sectionLine, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	sectionLine.LineStyle.Width = vg.Points(2)
	sectionLine.LineStyle.Color = color.Black
	p.Add(sectionLine)

	var labels []label

	if data.HasNeutralAxis() {
		naY := data.NeutralAxisY()
		if zone := clipSection(data.Outline, naY, !data.Hogging); len(zone) >= 3 {
			block, err := plotter.NewPolygon(zone)
			if err != nil {
				return err
			}
			block.Color = compressionFill
			block.LineStyle.Color = compressionEdge
			p.Add(block)
		}

		naLine, err := plotter.NewLine(plotter.XYs{
			{X: -20, Y: naY},
			{X: data.Width + 20, Y: naY},
		})
		if err != nil {
			return err
		}
		naLine.LineStyle.Width = vg.Points(1.5)
		naLine.LineStyle.Color = axisColor
		naLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(naLine)

		labels = append(labels,
			label{data.Width + 30, naY, "N.A."},
			label{data.Width + 30, naY + (data.Depth-naY)/2, fmt.Sprintf("x=%.1fmm", data.NeutralAxisDepth)},
			label{data.Width / 2, data.TensionSteelY() - 25, fmt.Sprintf("As=%.0fmm²", data.AsProvided)},
		)
		if data.Hogging {
			labels[1].y = naY / 2
			labels[2].y = data.TensionSteelY() + 25
		}
	}

	if len(data.Bars) > 0 {
		pts := make(plotter.XYs, len(data.Bars))
		for i, b := range data.Bars {
			pts[i] = plotter.XY{X: b.X, Y: b.Y}
		}
		steel, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		steel.GlyphStyle.Color = steelColor
		steel.GlyphStyle.Radius = vg.Points(4)
		steel.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(steel)
	}

	for _, lbl := range labels {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: lbl.x, Y: lbl.y}},
			Labels: []string{lbl.text},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportStrain writes the strain profile over the section depth.
func ExportStrain(data SectionData, filename string) error {
	if !data.HasNeutralAxis() {
		return errors.New("no flexure results to plot")
	}

	p := plot.New()
	p.Title.Text = "Strain Distribution"
	p.X.Label.Text = "Strain"
	p.Y.Label.Text = "Depth from compression face (mm)"

	// depth increases downward
	p.Y.Min = data.Depth
	p.Y.Max = 0

	es := data.SteelStrain()
	key := plotter.XYs{
		{X: ec2.EpsilonCU3, Y: 0},
		{X: 0, Y: data.NeutralAxisDepth},
		{X: -es, Y: data.EffectiveDepth},
	}

	strainLine, err := plotter.NewLine(key)
	if err != nil {
		return err
	}
	strainLine.LineStyle.Width = vg.Points(2)
	strainLine.LineStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	p.Add(strainLine)

	zeroLine, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: 0, Y: data.Depth},
	})
	if err != nil {
		return err
	}
	zeroLine.LineStyle.Width = vg.Points(1)
	zeroLine.LineStyle.Color = color.Gray{Y: 128}
	zeroLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zeroLine)

	if data.YieldStrain > 0 {
		for _, ey := range []float64{data.YieldStrain, -data.YieldStrain} {
			yield, err := plotter.NewLine(plotter.XYs{
				{X: ey, Y: 0},
				{X: ey, Y: data.Depth},
			})
			if err != nil {
				return err
			}
			yield.LineStyle.Color = color.RGBA{R: 255, G: 165, B: 0, A: 255}
			yield.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
			p.Add(yield)
		}
	}

	points, err := plotter.NewScatter(key)
	if err != nil {
		return err
	}
	points.GlyphStyle.Color = axisColor
	points.GlyphStyle.Radius = vg.Points(4)
	p.Add(points)

	return save(p, 6*vg.Inch, 8*vg.Inch, filename)
}

type label struct {
	x, y float64
	text string
}

func save(p *plot.Plot, width, height vg.Length, filename string) error {
	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	return p.Save(width, height, filename)
}

// clipSection keeps the part of the polygon above clipY (or below it when
// above is false).
func clipSection(vertices []geometry.Point, clipY float64, above bool) plotter.XYs {
	if len(vertices) < 3 {
		return nil
	}

	keep := func(v geometry.Point) bool {
		if above {
			return v.Y >= clipY
		}
		return v.Y <= clipY
	}

	var result plotter.XYs
	n := len(vertices)
	for i := 0; i < n; i++ {
		curr := vertices[i]
		next := vertices[(i+1)%n]

		currIn, nextIn := keep(curr), keep(next)
		if currIn {
			result = append(result, plotter.XY{X: curr.X, Y: curr.Y})
		}

		if currIn != nextIn {
			t := (clipY - curr.Y) / (next.Y - curr.Y)
			result = append(result, plotter.XY{X: curr.X + t*(next.X-curr.X), Y: clipY})
		}
	}

	return result
}

// findWidthAtY finds the min and max X at a given Y level
func findWidthAtY(vertices []geometry.Point, y, defaultMin, defaultMax float64) (float64, float64) {
	if len(vertices) < 3 {
		return defaultMin, defaultMax
	}

	var intersections []float64
	n := len(vertices)

	for i := 0; i < n; i++ {
		curr := vertices[i]
		next := vertices[(i+1)%n]

		// edge crosses this level
		if (curr.Y <= y && next.Y > y) || (next.Y <= y && curr.Y > y) {
			t := (y - curr.Y) / (next.Y - curr.Y)
			intersections = append(intersections, curr.X+t*(next.X-curr.X))
		}
	}

	if len(intersections) < 2 {
		return defaultMin, defaultMax
	}

	minX, maxX := intersections[0], intersections[0]
	for _, x := range intersections {
		minX = min(minX, x)
		maxX = max(maxX, x)
	}

	return minX, maxX
}
