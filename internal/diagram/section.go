// Package diagram draws cross-section sketches: a text rendering for the
// terminal and a gonum/plot export for reports.
package diagram

import (
	"errors"

	"github.com/alexiusacademia/gorcd/internal/ec2"
	"github.com/alexiusacademia/gorcd/internal/geometry"
	"github.com/alexiusacademia/gorcd/internal/project"
	"github.com/alexiusacademia/gorcd/internal/rebar"
)

// Bar is one reinforcing bar in section coordinates (Y up from the
// bottom face).
type Bar struct {
	X        float64
	Y        float64
	Diameter float64
}

// SectionData holds everything needed to draw a section
type SectionData struct {
	Title string

	Outline []geometry.Point // Y up, origin at bottom left
	Width   float64          // mm
	Depth   float64          // mm

	Bars []Bar

	// Flexure results, zero when not calculated
	NeutralAxisDepth float64 // x, from the compression face (mm)
	EffectiveDepth   float64 // d (mm)
	Hogging          bool
	AsProvided       float64 // mm²
	AsRequired       float64 // mm²
	YieldStrain      float64 // fyd / Es
}

// HasNeutralAxis reports whether flexure results are available.
func (s SectionData) HasNeutralAxis() bool {
	return s.NeutralAxisDepth > 0
}

// NeutralAxisY is the height of the neutral axis above the bottom face.
func (s SectionData) NeutralAxisY() float64 {
	if s.Hogging {
		return s.NeutralAxisDepth
	}
	return s.Depth - s.NeutralAxisDepth
}

// TensionSteelY is the height of the tension steel centroid above the
// bottom face.
func (s SectionData) TensionSteelY() float64 {
	if s.Hogging {
		return s.EffectiveDepth
	}
	return s.Depth - s.EffectiveDepth
}

// SteelStrain is εs = εcu3·(d − x)/x at the tension steel.
func (s SectionData) SteelStrain() float64 {
	if !s.HasNeutralAxis() {
		return 0
	}
	return ec2.EpsilonCU3 * (s.EffectiveDepth - s.NeutralAxisDepth) / s.NeutralAxisDepth
}

// inCompression reports whether height y lies in the compression zone.
func (s SectionData) inCompression(y float64) bool {
	if !s.HasNeutralAxis() {
		return false
	}
	if s.Hogging {
		return y < s.NeutralAxisY()
	}
	return y > s.NeutralAxisY()
}

// FromProject lays out the bars of a project's section. Flexure results
// are included when the project has been calculated.
func FromProject(p *project.Project) (SectionData, error) {
	if p.Shape == nil || p.Reinforcement == nil {
		return SectionData{}, errors.New("project needs a section and reinforcement to draw")
	}

	data := SectionData{
		Title:   p.Name,
		Outline: p.Shape.Outline(),
		Width:   p.Shape.Width(),
		Depth:   p.Shape.Depth(),

		YieldStrain: p.Params.Fyd() / ec2.Es,
	}

	switch r := p.Reinforcement.(type) {
	case *rebar.BeamReinforcement:
		data.Bars = beamBars(p, r)
	case *rebar.SlabReinforcement:
		data.Bars = slabBars(p, r, data.Width, data.Depth)
	}

	if f := p.Results().Flexure; f != nil {
		data.Hogging = p.Hogging()
		data.NeutralAxisDepth = f.NeutralAxisDepth
		data.EffectiveDepth = f.EffectiveDepth
		data.AsProvided = f.AsProvided
		data.AsRequired = f.AsRequired
	}

	return data, nil
}

// webLeft returns the x coordinate of the web's left face and the web width.
func webLeft(s geometry.Shape) (float64, float64) {
	f, ok := geometry.FlangeOf(s)
	if !ok {
		return 0, s.Width()
	}
	if s.Kind() == geometry.KindT {
		return (f.Bf - f.Bw) / 2, f.Bw
	}
	return 0, f.Bw
}

func beamBars(p *project.Project, r *rebar.BeamReinforcement) []Bar {
	left, width := webLeft(p.Shape)
	side := p.Params.CoverSide
	link := 0.0
	if r.Layout != nil {
		side, link = r.Layout.SideCover, r.Layout.LinkDiameter
	} else if p.Links != nil {
		link = p.Links.Diameter
	}
	depth := p.Shape.Depth()

	var bars []Bar
	for _, face := range []rebar.Face{rebar.Top, rebar.Bottom} {
		rows := r.Top.Rows
		if face == rebar.Bottom {
			rows = r.Bottom.Rows
		}
		bases := r.RowBases(face, p.Params.Cover(face), link)
		for i, row := range rows {
			n := len(row)
			start := left + side + link + row[0]/2
			end := left + width - side - link - row[n-1]/2
			for j, d := range row {
				x := (start + end) / 2
				if n > 1 {
					x = start + float64(j)*(end-start)/float64(n-1)
				}
				y := bases[i] + d/2
				if face == rebar.Top {
					y = depth - y
				}
				bars = append(bars, Bar{X: x, Y: y, Diameter: d})
			}
		}
	}
	return bars
}

func slabBars(p *project.Project, r *rebar.SlabReinforcement, width, depth float64) []Bar {
	var bars []Bar
	for _, face := range []rebar.Face{rebar.Top, rebar.Bottom} {
		layers := r.Top.Layers
		if face == rebar.Bottom {
			layers = r.Bottom.Layers
		}
		bases := r.LayerBases(face, p.Params.Cover(face), 0)
		for i, l := range layers {
			pitch := l.BarSpacing()
			k := 0
			for x := pitch / 2; x < width; x += pitch {
				d := l.Diameter
				if l.AdditionalDiameter > 0 && k%2 == 1 {
					d = l.AdditionalDiameter
				}
				y := bases[i] + d/2
				if face == rebar.Top {
					y = depth - y
				}
				bars = append(bars, Bar{X: x, Y: y, Diameter: d})
				k++
			}
		}
	}
	return bars
}
