// Package validation checks reinforcement layouts before and after a
// section calculation.
//
// Validators never fail for design problems: every violation becomes a
// message, and messages come back in a fixed order (horizontal spacing,
// vertical spacing, thickness) so repeated runs on the same input report
// the same list.
package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gorcd/internal/calc"
	"github.com/alexiusacademia/gorcd/internal/geometry"
	"github.com/alexiusacademia/gorcd/internal/params"
	"github.com/alexiusacademia/gorcd/internal/rebar"
)

// Clear spacing between bars, Section 8.2 (2): k1 = 20 mm, k2 = 5 mm
const (
	MinClearSpacing    = 20.0 // mm
	AggregateAllowance = 5.0  // mm
)

// Error wraps a list of validation messages for callers that want to
// treat any violation as a failure.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, " ")
}

// AsError returns nil for an empty message list.
func AsError(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return &Error{Messages: messages}
}

// MinimumSpacing is max(20, dg + 5, largest bar diameter).
func MinimumSpacing(aggregateSize float64, diameters ...float64) float64 {
	s := math.Max(MinClearSpacing, aggregateSize+AggregateAllowance)
	for _, d := range diameters {
		s = math.Max(s, d)
	}
	return s
}

// Ordinal formats n as 1st, 2nd, 3rd, 4th, ..., 11th, 21st.
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

func horizontalMessage(n int, face rebar.Face, group string, minimum float64) string {
	return fmt.Sprintf("Reinforcement spacing for the %s %s %s is less than minimum required - %.0f mm.",
		Ordinal(n), face, group, minimum)
}

func verticalMessage(n int, face rebar.Face, group string, minimum float64) string {
	return fmt.Sprintf("Vertical spacing between the %s and %s %s %ss is less than minimum required - %.0f mm.",
		Ordinal(n), Ordinal(n+1), face, group, minimum)
}

func thicknessMessage(element string, minimum float64) string {
	return fmt.Sprintf("Invalid %s thickness. Minimum %s thickness: %.0f mm.", element, element, minimum)
}

// ValidateSlab checks bar spacing within each layer, the clear gap
// between layers and the slab thickness.
func ValidateSlab(thickness float64, r *rebar.SlabReinforcement, p params.DesignParameters) []string {
	var messages []string
	faces := []struct {
		face rebar.Face
		data rebar.SlabFace
	}{{rebar.Top, r.Top}, {rebar.Bottom, r.Bottom}}

	for _, f := range faces {
		for i, l := range f.data.Layers {
			minimum := MinimumSpacing(p.AggregateSize, l.Diameter, l.AdditionalDiameter)
			if slabClearSpacing(l) < minimum {
				messages = append(messages, horizontalMessage(i+1, f.face, "layer", minimum))
			}
		}
	}

	for _, f := range faces {
		for i := 1; i < len(f.data.Layers); i++ {
			minimum := MinimumSpacing(p.AggregateSize, f.data.Layers[i-1].Height(), f.data.Layers[i].Height())
			if f.data.Spacings[i-1] < minimum {
				messages = append(messages, verticalMessage(i, f.face, "layer", minimum))
			}
		}
	}

	required := p.CoverTop + p.CoverBottom +
		slabZone(r.Top) + slabZone(r.Bottom) +
		separation(p.AggregateSize, innermostSlab(r.Top), innermostSlab(r.Bottom))
	if thickness < required {
		messages = append(messages, thicknessMessage("slab", required))
	}

	return messages
}

// slabClearSpacing is s − φ, or (s − φ − φa)/2 with an additional bar
// between each pair of primary bars.
func slabClearSpacing(l rebar.Layer) float64 {
	if l.AdditionalDiameter > 0 {
		return 0.5*l.Spacing - 0.5*(l.Diameter+l.AdditionalDiameter)
	}
	return l.Spacing - l.Diameter
}

// slabZone is the depth occupied by a face's layers and the gaps between
// them.
func slabZone(f rebar.SlabFace) float64 {
	var h float64
	for _, l := range f.Layers {
		h += l.Height()
	}
	for _, s := range f.Spacings {
		h += s
	}
	return h
}

func innermostSlab(f rebar.SlabFace) float64 {
	if len(f.Layers) == 0 {
		return 0
	}
	return f.Layers[len(f.Layers)-1].Height()
}

// separation is the minimum clear gap between the innermost top and
// bottom bars. A face without bars needs no gap.
func separation(aggregateSize, top, bottom float64) float64 {
	if top == 0 || bottom == 0 {
		return 0
	}
	return MinimumSpacing(aggregateSize, top, bottom)
}

// ValidateBeam checks bar spacing within each row, the clear gap between
// rows and the section depth. Horizontal spacing needs the beam layout;
// beams built with rebar.NewSimpleBeam skip it.
func ValidateBeam(shape geometry.Shape, r *rebar.BeamReinforcement, p params.DesignParameters) []string {
	var messages []string
	faces := []struct {
		face rebar.Face
		data rebar.BeamFace
	}{{rebar.Top, r.Top}, {rebar.Bottom, r.Bottom}}

	if r.Layout != nil {
		available := r.Layout.Available()
		for _, f := range faces {
			for i, row := range f.data.Rows {
				if len(row) < 2 {
					continue
				}
				minimum := MinimumSpacing(p.AggregateSize, row...)
				if beamClearSpacing(available, row) < minimum {
					messages = append(messages, horizontalMessage(i+1, f.face, "row", minimum))
				}
			}
		}
	}

	for _, f := range faces {
		for i := 1; i < len(f.data.Rows); i++ {
			minimum := MinimumSpacing(p.AggregateSize, maxOf(f.data.Rows[i-1]), maxOf(f.data.Rows[i]))
			if f.data.Spacings[i-1] < minimum {
				messages = append(messages, verticalMessage(i, f.face, "row", minimum))
			}
		}
	}

	var link float64
	if r.Layout != nil {
		link = r.Layout.LinkDiameter
	}
	required := p.CoverTop + p.CoverBottom + 2*link +
		beamZone(r.Top) + beamZone(r.Bottom) +
		separation(p.AggregateSize, innermostBeam(r.Top), innermostBeam(r.Bottom))
	if shape.Depth() < required {
		messages = append(messages, thicknessMessage("beam", required))
	}

	return messages
}

// beamClearSpacing spreads the clear width inside the links evenly
// between the bars of a row.
func beamClearSpacing(available float64, row []float64) float64 {
	var total float64
	for _, d := range row {
		total += d
	}
	return (available - total) / float64(len(row)-1)
}

func beamZone(f rebar.BeamFace) float64 {
	var h float64
	for _, row := range f.Rows {
		h += maxOf(row)
	}
	for _, s := range f.Spacings {
		h += s
	}
	return h
}

func innermostBeam(f rebar.BeamFace) float64 {
	if len(f.Rows) == 0 {
		return 0
	}
	return maxOf(f.Rows[len(f.Rows)-1])
}

func maxOf(values []float64) float64 {
	m := 0.0
	for _, v := range values {
		m = math.Max(m, v)
	}
	return m
}

// PostCalculationValidate flags conditions that only show up once the
// flexure check has run. links may be nil.
func PostCalculationValidate(flexure *calc.FlexureResult, r rebar.Reinforcement, links *rebar.ShearLinks) []string {
	var messages []string
	if flexure == nil {
		return messages
	}

	if flexure.AscRequired > 0 {
		messages = append(messages, fmt.Sprintf(
			"Section is doubly reinforced. Required compression reinforcement: %.0f mm².", flexure.AscRequired))
	}

	for _, face := range []rebar.Face{rebar.Top, rebar.Bottom} {
		if area := r.TotalArea(face); area > flexure.AsMax {
			messages = append(messages, fmt.Sprintf(
				"%s reinforcement %.0f mm² exceeds the maximum allowed - %.0f mm².",
				capitalize(face.String()), area, flexure.AsMax))
		}
	}

	if links != nil {
		if maximum := calc.MaxLinkSpacing(flexure.EffectiveDepth); links.Spacing > maximum {
			messages = append(messages, fmt.Sprintf(
				"Link spacing exceeds the maximum allowed - %.0f mm.", maximum))
		}
	}

	return messages
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
