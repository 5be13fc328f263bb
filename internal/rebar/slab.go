package rebar

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gorcd/internal/ec2"
)

// Layer is one layer of slab bars at a uniform spacing. An additional
// bar, when present, alternates with the primary bar at the same spacing.
type Layer struct {
	Diameter           float64 `json:"diameter"`                      // mm
	AdditionalDiameter float64 `json:"additional_diameter,omitempty"` // mm, 0 = none
	Spacing            float64 `json:"spacing"`                       // mm
}

// Area per metre width (mm²/m).
func (l Layer) Area() float64 {
	a := ec2.BarArea(l.Diameter)
	if l.AdditionalDiameter > 0 {
		a += ec2.BarArea(l.AdditionalDiameter)
	}
	return a * 1000 / l.Spacing
}

// BarSpacing is the centre-to-centre distance between adjacent bars of
// any size in the layer.
func (l Layer) BarSpacing() float64 {
	if l.AdditionalDiameter > 0 {
		return l.Spacing / 2
	}
	return l.Spacing
}

// Height is the depth of the layer, the larger of its two bar sizes.
func (l Layer) Height() float64 { return math.Max(l.Diameter, l.AdditionalDiameter) }

func (l Layer) mark() string {
	if l.AdditionalDiameter > 0 {
		return fmt.Sprintf("H%s+H%s@%s", barSize(l.Diameter), barSize(l.AdditionalDiameter), barSize(l.Spacing))
	}
	return fmt.Sprintf("H%s@%s", barSize(l.Diameter), barSize(l.Spacing))
}

// SlabFace lists the layers of one face, outermost first. Spacings[i] is
// the vertical clear spacing between layer i+1 and layer i.
type SlabFace struct {
	Layers   []Layer   `json:"layers"`
	Spacings []float64 `json:"spacings,omitempty"`
}

func (f SlabFace) validate(name string) error {
	if len(f.Layers) == 0 {
		if len(f.Spacings) != 0 {
			return fmt.Errorf("%w: %s face has spacings but no layers", ErrInvalidLayout, name)
		}
		return nil
	}
	if len(f.Spacings) != len(f.Layers)-1 {
		return fmt.Errorf("%w: %s face has %d layers but %d vertical spacings (want %d)",
			ErrInvalidLayout, name, len(f.Layers), len(f.Spacings), len(f.Layers)-1)
	}
	for i, l := range f.Layers {
		if l.Diameter <= 0 || l.AdditionalDiameter < 0 || l.Spacing <= 0 {
			return fmt.Errorf("%w: %s layer %d (diameter %.1f, additional %.1f, spacing %.1f)",
				ErrInvalidLayout, name, i+1, l.Diameter, l.AdditionalDiameter, l.Spacing)
		}
	}
	for i, s := range f.Spacings {
		if s < 0 {
			return fmt.Errorf("%w: %s spacing %d is negative", ErrInvalidLayout, name, i+1)
		}
	}
	return nil
}

// SlabReinforcement is the layer-based layout of a slab strip. Areas are
// per metre width.
type SlabReinforcement struct {
	Top    SlabFace `json:"top"`
	Bottom SlabFace `json:"bottom"`
}

// NewSlab creates a slab layout after checking every layer.
func NewSlab(top, bottom SlabFace) (*SlabReinforcement, error) {
	s := &SlabReinforcement{Top: top, Bottom: bottom}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks every layer and vertical spacing of both faces.
func (s *SlabReinforcement) Validate() error {
	if err := s.Top.validate("top"); err != nil {
		return err
	}
	return s.Bottom.validate("bottom")
}

func (*SlabReinforcement) isReinforcement() {}

func (s *SlabReinforcement) face(f Face) SlabFace {
	if f == Top {
		return s.Top
	}
	return s.Bottom
}

func (s *SlabReinforcement) TotalArea(f Face) float64 {
	var total float64
	for _, l := range s.face(f).Layers {
		total += l.Area()
	}
	return total
}

// Centroid places the primary and additional bars of each layer on the
// same base line, so a smaller additional bar sits nearer the face.
func (s *SlabReinforcement) Centroid(f Face, cover, transverseBarDiameter float64) float64 {
	layers := s.face(f).Layers
	var groups []placed

	for i, base := range s.LayerBases(f, cover, transverseBarDiameter) {
		l := layers[i]
		groups = append(groups, placed{
			area:     ec2.BarArea(l.Diameter) * 1000 / l.Spacing,
			diameter: l.Diameter,
			distance: base + l.Diameter/2,
		})
		if l.AdditionalDiameter > 0 {
			groups = append(groups, placed{
				area:     ec2.BarArea(l.AdditionalDiameter) * 1000 / l.Spacing,
				diameter: l.AdditionalDiameter,
				distance: base + l.AdditionalDiameter/2,
			})
		}
	}

	return weightedCentroid(groups)
}

// LayerBases returns the distance from the face to the outer edge of
// each layer.
func (s *SlabReinforcement) LayerBases(f Face, cover, transverseBarDiameter float64) []float64 {
	face := s.face(f)
	bases := make([]float64, len(face.Layers))

	edge := cover + transverseBarDiameter
	for i, l := range face.Layers {
		base := edge
		if i > 0 {
			base += face.Spacings[i-1]
		}
		bases[i] = base
		edge = base + l.Height()
	}
	return bases
}

func (s *SlabReinforcement) MaxBarSpacingForTensileReinforcement(slsMoment float64) (float64, error) {
	layers := s.face(TensionFace(slsMoment)).Layers
	if len(layers) == 0 {
		return 0, nil
	}
	return layers[0].BarSpacing(), nil
}

func (s *SlabReinforcement) MaxBarDiameterForTensileReinforcement(slsMoment float64) (float64, error) {
	layers := s.face(TensionFace(slsMoment)).Layers
	if len(layers) == 0 {
		return 0, nil
	}
	return layers[0].Height(), nil
}

// Description lists the layers of each face, e.g.
// "Top: H25@200. Bottom: H32@175 / H16@300."
func (s *SlabReinforcement) Description() string {
	describe := func(face SlabFace) string {
		if len(face.Layers) == 0 {
			return "none"
		}
		parts := make([]string, 0, len(face.Layers))
		for _, l := range face.Layers {
			parts = append(parts, l.mark())
		}
		return strings.Join(parts, " / ")
	}
	return fmt.Sprintf("Top: %s. Bottom: %s.", describe(s.Top), describe(s.Bottom))
}
