package rebar

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gorcd/internal/ec2"
)

// BeamFace lists the rows of bars on one face, outermost first. Each row
// is the list of bar diameters in it. Spacings[i] is the vertical clear
// spacing between row i+1 and row i.
type BeamFace struct {
	Rows     [][]float64 `json:"rows"`
	Spacings []float64   `json:"spacings,omitempty"`
}

// BeamLayout holds the horizontal placement data that spacing checks
// need.
type BeamLayout struct {
	Width        float64 `json:"width"`         // width available to the bars, normally the web width (mm)
	SideCover    float64 `json:"side_cover"`    // mm
	LinkDiameter float64 `json:"link_diameter"` // mm
}

// Available is the clear width inside the links.
func (l BeamLayout) Available() float64 {
	return l.Width - 2*(l.SideCover+l.LinkDiameter)
}

// BeamReinforcement is the row-based layout of a beam.
type BeamReinforcement struct {
	Top    BeamFace `json:"top"`
	Bottom BeamFace `json:"bottom"`

	// SlabBars is the number of outermost top-row bars already counted in
	// an adjoining slab. They are left out of the top centroid. When
	// SymmetricSlabBars is set they are taken half from each end of the
	// row, otherwise from the start of the row.
	SlabBars          int  `json:"slab_bars,omitempty"`
	SymmetricSlabBars bool `json:"symmetric_slab_bars,omitempty"`

	// Layout is nil for reinforcement built with NewSimpleBeam.
	Layout *BeamLayout `json:"layout,omitempty"`
}

// NewBeam creates a fully described beam layout.
func NewBeam(top, bottom BeamFace, layout BeamLayout) (*BeamReinforcement, error) {
	b := &BeamReinforcement{Top: top, Bottom: bottom, Layout: &layout}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// NewSimpleBeam is the single-row convenience form. Areas and centroids
// work; spacing and bar size queries do not.
func NewSimpleBeam(top, bottom []float64) *BeamReinforcement {
	b := &BeamReinforcement{}
	if len(top) > 0 {
		b.Top.Rows = [][]float64{top}
	}
	if len(bottom) > 0 {
		b.Bottom.Rows = [][]float64{bottom}
	}
	return b
}

func (f BeamFace) validate(name string) error {
	if len(f.Rows) == 0 {
		if len(f.Spacings) != 0 {
			return fmt.Errorf("%w: %s face has spacings but no rows", ErrInvalidLayout, name)
		}
		return nil
	}
	if len(f.Spacings) != len(f.Rows)-1 {
		return fmt.Errorf("%w: %s face has %d rows but %d vertical spacings (want %d)",
			ErrInvalidLayout, name, len(f.Rows), len(f.Spacings), len(f.Rows)-1)
	}
	for i, row := range f.Rows {
		if len(row) == 0 {
			return fmt.Errorf("%w: %s row %d is empty", ErrInvalidLayout, name, i+1)
		}
		for _, d := range row {
			if d <= 0 {
				return fmt.Errorf("%w: %s row %d has bar diameter %.1f", ErrInvalidLayout, name, i+1, d)
			}
		}
	}
	for i, s := range f.Spacings {
		if s < 0 {
			return fmt.Errorf("%w: %s spacing %d is negative", ErrInvalidLayout, name, i+1)
		}
	}
	return nil
}

// Validate checks both faces, the layout and the shared slab bars. Layouts
// assembled without NewBeam must pass it before any calculation.
func (b *BeamReinforcement) Validate() error {
	if err := b.Top.validate("top"); err != nil {
		return err
	}
	if err := b.Bottom.validate("bottom"); err != nil {
		return err
	}
	if l := b.Layout; l != nil && (l.Width <= 0 || l.SideCover < 0 || l.LinkDiameter < 0) {
		return fmt.Errorf("%w: beam layout width %.1f, side cover %.1f, link %.1f",
			ErrInvalidLayout, l.Width, l.SideCover, l.LinkDiameter)
	}
	outer := 0
	if len(b.Top.Rows) > 0 {
		outer = len(b.Top.Rows[0])
	}
	if b.SlabBars < 0 || b.SlabBars > outer {
		return fmt.Errorf("%w: %d slab bars but the outer top row has %d", ErrInvalidLayout, b.SlabBars, outer)
	}
	return nil
}

// ShareWithSlab marks n outermost top bars as already counted in an
// adjoining slab.
func (b *BeamReinforcement) ShareWithSlab(n int, symmetric bool) error {
	outer := 0
	if len(b.Top.Rows) > 0 {
		outer = len(b.Top.Rows[0])
	}
	if n < 0 || n > outer {
		return fmt.Errorf("%w: %d slab bars but the outer top row has %d", ErrInvalidLayout, n, outer)
	}
	b.SlabBars = n
	b.SymmetricSlabBars = symmetric
	return nil
}

func (*BeamReinforcement) isReinforcement() {}

// Simplified reports whether the layout lacks placement data.
func (b *BeamReinforcement) Simplified() bool { return b.Layout == nil }

func (b *BeamReinforcement) face(f Face) BeamFace {
	if f == Top {
		return b.Top
	}
	return b.Bottom
}

// TotalArea sums π/4·d² over every bar on the face.
func (b *BeamReinforcement) TotalArea(f Face) float64 {
	var total float64
	for _, row := range b.face(f).Rows {
		for _, d := range row {
			total += ec2.BarArea(d)
		}
	}
	return total
}

// outerRow returns the outermost row of a face without the bars shared
// with an adjoining slab.
func (b *BeamReinforcement) outerRow(f Face) []float64 {
	rows := b.face(f).Rows
	if len(rows) == 0 {
		return nil
	}
	row := rows[0]
	n := b.SlabBars
	if f != Top || n <= 0 {
		return row
	}
	if n >= len(row) {
		return nil
	}
	if b.SymmetricSlabBars {
		head := n / 2
		return row[head : len(row)-(n-head)]
	}
	return row[n:]
}

func (b *BeamReinforcement) Centroid(f Face, cover, transverseBarDiameter float64) float64 {
	var groups []placed
	for i, base := range b.RowBases(f, cover, transverseBarDiameter) {
		for _, d := range b.centroidRow(f, i) {
			groups = append(groups, placed{area: ec2.BarArea(d), diameter: d, distance: base + d/2})
		}
	}
	return weightedCentroid(groups)
}

// RowBases returns, for each row of a face, the distance from the face to
// the outer edge of the row. A bar of diameter d in row i is centred at
// RowBases[i] + d/2.
func (b *BeamReinforcement) RowBases(f Face, cover, transverseBarDiameter float64) []float64 {
	face := b.face(f)
	bases := make([]float64, len(face.Rows))

	edge := cover + transverseBarDiameter
	for i := range face.Rows {
		base := edge
		if i > 0 {
			base += face.Spacings[i-1]
		}
		bases[i] = base

		far := base
		for _, d := range b.centroidRow(f, i) {
			far = math.Max(far, base+d)
		}
		edge = far
	}
	return bases
}

// centroidRow is row i of a face as it counts towards the centroid.
func (b *BeamReinforcement) centroidRow(f Face, i int) []float64 {
	if i == 0 {
		return b.outerRow(f)
	}
	return b.face(f).Rows[i]
}

// MaxBarSpacingForTensileReinforcement returns the centre-to-centre
// spacing of the outermost tension row.
func (b *BeamReinforcement) MaxBarSpacingForTensileReinforcement(slsMoment float64) (float64, error) {
	if b.Layout == nil {
		return 0, fmt.Errorf("%w: beam bar spacing needs a layout", ErrIncompleteReinforcement)
	}
	rows := b.face(TensionFace(slsMoment)).Rows
	if len(rows) == 0 {
		return 0, nil
	}
	row := rows[0]
	available := b.Layout.Available()
	if available <= 0 {
		return 0, fmt.Errorf("%w: no clear width inside the links (%.1f mm)", ErrInvalidLayout, available)
	}
	if len(row) == 1 {
		return available, nil
	}
	spacing := (available - row[0]/2 - row[len(row)-1]/2) / float64(len(row)-1)
	if spacing < maxOf(row) {
		return 0, fmt.Errorf("%w: %s does not fit in %.1f mm inside the links", ErrInvalidLayout, rowMark(row), available)
	}
	return spacing, nil
}

func (b *BeamReinforcement) MaxBarDiameterForTensileReinforcement(slsMoment float64) (float64, error) {
	if b.Layout == nil {
		return 0, fmt.Errorf("%w: beam bar size needs a layout", ErrIncompleteReinforcement)
	}
	rows := b.face(TensionFace(slsMoment)).Rows
	if len(rows) == 0 {
		return 0, nil
	}
	return maxOf(rows[0]), nil
}

// Description lists each face as rows of bar marks, e.g.
// "Top: 3H25. Bottom: 4H16 / 2H16."
func (b *BeamReinforcement) Description() string {
	describe := func(face BeamFace) string {
		if len(face.Rows) == 0 {
			return "none"
		}
		parts := make([]string, 0, len(face.Rows))
		for _, row := range face.Rows {
			parts = append(parts, rowMark(row))
		}
		return strings.Join(parts, " / ")
	}
	s := fmt.Sprintf("Top: %s. Bottom: %s.", describe(b.Top), describe(b.Bottom))
	if b.SlabBars > 0 {
		s += fmt.Sprintf(" %d top bars shared with slab.", b.SlabBars)
	}
	return s
}

// rowMark groups a row by diameter in order of first appearance,
// e.g. "2H25+1H20".
func rowMark(row []float64) string {
	var order []float64
	counts := map[float64]int{}
	for _, d := range row {
		if counts[d] == 0 {
			order = append(order, d)
		}
		counts[d]++
	}
	parts := make([]string, 0, len(order))
	for _, d := range order {
		parts = append(parts, fmt.Sprintf("%dH%s", counts[d], barSize(d)))
	}
	return strings.Join(parts, "+")
}

func barSize(d float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.1f", d), "0"), ".")
}
