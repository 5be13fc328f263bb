package rebar

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeam_TotalArea(t *testing.T) {
	b := NewSimpleBeam([]float64{25, 25, 25}, []float64{16, 16, 16, 16})

	assert.InDelta(t, 1472.622, b.TotalArea(Top), 0.001)
	assert.InDelta(t, 804.248, b.TotalArea(Bottom), 0.001)
}

func TestBeam_CentroidAccumulatesRows(t *testing.T) {
	b, err := NewBeam(
		BeamFace{Rows: [][]float64{{16, 16}}},
		BeamFace{Rows: [][]float64{{25, 25, 25}, {20, 20}}, Spacings: []float64{25}},
		BeamLayout{Width: 300, SideCover: 25, LinkDiameter: 10},
	)
	require.NoError(t, err)

	assert.InDelta(t, 48.0, b.Centroid(Top, 30, 10), 1e-9)
	assert.InDelta(t, 66.7056, b.Centroid(Bottom, 30, 10), 1e-4)
}

func TestBeam_SlabBarsExcludedFromCentroid(t *testing.T) {
	top := BeamFace{Rows: [][]float64{{20, 16, 16, 20}}}
	layout := BeamLayout{Width: 400, SideCover: 30, LinkDiameter: 10}

	sym, err := NewBeam(top, BeamFace{}, layout)
	require.NoError(t, err)
	require.NoError(t, sym.ShareWithSlab(2, true))
	assert.InDelta(t, 48.0, sym.Centroid(Top, 30, 10), 1e-9)

	start, err := NewBeam(top, BeamFace{}, layout)
	require.NoError(t, err)
	require.NoError(t, start.ShareWithSlab(2, false))
	assert.InDelta(t, 49.2195, start.Centroid(Top, 30, 10), 1e-4)

	// shared bars still count towards the provided area
	assert.InDelta(t, 1030.442, start.TotalArea(Top), 0.001)

	assert.True(t, errors.Is(start.ShareWithSlab(5, false), ErrInvalidLayout))
}

func TestBeam_TensileSpacingAndDiameter(t *testing.T) {
	b, err := NewBeam(
		BeamFace{Rows: [][]float64{{16, 16}}},
		BeamFace{Rows: [][]float64{{25, 20, 25}}},
		BeamLayout{Width: 300, SideCover: 25, LinkDiameter: 10},
	)
	require.NoError(t, err)

	s, err := b.MaxBarSpacingForTensileReinforcement(50)
	require.NoError(t, err)
	assert.InDelta(t, 102.5, s, 1e-9)

	d, err := b.MaxBarDiameterForTensileReinforcement(50)
	require.NoError(t, err)
	assert.Equal(t, 25.0, d)

	// hogging uses the top face
	s, err = b.MaxBarSpacingForTensileReinforcement(-50)
	require.NoError(t, err)
	assert.InDelta(t, 214.0, s, 1e-9)
}

func TestBeam_TensileSpacingRejectsRowsThatDoNotFit(t *testing.T) {
	bottom := BeamFace{Rows: [][]float64{{25, 25, 25}}}

	// 100 - 2(40 + 10) leaves nothing inside the links
	b, err := NewBeam(BeamFace{}, bottom, BeamLayout{Width: 100, SideCover: 40, LinkDiameter: 10})
	require.NoError(t, err)
	_, err = b.MaxBarSpacingForTensileReinforcement(50)
	assert.True(t, errors.Is(err, ErrInvalidLayout))

	// 30 mm clear leaves 2.5 mm between centres of 25 mm bars
	b, err = NewBeam(BeamFace{}, bottom, BeamLayout{Width: 130, SideCover: 40, LinkDiameter: 10})
	require.NoError(t, err)
	_, err = b.MaxBarSpacingForTensileReinforcement(50)
	assert.True(t, errors.Is(err, ErrInvalidLayout))

	// a single bar only needs positive clear width
	b, err = NewBeam(BeamFace{}, BeamFace{Rows: [][]float64{{25}}}, BeamLayout{Width: 130, SideCover: 40, LinkDiameter: 10})
	require.NoError(t, err)
	s, err := b.MaxBarSpacingForTensileReinforcement(50)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, s, 1e-9)
}

func TestReinforcement_ValidateLiterals(t *testing.T) {
	tests := []struct {
		name  string
		r     Reinforcement
		valid bool
	}{
		{"beam rows without spacings", &BeamReinforcement{
			Bottom: BeamFace{Rows: [][]float64{{20, 20}, {20, 20}}},
		}, false},
		{"beam slab bars beyond outer row", &BeamReinforcement{
			Top:      BeamFace{Rows: [][]float64{{16, 16}}},
			SlabBars: 3,
		}, false},
		{"beam negative side cover", &BeamReinforcement{
			Bottom: BeamFace{Rows: [][]float64{{20, 20}}},
			Layout: &BeamLayout{Width: 300, SideCover: -5, LinkDiameter: 10},
		}, false},
		{"simple beam", NewSimpleBeam([]float64{16, 16}, []float64{25, 25, 25}), true},
		{"slab zero spacing", &SlabReinforcement{
			Bottom: SlabFace{Layers: []Layer{{Diameter: 16, Spacing: 0}}},
		}, false},
		{"slab layers without spacings", &SlabReinforcement{
			Top: SlabFace{Layers: []Layer{{Diameter: 12, Spacing: 200}, {Diameter: 12, Spacing: 200}}},
		}, false},
		{"slab", &SlabReinforcement{
			Bottom: SlabFace{Layers: []Layer{{Diameter: 16, Spacing: 150}}},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrInvalidLayout), "got %v", err)
		})
	}
}

func TestSimpleBeam_SpacingQueriesFail(t *testing.T) {
	b := NewSimpleBeam([]float64{25, 25, 25}, []float64{16, 16, 16, 16})
	assert.True(t, b.Simplified())

	_, err := b.MaxBarSpacingForTensileReinforcement(10)
	assert.True(t, errors.Is(err, ErrIncompleteReinforcement))

	_, err = b.MaxBarDiameterForTensileReinforcement(10)
	assert.True(t, errors.Is(err, ErrIncompleteReinforcement))
}

func TestNewBeam_RejectsInvalidLayouts(t *testing.T) {
	layout := BeamLayout{Width: 300, SideCover: 25, LinkDiameter: 10}

	tests := []struct {
		name   string
		bottom BeamFace
	}{
		{"missing spacing", BeamFace{Rows: [][]float64{{25}, {25}}}},
		{"extra spacing", BeamFace{Rows: [][]float64{{25}}, Spacings: []float64{25}}},
		{"empty row", BeamFace{Rows: [][]float64{{}}}},
		{"zero bar", BeamFace{Rows: [][]float64{{25, 0}}}},
		{"negative spacing", BeamFace{Rows: [][]float64{{25}, {25}}, Spacings: []float64{-1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBeam(BeamFace{}, tt.bottom, layout)
			assert.True(t, errors.Is(err, ErrInvalidLayout))
		})
	}

	_, err := NewBeam(BeamFace{}, BeamFace{}, BeamLayout{})
	assert.True(t, errors.Is(err, ErrInvalidLayout))
}

func TestSlab_AreaAndCentroid(t *testing.T) {
	s, err := NewSlab(
		SlabFace{Layers: []Layer{{Diameter: 25, Spacing: 200}}},
		SlabFace{Layers: []Layer{{Diameter: 32, Spacing: 175}}},
	)
	require.NoError(t, err)

	assert.InDelta(t, 4595.701, s.TotalArea(Bottom), 0.001)
	assert.InDelta(t, 66.0, s.Centroid(Bottom, 50, 0), 1e-9)
	assert.InDelta(t, 37.5, s.Centroid(Top, 25, 0), 1e-9)

	sp, err := s.MaxBarSpacingForTensileReinforcement(600)
	require.NoError(t, err)
	assert.Equal(t, 175.0, sp)

	sp, err = s.MaxBarSpacingForTensileReinforcement(-600)
	require.NoError(t, err)
	assert.Equal(t, 200.0, sp)

	assert.Equal(t, "Top: H25@200. Bottom: H32@175.", s.Description())
}

func TestSlab_AdditionalBars(t *testing.T) {
	s, err := NewSlab(
		SlabFace{},
		SlabFace{Layers: []Layer{{Diameter: 32, AdditionalDiameter: 16, Spacing: 175}}},
	)
	require.NoError(t, err)

	assert.InDelta(t, 5744.627, s.TotalArea(Bottom), 0.001)
	assert.InDelta(t, 64.4, s.Centroid(Bottom, 50, 0), 1e-9)

	sp, err := s.MaxBarSpacingForTensileReinforcement(1)
	require.NoError(t, err)
	assert.Equal(t, 87.5, sp)

	d, err := s.MaxBarDiameterForTensileReinforcement(1)
	require.NoError(t, err)
	assert.Equal(t, 32.0, d)

	assert.Equal(t, 0.0, s.TotalArea(Top))
}

func TestSlab_MultiLayerCentroid(t *testing.T) {
	s, err := NewSlab(
		SlabFace{},
		SlabFace{
			Layers:   []Layer{{Diameter: 20, Spacing: 200}, {Diameter: 20, Spacing: 200}},
			Spacings: []float64{20},
		},
	)
	require.NoError(t, err)

	// 40 + 10 and 40 + 20 + 20 + 10
	assert.InDelta(t, 70.0, s.Centroid(Bottom, 40, 0), 1e-9)

	_, err = NewSlab(SlabFace{}, SlabFace{Layers: []Layer{{Diameter: 20, Spacing: 0}}})
	assert.True(t, errors.Is(err, ErrInvalidLayout))
}

func TestShearLinks(t *testing.T) {
	l, err := NewShearLinks(500, 10, 200, 2)
	require.NoError(t, err)

	assert.InDelta(t, 157.0796, l.Area(), 1e-4)
	assert.InDelta(t, 785.398, l.AreaPerMetre(), 1e-3)
	assert.Equal(t, "H10 links, 2 legs @ 200 mm", l.Description())

	_, err = NewShearLinks(500, 10, 200, 0)
	assert.True(t, errors.Is(err, ErrInvalidLayout))
}

func TestDescriptions(t *testing.T) {
	b, err := NewBeam(
		BeamFace{Rows: [][]float64{{16, 16}}},
		BeamFace{Rows: [][]float64{{25, 20, 25}, {16, 16}}, Spacings: []float64{25}},
		BeamLayout{Width: 300, SideCover: 25, LinkDiameter: 10},
	)
	require.NoError(t, err)
	assert.Equal(t, "Top: 2H16. Bottom: 2H25+1H20 / 2H16.", b.Description())

	s := &SlabReinforcement{Bottom: SlabFace{Layers: []Layer{{Diameter: 12, AdditionalDiameter: 10, Spacing: 150}}}}
	assert.Equal(t, "Top: none. Bottom: H12+H10@150.", s.Description())
}

func TestTensionFace(t *testing.T) {
	assert.Equal(t, Bottom, TensionFace(0))
	assert.Equal(t, Top, TensionFace(-1))
	assert.Equal(t, Top, CompressionFace(1))
	assert.Equal(t, Bottom, CompressionFace(-1))
}

func TestDocument_RoundTrip(t *testing.T) {
	beam, err := NewBeam(
		BeamFace{Rows: [][]float64{{20, 16, 16, 20}}},
		BeamFace{Rows: [][]float64{{25, 25, 25}, {20, 20}}, Spacings: []float64{25}},
		BeamLayout{Width: 300, SideCover: 25, LinkDiameter: 10},
	)
	require.NoError(t, err)
	require.NoError(t, beam.ShareWithSlab(2, true))

	slab, err := NewSlab(
		SlabFace{Layers: []Layer{{Diameter: 25, Spacing: 200}}},
		SlabFace{Layers: []Layer{{Diameter: 32, AdditionalDiameter: 16, Spacing: 175}}},
	)
	require.NoError(t, err)

	layouts := []Reinforcement{
		beam,
		slab,
		NewSimpleBeam([]float64{16, 16}, []float64{25, 25, 25}),
	}

	for _, r := range layouts {
		data, err := json.Marshal(Encode(r))
		require.NoError(t, err)

		var doc Document
		require.NoError(t, json.Unmarshal(data, &doc))

		decoded, err := doc.Decode()
		require.NoError(t, err)
		assert.Equal(t, r, decoded)
	}

	_, err = Document{Type: "mesh"}.Decode()
	assert.True(t, errors.Is(err, ErrInvalidLayout))
}

func TestRowAndLayerBases(t *testing.T) {
	b, err := NewBeam(
		BeamFace{},
		BeamFace{Rows: [][]float64{{25, 25, 25}, {20, 20}}, Spacings: []float64{25}},
		BeamLayout{Width: 300, SideCover: 25, LinkDiameter: 10},
	)
	require.NoError(t, err)
	assert.Equal(t, []float64{40, 90}, b.RowBases(Bottom, 30, 10))
	assert.Empty(t, b.RowBases(Top, 30, 10))

	s, err := NewSlab(SlabFace{}, SlabFace{
		Layers:   []Layer{{Diameter: 20, AdditionalDiameter: 12, Spacing: 200}, {Diameter: 16, Spacing: 200}},
		Spacings: []float64{20},
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{40, 80}, s.LayerBases(Bottom, 40, 0))
}
