package geometry

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangle_Properties(t *testing.T) {
	r, err := NewRectangle(300, 500)
	require.NoError(t, err)

	assert.Equal(t, 150000.0, r.Area())
	assert.Equal(t, 250.0, r.Centroid())
	assert.InDelta(t, 3.125e9, r.SecondMomentOfArea(), 1)
	assert.Equal(t, 300.0, r.WidthInCompressionZone(-50))
	assert.Equal(t, 300.0, r.WidthInTensionZone(50))
	assert.Equal(t, 75000.0, r.UncrackedTensionArea(10))
	assert.Equal(t, 0.4, r.Kc(-10))
	assert.InDelta(t, 0.86, r.KFactor(10), 1e-12)
	assert.Equal(t, "Rectangular section: 300 mm wide x 500 mm deep.", r.Description())
	assert.Len(t, r.Outline(), 4)
}

func TestSlabStrip_IsPerMetre(t *testing.T) {
	s, err := NewSlabStrip(300)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, s.Width())
	assert.Equal(t, 300000.0, s.Area())
	assert.InDelta(t, 89166.667, s.AreaInTensionZonePriorCracking(50, 260, 32.5), 0.001)
	assert.Equal(t, 1.0, s.KFactor(10))
	assert.Equal(t, "Slab strip: 1000 mm wide x 300 mm thick.", s.Description())
}

func TestEffectiveTensionHeight(t *testing.T) {
	// 2.5(h-d) governs
	assert.InDelta(t, 62.5, EffectiveTensionHeight(500, 475, 100), 1e-9)
	// (h-x)/3 governs
	assert.InDelta(t, 89.1667, EffectiveTensionHeight(300, 260, 32.5), 1e-4)
	// h/2 governs
	assert.InDelta(t, 100, EffectiveTensionHeight(200, 20, 0), 1e-9)
}

func TestTShape_Properties(t *testing.T) {
	ts, err := NewTShape(300, 1000, 1500, 250)
	require.NoError(t, err)

	assert.Equal(t, 600000.0, ts.Area())
	assert.InDelta(t, 312.5, ts.Centroid(), 1e-9)
	assert.InDelta(t, 47656250000, ts.SecondMomentOfArea(), 1)
	assert.Equal(t, 300.0, ts.ShearWidth())

	assert.Equal(t, 1500.0, ts.WidthInCompressionZone(100))
	assert.Equal(t, 300.0, ts.WidthInCompressionZone(-100))
	assert.Equal(t, 300.0, ts.WidthInTensionZone(100))
	assert.Equal(t, 1500.0, ts.WidthInTensionZone(-100))

	assert.InDelta(t, 206250, ts.UncrackedTensionArea(100), 1e-6)
	assert.InDelta(t, 393750, ts.UncrackedTensionArea(-100), 1e-6)

	assert.InDelta(t, 0.685, ts.KFactor(100), 1e-12)
	assert.InDelta(t, 0.65, ts.KFactor(-100), 1e-12)
	assert.Equal(t, 0.4, ts.Kc(100))
	assert.InDelta(t, 0.5143, ts.Kc(-100), 1e-4)

	assert.False(t, ts.IsElasticNeutralAxisInFlange())
	assert.Equal(t,
		"T section: 750 mm downstand x 300 mm web width + flange 1500 mm wide x 250 mm thick.",
		ts.Description())
	assert.Len(t, ts.Outline(), 8)
}

func TestFlange_NeutralAxisClassification(t *testing.T) {
	wide, err := NewTShape(200, 400, 2000, 150)
	require.NoError(t, err)

	assert.True(t, wide.IsElasticNeutralAxisInFlange())
	assert.Equal(t, 0.5, wide.Kc(-50))

	// neutral axis in the web, 0.9·Fcr/Act works out at 0.468
	shallow, err := NewTShape(300, 400, 600, 150)
	require.NoError(t, err)
	assert.False(t, shallow.IsElasticNeutralAxisInFlange())
	assert.Equal(t, 0.5, shallow.Kc(-50))

	assert.True(t, wide.IsPlasticNeutralAxisInFlange(100, 350, 300))
	assert.False(t, wide.IsPlasticNeutralAxisInFlange(-100, 350, 300))
	assert.False(t, wide.IsPlasticNeutralAxisInFlange(100, 350, 150))
}

func TestFlangeOf(t *testing.T) {
	l, err := NewLShape(250, 600, 800, 200)
	require.NoError(t, err)

	f, ok := FlangeOf(l)
	require.True(t, ok)
	assert.Equal(t, 200.0, f.Hf)
	assert.Equal(t, "L section: 400 mm downstand x 250 mm web width + flange 800 mm wide x 200 mm thick.", l.Description())

	_, ok = FlangeOf(Rectangle{W: 300, H: 500})
	assert.False(t, ok)
	_, ok = FlangeOf(SlabStrip{Thickness: 200})
	assert.False(t, ok)
}

func TestNewShapes_RejectInvalid(t *testing.T) {
	_, err := NewTShape(300, 200, 1000, 250)
	assert.True(t, errors.Is(err, ErrInvalidShape))

	_, err = NewLShape(500, 600, 400, 150)
	assert.True(t, errors.Is(err, ErrInvalidShape))

	_, err = NewRectangle(0, 500)
	assert.True(t, errors.Is(err, ErrInvalidShape))

	_, err = NewSlabStrip(-1)
	assert.True(t, errors.Is(err, ErrInvalidShape))
}

func TestDocument_RoundTrip(t *testing.T) {
	shapes := []Shape{
		Rectangle{W: 300, H: 600},
		SlabStrip{Thickness: 250},
		TShape{Flange: Flange{Bw: 300, H: 1000, Bf: 1500, Hf: 250}},
		LShape{Flange: Flange{Bw: 250, H: 600, Bf: 800, Hf: 200}},
	}

	for _, s := range shapes {
		data, err := json.Marshal(Encode(s))
		require.NoError(t, err)

		var doc Document
		require.NoError(t, json.Unmarshal(data, &doc))

		decoded, err := doc.Decode()
		require.NoError(t, err)
		assert.Equal(t, s, decoded)
	}

	_, err := Document{Type: "circle"}.Decode()
	assert.True(t, errors.Is(err, ErrInvalidShape))
}
