package ec2

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKFactor_Boundaries(t *testing.T) {
	tests := []struct {
		size float64
		want float64
	}{
		{100, 1.0},
		{300, 1.0},
		{600, 0.79},
		{800, 0.65},
		{1000, 0.65},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, KFactor(tt.size), 1e-12, "size %.0f", tt.size)
	}
}

func TestKFactor_ContinuousAndMonotonic(t *testing.T) {
	prev := KFactor(0)
	for size := 1.0; size <= 1200; size++ {
		k := KFactor(size)
		assert.LessOrEqual(t, k, prev, "k must not increase at %.0f mm", size)
		assert.Less(t, math.Abs(k-prev), 0.001, "jump at %.0f mm", size)
		prev = k
	}
}

func TestGrade_Lookup(t *testing.T) {
	g, err := Grade("c40/50")
	require.NoError(t, err)
	assert.Equal(t, "C40/50", g.Tag)
	assert.Equal(t, 40.0, g.Fck)
	assert.Equal(t, 3.5, g.Fctm)
	assert.Equal(t, 35000.0, g.Ecm)
	assert.Equal(t, 0.0035, g.EpsCu2)
	assert.True(t, g.Supported())
}

func TestGrade_RejectsHighStrength(t *testing.T) {
	for _, tag := range []string{"C55/67", "C90/105", "", "B35"} {
		_, err := Grade(tag)
		assert.True(t, errors.Is(err, ErrUnsupportedGrade), "tag %q", tag)
	}
}

func TestGrades_Ordered(t *testing.T) {
	all := Grades()
	require.Len(t, all, 11)
	assert.Equal(t, "C12/15", all[0].Tag)
	assert.Equal(t, "C50/60", all[len(all)-1].Tag)
	for i := 1; i < len(all); i++ {
		assert.Greater(t, all[i].Fck, all[i-1].Fck)
	}
}

func TestBarArea(t *testing.T) {
	assert.InDelta(t, 490.874, BarArea(25), 0.001)
	assert.InDelta(t, 201.062, BarArea(16), 0.001)
	assert.InDelta(t, math.Pi/4*14*14, BarArea(14), 1e-9)
	assert.Equal(t, 0.0, BarArea(0))
	assert.True(t, IsStandardBar(32))
	assert.False(t, IsStandardBar(14))
	assert.InDelta(t, 3.853, Bars[25].MassPerMetre, 0.001)
}

func TestGoverning_ULS(t *testing.T) {
	a := CharacteristicActions{Permanent: 100, Variable: 50}
	cat := Categories["B"]

	mu, combo := Governing(a, cat, ULSCombinations)
	assert.Equal(t, "6.10", combo.ID)
	assert.InDelta(t, 210.0, mu, 1e-9)

	uls := map[string]float64{}
	for _, lc := range ULSCombinations {
		uls[lc.ID] = lc.Factored(a, cat)
	}
	assert.InDelta(t, 187.5, uls["6.10a"], 1e-9)
	assert.InDelta(t, 199.875, uls["6.10b"], 1e-9)
}

func TestQuasiPermanent(t *testing.T) {
	a := CharacteristicActions{Permanent: -80, Variable: -40}
	assert.InDelta(t, -92.0, QuasiPermanent(a, Categories["A"]), 1e-9)

	m, combo := Governing(a, Categories["A"], SLSCombinations)
	assert.Equal(t, "characteristic", combo.ID)
	assert.InDelta(t, -120.0, m, 1e-9)
}

func TestLookupCategory(t *testing.T) {
	c, err := LookupCategory(" snow ")
	require.NoError(t, err)
	assert.Equal(t, 0.5, c.Psi0)

	_, err = LookupCategory("Z")
	assert.Error(t, err)
}
