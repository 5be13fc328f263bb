package ec2

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// EN 1992-1-1 material constants

const (
	// Modulus of elasticity for reinforcing steel (Section 3.2.7)
	Es = 200000.0 // MPa

	// Concrete strength coefficients (UK National Annex)
	AlphaCC = 0.85 // long-term effects on compressive strength, flexure
	AlphaCT = 1.0  // long-term effects on tensile strength

	// Highest characteristic cylinder strength covered by the simplified
	// rectangular stress block used throughout this package
	MaxFck = 50.0 // MPa

	// Steel density for bar mass per metre
	SteelDensity = 7850.0 // kg/m³
)

// ErrUnsupportedGrade is returned for concrete grades outside the table,
// including every grade stronger than C50/60.
var ErrUnsupportedGrade = errors.New("unsupported concrete grade")

// ConcreteGrade holds the Table 3.1 properties of one strength class.
// All values are precomputed; strains are absolute (0.0035, not 3.5‰).
type ConcreteGrade struct {
	Tag string

	Fck     float64 // characteristic cylinder strength (MPa)
	FckCube float64 // characteristic cube strength (MPa)
	Fcm     float64 // mean cylinder strength (MPa)
	Fctm    float64 // mean axial tensile strength (MPa)
	Fctk005 float64 // 5% fractile tensile strength (MPa)
	Fctk095 float64 // 95% fractile tensile strength (MPa)
	Ecm     float64 // secant modulus of elasticity (MPa)

	EpsC1  float64
	EpsCu1 float64
	EpsC2  float64
	EpsCu2 float64
	N      float64 // parabola exponent
	EpsC3  float64
	EpsCu3 float64
}

// newGrade fills the strain limits that are common to all grades up to
// C50/60.
func newGrade(tag string, fck, fckCube, fcm, fctm, fctk005, fctk095, ecmGPa, epsC1 float64) ConcreteGrade {
	return ConcreteGrade{
		Tag:     tag,
		Fck:     fck,
		FckCube: fckCube,
		Fcm:     fcm,
		Fctm:    fctm,
		Fctk005: fctk005,
		Fctk095: fctk095,
		Ecm:     ecmGPa * 1000,
		EpsC1:   epsC1 / 1000,
		EpsCu1:  0.0035,
		EpsC2:   0.0020,
		EpsCu2:  0.0035,
		N:       2.0,
		EpsC3:   0.00175,
		EpsCu3:  0.0035,
	}
}

// grades is Table 3.1 plus the C28/35 and C32/40 classes of BS 8500.
var grades = map[string]ConcreteGrade{
	"C12/15": newGrade("C12/15", 12, 15, 20, 1.6, 1.1, 2.0, 27, 1.8),
	"C16/20": newGrade("C16/20", 16, 20, 24, 1.9, 1.3, 2.5, 29, 1.9),
	"C20/25": newGrade("C20/25", 20, 25, 28, 2.2, 1.5, 2.9, 30, 2.0),
	"C25/30": newGrade("C25/30", 25, 30, 33, 2.6, 1.8, 3.3, 31, 2.1),
	"C28/35": newGrade("C28/35", 28, 35, 36, 2.8, 1.9, 3.6, 32, 2.1),
	"C30/37": newGrade("C30/37", 30, 37, 38, 2.9, 2.0, 3.8, 33, 2.2),
	"C32/40": newGrade("C32/40", 32, 40, 40, 3.0, 2.1, 3.9, 33, 2.2),
	"C35/45": newGrade("C35/45", 35, 45, 43, 3.2, 2.2, 4.2, 34, 2.25),
	"C40/50": newGrade("C40/50", 40, 50, 48, 3.5, 2.5, 4.6, 35, 2.3),
	"C45/55": newGrade("C45/55", 45, 55, 53, 3.8, 2.7, 4.9, 36, 2.4),
	"C50/60": newGrade("C50/60", 50, 60, 58, 4.1, 2.9, 5.3, 37, 2.45),
}

// Grade looks up a concrete grade by its tag, e.g. "C32/40".
func Grade(tag string) (ConcreteGrade, error) {
	key := strings.ToUpper(strings.TrimSpace(tag))
	g, ok := grades[key]
	if !ok {
		return ConcreteGrade{}, fmt.Errorf("%w: %q (supported up to C50/60)", ErrUnsupportedGrade, tag)
	}
	return g, nil
}

// MustGrade is Grade for tags known at compile time.
func MustGrade(tag string) ConcreteGrade {
	g, err := Grade(tag)
	if err != nil {
		panic(err)
	}
	return g
}

// Grades returns all supported grades ordered by strength.
func Grades() []ConcreteGrade {
	out := make([]ConcreteGrade, 0, len(grades))
	for _, g := range grades {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Fck < out[j].Fck })
	return out
}

// Supported reports whether the grade is inside the scope of the
// simplified design formulas.
func (g ConcreteGrade) Supported() bool {
	return g.Tag != "" && g.Fck > 0 && g.Fck <= MaxFck
}

// Bar holds the section properties of one reinforcing bar size.
type Bar struct {
	Diameter     float64 // mm
	Area         float64 // mm²
	MassPerMetre float64 // kg/m
}

func newBar(d float64) Bar {
	area := math.Pi / 4 * d * d
	return Bar{
		Diameter:     d,
		Area:         area,
		MassPerMetre: area * 1e-6 * SteelDensity,
	}
}

// Bars is the table of standard bar diameters.
var Bars = map[int]Bar{
	6:  newBar(6),
	8:  newBar(8),
	10: newBar(10),
	12: newBar(12),
	16: newBar(16),
	20: newBar(20),
	25: newBar(25),
	32: newBar(32),
	40: newBar(40),
}

// StandardDiameters returns the tabulated bar sizes in ascending order.
func StandardDiameters() []int {
	out := make([]int, 0, len(Bars))
	for d := range Bars {
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

// BarArea returns the cross-sectional area of one bar. Non-standard sizes
// fall back to π/4·d².
func BarArea(d float64) float64 {
	if d <= 0 {
		return 0
	}
	if d == math.Trunc(d) {
		if b, ok := Bars[int(d)]; ok {
			return b.Area
		}
	}
	return math.Pi / 4 * d * d
}

// IsStandardBar reports whether d is a tabulated bar size.
func IsStandardBar(d float64) bool {
	if d != math.Trunc(d) {
		return false
	}
	_, ok := Bars[int(d)]
	return ok
}
