package ec2

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Category holds the EN 1990 Table A1.1 combination factors for one class
// of variable action.
type Category struct {
	Code        string
	Description string
	Psi0        float64
	Psi1        float64
	Psi2        float64
}

// Categories of imposed, snow and wind actions (UK National Annex)
var Categories = map[string]Category{
	"A":    {Code: "A", Description: "Domestic, residential", Psi0: 0.7, Psi1: 0.5, Psi2: 0.3},
	"B":    {Code: "B", Description: "Office", Psi0: 0.7, Psi1: 0.5, Psi2: 0.3},
	"C":    {Code: "C", Description: "Congregation areas", Psi0: 0.7, Psi1: 0.7, Psi2: 0.6},
	"D":    {Code: "D", Description: "Shopping areas", Psi0: 0.7, Psi1: 0.7, Psi2: 0.6},
	"E":    {Code: "E", Description: "Storage areas", Psi0: 1.0, Psi1: 0.9, Psi2: 0.8},
	"F":    {Code: "F", Description: "Traffic, vehicle weight <= 30 kN", Psi0: 0.7, Psi1: 0.7, Psi2: 0.6},
	"G":    {Code: "G", Description: "Traffic, 30 kN < vehicle weight <= 160 kN", Psi0: 0.7, Psi1: 0.5, Psi2: 0.3},
	"H":    {Code: "H", Description: "Roofs", Psi0: 0.7, Psi1: 0.0, Psi2: 0.0},
	"SNOW": {Code: "SNOW", Description: "Snow, altitude <= 1000 m", Psi0: 0.5, Psi1: 0.2, Psi2: 0.0},
	"WIND": {Code: "WIND", Description: "Wind", Psi0: 0.5, Psi1: 0.2, Psi2: 0.0},
}

// LookupCategory finds a category by code, case-insensitively.
func LookupCategory(code string) (Category, error) {
	c, ok := Categories[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Category{}, fmt.Errorf("unknown action category %q", code)
	}
	return c, nil
}

// CategoryCodes returns the category codes in display order.
func CategoryCodes() []string {
	out := make([]string, 0, len(Categories))
	for code := range Categories {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Psi selects which combination factor applies to the leading variable
// action.
type Psi int

const (
	PsiNone Psi = iota
	Psi0
	Psi1
	Psi2
)

// LimitState tags a combination as ultimate or serviceability.
type LimitState string

const (
	ULS LimitState = "ULS"
	SLS LimitState = "SLS"
)

// LoadCombination represents an EN 1990 combination of one permanent and
// one leading variable action.
type LoadCombination struct {
	ID          string
	Description string
	LimitState  LimitState
	Permanent   float64 // factor on Gk
	Variable    float64 // factor on Qk before ψ
	Psi         Psi
}

// ULSCombinations are the STR combinations of Table A1.2(B).
var ULSCombinations = []LoadCombination{
	{
		ID:          "6.10",
		Description: "1.35Gk + 1.5Qk",
		LimitState:  ULS,
		Permanent:   1.35,
		Variable:    1.5,
	},
	{
		ID:          "6.10a",
		Description: "1.35Gk + 1.5ψ0Qk",
		LimitState:  ULS,
		Permanent:   1.35,
		Variable:    1.5,
		Psi:         Psi0,
	},
	{
		ID:          "6.10b",
		Description: "0.925 x 1.35Gk + 1.5Qk",
		LimitState:  ULS,
		Permanent:   0.925 * 1.35,
		Variable:    1.5,
	},
}

// SLSCombinations are the serviceability combinations of Section 6.5.3.
var SLSCombinations = []LoadCombination{
	{
		ID:          "characteristic",
		Description: "Gk + Qk",
		LimitState:  SLS,
		Permanent:   1.0,
		Variable:    1.0,
	},
	{
		ID:          "frequent",
		Description: "Gk + ψ1Qk",
		LimitState:  SLS,
		Permanent:   1.0,
		Variable:    1.0,
		Psi:         Psi1,
	},
	{
		ID:          "quasi-permanent",
		Description: "Gk + ψ2Qk",
		LimitState:  SLS,
		Permanent:   1.0,
		Variable:    1.0,
		Psi:         Psi2,
	},
}

// CharacteristicActions holds unfactored action effects (kNm or kN).
type CharacteristicActions struct {
	Permanent float64 // Gk
	Variable  float64 // Qk
}

// Factored calculates the design action effect for a combination.
func (lc LoadCombination) Factored(a CharacteristicActions, cat Category) float64 {
	psi := 1.0
	switch lc.Psi {
	case Psi0:
		psi = cat.Psi0
	case Psi1:
		psi = cat.Psi1
	case Psi2:
		psi = cat.Psi2
	}
	return lc.Permanent*a.Permanent + lc.Variable*psi*a.Variable
}

// Governing finds the combination giving the largest absolute design
// effect.
func Governing(a CharacteristicActions, cat Category, combinations []LoadCombination) (float64, LoadCombination) {
	var governing float64
	var combo LoadCombination

	for i, lc := range combinations {
		v := lc.Factored(a, cat)
		if i == 0 || math.Abs(v) > math.Abs(governing) {
			governing = v
			combo = lc
		}
	}

	return governing, combo
}

// QuasiPermanent returns the quasi-permanent SLS effect used for crack
// control.
func QuasiPermanent(a CharacteristicActions, cat Category) float64 {
	return SLSCombinations[2].Factored(a, cat)
}
