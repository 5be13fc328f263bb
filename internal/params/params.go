// Package params holds the design parameters that apply to a whole
// section check: covers, material partial factors, moment redistribution
// and crack control settings.
package params

import (
	"errors"
	"fmt"
)

// Limits on user supplied parameters
const (
	MinRedistributionRatio = 0.7
	MaxRedistributionRatio = 1.0
	MinCrackWidthLimit     = 0.05 // mm
	MaxCrackWidthLimit     = 0.5  // mm
	MaxCover               = 100  // mm
	MaxAggregateSize       = 63   // mm
)

// ErrInvalidParameter is wrapped by every parameter validation failure.
var ErrInvalidParameter = errors.New("invalid design parameter")

// Face selects the top or bottom face of a section.
type Face int

const (
	Bottom Face = iota
	Top
)

func (f Face) String() string {
	if f == Top {
		return "top"
	}
	return "bottom"
}

// DesignParameters is an immutable value; build it with New or Default.
type DesignParameters struct {
	CoverTop    float64 `json:"cover_top" yaml:"cover_top"`       // mm
	CoverBottom float64 `json:"cover_bottom" yaml:"cover_bottom"` // mm
	CoverSide   float64 `json:"cover_side" yaml:"cover_side"`     // mm

	Fyk           float64 `json:"fyk" yaml:"fyk"`                       // MPa
	AggregateSize float64 `json:"aggregate_size" yaml:"aggregate_size"` // mm

	GammaC float64 `json:"gamma_c" yaml:"gamma_c"`
	GammaS float64 `json:"gamma_s" yaml:"gamma_s"`

	// RedistributionRatio δ is the ratio of redistributed moment to the
	// elastic moment. RecommendedRedistribution replaces the δ-based K'
	// with the 0.168 limit recommended for UK practice.
	RedistributionRatio       float64 `json:"redistribution_ratio" yaml:"redistribution_ratio"`
	RecommendedRedistribution bool    `json:"recommended_redistribution" yaml:"recommended_redistribution"`

	CrackWidthLimit float64 `json:"crack_width_limit" yaml:"crack_width_limit"` // mm
	CheckCracking   bool    `json:"check_cracking" yaml:"check_cracking"`
}

// Default returns the parameters of a typical internal UK element.
func Default() DesignParameters {
	return DesignParameters{
		CoverTop:            25,
		CoverBottom:         25,
		CoverSide:           25,
		Fyk:                 500,
		AggregateSize:       20,
		GammaC:              1.5,
		GammaS:              1.15,
		RedistributionRatio: 1.0,
		CrackWidthLimit:     0.3,
		CheckCracking:       true,
	}
}

// New validates p and returns it unchanged when every field is in range.
func New(p DesignParameters) (DesignParameters, error) {
	if err := p.Validate(); err != nil {
		return DesignParameters{}, err
	}
	return p, nil
}

// Validate checks every field against its allowed range.
func (p DesignParameters) Validate() error {
	covers := []struct {
		name  string
		value float64
	}{
		{"top cover", p.CoverTop},
		{"bottom cover", p.CoverBottom},
		{"side cover", p.CoverSide},
	}
	for _, c := range covers {
		if c.value < 0 || c.value > MaxCover {
			return fmt.Errorf("%w: %s %.1f mm outside 0-%d mm", ErrInvalidParameter, c.name, c.value, MaxCover)
		}
	}
	if p.Fyk <= 0 {
		return fmt.Errorf("%w: fyk must be positive, got %.1f", ErrInvalidParameter, p.Fyk)
	}
	if p.AggregateSize <= 0 || p.AggregateSize > MaxAggregateSize {
		return fmt.Errorf("%w: aggregate size %.1f mm outside 0-%d mm", ErrInvalidParameter, p.AggregateSize, MaxAggregateSize)
	}
	if p.GammaC <= 0 || p.GammaS <= 0 {
		return fmt.Errorf("%w: partial factors must be positive (γc=%.2f, γs=%.2f)", ErrInvalidParameter, p.GammaC, p.GammaS)
	}
	if p.RedistributionRatio < MinRedistributionRatio || p.RedistributionRatio > MaxRedistributionRatio {
		return fmt.Errorf("%w: redistribution ratio %.3f outside %.1f-%.1f", ErrInvalidParameter, p.RedistributionRatio, MinRedistributionRatio, MaxRedistributionRatio)
	}
	if p.CrackWidthLimit < MinCrackWidthLimit || p.CrackWidthLimit > MaxCrackWidthLimit {
		return fmt.Errorf("%w: crack width limit %.3f mm outside %.2f-%.1f mm", ErrInvalidParameter, p.CrackWidthLimit, MinCrackWidthLimit, MaxCrackWidthLimit)
	}
	return nil
}

// Fyd is the design yield strength of reinforcement.
func (p DesignParameters) Fyd() float64 {
	return p.Fyk / p.GammaS
}

// Fcd is the design compressive strength for a given fck and αcc.
func (p DesignParameters) Fcd(fck, alphaCC float64) float64 {
	return alphaCC * fck / p.GammaC
}

// Cover returns the nominal cover on the given face.
func (p DesignParameters) Cover(f Face) float64 {
	if f == Top {
		return p.CoverTop
	}
	return p.CoverBottom
}
