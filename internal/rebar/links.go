package rebar

import (
	"fmt"

	"github.com/alexiusacademia/gorcd/internal/ec2"
)

// ShearLinks describes the vertical links of a beam.
type ShearLinks struct {
	Fyk      float64 `json:"fyk"`      // MPa
	Diameter float64 `json:"diameter"` // mm
	Spacing  float64 `json:"spacing"`  // mm, along the member
	Legs     int     `json:"legs"`
}

// NewShearLinks validates and creates a link arrangement.
func NewShearLinks(fyk, diameter, spacing float64, legs int) (ShearLinks, error) {
	l := ShearLinks{Fyk: fyk, Diameter: diameter, Spacing: spacing, Legs: legs}
	if err := l.Validate(); err != nil {
		return ShearLinks{}, err
	}
	return l, nil
}

// Validate checks that every link property is positive.
func (l ShearLinks) Validate() error {
	if l.Fyk <= 0 || l.Diameter <= 0 || l.Spacing <= 0 || l.Legs < 1 {
		return fmt.Errorf("%w: links fyk %.0f, diameter %.1f, spacing %.1f, %d legs",
			ErrInvalidLayout, l.Fyk, l.Diameter, l.Spacing, l.Legs)
	}
	return nil
}

// Area of all legs at one link position (mm²).
func (l ShearLinks) Area() float64 {
	return float64(l.Legs) * ec2.BarArea(l.Diameter)
}

// AreaPerMetre is legs·π/4·φ²·1000/s (mm²/m).
func (l ShearLinks) AreaPerMetre() float64 {
	return l.Area() * 1000 / l.Spacing
}

func (l ShearLinks) Description() string {
	return fmt.Sprintf("H%s links, %d legs @ %s mm", barSize(l.Diameter), l.Legs, barSize(l.Spacing))
}
