// Package rebar models longitudinal reinforcement layouts and shear links.
//
// Beam reinforcement is arranged in rows of individual bars; slab
// reinforcement in layers of bars at a spacing, expressed per metre
// width. Rows and layers are listed from the face inward.
package rebar

import (
	"errors"
	"math"

	"github.com/alexiusacademia/gorcd/internal/params"
)

// Face aliases params.Face so callers need a single import.
type Face = params.Face

const (
	Top    = params.Top
	Bottom = params.Bottom
)

var (
	// ErrIncompleteReinforcement is returned when a layout lacks the data
	// an operation needs, such as spacing queries on a simplified beam.
	ErrIncompleteReinforcement = errors.New("reinforcement layout is incomplete")

	// ErrInvalidLayout is returned for inconsistent row, layer or spacing
	// definitions.
	ErrInvalidLayout = errors.New("invalid reinforcement layout")
)

// Reinforcement is the common contract of beam and slab layouts.
type Reinforcement interface {
	// TotalArea sums the bar areas on one face (mm², or mm²/m for slabs).
	TotalArea(face Face) float64

	// Centroid returns the area-weighted distance of the face's bars from
	// that face, including cover and any transverse bar outside them.
	Centroid(face Face, cover, transverseBarDiameter float64) float64

	MaxBarSpacingForTensileReinforcement(slsMoment float64) (float64, error)
	MaxBarDiameterForTensileReinforcement(slsMoment float64) (float64, error)

	Description() string

	// Validate reports an ErrInvalidLayout for malformed rows or layers.
	Validate() error

	isReinforcement()
}

// TensionFace is the bottom face for sagging and the top face for hogging.
func TensionFace(m float64) Face {
	if m >= 0 {
		return Bottom
	}
	return Top
}

// CompressionFace is the face opposite the tension face.
func CompressionFace(m float64) Face {
	if m >= 0 {
		return Top
	}
	return Bottom
}

// placed is one group of identical bars at a known distance from the face.
type placed struct {
	area     float64 // total area of the group
	diameter float64
	distance float64 // bar centre from the face
}

func weightedCentroid(groups []placed) float64 {
	var area, moment float64
	for _, g := range groups {
		area += g.area
		moment += g.area * g.distance
	}
	if area == 0 {
		return 0
	}
	return moment / area
}

func maxOf(values []float64) float64 {
	m := 0.0
	for _, v := range values {
		m = math.Max(m, v)
	}
	return m
}
