// Package geometry describes the supported concrete cross-sections.
//
// A Shape is one of Rectangle, SlabStrip, TShape or LShape. The interface
// is sealed; callers that need flange data use FlangeOf instead of type
// assertions on the concrete variants.
//
// Sign convention: a positive moment is sagging (tension at the bottom
// face), a negative moment is hogging. Depths are measured from the top
// face. Outline coordinates put Y upward with the origin at the bottom
// left corner.
package geometry

import (
	"errors"
	"strconv"
)

// SlabStripWidth is the width of a per-metre slab design strip (mm).
const SlabStripWidth = 1000.0

// ErrInvalidShape is wrapped by every geometry construction failure.
var ErrInvalidShape = errors.New("invalid section geometry")

// Kind identifies a shape variant.
type Kind string

const (
	KindRectangle Kind = "rectangle"
	KindSlab      Kind = "slab"
	KindT         Kind = "T"
	KindL         Kind = "L"
)

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"` // mm
	Y float64 `json:"y"` // mm
}

// Shape is the common contract of all section variants.
type Shape interface {
	Kind() Kind

	Depth() float64 // overall depth h (mm)
	Width() float64 // overall width (mm)
	Area() float64  // gross concrete area (mm²)

	// Centroid is the distance from the top face to the elastic centroid.
	Centroid() float64
	SecondMomentOfArea() float64

	// ShearWidth is the smallest web width, bw.
	ShearWidth() float64

	WidthInCompressionZone(m float64) float64
	WidthInTensionZone(m float64) float64

	// AreaInTensionZonePriorCracking is the effective tension area Ac,eff
	// around the tension reinforcement for crack width calculation.
	AreaInTensionZonePriorCracking(m, effectiveDepth, neutralAxisDepth float64) float64

	// UncrackedTensionArea is Act, the concrete in tension just before
	// the first crack forms.
	UncrackedTensionArea(m float64) float64

	KFactor(m float64) float64
	Kc(m float64) float64

	Description() string
	Outline() []Point

	isShape()
}

// EffectiveTensionHeight returns hc,ef = min(2.5(h-d), (h-x)/3, h/2).
func EffectiveTensionHeight(depth, effectiveDepth, neutralAxisDepth float64) float64 {
	return min(2.5*(depth-effectiveDepth), (depth-neutralAxisDepth)/3, depth/2)
}

// FlangeOf returns the flange data of T and L sections.
func FlangeOf(s Shape) (Flange, bool) {
	switch v := s.(type) {
	case TShape:
		return v.Flange, true
	case LShape:
		return v.Flange, true
	case Rectangle, SlabStrip:
		return Flange{}, false
	default:
		return Flange{}, false
	}
}

func mm(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
