package geometry

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcd/internal/ec2"
)

// Rectangle is a solid rectangular beam section.
type Rectangle struct {
	W float64 // width b (mm)
	H float64 // depth h (mm)
}

// NewRectangle creates a rectangle after checking its dimensions.
func NewRectangle(width, depth float64) (Rectangle, error) {
	if width <= 0 || depth <= 0 {
		return Rectangle{}, fmt.Errorf("%w: rectangle %.1f x %.1f mm", ErrInvalidShape, width, depth)
	}
	return Rectangle{W: width, H: depth}, nil
}

func (Rectangle) isShape() {}

func (Rectangle) Kind() Kind { return KindRectangle }

func (r Rectangle) Depth() float64 { return r.H }

func (r Rectangle) Width() float64 { return r.W }

func (r Rectangle) Area() float64 { return r.W * r.H }

func (r Rectangle) Centroid() float64 { return r.H / 2 }

func (r Rectangle) SecondMomentOfArea() float64 { return r.W * math.Pow(r.H, 3) / 12 }

func (r Rectangle) ShearWidth() float64 { return r.W }

func (r Rectangle) WidthInCompressionZone(float64) float64 { return r.W }

func (r Rectangle) WidthInTensionZone(float64) float64 { return r.W }

func (r Rectangle) AreaInTensionZonePriorCracking(m, d, x float64) float64 {
	return EffectiveTensionHeight(r.H, d, x) * r.WidthInTensionZone(m)
}

// UncrackedTensionArea is half the section: the elastic neutral axis of
// a plain rectangle is at mid-depth.
func (r Rectangle) UncrackedTensionArea(float64) float64 { return r.W * r.H / 2 }

func (r Rectangle) KFactor(float64) float64 { return ec2.KFactor(r.H) }

// Kc is 0.4 for rectangular sections in pure bending.
func (r Rectangle) Kc(float64) float64 { return 0.4 }

func (r Rectangle) Description() string {
	return fmt.Sprintf("Rectangular section: %s mm wide x %s mm deep.", mm(r.W), mm(r.H))
}

func (r Rectangle) Outline() []Point {
	return []Point{
		{X: 0, Y: 0},
		{X: r.W, Y: 0},
		{X: r.W, Y: r.H},
		{X: 0, Y: r.H},
	}
}

// SlabStrip is a one metre wide strip of a one-way or two-way slab.
// Reinforcement areas on a slab strip are per metre width.
type SlabStrip struct {
	Thickness float64 // mm
}

// NewSlabStrip creates a slab strip of the given thickness.
func NewSlabStrip(thickness float64) (SlabStrip, error) {
	if thickness <= 0 {
		return SlabStrip{}, fmt.Errorf("%w: slab thickness %.1f mm", ErrInvalidShape, thickness)
	}
	return SlabStrip{Thickness: thickness}, nil
}

func (s SlabStrip) rect() Rectangle { return Rectangle{W: SlabStripWidth, H: s.Thickness} }

func (SlabStrip) isShape() {}

func (SlabStrip) Kind() Kind { return KindSlab }

func (s SlabStrip) Depth() float64 { return s.Thickness }

func (s SlabStrip) Width() float64 { return SlabStripWidth }

func (s SlabStrip) Area() float64 { return s.rect().Area() }

func (s SlabStrip) Centroid() float64 { return s.rect().Centroid() }

func (s SlabStrip) SecondMomentOfArea() float64 { return s.rect().SecondMomentOfArea() }

func (s SlabStrip) ShearWidth() float64 { return SlabStripWidth }

func (s SlabStrip) WidthInCompressionZone(m float64) float64 {
	return s.rect().WidthInCompressionZone(m)
}

func (s SlabStrip) WidthInTensionZone(m float64) float64 { return s.rect().WidthInTensionZone(m) }

func (s SlabStrip) AreaInTensionZonePriorCracking(m, d, x float64) float64 {
	return s.rect().AreaInTensionZonePriorCracking(m, d, x)
}

func (s SlabStrip) UncrackedTensionArea(m float64) float64 { return s.rect().UncrackedTensionArea(m) }

func (s SlabStrip) KFactor(m float64) float64 { return s.rect().KFactor(m) }

func (s SlabStrip) Kc(m float64) float64 { return s.rect().Kc(m) }

func (s SlabStrip) Description() string {
	return fmt.Sprintf("Slab strip: %s mm wide x %s mm thick.", mm(SlabStripWidth), mm(s.Thickness))
}

func (s SlabStrip) Outline() []Point { return s.rect().Outline() }
