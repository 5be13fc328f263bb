package geometry

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcd/internal/ec2"
)

// Flange holds the dimensions shared by T and L sections. The flange is
// always at the top face.
type Flange struct {
	Bw float64 // web width (mm)
	H  float64 // overall depth (mm)
	Bf float64 // flange width (mm)
	Hf float64 // flange thickness (mm)
}

func newFlange(webWidth, depth, flangeWidth, flangeThickness float64) (Flange, error) {
	if webWidth <= 0 || depth <= 0 || flangeWidth <= 0 || flangeThickness <= 0 {
		return Flange{}, fmt.Errorf("%w: flanged section dimensions must be positive", ErrInvalidShape)
	}
	if flangeThickness > depth {
		return Flange{}, fmt.Errorf("%w: flange thickness %.1f mm exceeds depth %.1f mm", ErrInvalidShape, flangeThickness, depth)
	}
	if flangeWidth < webWidth {
		return Flange{}, fmt.Errorf("%w: flange width %.1f mm is less than web width %.1f mm", ErrInvalidShape, flangeWidth, webWidth)
	}
	return Flange{Bw: webWidth, H: depth, Bf: flangeWidth, Hf: flangeThickness}, nil
}

// Downstand is the depth of web below the flange.
func (f Flange) Downstand() float64 { return f.H - f.Hf }

func (f Flange) Depth() float64 { return f.H }

func (f Flange) Width() float64 { return f.Bf }

func (f Flange) Area() float64 { return f.Bf*f.Hf + f.Bw*f.Downstand() }

// Centroid calculates the depth of the elastic centroid from the top.
func (f Flange) Centroid() float64 {
	hw := f.Downstand()
	moment := f.Bf*f.Hf*f.Hf/2 + f.Bw*hw*(f.Hf+hw/2)
	return moment / f.Area()
}

// SecondMomentOfArea about the elastic centroid, by the parallel axis
// theorem.
func (f Flange) SecondMomentOfArea() float64 {
	yt := f.Centroid()
	hw := f.Downstand()
	flange := f.Bf*math.Pow(f.Hf, 3)/12 + f.Bf*f.Hf*math.Pow(yt-f.Hf/2, 2)
	web := f.Bw*math.Pow(hw, 3)/12 + f.Bw*hw*math.Pow(f.Hf+hw/2-yt, 2)
	return flange + web
}

func (f Flange) ShearWidth() float64 { return f.Bw }

// WidthInCompressionZone is the flange width under sagging and the web
// width under hogging.
func (f Flange) WidthInCompressionZone(m float64) float64 {
	if m >= 0 {
		return f.Bf
	}
	return f.Bw
}

func (f Flange) WidthInTensionZone(m float64) float64 {
	if m >= 0 {
		return f.Bw
	}
	return f.Bf
}

func (f Flange) AreaInTensionZonePriorCracking(m, d, x float64) float64 {
	return EffectiveTensionHeight(f.H, d, x) * f.WidthInTensionZone(m)
}

func (f Flange) UncrackedTensionArea(m float64) float64 {
	yt := f.Centroid()
	if m >= 0 {
		// below the neutral axis
		if yt >= f.Hf {
			return f.Bw * (f.H - yt)
		}
		return f.Bw*f.Downstand() + f.Bf*(f.Hf-yt)
	}
	if yt <= f.Hf {
		return f.Bf * yt
	}
	return f.Bf*f.Hf + f.Bw*(yt-f.Hf)
}

// KFactor uses the downstand depth for sagging and the flange width for
// hogging.
func (f Flange) KFactor(m float64) float64 {
	if m >= 0 {
		return ec2.KFactor(f.Downstand())
	}
	return ec2.KFactor(f.Bf)
}

// Kc is 0.4 for a web in tension. A flange in tension takes
// 0.9·Fcr/(Act·fct,eff), where Fcr is the flange force at first cracking.
// EN 1992-1-1 Eq. (7.3) sets 0.5 as the lower bound, so values below it
// are raised to 0.5 rather than larger ones capped.
func (f Flange) Kc(m float64) float64 {
	if m >= 0 {
		return 0.4
	}
	if f.IsElasticNeutralAxisInFlange() {
		return 0.5
	}
	yt := f.Centroid()
	// flange stress at mid-thickness relative to the extreme fibre
	unitForce := (yt - f.Hf/2) / yt * f.Bf * f.Hf
	kc := 0.9 * unitForce / f.UncrackedTensionArea(m)
	return math.Max(kc, 0.5)
}

// IsElasticNeutralAxisInFlange reports whether the uncracked centroid
// lies within the flange.
func (f Flange) IsElasticNeutralAxisInFlange() bool {
	return f.Centroid() < f.Hf
}

// IsPlasticNeutralAxisInFlange reports whether the compression block of
// a sagging moment stays inside the flange.
func (f Flange) IsPlasticNeutralAxisInFlange(m, effectiveDepth, leverArm float64) bool {
	return ec2.NeutralAxisFactor*(effectiveDepth-leverArm) <= ec2.NeutralAxisFactor*f.Hf && m >= 0
}

func (f Flange) describe(name string) string {
	return fmt.Sprintf("%s section: %s mm downstand x %s mm web width + flange %s mm wide x %s mm thick.",
		name, mm(f.Downstand()), mm(f.Bw), mm(f.Bf), mm(f.Hf))
}

// TShape is a flanged beam with the web centred under the flange.
type TShape struct {
	Flange
}

// NewTShape creates a T section.
func NewTShape(webWidth, depth, flangeWidth, flangeThickness float64) (TShape, error) {
	f, err := newFlange(webWidth, depth, flangeWidth, flangeThickness)
	if err != nil {
		return TShape{}, err
	}
	return TShape{Flange: f}, nil
}

func (TShape) isShape() {}

func (TShape) Kind() Kind { return KindT }

func (t TShape) Description() string { return t.describe("T") }

func (t TShape) Outline() []Point {
	xl := (t.Bf - t.Bw) / 2
	xr := xl + t.Bw
	hw := t.Downstand()
	return []Point{
		{X: xl, Y: 0},
		{X: xr, Y: 0},
		{X: xr, Y: hw},
		{X: t.Bf, Y: hw},
		{X: t.Bf, Y: t.H},
		{X: 0, Y: t.H},
		{X: 0, Y: hw},
		{X: xl, Y: hw},
	}
}

// LShape is an edge beam with the flange on one side of the web.
type LShape struct {
	Flange
}

// NewLShape creates an L section.
func NewLShape(webWidth, depth, flangeWidth, flangeThickness float64) (LShape, error) {
	f, err := newFlange(webWidth, depth, flangeWidth, flangeThickness)
	if err != nil {
		return LShape{}, err
	}
	return LShape{Flange: f}, nil
}

func (LShape) isShape() {}

func (LShape) Kind() Kind { return KindL }

func (l LShape) Description() string { return l.describe("L") }

func (l LShape) Outline() []Point {
	hw := l.Downstand()
	return []Point{
		{X: 0, Y: 0},
		{X: l.Bw, Y: 0},
		{X: l.Bw, Y: hw},
		{X: l.Bf, Y: hw},
		{X: l.Bf, Y: l.H},
		{X: 0, Y: l.H},
	}
}
