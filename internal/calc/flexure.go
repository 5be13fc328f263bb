// Package calc implements the EN 1992-1-1 section checks: bending (6.1),
// shear with variable strut inclination (6.2) and crack width (7.3.4).
//
// Every check is a free function over an explicit input struct. Invalid
// input returns an error; a section that simply fails a check returns a
// result with IsAdequate false and an explanatory Message.
package calc

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcd/internal/ec2"
	"github.com/alexiusacademia/gorcd/internal/geometry"
	"github.com/alexiusacademia/gorcd/internal/params"
	"github.com/alexiusacademia/gorcd/internal/rebar"
)

// Messages shared by the checks
const (
	MsgAdequate         = "Section adequate."
	MsgIncrease         = "Increase reinforcement or redesign section."
	MsgExcessiveForce   = "Excessive force: required reinforcement exceeds the maximum allowed. Redesign section."
	MsgStrutCrushing    = "Applied shear exceeds strut capacity. Redesign section."
	MsgCrackWithinLimit = "Crack width within limit."
	MsgCrackExceeds     = "Crack width exceeds limit. Reduce bar spacing or steel stress."
)

// MaxReinforcementRatio limits the total longitudinal steel, Section 9.2.1.1 (3).
const MaxReinforcementRatio = 0.04

// FlexureInput collects everything the bending check needs.
type FlexureInput struct {
	Moment        float64 // ULS moment (kNm, kNm/m for slab strips), positive sagging
	Shape         geometry.Shape
	Reinforcement rebar.Reinforcement
	Concrete      ec2.ConcreteGrade
	Params        params.DesignParameters

	// TransverseDiameter is the diameter of any bars outside the
	// longitudinal steel, normally the links of a beam.
	TransverseDiameter float64
}

// FlexureResult holds the bending check results.
type FlexureResult struct {
	EffectiveDepth   float64 // d (mm)
	CompressionDepth float64 // d2, depth to compression steel (mm)
	K                float64
	KPrime           float64
	LeverArm         float64 // z (mm)
	NeutralAxisDepth float64 // x = 2.5(d - z) (mm)

	// Reinforcement (mm², mm²/m for slab strips)
	AsMin       float64
	AsMax       float64
	AsRequired  float64
	AsProvided  float64
	AscRequired float64 // required compression reinforcement, 0 when singly reinforced
	AscProvided float64

	// FlangeMoment is the moment taken by the flange outstands when the
	// compression block extends below a flange (kNm).
	FlangeMoment float64

	Capacity float64 // kNm (kNm/m)

	IsDoublyReinforced bool
	IsFlangedWeb       bool // plastic neutral axis below the flange
	IsExcessive        bool
	IsAdequate         bool
	Message            string
}

// rectangularDesign is the outcome of the K method on a rectangular
// compression zone.
type rectangularDesign struct {
	k      float64
	z      float64
	x      float64
	as     float64 // tension steel (mm²)
	asc    float64 // compression steel (mm²)
	fsc    float64 // compression steel stress (MPa)
	doubly bool
}

// Flexure designs the tension and compression steel for the applied
// moment and checks the provided reinforcement.
func Flexure(in FlexureInput) (*FlexureResult, error) {
	if in.Shape == nil || in.Reinforcement == nil {
		return nil, errors.New("flexure check needs a section shape and reinforcement")
	}
	if !in.Concrete.Supported() {
		return nil, fmt.Errorf("%w: %q (fck %.0f MPa, limit %.0f MPa)",
			ec2.ErrUnsupportedGrade, in.Concrete.Tag, in.Concrete.Fck, ec2.MaxFck)
	}

	m := in.Moment
	p := in.Params
	fck := in.Concrete.Fck
	fyd := p.Fyd()

	d := EffectiveDepth(in.Shape.Depth(), m, in.Reinforcement, p, in.TransverseDiameter)
	if d <= 0 {
		return nil, fmt.Errorf("invalid effective depth: d=%.2f mm", d)
	}
	d2 := CompressionDepth(m, in.Reinforcement, p, in.TransverseDiameter)
	b := in.Shape.WidthInCompressionZone(m)

	result := &FlexureResult{
		EffectiveDepth:   d,
		CompressionDepth: d2,
		KPrime:           KPrime(p),
		AsProvided:       in.Reinforcement.TotalArea(rebar.TensionFace(m)),
		AscProvided:      in.Reinforcement.TotalArea(rebar.CompressionFace(m)),
		AsMin:            MinimumReinforcement(in.Shape, m, d, in.Concrete, p.Fyk),
		AsMax:            MaximumReinforcement(in.Shape, in.Reinforcement),
	}

	// Convert M from kN-m to N-mm
	mNmm := math.Abs(m) * 1e6

	full := designRectangular(mNmm, b, d, d2, fck, fyd, result.KPrime)
	result.K = full.k
	result.LeverArm = full.z
	result.NeutralAxisDepth = PlasticNeutralAxisDepth(d, full.z)

	var asFromK, capacity float64
	flange, flanged := geometry.FlangeOf(in.Shape)
	if flanged && m >= 0 && !flange.IsPlasticNeutralAxisInFlange(m, d, full.z) {
		// Compression block extends into the web: the flange outstands
		// carry Mf at lever arm d - hf/2 and the web takes the rest.
		result.IsFlangedWeb = true
		zf := d - flange.Hf/2
		mf := FlangeOutstandMoment(fck, flange, d)
		web := designRectangular(math.Max(mNmm-mf, 0), flange.Bw, d, d2, fck, fyd, result.KPrime)

		asf := mf / (fyd * zf)
		asFromK = asf + web.as
		result.FlangeMoment = mf / 1e6
		result.AscRequired = web.asc
		result.IsDoublyReinforced = web.doubly
		result.LeverArm = web.z
		result.NeutralAxisDepth = web.x

		if result.AsProvided <= asf {
			capacity = result.AsProvided * fyd * zf
		} else {
			capacity = mf + web.capacity(result.AsProvided-asf, result.AscProvided, result.KPrime, fck, flange.Bw, d, d2, fyd)
		}
	} else {
		asFromK = full.as
		result.AscRequired = full.asc
		result.IsDoublyReinforced = full.doubly
		capacity = full.capacity(result.AsProvided, result.AscProvided, result.KPrime, fck, b, d, d2, fyd)
	}

	result.AsRequired = math.Max(asFromK, result.AsMin)
	result.Capacity = capacity / 1e6

	switch {
	case result.AsRequired > result.AsMax:
		result.IsExcessive = true
		result.IsAdequate = false
		result.Message = MsgExcessiveForce
	case result.IsDoublyReinforced && result.AscProvided < result.AscRequired:
		result.IsAdequate = false
		result.Message = fmt.Sprintf("Section is doubly reinforced. Provide at least %.0f mm² compression reinforcement.", result.AscRequired)
	case result.AsProvided < result.AsRequired:
		result.IsAdequate = false
		result.Message = MsgIncrease
	default:
		result.IsAdequate = true
		result.Message = MsgAdequate
		if result.IsDoublyReinforced {
			result.Message = "Section adequate. Section is doubly reinforced."
		}
	}

	return result, nil
}

func designRectangular(mNmm, b, d, d2, fck, fyd, kPrime float64) rectangularDesign {
	k := K(mNmm/1e6, b, d, fck)
	if k <= kPrime {
		z := LeverArm(d, k, kPrime)
		return rectangularDesign{k: k, z: z, x: PlasticNeutralAxisDepth(d, z), as: mNmm / (fyd * z)}
	}

	// Compression steel takes the moment above the K' limit
	z := LeverArm(d, kPrime, kPrime)
	x := PlasticNeutralAxisDepth(d, z)
	fsc := CompressionSteelStress(d2, x, fyd)
	asc := (k - kPrime) * fck * b * d * d / (fsc * (d - d2))
	as := kPrime*fck*b*d*d/(fyd*z) + asc*fsc/fyd

	return rectangularDesign{k: k, z: z, x: x, as: as, asc: asc, fsc: fsc, doubly: true}
}

// capacity returns the moment of resistance (N-mm) of the provided steel
// using the lever arm of the design.
func (r rectangularDesign) capacity(asProv, ascProv, kPrime, fck, b, d, d2, fyd float64) float64 {
	if !r.doubly {
		return asProv * fyd * r.z
	}
	mBal := kPrime * fck * b * d * d
	as1 := mBal / (fyd * r.z)
	if asProv <= as1 {
		return asProv * fyd * r.z
	}
	couple := math.Min(asProv-as1, ascProv*r.fsc/fyd)
	return mBal + couple*fyd*(d-d2)
}

// EffectiveDepth is the depth to the centroid of the tension steel: the
// bottom face for sagging moments and the top face for hogging.
func EffectiveDepth(depth, m float64, r rebar.Reinforcement, p params.DesignParameters, transverseDiameter float64) float64 {
	face := rebar.TensionFace(m)
	return depth - r.Centroid(face, p.Cover(face), transverseDiameter)
}

// CompressionDepth is d2, the depth from the compression face to the
// centroid of the compression steel. Without compression bars it falls
// back to the cover plus transverse bar.
func CompressionDepth(m float64, r rebar.Reinforcement, p params.DesignParameters, transverseDiameter float64) float64 {
	face := rebar.CompressionFace(m)
	if d2 := r.Centroid(face, p.Cover(face), transverseDiameter); d2 > 0 {
		return d2
	}
	return p.Cover(face) + transverseDiameter
}

// K = M / (b·d²·fck) with M in kNm and dimensions in mm.
func K(m, width, effectiveDepth, fck float64) float64 {
	return math.Abs(m) * 1e6 / (width * effectiveDepth * effectiveDepth * fck)
}

// KPrime is the limit on K for a singly reinforced section.
func KPrime(p params.DesignParameters) float64 {
	if p.RecommendedRedistribution {
		return ec2.RecommendedKPrime
	}
	delta := math.Min(math.Max(p.RedistributionRatio, params.MinRedistributionRatio), params.MaxRedistributionRatio)
	return 0.6*delta - 0.18*delta*delta - 0.21
}

// LeverArm z = d/2·(1 + √(1 − 3.53K)) ≤ 0.95d, with K capped at K'.
func LeverArm(effectiveDepth, k, kPrime float64) float64 {
	k = math.Min(k, kPrime)
	z := 0.5 * effectiveDepth * (1 + math.Sqrt(1-ec2.LeverArmCoefficient*k))
	return math.Min(z, ec2.MaxLeverArmRatio*effectiveDepth)
}

// PlasticNeutralAxisDepth x = 2.5(d − z).
func PlasticNeutralAxisDepth(effectiveDepth, leverArm float64) float64 {
	return ec2.NeutralAxisFactor * (effectiveDepth - leverArm)
}

// CompressionSteelStress is fyd unless the compression steel is too close
// to the neutral axis to yield (d2/x > 0.38).
func CompressionSteelStress(d2, x, fyd float64) float64 {
	if x <= 0 || d2/x <= 0.38 {
		return fyd
	}
	return math.Min(ec2.Es*ec2.EpsilonCU3*(1-d2/x), fyd)
}

// FlangeOutstandMoment Mf = 0.567·fck·(bf − bw)·hf·(d − hf/2) in N-mm.
func FlangeOutstandMoment(fck float64, f geometry.Flange, effectiveDepth float64) float64 {
	return 0.567 * fck * (f.Bf - f.Bw) * f.Hf * (effectiveDepth - f.Hf/2)
}

// MinimumReinforcement is the larger of Section 9.2.1.1 (1),
// max(0.26·fctm/fyk, 0.0013)·bt·d, and the crack control minimum of
// Section 7.3.2 (2), kc·k·fctm·Act/fyk.
func MinimumReinforcement(s geometry.Shape, m, effectiveDepth float64, c ec2.ConcreteGrade, fyk float64) float64 {
	ratio := math.Max(0.26*c.Fctm/fyk, ec2.MinReinforcementRatio)
	detailing := ratio * s.WidthInTensionZone(m) * effectiveDepth
	crack := s.Kc(m) * s.KFactor(m) * c.Fctm * s.UncrackedTensionArea(m) / fyk
	return math.Max(detailing, crack)
}

// MaximumReinforcement is 0.04·Ac where Ac excludes the steel already
// placed in the section.
func MaximumReinforcement(s geometry.Shape, r rebar.Reinforcement) float64 {
	placed := r.TotalArea(rebar.Top) + r.TotalArea(rebar.Bottom)
	return MaxReinforcementRatio * (s.Area() - placed)
}

// BendingCapacity M = z·As·fyd in kNm.
func BendingCapacity(leverArm, as, fyd float64) float64 {
	return leverArm * as * fyd / 1e6
}
