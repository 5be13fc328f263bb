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

// Strut inclination limits, 1 ≤ cotθ ≤ 2.5 (Section 6.2.3 (2))
const (
	MaxCotTheta = 2.5
	MinCotTheta = 1.0

	// MaxLinkSpacingRatio limits the longitudinal link spacing to 0.75d
	MaxLinkSpacingRatio = 0.75

	// MaxShearSteelRatio caps ρl in the concrete shear resistance
	MaxShearSteelRatio = 0.02
)

// ShearInput collects everything the shear check needs. Links is nil for
// members without shear reinforcement, such as slab strips.
type ShearInput struct {
	Shear          float64 // ULS shear (kN, kN/m for slab strips)
	Shape          geometry.Shape
	EffectiveDepth float64 // mm
	Links          *rebar.ShearLinks
	Concrete       ec2.ConcreteGrade
	Params         params.DesignParameters

	// AsTension is the anchored tension steel used for ρl in VRd,c (mm²).
	AsTension float64
}

// ShearResult holds the shear check results. Forces are in kN.
type ShearResult struct {
	LeverArm float64 // z = 0.9d (mm)
	Nu1      float64 // strength reduction factor for concrete cracked in shear
	Fcd      float64 // MPa

	CotTheta float64
	VRdMax   float64 // strut crushing resistance at the chosen angle
	VRdS     float64 // link resistance
	VRdC     float64 // resistance without shear reinforcement
	Capacity float64

	AswPerMetre     float64 // mm²/m
	RequiredSpacing float64 // link spacing needed for the applied shear (mm)
	MaxSpacing      float64 // 0.75d (mm)
	MinLinkRatio    float64 // 0.08·√fck/fyk
	LinkRatio       float64 // Asw/(s·bw)

	IsStrutCrushed bool
	IsAdequate     bool
	Message        string
}

// Shear checks the section using the variable strut inclination method.
// Without links the concrete resistance VRd,c governs.
func Shear(in ShearInput) (*ShearResult, error) {
	if in.Shape == nil {
		return nil, errors.New("shear check needs a section shape")
	}
	if !in.Concrete.Supported() {
		return nil, fmt.Errorf("%w: %q", ec2.ErrUnsupportedGrade, in.Concrete.Tag)
	}
	d := in.EffectiveDepth
	if d <= 0 {
		return nil, fmt.Errorf("invalid effective depth: d=%.2f mm", d)
	}
	if in.Links != nil {
		if err := in.Links.Validate(); err != nil {
			return nil, err
		}
	}

	p := in.Params
	fck := in.Concrete.Fck
	bw := in.Shape.ShearWidth()
	vEd := math.Abs(in.Shear) * 1e3 // N

	result := &ShearResult{
		LeverArm:   0.9 * d,
		Nu1:        0.6 * (1 - fck/250),
		Fcd:        p.Fcd(fck, 1.0),
		MaxSpacing: MaxLinkSpacing(d),
		VRdC:       ConcreteShearResistance(bw, d, in.AsTension, fck, p.GammaC) / 1e3,
	}

	if in.Links == nil {
		result.Capacity = result.VRdC
		result.IsAdequate = vEd <= result.VRdC*1e3
		if result.IsAdequate {
			result.Message = "Section adequate without shear reinforcement."
		} else {
			result.Message = "Shear reinforcement required. Increase depth or provide links."
		}
		return result, nil
	}

	z := result.LeverArm
	strut := bw * z * result.Nu1 * result.Fcd

	// Start from the flattest strut and steepen it only as far as the
	// concrete needs.
	result.CotTheta = MaxCotTheta
	if vEd > strut/(MaxCotTheta+1/MaxCotTheta) {
		sin2Theta := 2 * vEd / strut
		if sin2Theta > 1 {
			result.IsStrutCrushed = true
			result.CotTheta = MinCotTheta
		} else {
			theta := 0.5 * math.Asin(sin2Theta)
			result.CotTheta = 1 / math.Tan(theta)
		}
	}
	cot := result.CotTheta

	fywd := in.Links.Fyk / p.GammaS
	asw := in.Links.Area()

	result.VRdMax = strut / (cot + 1/cot) / 1e3
	result.VRdS = asw / in.Links.Spacing * z * fywd * cot / 1e3
	result.Capacity = math.Min(result.VRdS, result.VRdMax)
	result.AswPerMetre = in.Links.AreaPerMetre()
	result.MinLinkRatio = 0.08 * math.Sqrt(fck) / in.Links.Fyk
	result.LinkRatio = asw / (in.Links.Spacing * bw)

	if vEd > 0 {
		result.RequiredSpacing = asw * z * fywd * cot / vEd
	} else {
		result.RequiredSpacing = result.MaxSpacing
	}

	switch {
	case result.IsStrutCrushed:
		result.Message = MsgStrutCrushing
	case result.Capacity*1e3 < vEd:
		result.Message = fmt.Sprintf("Increase shear reinforcement. Required link spacing: %.0f mm.", result.RequiredSpacing)
	case in.Links.Spacing > result.MaxSpacing:
		result.Message = fmt.Sprintf("Link spacing exceeds the maximum of %.0f mm.", result.MaxSpacing)
	case result.LinkRatio < result.MinLinkRatio:
		result.Message = fmt.Sprintf("Links below the minimum shear reinforcement ratio of %.5f.", result.MinLinkRatio)
	default:
		result.IsAdequate = true
		result.Message = MsgAdequate
	}

	return result, nil
}

// MaxLinkSpacing is 0.75d, Section 9.2.2 (6).
func MaxLinkSpacing(effectiveDepth float64) float64 {
	return MaxLinkSpacingRatio * effectiveDepth
}

// ConcreteShearResistance is VRd,c of Section 6.2.2 (1) without axial
// load, in N:
//
//	VRd,c = max(CRd,c·k·(100·ρl·fck)^(1/3), vmin)·bw·d
func ConcreteShearResistance(bw, d, asl, fck, gammaC float64) float64 {
	k := math.Min(1+math.Sqrt(200/d), 2)
	rho := math.Min(asl/(bw*d), MaxShearSteelRatio)
	cRdc := 0.18 / gammaC
	vMin := 0.035 * math.Pow(k, 1.5) * math.Sqrt(fck)
	v := math.Max(cRdc*k*math.Cbrt(100*rho*fck), vMin)
	return v * bw * d
}
