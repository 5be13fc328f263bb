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

// ErrSpacingExceedsLimit is returned when the tension bars are too far
// apart for the closely spaced crack width formula.
var ErrSpacingExceedsLimit = errors.New("bar spacing exceeds limit")

// CrackingInput collects everything the crack width calculation needs.
type CrackingInput struct {
	Shape            geometry.Shape
	EffectiveDepth   float64 // mm
	NeutralAxisDepth float64 // mm
	ULSMoment        float64 // kNm
	SLSMoment        float64 // kNm
	Spacing          float64 // centre-to-centre spacing of the tension bars (mm)
	MaxDiameter      float64 // largest tension bar (mm)
	AsProvided       float64 // mm²
	AsRequired       float64 // mm²
	Concrete         ec2.ConcreteGrade
	Params           params.DesignParameters

	// TransverseDiameter is added to the cover of the tension face, so c
	// is measured to the longitudinal bars.
	TransverseDiameter float64
}

// CrackingResult holds the Section 7.3.4 crack width results.
type CrackingResult struct {
	Cover                float64 // c (mm)
	SpacingLimit         float64 // 5(c + φ/2) (mm)
	SteelStress          float64 // σs (MPa)
	EffectiveTensionArea float64 // Ac,eff (mm²)
	Rho                  float64 // ρp,eff
	AlphaE               float64 // Es/Ecm
	StrainDifference     float64 // εsm − εcm
	CrackSpacing         float64 // sr,max (mm)
	CrackWidth           float64 // wk (mm)
	Limit                float64 // mm

	IsAdequate bool
	Message    string
}

// CrackWidth calculates wk = sr,max·(εsm − εcm) for closely spaced bars.
// It fails with ErrSpacingExceedsLimit when the spacing is above
// 5(c + φ/2).
func CrackWidth(in CrackingInput) (*CrackingResult, error) {
	if in.Shape == nil {
		return nil, errors.New("crack width calculation needs a section shape")
	}
	if in.AsProvided <= 0 {
		return nil, fmt.Errorf("invalid provided reinforcement: As=%.2f", in.AsProvided)
	}
	if in.ULSMoment == 0 {
		return nil, errors.New("crack width calculation needs a non-zero ULS moment")
	}
	if in.Concrete.Ecm <= 0 || in.Concrete.Fctm <= 0 {
		return nil, fmt.Errorf("%w: %q", ec2.ErrUnsupportedGrade, in.Concrete.Tag)
	}

	p := in.Params
	c := p.Cover(rebar.TensionFace(in.SLSMoment)) + in.TransverseDiameter
	phi := in.MaxDiameter

	result := &CrackingResult{
		Cover:        c,
		SpacingLimit: MaxCrackControlSpacing(c, phi),
		Limit:        p.CrackWidthLimit,
	}
	if in.Spacing > result.SpacingLimit {
		return nil, fmt.Errorf("%w: %.0f mm > 5(c + φ/2) = %.0f mm", ErrSpacingExceedsLimit, in.Spacing, result.SpacingLimit)
	}

	// Service stress scaled from the design stress by the ratio of the
	// actions, undoing any redistribution
	result.SteelStress = SteelServiceStress(p, in.AsRequired, in.AsProvided, in.SLSMoment, in.ULSMoment)

	result.EffectiveTensionArea = in.Shape.AreaInTensionZonePriorCracking(in.SLSMoment, in.EffectiveDepth, in.NeutralAxisDepth)
	result.Rho = in.AsProvided / result.EffectiveTensionArea
	result.AlphaE = ec2.Es / in.Concrete.Ecm

	// Equation 7.9
	sigma := result.SteelStress
	rho := result.Rho
	strain := (sigma - ec2.Kt*in.Concrete.Fctm/rho*(1+result.AlphaE*rho)) / ec2.Es
	result.StrainDifference = math.Max(strain, 0.6*sigma/ec2.Es)

	// Equation 7.11
	result.CrackSpacing = ec2.K3*c + ec2.K1*ec2.K2*ec2.K4*phi/rho
	result.CrackWidth = result.CrackSpacing * result.StrainDifference

	result.IsAdequate = result.CrackWidth <= result.Limit
	if result.IsAdequate {
		result.Message = MsgCrackWithinLimit
	} else {
		result.Message = MsgCrackExceeds
	}

	return result, nil
}

// MaxCrackControlSpacing is the closely spaced bar limit 5(c + φ/2) of
// Section 7.3.4 (3).
func MaxCrackControlSpacing(cover, diameter float64) float64 {
	return 5 * (cover + diameter/2)
}

// SteelServiceStress σs = fyd·(As,req/As,prov)·|Msls/Muls|/δ.
func SteelServiceStress(p params.DesignParameters, asRequired, asProvided, sls, uls float64) float64 {
	return p.Fyd() * (asRequired / asProvided) * math.Abs(sls/uls) / p.RedistributionRatio
}
