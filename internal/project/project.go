// Package project holds the design session: one section, its
// reinforcement, materials, design parameters and actions, and the
// results of the last calculation.
//
// Inputs are plain fields that may be set in any order. Calculate runs
// validation, flexure, shear and cracking in sequence and caches the
// results until ResetResults or the next Calculate.
package project

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/alexiusacademia/gorcd/internal/calc"
	"github.com/alexiusacademia/gorcd/internal/ec2"
	"github.com/alexiusacademia/gorcd/internal/geometry"
	"github.com/alexiusacademia/gorcd/internal/params"
	"github.com/alexiusacademia/gorcd/internal/rebar"
	"github.com/alexiusacademia/gorcd/internal/validation"
)

// ErrInvalidProject is returned when the inputs contradict each other,
// such as slab reinforcement on a beam element.
var ErrInvalidProject = errors.New("invalid project")

// ElementType selects beam or slab design rules.
type ElementType string

const (
	ElementBeam ElementType = "beam"
	ElementSlab ElementType = "slab"
)

// ParseElementType accepts "beam" or "slab" in any case.
func ParseElementType(s string) (ElementType, error) {
	switch ElementType(strings.ToLower(strings.TrimSpace(s))) {
	case ElementBeam:
		return ElementBeam, nil
	case ElementSlab:
		return ElementSlab, nil
	default:
		return "", fmt.Errorf("%w: unknown element type %q (use beam or slab)", ErrInvalidProject, s)
	}
}

// Actions are the analysis results as entered by the user: ULS moment
// (kNm), ULS shear (kN) and SLS moment (kNm). Slab values are per metre.
type Actions struct {
	ULSMoment string `json:"uls_moment"`
	ULSShear  string `json:"uls_shear"`
	SLSMoment string `json:"sls_moment"`
}

// Project is the single design context owned by the calling application.
type Project struct {
	ID          uuid.UUID
	Name        string
	Description string
	Author      string
	Element     ElementType

	Shape         geometry.Shape
	Reinforcement rebar.Reinforcement
	Concrete      ec2.ConcreteGrade
	Params        params.DesignParameters
	Links         *rebar.ShearLinks // beams only

	Actions Actions

	results Results
}

// Results is the output of Calculate. The zero value means "not
// calculated".
type Results struct {
	Calculated bool

	Flexure  *calc.FlexureResult
	Shear    *calc.ShearResult
	Cracking *calc.CrackingResult

	// CrackingMessage explains why the crack width was not calculated.
	CrackingMessage string

	Validation     []string // before calculation
	PostValidation []string // after calculation

	// Messages holds setup-required notices and other diagnostics.
	Messages []string
}

// HasIssues reports whether any check failed or any validator raised a
// message.
func (r Results) HasIssues() bool {
	if len(r.Messages) > 0 || len(r.Validation) > 0 || len(r.PostValidation) > 0 || r.CrackingMessage != "" {
		return true
	}
	if r.Flexure != nil && !r.Flexure.IsAdequate {
		return true
	}
	if r.Shear != nil && !r.Shear.IsAdequate {
		return true
	}
	return r.Cracking != nil && !r.Cracking.IsAdequate
}

// New creates an empty beam project with default design parameters.
func New(name string) *Project {
	return &Project{
		ID:      uuid.New(),
		Name:    name,
		Element: ElementBeam,
		Params:  params.Default(),
	}
}

// SetConcreteGrade selects a grade by tag.
func (p *Project) SetConcreteGrade(tag string) error {
	g, err := ec2.Grade(tag)
	if err != nil {
		return err
	}
	p.Concrete = g
	return nil
}

// SetULSMoment, SetULSShear and SetSLSMoment store the raw text of an
// action. Unreadable values are reported by Calculate.
func (p *Project) SetULSMoment(raw string) { p.Actions.ULSMoment = raw }
func (p *Project) SetULSShear(raw string)  { p.Actions.ULSShear = raw }
func (p *Project) SetSLSMoment(raw string) { p.Actions.SLSMoment = raw }

// Results returns the results of the last calculation.
func (p *Project) Results() Results {
	return p.results
}

// ResetResults clears the results and leaves every input untouched.
func (p *Project) ResetResults() {
	p.results = Results{}
}

// transverseDiameter is the link size of a beam, 0 for slabs.
func (p *Project) transverseDiameter() float64 {
	if p.Element != ElementBeam {
		return 0
	}
	if b, ok := p.Reinforcement.(*rebar.BeamReinforcement); ok && b.Layout != nil {
		return b.Layout.LinkDiameter
	}
	if p.Links != nil {
		return p.Links.Diameter
	}
	return 0
}

// Hogging reports whether the ULS moment puts the top face in tension.
func (p *Project) Hogging() bool {
	m, err := parseAction(p.Actions.ULSMoment)
	return err == nil && m < 0
}

func (p *Project) unit(beam, slab string) string {
	if p.Element == ElementSlab {
		return slab
	}
	return beam
}

type parsedActions struct {
	ulsMoment, ulsShear, slsMoment float64
}

// setup lists every missing or unreadable input.
func (p *Project) setup() (parsedActions, []string) {
	var a parsedActions
	var missing []string

	if p.Shape == nil {
		missing = append(missing, "Setup required: section geometry.")
	}
	if p.Reinforcement == nil {
		missing = append(missing, "Setup required: reinforcement.")
	}
	if p.Concrete.Tag == "" {
		missing = append(missing, "Setup required: concrete grade.")
	}

	parse := func(raw, label string, target *float64) {
		v, err := parseAction(raw)
		if err != nil {
			missing = append(missing, fmt.Sprintf("Setup required: %s.", label))
			return
		}
		*target = v
	}
	parse(p.Actions.ULSMoment, "ULS moment", &a.ulsMoment)
	parse(p.Actions.ULSShear, "ULS shear", &a.ulsShear)
	if p.Params.CheckCracking {
		parse(p.Actions.SLSMoment, "SLS moment", &a.slsMoment)
	}

	return a, missing
}

func parseAction(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, errors.New("empty")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number: %q", raw)
	}
	return v, nil
}

// consistent checks that the element type matches the shape and the
// reinforcement variant.
func (p *Project) consistent() error {
	_, isSlabShape := p.Shape.(geometry.SlabStrip)
	switch p.Element {
	case ElementSlab:
		if _, ok := p.Reinforcement.(*rebar.SlabReinforcement); !ok || !isSlabShape {
			return fmt.Errorf("%w: slab element needs a slab strip with slab reinforcement", ErrInvalidProject)
		}
	case ElementBeam:
		if _, ok := p.Reinforcement.(*rebar.BeamReinforcement); !ok || isSlabShape {
			return fmt.Errorf("%w: beam element needs a beam section with beam reinforcement", ErrInvalidProject)
		}
	default:
		return fmt.Errorf("%w: unknown element type %q", ErrInvalidProject, p.Element)
	}
	return nil
}

// Calculate runs every check on the current inputs. Missing inputs give
// "Setup required" messages and a nil error; invalid configuration such
// as an unsupported grade or parameters out of range returns an error
// and leaves the results cleared.
func (p *Project) Calculate() error {
	p.results = Results{}

	actions, missing := p.setup()
	if len(missing) > 0 {
		p.results.Messages = missing
		slog.Debug("project setup incomplete", "id", p.ID, "missing", len(missing))
		return nil
	}
	if err := p.consistent(); err != nil {
		return err
	}
	if err := p.Params.Validate(); err != nil {
		return err
	}
	if err := p.Reinforcement.Validate(); err != nil {
		return err
	}
	if p.Links != nil {
		if err := p.Links.Validate(); err != nil {
			return err
		}
	}

	var r Results
	switch v := p.Reinforcement.(type) {
	case *rebar.SlabReinforcement:
		r.Validation = validation.ValidateSlab(p.Shape.Depth(), v, p.Params)
	case *rebar.BeamReinforcement:
		r.Validation = validation.ValidateBeam(p.Shape, v, p.Params)
	}

	trans := p.transverseDiameter()
	flexure, err := calc.Flexure(calc.FlexureInput{
		Moment:             actions.ulsMoment,
		Shape:              p.Shape,
		Reinforcement:      p.Reinforcement,
		Concrete:           p.Concrete,
		Params:             p.Params,
		TransverseDiameter: trans,
	})
	if err != nil {
		return fmt.Errorf("flexure: %w", err)
	}
	r.Flexure = flexure

	var links *rebar.ShearLinks
	if p.Element == ElementBeam {
		links = p.Links
	}
	shear, err := calc.Shear(calc.ShearInput{
		Shear:          actions.ulsShear,
		Shape:          p.Shape,
		EffectiveDepth: flexure.EffectiveDepth,
		Links:          links,
		Concrete:       p.Concrete,
		Params:         p.Params,
		AsTension:      flexure.AsProvided,
	})
	if err != nil {
		return fmt.Errorf("shear: %w", err)
	}
	r.Shear = shear

	if p.Params.CheckCracking {
		if err := p.crack(&r, actions, trans); err != nil {
			return err
		}
	}

	r.PostValidation = validation.PostCalculationValidate(flexure, p.Reinforcement, links)
	r.Calculated = true
	p.results = r

	slog.Debug("project calculated",
		"id", p.ID,
		"element", p.Element,
		"moment_capacity", flexure.Capacity,
		"shear_capacity", shear.Capacity,
		"issues", r.HasIssues(),
	)
	return nil
}

// crack fills the crack width result. A spacing too wide for the
// formula, or an SLS moment on the other face to the ULS moment, skips
// the check with a message.
func (p *Project) crack(r *Results, a parsedActions, trans float64) error {
	switch {
	case a.ulsMoment == 0:
		r.CrackingMessage = "Crack width not calculated: ULS moment is zero."
		return nil
	case a.slsMoment == 0:
		r.CrackingMessage = "Crack width not calculated: SLS moment is zero."
		return nil
	case rebar.TensionFace(a.slsMoment) != rebar.TensionFace(a.ulsMoment):
		r.CrackingMessage = "Crack width not calculated: SLS and ULS moments put different faces in tension."
		return nil
	}

	spacing, err := p.Reinforcement.MaxBarSpacingForTensileReinforcement(a.slsMoment)
	if errors.Is(err, rebar.ErrInvalidLayout) {
		r.CrackingMessage = "Crack width not calculated: " + err.Error() + "."
		return nil
	}
	if err != nil {
		return fmt.Errorf("cracking: %w", err)
	}
	diameter, err := p.Reinforcement.MaxBarDiameterForTensileReinforcement(a.slsMoment)
	if err != nil {
		return fmt.Errorf("cracking: %w", err)
	}
	if r.Flexure.AsProvided <= 0 {
		r.CrackingMessage = "Crack width not calculated: no tension reinforcement."
		return nil
	}

	cracking, err := calc.CrackWidth(calc.CrackingInput{
		Shape:              p.Shape,
		EffectiveDepth:     r.Flexure.EffectiveDepth,
		NeutralAxisDepth:   r.Flexure.NeutralAxisDepth,
		ULSMoment:          a.ulsMoment,
		SLSMoment:          a.slsMoment,
		Spacing:            spacing,
		MaxDiameter:        diameter,
		AsProvided:         r.Flexure.AsProvided,
		AsRequired:         r.Flexure.AsRequired,
		Concrete:           p.Concrete,
		Params:             p.Params,
		TransverseDiameter: trans,
	})
	if errors.Is(err, calc.ErrSpacingExceedsLimit) {
		r.CrackingMessage = fmt.Sprintf("Crack width not calculated: %v. Reduce bar spacing.", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("cracking: %w", err)
	}
	r.Cracking = cracking
	return nil
}

// Check is one row of the result summary.
type Check struct {
	Name    string
	Value   float64
	Limit   float64
	Unit    string
	Pass    bool
	Message string
}

// Checks summarises the flexure, shear and cracking results. It is empty
// until Calculate has run.
func (p *Project) Checks() []Check {
	r := p.results
	if !r.Calculated {
		return nil
	}

	actions, _ := p.setup()
	var checks []Check

	if f := r.Flexure; f != nil {
		checks = append(checks, Check{
			Name:    "Flexure",
			Value:   math.Abs(actions.ulsMoment),
			Limit:   f.Capacity,
			Unit:    p.unit("kNm", "kNm/m"),
			Pass:    f.IsAdequate,
			Message: f.Message,
		})
	}
	if s := r.Shear; s != nil {
		checks = append(checks, Check{
			Name:    "Shear",
			Value:   math.Abs(actions.ulsShear),
			Limit:   s.Capacity,
			Unit:    p.unit("kN", "kN/m"),
			Pass:    s.IsAdequate,
			Message: s.Message,
		})
	}
	switch {
	case r.Cracking != nil:
		checks = append(checks, Check{
			Name:    "Cracking",
			Value:   r.Cracking.CrackWidth,
			Limit:   r.Cracking.Limit,
			Unit:    "mm",
			Pass:    r.Cracking.IsAdequate,
			Message: r.Cracking.Message,
		})
	case r.CrackingMessage != "":
		checks = append(checks, Check{
			Name:    "Cracking",
			Limit:   p.Params.CrackWidthLimit,
			Unit:    "mm",
			Message: r.CrackingMessage,
		})
	}

	return checks
}

// Summary lists the human readable descriptions of the inputs.
func (p *Project) Summary() []string {
	var lines []string
	if p.Shape != nil {
		lines = append(lines, p.Shape.Description())
	}
	if p.Reinforcement != nil {
		lines = append(lines, "Reinforcement: "+p.Reinforcement.Description())
	}
	if p.Links != nil && p.Element == ElementBeam {
		lines = append(lines, "Links: "+p.Links.Description()+".")
	}
	if p.Concrete.Tag != "" {
		lines = append(lines, fmt.Sprintf("Concrete: %s (fck %.0f MPa).", p.Concrete.Tag, p.Concrete.Fck))
	}
	return lines
}
