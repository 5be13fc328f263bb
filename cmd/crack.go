package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcd/internal/calc"
	"github.com/alexiusacademia/gorcd/internal/ec2"
	"github.com/alexiusacademia/gorcd/internal/geometry"
	"github.com/alexiusacademia/gorcd/internal/params"
)

var (
	// Section
	crackWidth float64
	crackDepth float64
	crackSlab  bool

	// Flexure results
	crackD  float64
	crackX  float64
	crackAs float64
	crackAr float64

	// Bars
	crackSpacing  float64
	crackDiameter float64
	crackCover    float64
	crackLinks    float64

	// Actions and materials
	crackULS   float64
	crackSLS   float64
	crackGrade string
	crackLimit float64
)

var crackCmd = &cobra.Command{
	Use:   "crack",
	Short: "Calculate crack width for given flexure results",
	Long: `Calculate the crack width wk = sr,max·(εsm − εcm) of EN 1992-1-1
Section 7.3.4 for closely spaced bars, from the results of a flexural
design. Design parameters not given as flags come from the config file.

Examples:
  # 500 mm slab strip, H32@175 bottom
  gorcd crack --slab --depth 500 --d 434 --x 105.6 --as-prov 4596 --as-req 3523 \
    --uls 600 --sls 400 --spacing 175 --dia 32 --cover 50 --grade C32/40

  # 300 x 600 beam with H10 links
  gorcd crack -b 300 --depth 600 --d 549 --x 60 --as-prov 3217 --as-req 3122 \
    --uls 700 --sls 480 --spacing 75 --dia 32 --cover 25 --links 10`,
	Run: runCrack,
}

func init() {
	rootCmd.AddCommand(crackCmd)

	crackCmd.Flags().Float64VarP(&crackWidth, "width", "b", 300, "Section width (mm), ignored for slabs")
	crackCmd.Flags().Float64Var(&crackDepth, "depth", 0, "Overall depth (mm) [required]")
	crackCmd.Flags().BoolVar(&crackSlab, "slab", false, "Section is a 1000 mm slab strip")

	crackCmd.Flags().Float64Var(&crackD, "d", 0, "Effective depth (mm) [required]")
	crackCmd.Flags().Float64Var(&crackX, "x", 0, "Neutral axis depth (mm) [required]")
	crackCmd.Flags().Float64Var(&crackAs, "as-prov", 0, "Provided tension steel (mm², mm²/m for slabs) [required]")
	crackCmd.Flags().Float64Var(&crackAr, "as-req", 0, "Required tension steel (mm², mm²/m for slabs) [required]")

	crackCmd.Flags().Float64Var(&crackSpacing, "spacing", 0, "Centre-to-centre spacing of tension bars (mm) [required]")
	crackCmd.Flags().Float64Var(&crackDiameter, "dia", 0, "Largest tension bar diameter (mm) [required]")
	crackCmd.Flags().Float64VarP(&crackCover, "cover", "c", -1, "Nominal cover to the tension face (mm)")
	crackCmd.Flags().Float64Var(&crackLinks, "links", 0, "Link diameter added to the cover (mm)")

	crackCmd.Flags().Float64Var(&crackULS, "uls", 0, "ULS moment (kNm) [required]")
	crackCmd.Flags().Float64Var(&crackSLS, "sls", 0, "Quasi-permanent SLS moment (kNm) [required]")
	crackCmd.Flags().StringVarP(&crackGrade, "grade", "g", "", "Concrete grade (default from config)")
	crackCmd.Flags().Float64Var(&crackLimit, "limit", 0, "Crack width limit (mm, default from config)")

	for _, f := range []string{"depth", "d", "x", "as-prov", "as-req", "spacing", "dia", "uls", "sls"} {
		crackCmd.MarkFlagRequired(f)
	}
}

func runCrack(cmd *cobra.Command, args []string) {
	grade := crackGrade
	if grade == "" {
		grade = cfg.Grade
	}
	concrete, err := ec2.Grade(grade)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	p := cfg.Params
	if crackCover >= 0 {
		p.CoverTop, p.CoverBottom = crackCover, crackCover
	}
	if crackLimit > 0 {
		p.CrackWidthLimit = crackLimit
	}
	if p, err = params.New(p); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	var shape geometry.Shape
	if crackSlab {
		shape, err = geometry.NewSlabStrip(crackDepth)
	} else {
		shape, err = geometry.NewRectangle(crackWidth, crackDepth)
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result, err := calc.CrackWidth(calc.CrackingInput{
		Shape:              shape,
		EffectiveDepth:     crackD,
		NeutralAxisDepth:   crackX,
		ULSMoment:          crackULS,
		SLSMoment:          crackSLS,
		Spacing:            crackSpacing,
		MaxDiameter:        crackDiameter,
		AsProvided:         crackAs,
		AsRequired:         crackAr,
		Concrete:           concrete,
		Params:             p,
		TransverseDiameter: crackLinks,
	})
	if errors.Is(err, calc.ErrSpacingExceedsLimit) {
		fmt.Printf("Error: %v\n", err)
		fmt.Println("Reduce the bar spacing: the crack width formula applies to closely spaced bars only.")
		return
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	banner("EUROCODE 2 CRACK WIDTH CALCULATION")
	printCracking(result)
}
