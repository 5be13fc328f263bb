package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcd/internal/geometry"
	"github.com/alexiusacademia/gorcd/internal/project"
	"github.com/alexiusacademia/gorcd/internal/rebar"
)

var (
	newElement string
	newName    string
	newForce   bool
)

var projectNewCmd = &cobra.Command{
	Use:   "new <file>",
	Short: "Write a template project file",
	Long: `Write a template beam or slab project using the defaults from
~/.gorcd/config.yaml (author, concrete grade and design parameters).
Edit the file to describe your section, then run 'gorcd project check'.

Examples:
  gorcd project new b1.rcd --element beam --name "Grid B beam"
  gorcd project new s1 --element slab`,
	Args: cobra.ExactArgs(1),
	Run:  runProjectNew,
}

func init() {
	projectCmd.AddCommand(projectNewCmd)

	projectNewCmd.Flags().StringVarP(&newElement, "element", "e", "beam", "Element type: beam or slab")
	projectNewCmd.Flags().StringVarP(&newName, "name", "n", "", "Project name (default: file name)")
	projectNewCmd.Flags().BoolVarP(&newForce, "force", "f", false, "Overwrite an existing file")
}

func runProjectNew(cmd *cobra.Command, args []string) {
	path := args[0]
	if filepath.Ext(path) == "" {
		path += project.FileExtension
	}

	if _, err := os.Stat(path); err == nil && !newForce {
		fmt.Printf("Error: %s already exists (use --force to overwrite)\n", path)
		return
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("Error: %v\n", err)
		return
	}

	element, err := project.ParseElementType(newElement)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	name := newName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	p, err := templateProject(name, element)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if err := project.Save(path, p); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Created %s project %q in %s\n", element, name, path)
}

// templateProject builds a typical section with the configured defaults.
func templateProject(name string, element project.ElementType) (*project.Project, error) {
	p := project.New(name)
	p.Author = cfg.Author
	p.Element = element
	p.Params = cfg.Params
	if err := p.SetConcreteGrade(cfg.Grade); err != nil {
		return nil, err
	}

	switch element {
	case project.ElementSlab:
		shape, err := geometry.NewSlabStrip(250)
		if err != nil {
			return nil, err
		}
		r, err := rebar.NewSlab(
			rebar.SlabFace{Layers: []rebar.Layer{{Diameter: 12, Spacing: 200}}},
			rebar.SlabFace{Layers: []rebar.Layer{{Diameter: 16, Spacing: 150}}},
		)
		if err != nil {
			return nil, err
		}
		p.Shape, p.Reinforcement = shape, r
		p.Actions = project.Actions{ULSMoment: "50", ULSShear: "40", SLSMoment: "32"}

	default:
		shape, err := geometry.NewRectangle(300, 500)
		if err != nil {
			return nil, err
		}
		r, err := rebar.NewBeam(
			rebar.BeamFace{Rows: [][]float64{{16, 16}}},
			rebar.BeamFace{Rows: [][]float64{{25, 25, 25}}},
			rebar.BeamLayout{Width: 300, SideCover: cfg.Params.CoverSide, LinkDiameter: 10},
		)
		if err != nil {
			return nil, err
		}
		links, err := rebar.NewShearLinks(cfg.Params.Fyk, 10, 200, 2)
		if err != nil {
			return nil, err
		}
		p.Shape, p.Reinforcement, p.Links = shape, r, &links
		p.Actions = project.Actions{ULSMoment: "150", ULSShear: "100", SLSMoment: "100"}
	}

	return p, nil
}
