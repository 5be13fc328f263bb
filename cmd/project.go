package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcd/internal/project"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Create, inspect and check .rcd project files",
	Long: `Work with gorcd project files. A project holds one beam or slab
section, its reinforcement, concrete grade, design parameters and the
ULS/SLS actions.

Subcommands:
  new     - Write a template project file
  show    - Print the inputs of a project
  check   - Calculate and print flexure, shear and cracking results
  report  - Write a PDF or Excel calculation report

Project files are JSON and can be edited by hand.`,
}

func init() {
	rootCmd.AddCommand(projectCmd)
}

// loadProject reads a project file and logs where it came from.
func loadProject(path string) (*project.Project, error) {
	p, err := project.Load(path)
	if err != nil {
		return nil, err
	}
	slog.Info("project loaded", "path", path, "name", p.Name, "element", p.Element)
	return p, nil
}

// calculateProject loads and calculates a project file.
func calculateProject(path string) (*project.Project, error) {
	p, err := loadProject(path)
	if err != nil {
		return nil, err
	}
	if err := p.Calculate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
