package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcd/internal/config"
	"github.com/alexiusacademia/gorcd/internal/logger"
	"github.com/alexiusacademia/gorcd/internal/version"
)

var (
	// cfg is loaded before every command runs
	cfg = config.Default()

	logLevel string
	noColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "gorcd",
	Short: "Reinforced Concrete Section Checker (Eurocode 2)",
	Long: `gorcd - Go Reinforced Concrete Designer

A CLI tool for checking reinforced concrete beam and slab sections
to EN 1992-1-1 (Eurocode 2) with UK National Annex values.

This tool helps structural engineers perform:
  - Flexural design (singly, doubly reinforced and flanged sections)
  - Shear design with the variable strut inclination method
  - Crack width calculation for closely spaced bars
  - Reinforcement spacing and detailing checks
  - PDF and Excel calculation reports

Sections are stored in .rcd project files.`,
	PersistentPreRunE: loadConfig,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gorcd v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Reinforced Concrete Designer (Eurocode 2)            ║")
		fmt.Printf("  ║   %-56s║\n", fmt.Sprintf("%s ©  %s", version.Author, version.Year))
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for checking reinforced concrete beams and slabs")
		fmt.Println("  to EN 1992-1-1 (Eurocode 2).")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Design actions from EN 1990 load combinations")
		fmt.Println("    • Rectangular, T and L beams and 1 m slab strips")
		fmt.Println("    • Flexure, shear and crack width checks")
		fmt.Println("    • Section diagrams, PDF and Excel reports")
		fmt.Println("    • Batch checking of project files")
		fmt.Println()
		fmt.Println("  Use 'gorcd --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")
}

// loadConfig reads .env and the user config, then sets up logging and
// colour output.
func loadConfig(cmd *cobra.Command, args []string) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	if noColor || !cfg.Color {
		color.NoColor = true
	}

	slog.Debug("config loaded", "grade", cfg.Grade, "author", cfg.Author)
	return nil
}
