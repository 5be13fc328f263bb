package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcd/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gorcd",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gorcd v%s\n", version.Version)
		fmt.Println("Reinforced Concrete Section Checker")
		fmt.Printf("Based on %s\n", version.Code)
		fmt.Printf("Built %s from commit %s\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
