// Package main provides the CLI entry point for gridimpact.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	// .env is optional; real env always wins.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "gridimpact",
		Short: "Environmental impact of grid expansion plans",
		Long: `gridimpact computes the environmental impact of a multi-year grid
expansion plan: per-component impact factors times planned unit counts,
aggregated by year and component, ready for stacked bar charting.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newCalculateCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newFactorsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
