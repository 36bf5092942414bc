package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "salesreport",
	Short: "Sales analytics pipeline: parse, enrich and report on sales data",
	Long: `salesreport reads pipe-delimited sales transaction data, validates it,
enriches it with product details from an external catalog service, and
produces a plain-text analytics report.

Example usage:
  salesreport run                          # Run with defaults
  salesreport run --config config.yaml     # Use a configuration file
  salesreport run --region North           # Only report on one region`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command; called by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
