// Package cmd provides the CLI commands for moving-cost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"moving-cost/internal/config"
	"moving-cost/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "moving-cost",
	Short: "Estimate prices for household moves",
	Long: `moving-cost is a deterministic moving price estimation tool.

It resolves a free-text inventory against a weight catalog and prices the
move from a versioned tariff: crew sizing, trucks, travel time, materials
and tax. The same inventory, distance and date always produce the same
price.

Examples:
  moving-cost estimate --distance 12 --date 2025-09-15 "sofa: 1, box medium: 20"
  moving-cost estimate --format json --distance 80 --date 2025-09-19 "piano - grand: 1"
  moving-cost lookup "grand piano"`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.moving-cost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("moving-cost version 1.0.0")
	},
}
