// Package cmd - estimate command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"moving-cost/api"
	"moving-cost/core/catalog"
	"moving-cost/core/inventory"
	"moving-cost/core/output"
	"moving-cost/core/pricing"
	"moving-cost/core/rates"
	"moving-cost/internal/config"
)

var (
	outputFormat string
	showDetails  bool
	tariffFile   string
	distance     float64
	moveDate     string
	access       []string
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate [items]",
	Short: "Estimate the price of a move",
	Long: `Resolve an inventory and price the move.

Items are given as a comma-separated list of "name: quantity" pairs;
a bare name counts as one. Names are matched against the weight catalog,
tolerating typos and word-order differences.

Examples:
  moving-cost estimate --distance 12 --date 2025-09-15 "sofa: 1, bed king: 1, box medium: 20"
  moving-cost estimate --distance 80 --date 2025-09-19 --access stairs "piano - grand: 1"
  moving-cost estimate --format json --distance 5 --date 2025-09-15 "desk"`,
	Args: cobra.ExactArgs(1),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "cli", "output format (cli, json)")
	estimateCmd.Flags().BoolVarP(&showDetails, "details", "d", true, "show detailed cost breakdown")
	estimateCmd.Flags().StringVarP(&tariffFile, "tariff", "t", "", "tariff HCL file (default is the built-in tariff)")
	estimateCmd.Flags().Float64Var(&distance, "distance", 0, "origin to destination distance in miles")
	estimateCmd.Flags().StringVar(&moveDate, "date", "", "move date (YYYY-MM-DD)")
	estimateCmd.Flags().StringSliceVar(&access, "access", nil, "access conditions (stairs, elevator, storage, dock)")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	items, err := api.ParseItemList(args[0])
	if err != nil {
		return err
	}

	date, err := api.ParseDate(moveDate)
	if err != nil {
		return err
	}

	engine, err := buildEngine()
	if err != nil {
		return err
	}

	est, err := engine.Price(&pricing.Request{
		Items:            items,
		DistanceMiles:    distance,
		MoveDate:         date,
		AccessConditions: access,
	})
	if err != nil {
		return err
	}

	// Config supplies output defaults unless flags override them.
	cfg := config.Get()
	if !cmd.Flags().Changed("format") && cfg.Output.DefaultFormat != "" {
		outputFormat = cfg.Output.DefaultFormat
	}
	if !cmd.Flags().Changed("details") {
		showDetails = cfg.Output.ShowDetails
	}

	formatter, err := output.NewFormatter(outputFormat, showDetails)
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, est)
}

func buildEngine() (*pricing.Engine, error) {
	cfg := config.Get()

	path := cfg.Tariff.Path
	if tariffFile != "" {
		path = tariffFile
	}
	table, err := rates.LoadOrDefault(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load tariff: %w", err)
	}

	cat := catalog.Standard()
	resolver := catalog.NewResolver(cat)
	aggregator := inventory.NewAggregator(resolver)
	return pricing.NewEngine(table, aggregator, cfg.Tariff.Currency), nil
}
