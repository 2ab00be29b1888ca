// Package cmd - lookup command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"moving-cost/core/catalog"
)

// lookupCmd resolves an item name against the weight catalog
var lookupCmd = &cobra.Command{
	Use:   "lookup [name]",
	Short: "Resolve an item name against the weight catalog",
	Long: `Show how a free-text item name resolves, including fuzzy matches.

Examples:
  moving-cost lookup "grand piano"
  moving-cost lookup "coutch"`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	resolver := catalog.NewResolver(catalog.Standard())

	match, err := resolver.Resolve(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%-14s %s\n", "Resolved:", match.Entry.Name)
	fmt.Printf("%-14s %s\n", "Category:", match.Entry.Category)
	fmt.Printf("%-14s %.0f lbs\n", "Weight:", match.Entry.WeightLbs)
	fmt.Printf("%-14s %.0f cuft\n", "Volume:", match.Entry.VolumeCuft)
	fmt.Printf("%-14s %.2f", "Similarity:", match.Similarity)
	if match.Approximate {
		fmt.Print(" (approximate)")
	}
	fmt.Println()
	return nil
}
