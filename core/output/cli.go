// Package output - CLI table rendering
package output

import (
	"fmt"
	"io"
	"strings"

	"moving-cost/core/pricing"
)

const tableWidth = 66

// CLIFormatter renders a human-readable quote table
type CLIFormatter struct {
	// ShowDetails includes the per-item inventory breakdown
	ShowDetails bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the quote table
func (f *CLIFormatter) Render(w io.Writer, est *pricing.Estimate) error {
	line := strings.Repeat("=", tableWidth)
	thin := strings.Repeat("-", tableWidth)

	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "  MOVING ESTIMATE  (%s move, tariff %s)\n", est.MoveType, est.TariffVersion)
	fmt.Fprintln(w, line)

	if f.ShowDetails {
		fmt.Fprintf(w, "  %-34s %5s %10s %9s\n", "ITEM", "QTY", "WEIGHT", "VOLUME")
		fmt.Fprintln(w, thin)
		for _, l := range est.Lines {
			name := l.Entry.Name
			if l.Similarity < 1 {
				name += " (~)"
			}
			fmt.Fprintf(w, "  %-34s %5d %7.0f lb %6.0f cf\n",
				truncate(name, 34), l.Quantity, l.TotalWeightLbs(), l.TotalVolumeCuft())
		}
		fmt.Fprintln(w, thin)
	}

	fmt.Fprintf(w, "  %-40s %10.0f lbs\n", "Total weight", est.TotalWeightLbs)
	fmt.Fprintf(w, "  %-40s %10.0f cuft\n", "Total volume", est.TotalVolumeCuft)
	fmt.Fprintf(w, "  %-40s %14d\n", "Movers", est.Movers)
	fmt.Fprintf(w, "  %-40s %14d\n", "Trucks", est.Trucks)
	fmt.Fprintf(w, "  %-40s %12.2f h\n", "Work hours", est.WorkHours)
	fmt.Fprintf(w, "  %-40s %12.2f h\n", "Travel hours", est.TravelHours)
	if est.DisassemblyHours > 0 {
		fmt.Fprintf(w, "  %-40s %12.2f h\n", "Disassembly hours", est.DisassemblyHours)
	}
	fmt.Fprintf(w, "  %-40s %12.2f h\n", "Billable hours", est.LaborHours)
	fmt.Fprintln(w, thin)

	for _, unit := range est.Units {
		fmt.Fprintf(w, "  %-40s %11s %s\n", truncate(unit.Label, 40), unit.Amount.StringFixed(2), est.Currency)
		if f.ShowDetails && unit.Formula != "" {
			fmt.Fprintf(w, "    = %s\n", unit.Formula)
		}
	}

	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "  %-40s %11s %s\n", "TOTAL", est.TotalCost.StringFixed(2), est.Currency)
	fmt.Fprintln(w, line)
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
