// Package output provides output formatting interfaces.
// This package produces human and machine-readable renderings of a quote.
package output

import (
	"io"

	"moving-cost/core/pricing"
	"moving-cost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the estimate to w
	Render(w io.Writer, est *pricing.Estimate) error
}

// NewFormatter returns the formatter for a format name
func NewFormatter(format string, showDetails bool) (Formatter, error) {
	switch Format(format) {
	case FormatCLI, "":
		return &CLIFormatter{ShowDetails: showDetails}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	}
	return nil, errors.Input("unknown output format: " + format)
}
