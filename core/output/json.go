// Package output - JSON rendering
package output

import (
	"encoding/json"
	"io"

	"moving-cost/core/pricing"
)

// JSONFormatter renders the estimate as indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the estimate as JSON
func (f *JSONFormatter) Render(w io.Writer, est *pricing.Estimate) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(est)
}
