// Package catalog_test - Label normalization tests
package catalog_test

import (
	"testing"

	"moving-cost/core/catalog"
)

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "lowercase and trim", raw: "  The Sofa ", want: "sofa"},
		{name: "punctuation collapses", raw: "Piano - Grand", want: "piano grand"},
		{name: "underscores collapse", raw: "bed_king_mattress", want: "bed king mattress"},
		{name: "plural reduced", raw: "dining chairs", want: "dining chair"},
		{name: "es plural reduced", raw: "boxes", want: "box"},
		{name: "ies plural reduced", raw: "vanities", want: "vanity"},
		{name: "double s kept", raw: "mattress", want: "mattress"},
		{name: "short tokens kept", raw: "gas grill", want: "gas grill"},
		{name: "decimal point kept", raw: "3.0 cu ft box", want: "3.0 cu ft box"},
		{name: "qualifiers stripped", raw: "a desk", want: "desk"},
		{name: "empty", raw: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.NormalizeLabel(tt.raw)
			if got != tt.want {
				t.Errorf("NormalizeLabel(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeLabelIdempotent(t *testing.T) {
	labels := []string{"The Sofa", "Piano - Grand", "dining chairs", "3.0 cu ft boxes"}
	for _, label := range labels {
		once := catalog.NormalizeLabel(label)
		twice := catalog.NormalizeLabel(once)
		if once != twice {
			t.Errorf("NormalizeLabel not idempotent for %q: %q != %q", label, once, twice)
		}
	}
}

func TestSortedTokens(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "piano grand", want: "grand piano"},
		{in: "grand piano", want: "grand piano"},
		{in: "sofa", want: "sofa"},
		{in: "", want: ""},
		{in: "size king mattress", want: "king mattress size"},
	}

	for _, tt := range tests {
		got := catalog.SortedTokens(tt.in)
		if got != tt.want {
			t.Errorf("SortedTokens(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
