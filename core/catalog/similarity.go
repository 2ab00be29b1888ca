// Package catalog - String similarity strategies
// Fuzzy matching is a pluggable strategy so the algorithm and acceptance
// threshold can be tuned without touching the resolver's control flow.
package catalog

import (
	"github.com/agext/levenshtein"
)

// Scorer scores the similarity of two normalized labels in [0, 1]
type Scorer interface {
	Score(a, b string) float64
}

// LevenshteinScorer scores labels by edit-distance similarity.
// Word-order variants are handled by also comparing the token-sorted forms
// and keeping the better of the two scores.
type LevenshteinScorer struct{}

// NewLevenshteinScorer creates the default scorer
func NewLevenshteinScorer() *LevenshteinScorer {
	return &LevenshteinScorer{}
}

// Score returns the similarity of two normalized labels
func (s *LevenshteinScorer) Score(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	direct := levenshtein.Similarity(a, b, nil)
	sorted := levenshtein.Similarity(SortedTokens(a), SortedTokens(b), nil)
	if sorted > direct {
		return sorted
	}
	return direct
}
