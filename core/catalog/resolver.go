// Package catalog - Item label resolution
// Resolves free-text item labels to canonical catalog entries using exact
// and approximate matching. Pure lookup: no side effects, safe for
// concurrent use once the catalog is built.
package catalog

import (
	"moving-cost/internal/errors"
)

// DefaultSimilarityThreshold accepts word-order variants of known labels
// while rejecting unrelated items.
const DefaultSimilarityThreshold = 0.85

// Resolver maps free-text labels to catalog entries
type Resolver struct {
	catalog   *Catalog
	scorer    Scorer
	threshold float64

	// labels caches the sorted normalized label list for deterministic
	// fuzzy scans
	labels []string
}

// NewResolver creates a resolver with the default scorer and threshold
func NewResolver(c *Catalog) *Resolver {
	return NewResolverWithScorer(c, NewLevenshteinScorer(), DefaultSimilarityThreshold)
}

// NewResolverWithScorer creates a resolver with a custom similarity strategy
func NewResolverWithScorer(c *Catalog, scorer Scorer, threshold float64) *Resolver {
	return &Resolver{
		catalog:   c,
		scorer:    scorer,
		threshold: threshold,
		labels:    c.Labels(),
	}
}

// Match describes a resolved label
type Match struct {
	// Entry is the matched catalog entry
	Entry *Entry

	// Similarity is 1.0 for exact matches, the scorer value otherwise
	Similarity float64

	// Approximate is true when the match came from fuzzy scoring
	Approximate bool
}

// Resolve maps a label to a catalog entry.
// Exact matches on normalized name or alias win outright; otherwise every
// indexed label is scored and the best candidate above the threshold is
// accepted. Equal fuzzy scores prefer the entry whose name sorts first.
func (r *Resolver) Resolve(label string) (*Match, error) {
	normalized := NormalizeLabel(label)
	if normalized == "" {
		return nil, errors.UnknownItem(label)
	}

	if entry, ok := r.catalog.Lookup(normalized); ok {
		return &Match{Entry: entry, Similarity: 1.0}, nil
	}

	var best *Entry
	bestScore := 0.0
	for _, candidate := range r.labels {
		score := r.scorer.Score(normalized, candidate)
		if score < r.threshold {
			continue
		}
		entry, _ := r.catalog.Lookup(candidate)
		switch {
		case score > bestScore:
			best = entry
			bestScore = score
		case score == bestScore && best != nil && entry.Name < best.Name:
			best = entry
		}
	}
	if best == nil {
		return nil, errors.UnknownItem(label)
	}
	return &Match{Entry: best, Similarity: bestScore, Approximate: true}, nil
}
