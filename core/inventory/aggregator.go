// Package inventory - Inventory aggregation
// Resolves a requested item mapping against the catalog and sums weight and
// volume. Aggregation is deterministic: labels are walked in sorted order so
// the result never depends on map iteration order.
package inventory

import (
	"sort"

	"moving-cost/core/catalog"
	"moving-cost/internal/errors"
)

// Line is one resolved inventory line, owned by a single request
type Line struct {
	// Label is the caller-supplied item label
	Label string

	// Entry is the resolved catalog entry
	Entry *catalog.Entry

	// Quantity is the validated item count
	Quantity int

	// Similarity records how the label matched (1.0 = exact)
	Similarity float64
}

// TotalWeightLbs returns the line weight
func (l *Line) TotalWeightLbs() float64 {
	return l.Entry.WeightLbs * float64(l.Quantity)
}

// TotalVolumeCuft returns the line volume
func (l *Line) TotalVolumeCuft() float64 {
	return l.Entry.VolumeCuft * float64(l.Quantity)
}

// Aggregate is the derived inventory total, immutable once computed
type Aggregate struct {
	TotalWeightLbs  float64
	TotalVolumeCuft float64
	ItemCount       int
}

// Aggregator resolves and sums requested inventories
type Aggregator struct {
	resolver *catalog.Resolver
}

// NewAggregator creates an aggregator over a resolver
func NewAggregator(resolver *catalog.Resolver) *Aggregator {
	return &Aggregator{resolver: resolver}
}

// Aggregate validates quantities, resolves every label and accumulates
// totals. Any invalid quantity or unresolvable label aborts the whole
// aggregation; no partial result is returned.
func (a *Aggregator) Aggregate(items map[string]int) (*Aggregate, []*Line, error) {
	if len(items) == 0 {
		return nil, nil, errors.Input("no items provided")
	}

	labels := make([]string, 0, len(items))
	for label := range items {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	lines := make([]*Line, 0, len(labels))
	agg := &Aggregate{}
	for _, label := range labels {
		quantity := items[label]
		if quantity <= 0 {
			return nil, nil, errors.InvalidQuantity(label, quantity)
		}

		match, err := a.resolver.Resolve(label)
		if err != nil {
			return nil, nil, err
		}

		line := &Line{
			Label:      label,
			Entry:      match.Entry,
			Quantity:   quantity,
			Similarity: match.Similarity,
		}
		lines = append(lines, line)

		agg.TotalWeightLbs += line.TotalWeightLbs()
		agg.TotalVolumeCuft += line.TotalVolumeCuft()
		agg.ItemCount += quantity
	}

	return agg, lines, nil
}

// HasCategory reports whether any resolved line belongs to the category
func HasCategory(lines []*Line, category string) bool {
	for _, line := range lines {
		if line.Entry.Category == category {
			return true
		}
	}
	return false
}
