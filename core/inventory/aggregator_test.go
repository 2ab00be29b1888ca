// Package inventory_test - Aggregation tests
package inventory_test

import (
	"testing"

	"moving-cost/core/catalog"
	"moving-cost/core/inventory"
	"moving-cost/internal/errors"
)

func newAggregator() *inventory.Aggregator {
	return inventory.NewAggregator(catalog.NewResolver(catalog.Standard()))
}

func TestAggregateTotals(t *testing.T) {
	agg := newAggregator()

	// bar_stool 15 lbs / 3 cuft, desk_office 115 lbs / 35 cuft
	result, lines, err := agg.Aggregate(map[string]int{
		"bar stool": 4,
		"desk":      1,
	})
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	if result.TotalWeightLbs != 4*15+115 {
		t.Errorf("TotalWeightLbs = %f, want %d", result.TotalWeightLbs, 4*15+115)
	}
	if result.TotalVolumeCuft != 4*3+35 {
		t.Errorf("TotalVolumeCuft = %f, want %d", result.TotalVolumeCuft, 4*3+35)
	}
	if result.ItemCount != 5 {
		t.Errorf("ItemCount = %d, want 5", result.ItemCount)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	// Lines come back in sorted label order.
	if lines[0].Label != "bar stool" || lines[1].Label != "desk" {
		t.Errorf("lines out of order: %s, %s", lines[0].Label, lines[1].Label)
	}
}

func TestAggregateLabelVariantsEquivalent(t *testing.T) {
	agg := newAggregator()

	a, _, err := agg.Aggregate(map[string]int{"grand piano": 1, "sofa": 2})
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	b, _, err := agg.Aggregate(map[string]int{"Piano - Grand": 1, "couch": 2})
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	if a.TotalWeightLbs != b.TotalWeightLbs || a.TotalVolumeCuft != b.TotalVolumeCuft {
		t.Errorf("label variants aggregated differently: %+v vs %+v", a, b)
	}
}

func TestAggregateErrors(t *testing.T) {
	agg := newAggregator()

	tests := []struct {
		name     string
		items    map[string]int
		wantType errors.Type
	}{
		{name: "empty", items: map[string]int{}, wantType: errors.TypeInput},
		{name: "zero quantity", items: map[string]int{"sofa": 0}, wantType: errors.TypeInvalidQuantity},
		{name: "negative quantity", items: map[string]int{"sofa": -2}, wantType: errors.TypeInvalidQuantity},
		{name: "unknown item", items: map[string]int{"helicopter": 1}, wantType: errors.TypeUnknownItem},
		{name: "no partial result", items: map[string]int{"sofa": 1, "zzz unknown": 1}, wantType: errors.TypeUnknownItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, lines, err := agg.Aggregate(tt.items)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.IsType(err, tt.wantType) {
				t.Errorf("error type = %v, want %s", err, tt.wantType)
			}
			if result != nil || lines != nil {
				t.Error("failed aggregation must not return partial results")
			}
		})
	}
}

func TestHasCategory(t *testing.T) {
	agg := newAggregator()

	_, lines, err := agg.Aggregate(map[string]int{"king size mattress": 1, "sofa": 1})
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	if !inventory.HasCategory(lines, catalog.CategoryMattress) {
		t.Error("expected a mattress line")
	}
	if inventory.HasCategory(lines, catalog.CategoryPiano) {
		t.Error("unexpected piano line")
	}
}
