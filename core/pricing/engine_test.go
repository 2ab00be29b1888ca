// Package pricing_test - Engine pricing tests
package pricing_test

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"moving-cost/core/catalog"
	"moving-cost/core/inventory"
	"moving-cost/core/pricing"
	"moving-cost/core/rates"
	"moving-cost/internal/errors"
)

func newEngine() *pricing.Engine {
	resolver := catalog.NewResolver(catalog.Standard())
	aggregator := inventory.NewAggregator(resolver)
	return pricing.NewEngine(rates.Default(), aggregator, "USD")
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %s: %v", s, err)
	}
	return date
}

func TestPriceSmallLocalMoveHitsMinimumCharge(t *testing.T) {
	engine := newEngine()

	// Two bar stools, 30 lbs total. Work plus travel is far under the
	// three hour floor, so the floor governs.
	est, err := engine.Price(&pricing.Request{
		Items:         map[string]int{"bar stool": 2},
		DistanceMiles: 5,
		MoveDate:      mustDate(t, "2025-09-15"), // Monday
	})
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}

	if est.MoveType != rates.MoveLocal {
		t.Errorf("MoveType = %s, want local", est.MoveType)
	}
	if est.Movers != 2 || est.Trucks != 1 {
		t.Errorf("crew = %d movers / %d trucks, want 2 / 1", est.Movers, est.Trucks)
	}
	if est.LaborHours != 3 {
		t.Errorf("LaborHours = %f, want the 3 hour floor", est.LaborHours)
	}

	// 3 hours at (2 movers * 95 + 1 truck * 85) = 825.
	if got := est.LaborCost.StringFixed(2); got != "825.00" {
		t.Errorf("LaborCost = %s, want 825.00", got)
	}
	if got := est.MaterialsCharge.StringFixed(2); got != "5.00" {
		t.Errorf("MaterialsCharge = %s, want 5.00", got)
	}
	if got := est.Tax.StringFixed(2); got != "0.31" {
		t.Errorf("Tax = %s, want 0.31", got)
	}
	if got := est.TotalCost.StringFixed(2); got != "830.31" {
		t.Errorf("TotalCost = %s, want 830.31", got)
	}
	if est.Currency != "USD" {
		t.Errorf("Currency = %s, want USD", est.Currency)
	}
}

func TestPriceIntrastatePeakWithDisassembly(t *testing.T) {
	engine := newEngine()

	est, err := engine.Price(&pricing.Request{
		Items:         map[string]int{"king size mattress": 1, "desk": 1},
		DistanceMiles: 80,
		MoveDate:      mustDate(t, "2025-09-19"), // Friday
	})
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}

	if est.MoveType != rates.MoveIntrastate {
		t.Errorf("MoveType = %s, want intrastate", est.MoveType)
	}

	// Legs: 10 mi floors at 30 min, 80 mi is 160 min rounded up to 165,
	// 10 mi floors at 30 min. 225 min plus the 1 hour travel charge.
	if est.TravelHours != 4.75 {
		t.Errorf("TravelHours = %f, want 4.75", est.TravelHours)
	}

	// Mattress (15 min) and desk (20 min) trigger once each.
	if math.Abs(est.DisassemblyHours-35.0/60) > 1e-9 {
		t.Errorf("DisassemblyHours = %f, want %f", est.DisassemblyHours, 35.0/60)
	}

	// 5.5983 hours at (2 movers * 120 + 1 truck * 110) = 350/hour.
	if got := est.LaborCost.StringFixed(2); got != "1959.42" {
		t.Errorf("LaborCost = %s, want 1959.42", got)
	}
	if got := est.TotalCost.StringFixed(2); got != "1964.73" {
		t.Errorf("TotalCost = %s, want 1964.73", got)
	}
}

func TestPriceLocalTravelUsesFixedExtra(t *testing.T) {
	engine := newEngine()

	est, err := engine.Price(&pricing.Request{
		Items:         map[string]int{"king size mattress": 1, "bar stool": 4},
		DistanceMiles: 15,
		MoveDate:      mustDate(t, "2025-09-16"), // Tuesday
	})
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}

	if est.MoveType != rates.MoveLocal {
		t.Errorf("MoveType = %s, want local", est.MoveType)
	}

	// Local moves skip per-leg drive time: flat charge plus 20 minutes.
	want := 1 + 20.0/60
	if math.Abs(est.TravelHours-want) > 1e-9 {
		t.Errorf("TravelHours = %f, want %f", est.TravelHours, want)
	}

	// One mattress trigger, no matter how many stools.
	if math.Abs(est.DisassemblyHours-0.25) > 1e-9 {
		t.Errorf("DisassemblyHours = %f, want 0.25", est.DisassemblyHours)
	}
}

func TestPriceIntrastateLegRounding(t *testing.T) {
	engine := newEngine()

	est, err := engine.Price(&pricing.Request{
		Items:         map[string]int{"sofa": 1},
		DistanceMiles: 45,
		MoveDate:      mustDate(t, "2025-09-16"),
	})
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}

	if est.MoveType != rates.MoveIntrastate {
		t.Errorf("MoveType = %s, want intrastate", est.MoveType)
	}

	// Warehouse legs floor at 30 min each; the 45 mile leg is 90 minutes,
	// already on the 15 minute grid. 150 minutes plus the 1 hour charge.
	if est.TravelHours != 3.5 {
		t.Errorf("TravelHours = %f, want 3.5", est.TravelHours)
	}
}

func TestPriceCrewAndFleetScaleWithWeight(t *testing.T) {
	engine := newEngine()

	// Twelve grand pianos: 8400 lbs needs a second truck and two extra
	// movers above the 4000 lb threshold.
	est, err := engine.Price(&pricing.Request{
		Items:         map[string]int{"grand piano": 12},
		DistanceMiles: 10,
		MoveDate:      mustDate(t, "2025-09-16"),
	})
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}

	if est.Movers != 5 {
		t.Errorf("Movers = %d, want 5", est.Movers)
	}
	if est.Trucks != 2 {
		t.Errorf("Trucks = %d, want 2", est.Trucks)
	}
	if est.TotalWeightLbs != 8400 {
		t.Errorf("TotalWeightLbs = %f, want 8400", est.TotalWeightLbs)
	}
}

func TestPriceAccessConditionsSlowThroughput(t *testing.T) {
	engine := newEngine()

	base := &pricing.Request{
		Items:         map[string]int{"grand piano": 4},
		DistanceMiles: 10,
		MoveDate:      mustDate(t, "2025-09-16"),
	}
	stairs := &pricing.Request{
		Items:            base.Items,
		DistanceMiles:    base.DistanceMiles,
		MoveDate:         base.MoveDate,
		AccessConditions: []string{"stairs"},
	}

	baseEst, err := engine.Price(base)
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}
	stairsEst, err := engine.Price(stairs)
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}

	// 2800 lbs at 1000 vs 700 lbs/hour.
	if math.Abs(baseEst.WorkHours-2.8) > 1e-9 {
		t.Errorf("base WorkHours = %f, want 2.8", baseEst.WorkHours)
	}
	if math.Abs(stairsEst.WorkHours-4) > 1e-9 {
		t.Errorf("stairs WorkHours = %f, want 4", stairsEst.WorkHours)
	}
	if !stairsEst.TotalCost.GreaterThan(baseEst.TotalCost) {
		t.Error("stairs access should cost more than ground floor")
	}
}

func TestPriceIsPure(t *testing.T) {
	engine := newEngine()
	req := &pricing.Request{
		Items:         map[string]int{"sofa": 2, "grand piano": 1, "box medium": 15},
		DistanceMiles: 42,
		MoveDate:      mustDate(t, "2025-09-20"),
	}

	first, err := engine.Price(req)
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := engine.Price(req)
		if err != nil {
			t.Fatalf("Price failed on iteration %d: %v", i, err)
		}
		if !again.TotalCost.Equal(first.TotalCost) {
			t.Fatalf("price changed between identical requests: %s vs %s",
				first.TotalCost, again.TotalCost)
		}
		if again.Movers != first.Movers || again.Trucks != first.Trucks ||
			again.LaborHours != first.LaborHours {
			t.Fatal("derived quantities changed between identical requests")
		}
	}
}

func TestPriceMonotonicInInventory(t *testing.T) {
	engine := newEngine()
	date := mustDate(t, "2025-09-16")

	smaller, err := engine.Price(&pricing.Request{
		Items:         map[string]int{"grand piano": 6},
		DistanceMiles: 50,
		MoveDate:      date,
	})
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}
	larger, err := engine.Price(&pricing.Request{
		Items:         map[string]int{"grand piano": 6, "sofa": 2},
		DistanceMiles: 50,
		MoveDate:      date,
	})
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}

	if larger.TotalCost.LessThan(smaller.TotalCost) {
		t.Errorf("adding items lowered the price: %s -> %s",
			smaller.TotalCost, larger.TotalCost)
	}
}

func TestPriceWeekendPremium(t *testing.T) {
	engine := newEngine()
	items := map[string]int{"grand piano": 6}

	weekday, err := engine.Price(&pricing.Request{
		Items: items, DistanceMiles: 50, MoveDate: mustDate(t, "2025-09-16"),
	})
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}
	saturday, err := engine.Price(&pricing.Request{
		Items: items, DistanceMiles: 50, MoveDate: mustDate(t, "2025-09-20"),
	})
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}

	if !saturday.TotalCost.GreaterThan(weekday.TotalCost) {
		t.Errorf("saturday price %s not above weekday price %s",
			saturday.TotalCost, weekday.TotalCost)
	}
}

func TestPriceTaxAppliesToMaterialsOnly(t *testing.T) {
	engine := newEngine()
	taxRate := decimal.NewFromFloat(rates.Default().Materials.TaxRate)

	for _, items := range []map[string]int{
		{"bar stool": 1},
		{"grand piano": 3},
		{"box medium": 40, "sofa": 2},
	} {
		est, err := engine.Price(&pricing.Request{
			Items:         items,
			DistanceMiles: 10,
			MoveDate:      mustDate(t, "2025-09-16"),
		})
		if err != nil {
			t.Fatalf("Price failed: %v", err)
		}

		wantTax := est.MaterialsCharge.Mul(taxRate).Round(2)
		if !est.Tax.Equal(wantTax) {
			t.Errorf("Tax = %s, want %s (materials %s)", est.Tax, wantTax, est.MaterialsCharge)
		}
		wantTotal := est.LaborCost.Add(est.MaterialsCharge).Add(est.Tax)
		if !est.TotalCost.Equal(wantTotal) {
			t.Errorf("TotalCost = %s, want %s", est.TotalCost, wantTotal)
		}
	}
}

func TestPriceInputErrors(t *testing.T) {
	engine := newEngine()
	date := mustDate(t, "2025-09-16")

	tests := []struct {
		name     string
		req      *pricing.Request
		wantType errors.Type
	}{
		{
			name:     "negative distance",
			req:      &pricing.Request{Items: map[string]int{"sofa": 1}, DistanceMiles: -1, MoveDate: date},
			wantType: errors.TypeInvalidDistance,
		},
		{
			name:     "zero date",
			req:      &pricing.Request{Items: map[string]int{"sofa": 1}, DistanceMiles: 5},
			wantType: errors.TypeInvalidDate,
		},
		{
			name:     "unknown item",
			req:      &pricing.Request{Items: map[string]int{"warp drive": 1}, DistanceMiles: 5, MoveDate: date},
			wantType: errors.TypeUnknownItem,
		},
		{
			name:     "no items",
			req:      &pricing.Request{DistanceMiles: 5, MoveDate: date},
			wantType: errors.TypeInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Price(tt.req)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.IsType(err, tt.wantType) {
				t.Errorf("error = %v, want type %s", err, tt.wantType)
			}
			if !errors.IsClientError(err) {
				t.Errorf("error %v should be a client error", err)
			}
		})
	}
}

func TestPriceCostUnitsSumToTotal(t *testing.T) {
	engine := newEngine()

	est, err := engine.Price(&pricing.Request{
		Items:         map[string]int{"sofa": 1, "box medium": 10},
		DistanceMiles: 12,
		MoveDate:      mustDate(t, "2025-09-17"),
	})
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}

	sum := decimal.Zero
	for _, unit := range est.Units {
		sum = sum.Add(unit.Amount)
	}
	if !sum.Equal(est.TotalCost) {
		t.Errorf("cost units sum to %s, total is %s", sum, est.TotalCost)
	}
}
