// Package rates_test - Tariff rule tests
package rates_test

import (
	"testing"
	"time"

	"moving-cost/core/rates"
)

func TestThroughputFor(t *testing.T) {
	table := rates.Default()

	tests := []struct {
		name       string
		conditions []string
		want       string
	}{
		{name: "no conditions hits base", conditions: nil, want: "base"},
		{name: "stairs", conditions: []string{"stairs"}, want: "stairs"},
		{name: "elevator", conditions: []string{"elevator"}, want: "elevator"},
		{name: "first match wins", conditions: []string{"stairs", "dock"}, want: "stairs"},
		{name: "rule order not caller order", conditions: []string{"dock", "stairs"}, want: "stairs"},
		{name: "unknown condition falls through", conditions: []string{"basement"}, want: "base"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := table.ThroughputFor(tt.conditions)
			if rule == nil {
				t.Fatal("no rule matched")
			}
			if rule.Name != tt.want {
				t.Errorf("matched %s, want %s", rule.Name, tt.want)
			}
		})
	}
}

func TestMoverCount(t *testing.T) {
	table := rates.Default()

	tests := []struct {
		weight float64
		want   int
	}{
		{weight: 100, want: 2},
		{weight: 1800, want: 2},
		{weight: 1801, want: 3},
		{weight: 4000, want: 3},
		{weight: 4001, want: 4},
		{weight: 6500, want: 4},
		{weight: 6501, want: 5},
		{weight: 9000, want: 5},
		{weight: 11500, want: 6},
		{weight: 50000, want: 6},
	}

	for _, tt := range tests {
		got := table.MoverCount(tt.weight)
		if got != tt.want {
			t.Errorf("MoverCount(%.0f) = %d, want %d", tt.weight, got, tt.want)
		}
	}
}

func TestTruckCount(t *testing.T) {
	table := rates.Default()

	tests := []struct {
		weight float64
		want   int
	}{
		{weight: 0, want: 1},
		{weight: 30, want: 1},
		{weight: 8000, want: 1},
		{weight: 8001, want: 2},
		{weight: 16000, want: 2},
		{weight: 24500, want: 4},
	}

	for _, tt := range tests {
		got := table.TruckCount(tt.weight)
		if got != tt.want {
			t.Errorf("TruckCount(%.0f) = %d, want %d", tt.weight, got, tt.want)
		}
	}
}

func TestMoveTypeFor(t *testing.T) {
	table := rates.Default()

	if got := table.MoveTypeFor(0); got != rates.MoveLocal {
		t.Errorf("MoveTypeFor(0) = %s, want local", got)
	}
	if got := table.MoveTypeFor(29.9); got != rates.MoveLocal {
		t.Errorf("MoveTypeFor(29.9) = %s, want local", got)
	}
	if got := table.MoveTypeFor(30); got != rates.MoveIntrastate {
		t.Errorf("MoveTypeFor(30) = %s, want intrastate", got)
	}
	if got := table.MoveTypeFor(500); got != rates.MoveIntrastate {
		t.Errorf("MoveTypeFor(500) = %s, want intrastate", got)
	}
}

func TestDayBandFor(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{date: "2025-09-15", want: rates.BandMondayThursday}, // Monday
		{date: "2025-09-18", want: rates.BandMondayThursday}, // Thursday
		{date: "2025-09-19", want: rates.BandFridaySaturday}, // Friday
		{date: "2025-09-20", want: rates.BandFridaySaturday}, // Saturday
		{date: "2025-09-21", want: rates.BandMondayThursday}, // Sunday
	}

	for _, tt := range tests {
		date, err := time.Parse("2006-01-02", tt.date)
		if err != nil {
			t.Fatalf("bad test date %s: %v", tt.date, err)
		}
		if got := rates.DayBandFor(date); got != tt.want {
			t.Errorf("DayBandFor(%s) = %s, want %s", tt.date, got, tt.want)
		}
	}
}

func TestRateCardFor(t *testing.T) {
	table := rates.Default()
	friday, _ := time.Parse("2006-01-02", "2025-09-19")
	monday, _ := time.Parse("2006-01-02", "2025-09-15")

	card := table.RateCardFor(rates.MoveLocal, monday)
	if card == nil || card.MoverRatePerHour != 95 {
		t.Errorf("local weekday card = %+v, want mover rate 95", card)
	}

	card = table.RateCardFor(rates.MoveIntrastate, friday)
	if card == nil || card.MoverRatePerHour != 120 {
		t.Errorf("intrastate peak card = %+v, want mover rate 120", card)
	}
}

func TestDisassemblyFor(t *testing.T) {
	table := rates.Default()

	triggered := table.DisassemblyFor(map[string]bool{"bed": true, "desk": true, "sofa": true})
	if len(triggered) != 2 {
		t.Fatalf("got %d rules, want 2", len(triggered))
	}

	// Triggers fire once per category, not per item.
	minutes := 0.0
	for _, rule := range triggered {
		minutes += rule.AddedMinutes
	}
	if minutes != 50 {
		t.Errorf("total added minutes = %.0f, want 50", minutes)
	}

	if got := table.DisassemblyFor(map[string]bool{"sofa": true}); len(got) != 0 {
		t.Errorf("sofa should trigger nothing, got %d rules", len(got))
	}
}
