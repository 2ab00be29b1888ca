// Package rates - Tariff validation
// Checks monotonic thresholds and non-negative rates. Fails fast: the
// process cannot serve requests against a malformed tariff.
package rates

import (
	"fmt"

	"moving-cost/internal/errors"
)

// Validate checks tariff integrity
func (t *Table) Validate() error {
	var problems []string

	if len(t.ThroughputRules) == 0 {
		problems = append(problems, "no throughput rules defined")
	}
	base := false
	for _, rule := range t.ThroughputRules {
		if rule.LbsPerHour <= 0 {
			problems = append(problems, fmt.Sprintf("throughput rule %q has non-positive rate %.2f", rule.Name, rule.LbsPerHour))
		}
		if rule.Condition == "" {
			base = true
		}
	}
	if len(t.ThroughputRules) > 0 && !base {
		problems = append(problems, "no base throughput rule (empty condition)")
	}

	if t.Truck.CapacityLbs <= 0 {
		problems = append(problems, fmt.Sprintf("truck capacity must be positive, got %.2f", t.Truck.CapacityLbs))
	}

	if len(t.Crew.Rules) == 0 {
		problems = append(problems, "no crew rules defined")
	}
	prev := 0.0
	for i, rule := range t.Crew.Rules {
		if rule.ThresholdLbs <= prev && i > 0 {
			problems = append(problems, fmt.Sprintf("crew thresholds must be strictly increasing, rule %d has %.2f after %.2f", i, rule.ThresholdLbs, prev))
		}
		if rule.Movers <= 0 {
			problems = append(problems, fmt.Sprintf("crew rule %d has non-positive mover count %d", i, rule.Movers))
		}
		prev = rule.ThresholdLbs
	}
	if t.Crew.AdditionalMoverStepLbs <= 0 {
		problems = append(problems, "additional mover step must be positive")
	}
	if t.Crew.MaxMovers <= 0 {
		problems = append(problems, "max movers must be positive")
	}

	tv := t.Travel
	if tv.LocalThresholdMiles < 0 || tv.LocalExtraMinutes < 0 || tv.TravelChargeHours < 0 ||
		tv.MinimumChargeHours < 0 || tv.MinLegMinutes < 0 || tv.WarehouseLegMiles < 0 {
		problems = append(problems, "travel policy values must be non-negative")
	}
	if tv.DriveTimeRoundingMinutes <= 0 {
		problems = append(problems, "drive time rounding granularity must be positive")
	}
	if tv.AverageSpeedMph <= 0 {
		problems = append(problems, "average speed must be positive")
	}

	for _, moveType := range []string{"local", "intrastate"} {
		for _, band := range []string{BandMondayThursday, BandFridaySaturday} {
			if !t.hasRateCard(moveType, band) {
				problems = append(problems, fmt.Sprintf("missing rate card for %s/%s", moveType, band))
			}
		}
	}
	for _, card := range t.RateCards {
		if card.MoverRatePerHour < 0 || card.TruckRatePerHour < 0 {
			problems = append(problems, fmt.Sprintf("rate card %s/%s has negative rates", card.MoveType, card.DayBand))
		}
	}

	if t.Materials.RatePer1000Lbs < 0 {
		problems = append(problems, "materials rate must be non-negative")
	}
	if t.Materials.TaxRate < 0 {
		problems = append(problems, "tax rate must be non-negative")
	}

	for _, rule := range t.DisassemblyRules {
		if rule.AddedMinutes < 0 {
			problems = append(problems, fmt.Sprintf("disassembly rule %q has negative minutes", rule.Name))
		}
		if rule.Category == "" {
			problems = append(problems, fmt.Sprintf("disassembly rule %q has no trigger category", rule.Name))
		}
	}

	if len(problems) > 0 {
		return errors.Newf(errors.TypeConfig, "tariff validation failed: %d problems, first: %s", len(problems), problems[0])
	}
	return nil
}

func (t *Table) hasRateCard(moveType, band string) bool {
	for _, card := range t.RateCards {
		if card.MoveType == moveType && card.DayBand == band {
			return true
		}
	}
	return false
}
