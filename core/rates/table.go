// Package rates - The moving tariff
// The rate table is a static, versioned rule set loaded once at process
// start. It is read-only for the lifetime of the process; pricing consults
// it by value and never mutates it.
package rates

import (
	"time"
)

// MoveType classifies a move by distance
type MoveType string

const (
	MoveLocal      MoveType = "local"
	MoveIntrastate MoveType = "intrastate"
)

// Day bands for rate card selection
const (
	BandMondayThursday = "monday_thursday"
	BandFridaySaturday = "friday_saturday"
)

// ThroughputRule maps an access condition to a crew loading rate.
// Rules form an ordered list; the first satisfied condition wins.
type ThroughputRule struct {
	Name        string  `hcl:"name,label"`
	Condition   string  `hcl:"condition"`
	LbsPerHour  float64 `hcl:"lbs_per_hour"`
	Description string  `hcl:"description,optional"`
}

// Matches reports whether the rule applies to the given access conditions.
// A rule with an empty condition is the base rule and matches everything.
func (r *ThroughputRule) Matches(conditions []string) bool {
	if r.Condition == "" {
		return true
	}
	for _, c := range conditions {
		if c == r.Condition {
			return true
		}
	}
	return false
}

// CrewRule maps a weight threshold to a mover count
type CrewRule struct {
	ThresholdLbs float64 `hcl:"threshold_lbs"`
	Movers       int     `hcl:"movers"`
}

// CrewConfig contains crew sizing rules
type CrewConfig struct {
	Rules []CrewRule `hcl:"rule,block"`

	// AdditionalMoverStepLbs adds one mover per full step above the top
	// threshold
	AdditionalMoverStepLbs float64 `hcl:"additional_mover_step_lbs"`
	MaxMovers              int     `hcl:"max_movers"`
}

// TruckConfig contains truck sizing rules
type TruckConfig struct {
	CapacityLbs float64 `hcl:"capacity_lbs"`
}

// TravelConfig is the travel-time policy
type TravelConfig struct {
	LocalThresholdMiles      float64 `hcl:"local_threshold_miles"`
	LocalExtraMinutes        float64 `hcl:"local_extra_minutes"`
	TravelChargeHours        float64 `hcl:"travel_charge_hours"`
	MinimumChargeHours       float64 `hcl:"minimum_charge_hours"`
	DriveTimeRoundingMinutes float64 `hcl:"drive_time_rounding_minutes"`
	MinLegMinutes            float64 `hcl:"min_leg_minutes"`
	AverageSpeedMph          float64 `hcl:"average_speed_mph"`
	WarehouseLegMiles        float64 `hcl:"warehouse_leg_miles"`
}

// RateCard is the hourly mover/truck rate for a (move type, day band) pair
type RateCard struct {
	MoveType         string  `hcl:"move_type,label"`
	DayBand          string  `hcl:"day_band,label"`
	MoverRatePerHour float64 `hcl:"mover_rate_per_hour"`
	TruckRatePerHour float64 `hcl:"truck_rate_per_hour"`
}

// MaterialsConfig covers protective packing materials
type MaterialsConfig struct {
	RatePer1000Lbs float64 `hcl:"rate_per_1000_lbs"`

	// TaxRate applies to the materials charge only, never to labor
	TaxRate float64 `hcl:"tax_rate"`
}

// DisassemblyRule adds fixed labor for items needing take-apart work.
// The added time is charged once per trigger against one mover, regardless
// of how many qualifying items the request contains.
type DisassemblyRule struct {
	Name           string  `hcl:"name,label"`
	Category       string  `hcl:"category"`
	AddedMinutes   float64 `hcl:"added_minutes"`
	MoversAffected int     `hcl:"movers_affected"`
}

// OfficeHours is informational metadata carried with the tariff
type OfficeHours struct {
	Open  string `hcl:"open"`
	Close string `hcl:"close"`
}

// Table is the full tariff
type Table struct {
	Version string `hcl:"version"`

	ThroughputRules  []ThroughputRule  `hcl:"throughput_rule,block"`
	Truck            TruckConfig       `hcl:"truck,block"`
	Crew             CrewConfig        `hcl:"crew,block"`
	Travel           TravelConfig      `hcl:"travel,block"`
	RateCards        []RateCard        `hcl:"rate_card,block"`
	Materials        MaterialsConfig   `hcl:"materials,block"`
	DisassemblyRules []DisassemblyRule `hcl:"disassembly,block"`
	Office           *OfficeHours      `hcl:"office_hours,block"`
}

// ThroughputFor selects the applicable throughput rule, first match wins
func (t *Table) ThroughputFor(conditions []string) *ThroughputRule {
	for i := range t.ThroughputRules {
		if t.ThroughputRules[i].Matches(conditions) {
			return &t.ThroughputRules[i]
		}
	}
	return nil
}

// MoverCount sizes the crew for a total weight: the smallest rule threshold
// at or above the weight gives the base count, and each full additional step
// above the top threshold adds one mover, capped at MaxMovers.
func (t *Table) MoverCount(totalWeightLbs float64) int {
	rules := t.Crew.Rules
	for _, rule := range rules {
		if totalWeightLbs <= rule.ThresholdLbs {
			return rule.Movers
		}
	}

	top := rules[len(rules)-1]
	excess := totalWeightLbs - top.ThresholdLbs
	movers := top.Movers + int(ceilDiv(excess, t.Crew.AdditionalMoverStepLbs))
	if movers > t.Crew.MaxMovers {
		movers = t.Crew.MaxMovers
	}
	return movers
}

// TruckCount sizes the truck fleet for a total weight, minimum one truck
func (t *Table) TruckCount(totalWeightLbs float64) int {
	trucks := int(ceilDiv(totalWeightLbs, t.Truck.CapacityLbs))
	if trucks < 1 {
		trucks = 1
	}
	return trucks
}

// MoveTypeFor classifies a move by distance against the local threshold
func (t *Table) MoveTypeFor(distanceMiles float64) MoveType {
	if distanceMiles < t.Travel.LocalThresholdMiles {
		return MoveLocal
	}
	return MoveIntrastate
}

// DayBandFor maps a move date to a rate card day band.
// Friday and Saturday moves are billed at the peak band.
func DayBandFor(moveDate time.Time) string {
	switch moveDate.Weekday() {
	case time.Friday, time.Saturday:
		return BandFridaySaturday
	}
	return BandMondayThursday
}

// RateCardFor returns the hourly rates for a move type and date
func (t *Table) RateCardFor(moveType MoveType, moveDate time.Time) *RateCard {
	band := DayBandFor(moveDate)
	for i := range t.RateCards {
		card := &t.RateCards[i]
		if card.MoveType == string(moveType) && card.DayBand == band {
			return card
		}
	}
	return nil
}

// DisassemblyFor returns the rules triggered by the given categories.
// Each rule fires at most once.
func (t *Table) DisassemblyFor(categories map[string]bool) []DisassemblyRule {
	var triggered []DisassemblyRule
	for _, rule := range t.DisassemblyRules {
		if categories[rule.Category] {
			triggered = append(triggered, rule)
		}
	}
	return triggered
}

func ceilDiv(value, step float64) float64 {
	if step <= 0 {
		return 0
	}
	units := value / step
	whole := float64(int64(units))
	if units > whole {
		whole++
	}
	return whole
}
