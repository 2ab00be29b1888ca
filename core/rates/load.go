// Package rates - Tariff loading
package rates

import (
	"github.com/hashicorp/hcl/v2/hclsimple"

	"moving-cost/internal/errors"
)

// Load reads and validates a tariff HCL file.
// Called once at process start; a malformed tariff prevents the process
// from serving requests.
func Load(path string) (*Table, error) {
	var table Table
	if err := hclsimple.DecodeFile(path, nil, &table); err != nil {
		return nil, errors.Config("failed to decode tariff file "+path, err)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &table, nil
}

// LoadOrDefault loads the tariff at path, or the built-in default tariff
// when path is empty
func LoadOrDefault(path string) (*Table, error) {
	if path == "" {
		table := Default()
		if err := table.Validate(); err != nil {
			return nil, err
		}
		return table, nil
	}
	return Load(path)
}

// Default returns the built-in tariff
func Default() *Table {
	return &Table{
		Version: "2025-08",
		ThroughputRules: []ThroughputRule{
			{Name: "stairs", Condition: "stairs", LbsPerHour: 700, Description: "walk-up with one or more flights of stairs"},
			{Name: "elevator", Condition: "elevator", LbsPerHour: 850, Description: "upper floor served by an elevator"},
			{Name: "storage", Condition: "storage", LbsPerHour: 1100, Description: "storage unit, drive-up access"},
			{Name: "dock", Condition: "dock", LbsPerHour: 1200, Description: "loading dock access"},
			{Name: "base", Condition: "", LbsPerHour: 1000, Description: "ground floor, standard access"},
		},
		Truck: TruckConfig{
			CapacityLbs: 8000,
		},
		Crew: CrewConfig{
			Rules: []CrewRule{
				{ThresholdLbs: 1800, Movers: 2},
				{ThresholdLbs: 4000, Movers: 3},
			},
			AdditionalMoverStepLbs: 2500,
			MaxMovers:              6,
		},
		Travel: TravelConfig{
			LocalThresholdMiles:      30,
			LocalExtraMinutes:        20,
			TravelChargeHours:        1,
			MinimumChargeHours:       3,
			DriveTimeRoundingMinutes: 15,
			MinLegMinutes:            30,
			AverageSpeedMph:          30,
			WarehouseLegMiles:        10,
		},
		RateCards: []RateCard{
			{MoveType: "local", DayBand: BandMondayThursday, MoverRatePerHour: 95, TruckRatePerHour: 85},
			{MoveType: "local", DayBand: BandFridaySaturday, MoverRatePerHour: 105, TruckRatePerHour: 95},
			{MoveType: "intrastate", DayBand: BandMondayThursday, MoverRatePerHour: 110, TruckRatePerHour: 100},
			{MoveType: "intrastate", DayBand: BandFridaySaturday, MoverRatePerHour: 120, TruckRatePerHour: 110},
		},
		Materials: MaterialsConfig{
			RatePer1000Lbs: 5,
			TaxRate:        0.0625,
		},
		DisassemblyRules: []DisassemblyRule{
			{Name: "bed", Category: "bed", AddedMinutes: 30, MoversAffected: 1},
			{Name: "specialty_mattress", Category: "mattress", AddedMinutes: 15, MoversAffected: 1},
			{Name: "desk", Category: "desk", AddedMinutes: 20, MoversAffected: 1},
		},
		Office: &OfficeHours{Open: "08:00", Close: "18:00"},
	}
}
