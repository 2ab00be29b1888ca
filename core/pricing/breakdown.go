// Package pricing - Estimate breakdown types
package pricing

import (
	"github.com/shopspring/decimal"

	"moving-cost/core/inventory"
	"moving-cost/core/rates"
)

// CostUnit is a single billable line item with its calculation lineage
type CostUnit struct {
	// ID identifies the line item
	ID string `json:"id"`

	// Label is a human-readable label
	Label string `json:"label"`

	// Measure is the billing unit (hours, units)
	Measure string `json:"measure"`

	// Quantity is the billed quantity
	Quantity decimal.Decimal `json:"quantity"`

	// Rate is the unit price
	Rate decimal.Decimal `json:"rate"`

	// Amount is the calculated cost
	Amount decimal.Decimal `json:"amount"`

	// Formula explains how the amount was derived
	Formula string `json:"formula"`
}

// Estimate is the priced breakdown returned to the caller.
// Transient: computed per request, never persisted.
type Estimate struct {
	// TotalCost = labor + materials + tax
	TotalCost decimal.Decimal `json:"total_cost"`

	// LaborCost covers movers and trucks over the billable hours
	LaborCost decimal.Decimal `json:"labor_cost"`

	// MaterialsCharge covers protective packing materials
	MaterialsCharge decimal.Decimal `json:"materials_charge"`

	// Tax applies to the materials charge only
	Tax decimal.Decimal `json:"tax"`

	// Currency is the quoting currency
	Currency string `json:"currency"`

	// LaborHours is the billable total after the minimum-charge floor
	LaborHours float64 `json:"labor_hours"`

	// WorkHours is the loading/unloading labor before travel and extras
	WorkHours float64 `json:"work_hours"`

	// TravelHours is the charged travel time
	TravelHours float64 `json:"travel_hours"`

	// DisassemblyHours covers take-apart/reassembly triggers
	DisassemblyHours float64 `json:"disassembly_hours"`

	// Movers is the crew size
	Movers int `json:"movers"`

	// Trucks is the truck count
	Trucks int `json:"trucks"`

	// MoveType is local or intrastate
	MoveType rates.MoveType `json:"move_type"`

	TotalWeightLbs  float64 `json:"total_weight_lbs"`
	TotalVolumeCuft float64 `json:"total_volume_cuft"`

	// TariffVersion records which tariff priced the move
	TariffVersion string `json:"tariff_version"`

	// Lines is the resolved inventory breakdown
	Lines []*inventory.Line `json:"-"`

	// Units is the line-item cost breakdown
	Units []CostUnit `json:"units"`
}
