// Package pricing - The estimation engine
// Prices a move from an aggregated inventory, a distance and a date by
// walking the tariff's layered rule set. The engine is a pure function of
// (tariff, request, catalog): no I/O, no clock, no randomness.
package pricing

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"moving-cost/core/inventory"
	"moving-cost/core/rates"
	"moving-cost/internal/errors"
)

// Request is the canonical estimation input produced by the transport layer
type Request struct {
	// Items maps free-text item labels to quantities
	Items map[string]int

	// DistanceMiles is the caller-supplied origin-to-destination distance
	DistanceMiles float64

	// MoveDate is the requested move date
	MoveDate time.Time

	// AccessConditions are optional access tags (stairs, elevator, storage,
	// dock) used to select the throughput rule; empty means base rate
	AccessConditions []string
}

// Engine orchestrates the aggregator and the tariff
type Engine struct {
	table      *rates.Table
	aggregator *inventory.Aggregator
	currency   string
}

// NewEngine creates a pricing engine over a validated tariff
func NewEngine(table *rates.Table, aggregator *inventory.Aggregator, currency string) *Engine {
	return &Engine{
		table:      table,
		aggregator: aggregator,
		currency:   currency,
	}
}

// Price computes the full estimate for a request.
// Errors are client errors (invalid quantity, unknown item, bad distance or
// date) or propagated aggregation failures; the engine never retries.
func (e *Engine) Price(req *Request) (*Estimate, error) {
	if req.DistanceMiles < 0 {
		return nil, errors.InvalidDistance(req.DistanceMiles)
	}
	if req.MoveDate.IsZero() {
		return nil, errors.InvalidDate("", nil)
	}

	agg, lines, err := e.aggregator.Aggregate(req.Items)
	if err != nil {
		return nil, err
	}

	// Step 1-2: throughput rule, base labor hours
	rule := e.table.ThroughputFor(req.AccessConditions)
	if rule == nil {
		return nil, errors.New(errors.TypeConfig, "no throughput rule matched")
	}
	workHours := agg.TotalWeightLbs / rule.LbsPerHour

	// Step 3-4: crew and fleet sizing
	movers := e.table.MoverCount(agg.TotalWeightLbs)
	trucks := e.table.TruckCount(agg.TotalWeightLbs)

	// Step 5: travel time
	moveType := e.table.MoveTypeFor(req.DistanceMiles)
	travelHours := e.travelHours(moveType, req.DistanceMiles)

	// Step 6: disassembly triggers, once per category
	categories := make(map[string]bool)
	for _, line := range lines {
		categories[line.Entry.Category] = true
	}
	disassemblyHours := 0.0
	for _, d := range e.table.DisassemblyFor(categories) {
		disassemblyHours += d.AddedMinutes / 60
	}

	// Step 7: billable hours with minimum-charge floor
	totalHours := workHours + travelHours + disassemblyHours
	billableHours := math.Max(totalHours, e.table.Travel.MinimumChargeHours)

	// Step 8-9: labor cost from the (move type, day band) rate card
	card := e.table.RateCardFor(moveType, req.MoveDate)
	if card == nil {
		return nil, errors.Newf(errors.TypeConfig, "no rate card for %s move", moveType)
	}
	hours := decimal.NewFromFloat(billableHours)
	moverRate := decimal.NewFromFloat(card.MoverRatePerHour)
	truckRate := decimal.NewFromFloat(card.TruckRatePerHour)
	moverCost := hours.Mul(moverRate).Mul(decimal.NewFromInt(int64(movers)))
	truckCost := hours.Mul(truckRate).Mul(decimal.NewFromInt(int64(trucks)))
	laborCost := moverCost.Add(truckCost).Round(2)

	// Step 10-11: materials and tax (tax never applies to labor)
	materialUnits := int64(math.Ceil(agg.TotalWeightLbs / 1000))
	materialsRate := decimal.NewFromFloat(e.table.Materials.RatePer1000Lbs)
	materials := materialsRate.Mul(decimal.NewFromInt(materialUnits)).Round(2)
	tax := materials.Mul(decimal.NewFromFloat(e.table.Materials.TaxRate)).Round(2)

	// Step 12: total
	total := laborCost.Add(materials).Add(tax)

	est := &Estimate{
		TotalCost:        total,
		LaborCost:        laborCost,
		MaterialsCharge:  materials,
		Tax:              tax,
		Currency:         e.currency,
		LaborHours:       billableHours,
		WorkHours:        workHours,
		TravelHours:      travelHours,
		DisassemblyHours: disassemblyHours,
		Movers:           movers,
		Trucks:           trucks,
		MoveType:         moveType,
		TotalWeightLbs:   agg.TotalWeightLbs,
		TotalVolumeCuft:  agg.TotalVolumeCuft,
		TariffVersion:    e.table.Version,
		Lines:            lines,
	}
	est.Units = e.buildUnits(est, card, materialUnits, materialsRate)
	return est, nil
}

// travelHours applies the travel-time policy.
// Local moves add a fixed extra duration on top of the base travel charge.
// Intrastate moves charge three drive legs (warehouse to origin, origin to
// destination, destination to warehouse); each leg is floored at the
// configured minimum and rounded up to the rounding granularity.
func (e *Engine) travelHours(moveType rates.MoveType, distanceMiles float64) float64 {
	tv := e.table.Travel
	if moveType == rates.MoveLocal {
		return tv.TravelChargeHours + tv.LocalExtraMinutes/60
	}

	legs := []float64{tv.WarehouseLegMiles, distanceMiles, tv.WarehouseLegMiles}
	minutes := 0.0
	for _, miles := range legs {
		leg := miles / tv.AverageSpeedMph * 60
		if leg < tv.MinLegMinutes {
			leg = tv.MinLegMinutes
		}
		leg = math.Ceil(leg/tv.DriveTimeRoundingMinutes) * tv.DriveTimeRoundingMinutes
		minutes += leg
	}
	return tv.TravelChargeHours + minutes/60
}

func (e *Engine) buildUnits(est *Estimate, card *rates.RateCard, materialUnits int64, materialsRate decimal.Decimal) []CostUnit {
	hours := decimal.NewFromFloat(est.LaborHours)

	return []CostUnit{
		{
			ID:       "labor",
			Label:    fmt.Sprintf("Labor (%d movers, %d trucks, %s %s)", est.Movers, est.Trucks, est.MoveType, card.DayBand),
			Measure:  "hours",
			Quantity: hours,
			Rate: decimal.NewFromFloat(card.MoverRatePerHour).Mul(decimal.NewFromInt(int64(est.Movers))).
				Add(decimal.NewFromFloat(card.TruckRatePerHour).Mul(decimal.NewFromInt(int64(est.Trucks)))),
			Amount:  est.LaborCost,
			Formula: fmt.Sprintf("%.2f hours * (%d movers * $%.2f + %d trucks * $%.2f)", est.LaborHours, est.Movers, card.MoverRatePerHour, est.Trucks, card.TruckRatePerHour),
		},
		{
			ID:       "materials",
			Label:    "Protective materials",
			Measure:  "1000-lb units",
			Quantity: decimal.NewFromInt(materialUnits),
			Rate:     materialsRate,
			Amount:   est.MaterialsCharge,
			Formula:  fmt.Sprintf("ceil(%.0f lbs / 1000) * $%.2f", est.TotalWeightLbs, e.table.Materials.RatePer1000Lbs),
		},
		{
			ID:       "tax",
			Label:    "Sales tax (materials only)",
			Measure:  "rate",
			Quantity: est.MaterialsCharge,
			Rate:     decimal.NewFromFloat(e.table.Materials.TaxRate),
			Amount:   est.Tax,
			Formula:  fmt.Sprintf("$%s materials * %.4f", est.MaterialsCharge.StringFixed(2), e.table.Materials.TaxRate),
		},
	}
}
