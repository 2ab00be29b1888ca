// Package api - Request and response types
package api

import (
	"encoding/json"
	"time"
)

// EstimateRequest is the inbound quote request.
// Items is kept raw so the normalizer can accept the shapes real callers
// send: an object of label to quantity, an array of {name, qty} objects,
// an array of bare labels, or a single "label: qty, label: qty" string.
type EstimateRequest struct {
	Items         json.RawMessage `json:"items"`
	DistanceMiles float64         `json:"distance_miles"`
	MoveDate      string          `json:"move_date"`
	Origin        *Location       `json:"origin,omitempty"`
	Destination   *Location       `json:"destination,omitempty"`
}

// Location describes access conditions at one end of the move
type Location struct {
	Floor       int    `json:"floor,omitempty"`
	HasElevator bool   `json:"has_elevator,omitempty"`
	Access      string `json:"access,omitempty"`
}

// ItemLine is one resolved inventory row in the response
type ItemLine struct {
	Label       string  `json:"label"`
	ResolvedAs  string  `json:"resolved_as"`
	Quantity    int     `json:"quantity"`
	WeightLbs   float64 `json:"weight_lbs"`
	VolumeCuft  float64 `json:"volume_cuft"`
	Similarity  float64 `json:"similarity"`
	Approximate bool    `json:"approximate,omitempty"`
}

// CostLine is one billable line item with its calculation lineage
type CostLine struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Amount  string `json:"amount"`
	Formula string `json:"formula"`
}

// EstimateResponse is the quote returned to the caller.
// Quotes are transient: recomputed per request, never stored.
type EstimateResponse struct {
	QuoteID   string    `json:"quote_id"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`

	TotalCost       string `json:"total_cost"`
	LaborCost       string `json:"labor_cost"`
	MaterialsCharge string `json:"materials_charge"`
	Tax             string `json:"tax"`
	Currency        string `json:"currency"`

	LaborHours       float64 `json:"labor_hours"`
	WorkHours        float64 `json:"work_hours"`
	TravelHours      float64 `json:"travel_hours"`
	DisassemblyHours float64 `json:"disassembly_hours"`
	Movers           int     `json:"movers"`
	Trucks           int     `json:"trucks"`
	MoveType         string  `json:"move_type"`

	TotalWeightLbs  float64 `json:"total_weight_lbs"`
	TotalVolumeCuft float64 `json:"total_volume_cuft"`
	TariffVersion   string  `json:"tariff_version"`

	Items []ItemLine `json:"items"`
	Costs []CostLine `json:"costs"`
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	RequestID string      `json:"request_id"`
	Timestamp time.Time   `json:"timestamp"`
	Status    string      `json:"status"`
	Error     ErrorDetail `json:"error"`
}

// ErrorDetail carries the machine-readable error code
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
