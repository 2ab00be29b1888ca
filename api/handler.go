// Package api - HTTP handler for quote estimation
// This handler wraps the engine - it contains NO pricing logic.
// All pricing is delegated to core packages.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"moving-cost/core/pricing"
	"moving-cost/internal/errors"
	"moving-cost/internal/logging"
)

// handleEstimate handles POST /estimate
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	requestID := generateRequestID()
	start := time.Now()

	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, requestID, errors.Input("invalid JSON body: "+err.Error()))
		return
	}

	engineReq, err := s.toEngineRequest(&req)
	if err != nil {
		s.writeError(w, requestID, err)
		return
	}

	estimate, err := s.engine.Price(engineReq)
	if err != nil {
		s.writeError(w, requestID, err)
		return
	}

	resp := buildResponse(requestID, estimate)
	logging.Info("estimate served",
		zap.String("request_id", requestID),
		zap.String("quote_id", resp.QuoteID),
		zap.String("total", resp.TotalCost),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	s.writeJSON(w, resp, http.StatusOK)
}

// toEngineRequest normalizes the wire request into the engine's input
func (s *Server) toEngineRequest(req *EstimateRequest) (*pricing.Request, error) {
	items, err := normalizeItems(req.Items)
	if err != nil {
		return nil, err
	}

	moveDate, err := ParseDate(req.MoveDate)
	if err != nil {
		return nil, err
	}

	return &pricing.Request{
		Items:            items,
		DistanceMiles:    req.DistanceMiles,
		MoveDate:         moveDate,
		AccessConditions: accessConditions(req.Origin, req.Destination),
	}, nil
}

// buildResponse serializes an estimate into the response envelope.
// The quote ID is minted here, not in the engine, so pricing stays a pure
// function of its inputs.
func buildResponse(requestID string, est *pricing.Estimate) *EstimateResponse {
	items := make([]ItemLine, 0, len(est.Lines))
	for _, line := range est.Lines {
		items = append(items, ItemLine{
			Label:       line.Label,
			ResolvedAs:  line.Entry.Name,
			Quantity:    line.Quantity,
			WeightLbs:   line.TotalWeightLbs(),
			VolumeCuft:  line.TotalVolumeCuft(),
			Similarity:  line.Similarity,
			Approximate: line.Similarity < 1,
		})
	}

	costs := make([]CostLine, 0, len(est.Units))
	for _, unit := range est.Units {
		costs = append(costs, CostLine{
			ID:      unit.ID,
			Label:   unit.Label,
			Amount:  unit.Amount.StringFixed(2),
			Formula: unit.Formula,
		})
	}

	return &EstimateResponse{
		QuoteID:   generateRequestID(),
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Status:    "success",

		TotalCost:       est.TotalCost.StringFixed(2),
		LaborCost:       est.LaborCost.StringFixed(2),
		MaterialsCharge: est.MaterialsCharge.StringFixed(2),
		Tax:             est.Tax.StringFixed(2),
		Currency:        est.Currency,

		LaborHours:       est.LaborHours,
		WorkHours:        est.WorkHours,
		TravelHours:      est.TravelHours,
		DisassemblyHours: est.DisassemblyHours,
		Movers:           est.Movers,
		Trucks:           est.Trucks,
		MoveType:         string(est.MoveType),

		TotalWeightLbs:  est.TotalWeightLbs,
		TotalVolumeCuft: est.TotalVolumeCuft,
		TariffVersion:   est.TariffVersion,

		Items: items,
		Costs: costs,
	}
}
