// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input normalization, engine orchestration,
// output serialization. The API NEVER performs pricing logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"moving-cost/core/catalog"
	"moving-cost/core/pricing"
	"moving-cost/internal/errors"
	"moving-cost/internal/logging"
)

// Server is the API server
type Server struct {
	engine  *pricing.Engine
	catalog *catalog.Catalog
	mux     *http.ServeMux
	version string
	tariff  string
}

// NewServer creates a new API server
func NewServer(engine *pricing.Engine, cat *catalog.Catalog, version, tariffVersion string) *Server {
	s := &Server{
		engine:  engine,
		catalog: cat,
		mux:     http.NewServeMux(),
		version: version,
		tariff:  tariffVersion,
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /estimate", s.handleEstimate)
	s.mux.HandleFunc("GET /health", s.handleHealth)

	// Supporting endpoints
	s.mux.HandleFunc("GET /version", s.handleVersion)
	s.mux.HandleFunc("GET /catalog", s.handleCatalog)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"tariff":  s.tariff,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "moving-cost",
		"tariff":      s.tariff,
		"api_version": "v1",
	}, http.StatusOK)
}

// handleCatalog handles GET /catalog, listing the priceable item names
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	type catalogItem struct {
		Name       string  `json:"name"`
		Category   string  `json:"category"`
		WeightLbs  float64 `json:"weight_lbs"`
		VolumeCuft float64 `json:"volume_cuft"`
	}

	entries := s.catalog.Entries()
	items := make([]catalogItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, catalogItem{
			Name:       e.Name,
			Category:   e.Category,
			WeightLbs:  e.WeightLbs,
			VolumeCuft: e.VolumeCuft,
		})
	}

	s.writeJSON(w, map[string]interface{}{
		"items": items,
		"count": len(items),
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError maps engine errors to the HTTP error envelope.
// Client errors (bad input, unknown items) are 400s; everything else is 500.
func (s *Server) writeError(w http.ResponseWriter, requestID string, err error) {
	status := http.StatusInternalServerError
	code := string(errors.TypeInternal)
	message := err.Error()

	if appErr, ok := err.(*errors.Error); ok {
		code = string(appErr.Type)
		if errors.IsClientError(err) {
			status = http.StatusBadRequest
		}
	}

	logging.Warn("request failed",
		zap.String("request_id", requestID),
		zap.String("code", code),
		zap.String("error", message),
	)

	s.writeJSON(w, &ErrorResponse{
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Status:    "error",
		Error:     ErrorDetail{Code: code, Message: message},
	}, status)
}

func generateRequestID() string {
	return uuid.NewString()
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	logging.Info("starting API server", zap.String("addr", addr))
	return http.ListenAndServe(addr, s)
}
