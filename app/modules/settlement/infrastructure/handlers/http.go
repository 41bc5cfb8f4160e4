// Package settlementhandlers exposes settlement queries over HTTP.
package settlementhandlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
	settlementservice "github.com/fairway-collective/scorecard/app/modules/settlement/application"
	settlement "github.com/fairway-collective/scorecard/app/modules/settlement/domain"
	"github.com/fairway-collective/scorecard/internal/attr"
)

// Handlers holds the HTTP handlers for the settlement module.
type Handlers struct {
	service settlementservice.Service
	logger  *slog.Logger
}

// NewHandlers creates settlement HTTP handlers.
func NewHandlers(service settlementservice.Service, logger *slog.Logger) *Handlers {
	return &Handlers{service: service, logger: logger}
}

// RegisterRoutes mounts the settlement endpoints on the given router.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/rounds/{roundID}/settlement", h.GetSettlement)
	r.Get("/rounds/{roundID}/scorecard", h.GetScorecard)
	r.Get("/rounds/{roundID}/scorecard.xlsx", h.ExportScorecard)
	r.Get("/rounds/{roundID}/settlement/chart.png", h.PayoutChart)
	r.Get("/rounds/{roundID}/match-status", h.GetMatchStatus)
	r.Get("/rounds/{roundID}/press-opportunities", h.GetPressOpportunities)
	r.Get("/settings/stableford", h.GetStablefordTable)
	r.Put("/settings/stableford", h.UpdateStablefordTable)
	r.Delete("/settings/stableford", h.ResetStablefordTable)
}

// GetSettlement computes and returns the round's settlement.
func (h *Handlers) GetSettlement(w http.ResponseWriter, r *http.Request) {
	roundID, ok := h.parseRoundID(w, r)
	if !ok {
		return
	}

	result, err := h.service.ComputeSettlement(r.Context(), roundID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to compute settlement: %v", err), http.StatusInternalServerError)
		return
	}
	if result.IsFailure() {
		h.writeJSON(w, http.StatusBadRequest, result.Failure)
		return
	}
	h.writeJSON(w, http.StatusOK, result.Success)
}

// GetScorecard returns the per-hole scorecard.
func (h *Handlers) GetScorecard(w http.ResponseWriter, r *http.Request) {
	roundID, ok := h.parseRoundID(w, r)
	if !ok {
		return
	}

	card, err := h.service.Scorecard(r.Context(), roundID)
	if err != nil {
		h.writeLookupError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, card)
}

// ExportScorecard streams the scorecard as an xlsx workbook.
func (h *Handlers) ExportScorecard(w http.ResponseWriter, r *http.Request) {
	roundID, ok := h.parseRoundID(w, r)
	if !ok {
		return
	}

	data, err := h.service.ExportScorecardXLSX(r.Context(), roundID)
	if err != nil {
		h.writeLookupError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "scorecard-"+roundID.String()+".xlsx"))
	if _, err := w.Write(data); err != nil {
		h.logger.Error("Failed to write workbook response", attr.Error(err))
	}
}

// PayoutChart streams the settlement standings as a PNG bar chart.
func (h *Handlers) PayoutChart(w http.ResponseWriter, r *http.Request) {
	roundID, ok := h.parseRoundID(w, r)
	if !ok {
		return
	}

	png, err := h.service.PayoutChartPNG(r.Context(), roundID)
	if err != nil {
		h.writeLookupError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(png); err != nil {
		h.logger.Error("Failed to write chart response", attr.Error(err))
	}
}

// GetMatchStatus returns the running match status for ?segment= (default OVERALL).
func (h *Handlers) GetMatchStatus(w http.ResponseWriter, r *http.Request) {
	roundID, ok := h.parseRoundID(w, r)
	if !ok {
		return
	}
	segment := querySegment(r)

	status, err := h.service.MatchStatus(r.Context(), roundID, segment)
	if err != nil {
		h.writeLookupError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, status)
}

// GetPressOpportunities lists the presses available on ?segment= (default FRONT).
func (h *Handlers) GetPressOpportunities(w http.ResponseWriter, r *http.Request) {
	roundID, ok := h.parseRoundID(w, r)
	if !ok {
		return
	}
	segment := roundtypes.Segment(r.URL.Query().Get("segment"))
	if segment == "" {
		segment = roundtypes.SegmentFront
	}

	opportunities, err := h.service.PressOpportunities(r.Context(), roundID, segment)
	if err != nil {
		h.writeLookupError(w, err)
		return
	}
	if opportunities == nil {
		opportunities = []settlement.PressOpportunity{}
	}
	h.writeJSON(w, http.StatusOK, opportunities)
}

// GetStablefordTable returns the configured point table.
func (h *Handlers) GetStablefordTable(w http.ResponseWriter, r *http.Request) {
	table, err := h.service.StablefordTable(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to load stableford table: %v", err), http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, table)
}

// UpdateStablefordTable replaces the configured point table.
func (h *Handlers) UpdateStablefordTable(w http.ResponseWriter, r *http.Request) {
	var table settlement.StablefordTable
	if err := json.NewDecoder(r.Body).Decode(&table); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateStablefordTable(r.Context(), table); err != nil {
		http.Error(w, fmt.Sprintf("Failed to update stableford table: %v", err), http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, table)
}

// ResetStablefordTable restores the default point table.
func (h *Handlers) ResetStablefordTable(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ResetStablefordTable(r.Context()); err != nil {
		http.Error(w, fmt.Sprintf("Failed to reset stableford table: %v", err), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func querySegment(r *http.Request) roundtypes.Segment {
	segment := roundtypes.Segment(r.URL.Query().Get("segment"))
	if segment == "" {
		return roundtypes.SegmentOverall
	}
	return segment
}

func (h *Handlers) parseRoundID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	roundID, err := uuid.Parse(chi.URLParam(r, "roundID"))
	if err != nil {
		http.Error(w, "Invalid round ID", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return roundID, true
}

func (h *Handlers) writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, settlementservice.ErrRoundNotFound) {
		http.Error(w, "Round not found", http.StatusNotFound)
		return
	}
	http.Error(w, fmt.Sprintf("Request failed: %v", err), http.StatusInternalServerError)
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Failed to encode response", attr.Error(err))
	}
}
