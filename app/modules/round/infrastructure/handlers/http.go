// Package roundhandlers exposes the round service over HTTP.
package roundhandlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	roundservice "github.com/fairway-collective/scorecard/app/modules/round/application"
	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
	rounddb "github.com/fairway-collective/scorecard/app/modules/round/infrastructure/repositories"
	"github.com/fairway-collective/scorecard/internal/attr"
)

// Handlers holds the HTTP handlers for the round module.
type Handlers struct {
	service roundservice.Service
	logger  *slog.Logger
}

// NewHandlers creates round HTTP handlers.
func NewHandlers(service roundservice.Service, logger *slog.Logger) *Handlers {
	return &Handlers{service: service, logger: logger}
}

// RegisterRoutes mounts the round endpoints on the given router.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Post("/rounds", h.CreateRound)
	r.Get("/rounds", h.ListRounds)
	r.Get("/rounds/{roundID}", h.GetRound)
	r.Post("/rounds/{roundID}/scores", h.SubmitScore)
	r.Post("/rounds/{roundID}/presses", h.CreatePress)
	r.Post("/rounds/{roundID}/finalize", h.FinalizeRound)
}

// CreateRound opens a new round.
func (h *Handlers) CreateRound(w http.ResponseWriter, r *http.Request) {
	var input roundservice.CreateRoundInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	result, err := h.service.CreateRound(r.Context(), input)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create round: %v", err), http.StatusInternalServerError)
		return
	}
	if result.IsFailure() {
		writeJSON(h.logger, w, http.StatusBadRequest, result.Failure)
		return
	}
	writeJSON(h.logger, w, http.StatusCreated, result.Success)
}

// GetRound returns a stored round.
func (h *Handlers) GetRound(w http.ResponseWriter, r *http.Request) {
	roundID, ok := parseRoundID(w, r)
	if !ok {
		return
	}

	round, err := h.service.GetRound(r.Context(), roundID)
	if err != nil {
		if errors.Is(err, rounddb.ErrRoundNotFound) {
			http.Error(w, "Round not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to fetch round: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(h.logger, w, http.StatusOK, round)
}

// ListRounds returns rounds, optionally filtered by ?state=.
func (h *Handlers) ListRounds(w http.ResponseWriter, r *http.Request) {
	state := roundtypes.RoundState(r.URL.Query().Get("state"))
	rounds, err := h.service.ListRounds(r.Context(), state)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list rounds: %v", err), http.StatusInternalServerError)
		return
	}
	if rounds == nil {
		rounds = []roundtypes.Round{}
	}
	writeJSON(h.logger, w, http.StatusOK, rounds)
}

type submitScoreRequest struct {
	PlayerID roundtypes.PlayerID `json:"player_id"`
	Hole     int                 `json:"hole"`
	Strokes  int                 `json:"strokes"`
}

// SubmitScore records or corrects a gross score.
func (h *Handlers) SubmitScore(w http.ResponseWriter, r *http.Request) {
	roundID, ok := parseRoundID(w, r)
	if !ok {
		return
	}

	var req submitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	result, err := h.service.SubmitScore(r.Context(), roundID, req.PlayerID, req.Hole, req.Strokes)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to submit score: %v", err), http.StatusInternalServerError)
		return
	}
	if result.IsFailure() {
		writeJSON(h.logger, w, http.StatusBadRequest, result.Failure)
		return
	}
	writeJSON(h.logger, w, http.StatusOK, result.Success)
}

type createPressRequest struct {
	Segment        roundtypes.Segment `json:"segment"`
	StartingHole   int                `json:"starting_hole"`
	InitiatingTeam string             `json:"initiating_team"`
}

// CreatePress accepts a Nassau press.
func (h *Handlers) CreatePress(w http.ResponseWriter, r *http.Request) {
	roundID, ok := parseRoundID(w, r)
	if !ok {
		return
	}

	var req createPressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}

	result, err := h.service.CreatePress(r.Context(), roundID, req.Segment, req.StartingHole, req.InitiatingTeam)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create press: %v", err), http.StatusInternalServerError)
		return
	}
	if result.IsFailure() {
		writeJSON(h.logger, w, http.StatusBadRequest, result.Failure)
		return
	}
	writeJSON(h.logger, w, http.StatusCreated, result.Success)
}

// FinalizeRound closes a round.
func (h *Handlers) FinalizeRound(w http.ResponseWriter, r *http.Request) {
	roundID, ok := parseRoundID(w, r)
	if !ok {
		return
	}

	result, err := h.service.FinalizeRound(r.Context(), roundID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to finalize round: %v", err), http.StatusInternalServerError)
		return
	}
	if result.IsFailure() {
		writeJSON(h.logger, w, http.StatusBadRequest, result.Failure)
		return
	}
	writeJSON(h.logger, w, http.StatusOK, result.Success)
}

func parseRoundID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	roundID, err := uuid.Parse(chi.URLParam(r, "roundID"))
	if err != nil {
		http.Error(w, "Invalid round ID", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return roundID, true
}

func writeJSON(logger *slog.Logger, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", attr.Error(err))
	}
}
