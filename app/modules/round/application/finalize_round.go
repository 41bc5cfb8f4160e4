package roundservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
	rounddb "github.com/fairway-collective/scorecard/app/modules/round/infrastructure/repositories"
	roundevents "github.com/fairway-collective/scorecard/internal/events/round"
)

// FinalizeRound closes a round to further score and press edits.
func (s *RoundService) FinalizeRound(ctx context.Context, roundID uuid.UUID) (FinalizeResult, error) {
	return withTelemetry(s, ctx, "FinalizeRound", roundID, func(ctx context.Context) (FinalizeResult, error) {
		round, err := s.repo.GetRound(ctx, roundID)
		if err != nil {
			if errors.Is(err, rounddb.ErrRoundNotFound) {
				return FinalizeResult{
					Failure: &roundevents.RoundErrorPayload{RoundID: roundID, Error: "round not found"},
				}, nil
			}
			return FinalizeResult{}, fmt.Errorf("failed to fetch round: %w", err)
		}

		if round.State == roundtypes.RoundStateFinalized {
			return FinalizeResult{
				Failure: &roundevents.RoundErrorPayload{RoundID: roundID, Error: "round is already finalized"},
			}, nil
		}

		round.State = roundtypes.RoundStateFinalized
		if err := s.repo.UpdateRound(ctx, round); err != nil {
			return FinalizeResult{}, fmt.Errorf("failed to finalize round: %w", err)
		}

		payload := roundevents.RoundFinalizedPayload{RoundID: roundID}
		if err := s.publishEvent(ctx, roundevents.RoundFinalized, payload); err != nil {
			return FinalizeResult{}, err
		}

		return FinalizeResult{Success: &payload}, nil
	})
}

// GetRound returns the stored round.
func (s *RoundService) GetRound(ctx context.Context, roundID uuid.UUID) (roundtypes.Round, error) {
	return s.repo.GetRound(ctx, roundID)
}

// ListRounds returns rounds filtered by state. An empty state lists everything.
func (s *RoundService) ListRounds(ctx context.Context, state roundtypes.RoundState) ([]roundtypes.Round, error) {
	return s.repo.ListRounds(ctx, state)
}
