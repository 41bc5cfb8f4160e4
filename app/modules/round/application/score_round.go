package roundservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	coursetypes "github.com/fairway-collective/scorecard/app/modules/course/domain/types"
	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
	rounddb "github.com/fairway-collective/scorecard/app/modules/round/infrastructure/repositories"
	roundevents "github.com/fairway-collective/scorecard/internal/events/round"
)

// SubmitScore records a gross score for a participant on a hole. Submitting
// again for the same hole overwrites the earlier score, which is how
// corrections work.
func (s *RoundService) SubmitScore(ctx context.Context, roundID uuid.UUID, playerID roundtypes.PlayerID, hole, strokes int) (ScoreSubmissionResult, error) {
	return withTelemetry(s, ctx, "SubmitScore", roundID, func(ctx context.Context) (ScoreSubmissionResult, error) {
		fail := func(msg string) ScoreSubmissionResult {
			return ScoreSubmissionResult{
				Failure: &roundevents.RoundErrorPayload{RoundID: roundID, Error: msg},
			}
		}

		if hole < 1 || hole > coursetypes.HoleCount {
			return fail(fmt.Sprintf("hole %d is out of range", hole)), nil
		}
		if strokes < 1 {
			return fail(fmt.Sprintf("strokes must be positive, got %d", strokes)), nil
		}

		dbStart := time.Now()
		round, err := s.repo.GetRound(ctx, roundID)
		s.metrics.RecordDBQueryDuration(ctx, time.Since(dbStart))
		if err != nil {
			if errors.Is(err, rounddb.ErrRoundNotFound) {
				return fail("round not found"), nil
			}
			return ScoreSubmissionResult{}, fmt.Errorf("failed to fetch round: %w", err)
		}

		if round.State == roundtypes.RoundStateFinalized {
			return fail("round is finalized"), nil
		}
		if _, ok := round.Participant(playerID); !ok {
			return fail(fmt.Sprintf("player %s is not in this round", playerID)), nil
		}

		round.RecordScore(playerID, hole, strokes)
		if err := s.repo.UpdateRound(ctx, round); err != nil {
			return ScoreSubmissionResult{}, fmt.Errorf("failed to store score: %w", err)
		}

		payload := roundevents.ScoreSubmittedPayload{
			RoundID:  roundID,
			PlayerID: playerID,
			Hole:     hole,
			Strokes:  strokes,
		}
		if err := s.publishEvent(ctx, roundevents.ScoreSubmitted, payload); err != nil {
			return ScoreSubmissionResult{}, err
		}

		return ScoreSubmissionResult{Success: &payload}, nil
	})
}
