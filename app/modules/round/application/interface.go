package roundservice

import (
	"context"

	"github.com/google/uuid"

	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
	roundevents "github.com/fairway-collective/scorecard/internal/events/round"
	"github.com/fairway-collective/scorecard/internal/results"
)

// Typed operation results. The success payload doubles as the published
// event payload.
type (
	CreateRoundResult     = results.OperationResult[roundevents.RoundCreatedPayload, roundevents.RoundErrorPayload]
	ScoreSubmissionResult = results.OperationResult[roundevents.ScoreSubmittedPayload, roundevents.RoundErrorPayload]
	PressResult           = results.OperationResult[roundevents.PressCreatedPayload, roundevents.RoundErrorPayload]
	FinalizeResult        = results.OperationResult[roundevents.RoundFinalizedPayload, roundevents.RoundErrorPayload]
)

// Service defines the round module's application surface.
type Service interface {
	CreateRound(ctx context.Context, input CreateRoundInput) (CreateRoundResult, error)
	SubmitScore(ctx context.Context, roundID uuid.UUID, playerID roundtypes.PlayerID, hole, strokes int) (ScoreSubmissionResult, error)
	CreatePress(ctx context.Context, roundID uuid.UUID, segment roundtypes.Segment, startingHole int, initiatingTeam string) (PressResult, error)
	FinalizeRound(ctx context.Context, roundID uuid.UUID) (FinalizeResult, error)
	GetRound(ctx context.Context, roundID uuid.UUID) (roundtypes.Round, error)
	ListRounds(ctx context.Context, state roundtypes.RoundState) ([]roundtypes.Round, error)
}
