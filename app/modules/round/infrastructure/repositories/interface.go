package rounddb

import (
	"context"

	"github.com/google/uuid"

	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
)

// Repository defines the contract for round persistence.
// All methods are context-aware for cancellation and timeout propagation.
//
// Error semantics:
//   - ErrRoundNotFound: record does not exist (GetRound, UpdateRound)
//   - Other errors: infrastructure failures (DB connection, query errors)
type Repository interface {
	CreateRound(ctx context.Context, round roundtypes.Round) error
	GetRound(ctx context.Context, roundID uuid.UUID) (roundtypes.Round, error)
	UpdateRound(ctx context.Context, round roundtypes.Round) error
	ListRounds(ctx context.Context, state roundtypes.RoundState) ([]roundtypes.Round, error)
}
