package settlementservice

import (
	"context"

	"github.com/google/uuid"

	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
	settlement "github.com/fairway-collective/scorecard/app/modules/settlement/domain"
	roundevents "github.com/fairway-collective/scorecard/internal/events/round"
	"github.com/fairway-collective/scorecard/internal/results"
)

// SettlementResult is the outcome of a settlement computation.
type SettlementResult = results.OperationResult[settlement.Settlement, roundevents.RoundErrorPayload]

// Service defines the settlement module's application surface.
type Service interface {
	ComputeSettlement(ctx context.Context, roundID uuid.UUID) (SettlementResult, error)

	Scorecard(ctx context.Context, roundID uuid.UUID) (Scorecard, error)
	MatchStatus(ctx context.Context, roundID uuid.UUID, segment roundtypes.Segment) (settlement.MatchStatus, error)
	PressOpportunities(ctx context.Context, roundID uuid.UUID, segment roundtypes.Segment) ([]settlement.PressOpportunity, error)

	StablefordTable(ctx context.Context) (settlement.StablefordTable, error)
	UpdateStablefordTable(ctx context.Context, table settlement.StablefordTable) error
	ResetStablefordTable(ctx context.Context) error

	ExportScorecardXLSX(ctx context.Context, roundID uuid.UUID) ([]byte, error)
	PayoutChartPNG(ctx context.Context, roundID uuid.UUID) ([]byte, error)
}
