package settlementservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
	settlement "github.com/fairway-collective/scorecard/app/modules/settlement/domain"
	"github.com/fairway-collective/scorecard/internal/attr"
	roundevents "github.com/fairway-collective/scorecard/internal/events/round"
)

// ComputeSettlement runs the round's settlement and announces the result.
// It is idempotent: recomputing after every score submission is the normal
// mode of operation.
func (s *SettlementService) ComputeSettlement(ctx context.Context, roundID uuid.UUID) (SettlementResult, error) {
	return withTelemetry(s, ctx, "ComputeSettlement", roundID, func(ctx context.Context) (SettlementResult, error) {
		session, err := s.session(ctx, roundID)
		if err != nil {
			if errors.Is(err, ErrRoundNotFound) {
				return SettlementResult{
					Failure: &roundevents.RoundErrorPayload{RoundID: roundID, Error: "round not found"},
				}, nil
			}
			return SettlementResult{}, err
		}

		table, err := s.settings.LoadStablefordTable(ctx)
		if err != nil {
			return SettlementResult{}, err
		}

		result, err := session.Settle(table)
		if err != nil {
			return SettlementResult{
				Failure: &roundevents.RoundErrorPayload{RoundID: roundID, Error: err.Error()},
			}, nil
		}

		s.metrics.RecordSettlementComputed(ctx, string(result.Format))

		payload := roundevents.SettlementUpdatedPayload{RoundID: roundID, Format: result.Format}
		if err := s.publishEvent(ctx, roundevents.SettlementUpdated, payload); err != nil {
			s.logger.WarnContext(ctx, "Settlement computed but event publish failed",
				attr.RoundID("round_id", roundID),
				attr.Error(err),
			)
		}

		return SettlementResult{Success: &result}, nil
	})
}

// MatchStatus returns the running match-play status for a segment.
func (s *SettlementService) MatchStatus(ctx context.Context, roundID uuid.UUID, segment roundtypes.Segment) (settlement.MatchStatus, error) {
	session, err := s.session(ctx, roundID)
	if err != nil {
		return settlement.MatchStatus{}, err
	}
	status, err := session.MatchStatusForSegment(segment)
	if err != nil {
		return settlement.MatchStatus{}, fmt.Errorf("failed to compute match status: %w", err)
	}
	return status, nil
}

// PressOpportunities lists the presses currently available on a segment.
func (s *SettlementService) PressOpportunities(ctx context.Context, roundID uuid.UUID, segment roundtypes.Segment) ([]settlement.PressOpportunity, error) {
	session, err := s.session(ctx, roundID)
	if err != nil {
		return nil, err
	}
	return session.PressOpportunities(segment), nil
}

// StablefordTable returns the configured point table.
func (s *SettlementService) StablefordTable(ctx context.Context) (settlement.StablefordTable, error) {
	return s.settings.LoadStablefordTable(ctx)
}

// UpdateStablefordTable validates and persists a new point table.
func (s *SettlementService) UpdateStablefordTable(ctx context.Context, table settlement.StablefordTable) error {
	if err := table.Validate(); err != nil {
		return fmt.Errorf("invalid stableford table: %w", err)
	}
	if err := s.settings.SaveStablefordTable(ctx, table); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Stableford table updated", attr.ExtractCorrelationID(ctx))
	return nil
}

// ResetStablefordTable restores the default point table.
func (s *SettlementService) ResetStablefordTable(ctx context.Context) error {
	return s.settings.ResetStablefordTable(ctx)
}
