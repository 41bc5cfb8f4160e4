package roundservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
	rounddb "github.com/fairway-collective/scorecard/app/modules/round/infrastructure/repositories"
	settlement "github.com/fairway-collective/scorecard/app/modules/settlement/domain"
	roundevents "github.com/fairway-collective/scorecard/internal/events/round"
)

// CreatePress accepts a Nassau press if the initiating team is currently
// losing the pressed contest and the press starts on the next undecided hole.
func (s *RoundService) CreatePress(ctx context.Context, roundID uuid.UUID, segment roundtypes.Segment, startingHole int, initiatingTeam string) (PressResult, error) {
	return withTelemetry(s, ctx, "CreatePress", roundID, func(ctx context.Context) (PressResult, error) {
		fail := func(msg string) PressResult {
			return PressResult{
				Failure: &roundevents.RoundErrorPayload{RoundID: roundID, Error: msg},
			}
		}

		round, err := s.repo.GetRound(ctx, roundID)
		if err != nil {
			if errors.Is(err, rounddb.ErrRoundNotFound) {
				return fail("round not found"), nil
			}
			return PressResult{}, fmt.Errorf("failed to fetch round: %w", err)
		}

		if round.Settings.Format != roundtypes.FormatNassau {
			return fail(fmt.Sprintf("presses require the %s format", roundtypes.FormatNassau)), nil
		}
		if round.State == roundtypes.RoundStateFinalized {
			return fail("round is finalized"), nil
		}

		course, err := s.courses.GetCourse(ctx, round.CourseID)
		if err != nil {
			return PressResult{}, fmt.Errorf("failed to fetch course: %w", err)
		}

		session := settlement.NewSession(course, round)
		if err := session.ValidatePress(segment, startingHole, initiatingTeam); err != nil {
			return fail(err.Error()), nil
		}

		press := roundtypes.Press{
			ID:             uuid.New(),
			Segment:        segment,
			StartingHole:   startingHole,
			InitiatingTeam: initiatingTeam,
			CreatedAt:      time.Now().UTC(),
		}
		round.Presses = append(round.Presses, press)
		if err := s.repo.UpdateRound(ctx, round); err != nil {
			return PressResult{}, fmt.Errorf("failed to store press: %w", err)
		}

		payload := roundevents.PressCreatedPayload{
			RoundID:        roundID,
			PressID:        press.ID,
			Segment:        press.Segment,
			StartingHole:   press.StartingHole,
			InitiatingTeam: press.InitiatingTeam,
		}
		if err := s.publishEvent(ctx, roundevents.PressCreated, payload); err != nil {
			return PressResult{}, err
		}

		return PressResult{Success: &payload}, nil
	})
}
