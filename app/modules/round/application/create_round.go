package roundservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	coursedb "github.com/fairway-collective/scorecard/app/modules/course/infrastructure/repositories"
	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
	"github.com/fairway-collective/scorecard/internal/attr"
	roundevents "github.com/fairway-collective/scorecard/internal/events/round"
)

// CreateRoundInput carries everything needed to open a round.
type CreateRoundInput struct {
	CourseID     uuid.UUID               `json:"course_id"`
	Title        string                  `json:"title"`
	Settings     roundtypes.GameSettings `json:"settings"`
	Participants []roundtypes.Participant `json:"participants"`
}

func (in CreateRoundInput) validate() error {
	if !in.Settings.Format.Valid() {
		return fmt.Errorf("unknown game format %q", in.Settings.Format)
	}
	if len(in.Participants) < 2 {
		return errors.New("a round needs at least two participants")
	}
	seen := make(map[roundtypes.PlayerID]struct{}, len(in.Participants))
	for _, p := range in.Participants {
		if p.PlayerID == "" {
			return errors.New("participant is missing a player id")
		}
		if _, dup := seen[p.PlayerID]; dup {
			return fmt.Errorf("duplicate participant %s", p.PlayerID)
		}
		seen[p.PlayerID] = struct{}{}
	}
	if formatNeedsTeams(in.Settings.Format) {
		teams := make(map[string]int)
		for _, p := range in.Participants {
			if p.Team == "" {
				return fmt.Errorf("participant %s must be assigned a team for %s", p.PlayerID, in.Settings.Format)
			}
			teams[p.Team]++
		}
		if len(teams) < 2 {
			return fmt.Errorf("%s requires at least two teams, got %d", in.Settings.Format, len(teams))
		}
		// The match-play formats are head-to-head contests; best-ball
		// stroke play takes any number of teams.
		if formatNeedsTwoSides(in.Settings.Format) && len(teams) != 2 {
			return fmt.Errorf("%s requires exactly two teams, got %d", in.Settings.Format, len(teams))
		}
	}
	return nil
}

func formatNeedsTeams(f roundtypes.GameFormat) bool {
	switch f {
	case roundtypes.FormatBestBallStroke, roundtypes.FormatBestBallMatch, roundtypes.FormatNassau:
		return true
	}
	return false
}

func formatNeedsTwoSides(f roundtypes.GameFormat) bool {
	switch f {
	case roundtypes.FormatBestBallMatch, roundtypes.FormatNassau:
		return true
	}
	return false
}

// CreateRound validates the input against the referenced course and stores a
// new in-progress round.
func (s *RoundService) CreateRound(ctx context.Context, input CreateRoundInput) (CreateRoundResult, error) {
	roundID := uuid.New()
	return withTelemetry(s, ctx, "CreateRound", roundID, func(ctx context.Context) (CreateRoundResult, error) {
		if err := input.validate(); err != nil {
			return CreateRoundResult{
				Failure: &roundevents.RoundErrorPayload{RoundID: roundID, Error: err.Error()},
			}, nil
		}

		if _, err := s.courses.GetCourse(ctx, input.CourseID); err != nil {
			if errors.Is(err, coursedb.ErrCourseNotFound) {
				return CreateRoundResult{
					Failure: &roundevents.RoundErrorPayload{
						RoundID: roundID,
						Error:   fmt.Sprintf("course %s not found", input.CourseID),
					},
				}, nil
			}
			return CreateRoundResult{}, fmt.Errorf("failed to look up course: %w", err)
		}

		round := roundtypes.Round{
			ID:           roundID,
			CourseID:     input.CourseID,
			Title:        input.Title,
			State:        roundtypes.RoundStateInProgress,
			Settings:     input.Settings,
			Participants: input.Participants,
			Scores:       make(map[int]map[roundtypes.PlayerID]int),
		}
		if err := s.repo.CreateRound(ctx, round); err != nil {
			return CreateRoundResult{}, fmt.Errorf("failed to store round: %w", err)
		}

		payload := roundevents.RoundCreatedPayload{
			RoundID:  round.ID,
			CourseID: round.CourseID,
			Title:    round.Title,
			Format:   round.Settings.Format,
		}
		if err := s.publishEvent(ctx, roundevents.RoundCreated, payload); err != nil {
			s.logger.WarnContext(ctx, "Round stored but event publish failed",
				attr.RoundID("round_id", round.ID),
				attr.Error(err),
			)
		}

		return CreateRoundResult{Success: &payload}, nil
	})
}
