// Package roundevents defines the topics and payloads published by the
// round and settlement modules.
package roundevents

import (
	"github.com/google/uuid"

	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
)

// Topics.
const (
	RoundCreated      = "round.created"
	ScoreSubmitted    = "round.score.submitted"
	PressCreated      = "round.press.created"
	RoundFinalized    = "round.finalized"
	SettlementUpdated = "round.settlement.updated"
)

// RoundCreatedPayload announces a new round.
type RoundCreatedPayload struct {
	RoundID  uuid.UUID             `json:"round_id"`
	CourseID uuid.UUID             `json:"course_id"`
	Title    string                `json:"title"`
	Format   roundtypes.GameFormat `json:"format"`
}

// ScoreSubmittedPayload announces a recorded (or corrected) gross score.
type ScoreSubmittedPayload struct {
	RoundID  uuid.UUID          `json:"round_id"`
	PlayerID roundtypes.PlayerID `json:"player_id"`
	Hole     int                `json:"hole"`
	Strokes  int                `json:"strokes"`
}

// PressCreatedPayload announces an accepted Nassau press.
type PressCreatedPayload struct {
	RoundID        uuid.UUID          `json:"round_id"`
	PressID        uuid.UUID          `json:"press_id"`
	Segment        roundtypes.Segment `json:"segment"`
	StartingHole   int                `json:"starting_hole"`
	InitiatingTeam string             `json:"initiating_team"`
}

// RoundFinalizedPayload announces that a round was closed to further edits.
type RoundFinalizedPayload struct {
	RoundID uuid.UUID `json:"round_id"`
}

// SettlementUpdatedPayload announces a recomputed settlement for a round.
type SettlementUpdatedPayload struct {
	RoundID uuid.UUID             `json:"round_id"`
	Format  roundtypes.GameFormat `json:"format"`
}

// RoundErrorPayload is the failure payload shared by round operations.
type RoundErrorPayload struct {
	RoundID uuid.UUID `json:"round_id"`
	Error   string    `json:"error"`
}
