package rounddb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
)

// Round is the bun model for a stored round. Participants, scores, and
// presses live in jsonb columns; settlement always reads the whole round,
// so normalizing them buys nothing.
type Round struct {
	bun.BaseModel `bun:"table:rounds,alias:r"`

	ID           uuid.UUID                           `bun:"id,pk,type:uuid"`
	CourseID     uuid.UUID                           `bun:"course_id,type:uuid,notnull"`
	Title        string                              `bun:"title,notnull"`
	State        roundtypes.RoundState               `bun:"state,notnull"`
	Settings     roundtypes.GameSettings             `bun:"settings,type:jsonb,notnull"`
	Participants []roundtypes.Participant            `bun:"participants,type:jsonb,notnull"`
	Scores       map[int]map[roundtypes.PlayerID]int `bun:"scores,type:jsonb,notnull"`
	Presses      []roundtypes.Press                  `bun:"presses,type:jsonb,notnull"`
	CreatedAt    time.Time                           `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt    time.Time                           `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// ToDomain converts the stored model into the domain round.
func (r *Round) ToDomain() roundtypes.Round {
	round := roundtypes.Round{
		ID:           r.ID,
		CourseID:     r.CourseID,
		Title:        r.Title,
		State:        r.State,
		Settings:     r.Settings,
		Participants: r.Participants,
		Scores:       r.Scores,
		Presses:      r.Presses,
	}
	if round.Scores == nil {
		round.Scores = make(map[int]map[roundtypes.PlayerID]int)
	}
	return round
}

// FromDomain builds the storable model from a domain round. Nil slices and
// maps are replaced with empty ones so jsonb columns never hold SQL NULL.
func FromDomain(round roundtypes.Round) *Round {
	scores := round.Scores
	if scores == nil {
		scores = make(map[int]map[roundtypes.PlayerID]int)
	}
	participants := round.Participants
	if participants == nil {
		participants = []roundtypes.Participant{}
	}
	presses := round.Presses
	if presses == nil {
		presses = []roundtypes.Press{}
	}
	return &Round{
		ID:           round.ID,
		CourseID:     round.CourseID,
		Title:        round.Title,
		State:        round.State,
		Settings:     round.Settings,
		Participants: participants,
		Scores:       scores,
		Presses:      presses,
	}
}
