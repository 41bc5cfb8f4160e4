package roundtypes

import (
	"time"

	"github.com/google/uuid"
)

// PlayerID identifies a player within the host application.
type PlayerID string

// GameFormat selects which settlement the presentation layer runs for a round.
type GameFormat string

const (
	FormatStrokePlay     GameFormat = "STROKE_PLAY"
	FormatBestBallStroke GameFormat = "BEST_BALL_STROKE"
	FormatBestBallMatch  GameFormat = "BEST_BALL_MATCH"
	FormatNassau         GameFormat = "NASSAU"
	FormatSkins          GameFormat = "SKINS"
	FormatStableford     GameFormat = "STABLEFORD"
)

// Valid reports whether the format is one of the known variants.
func (f GameFormat) Valid() bool {
	switch f {
	case FormatStrokePlay, FormatBestBallStroke, FormatBestBallMatch,
		FormatNassau, FormatSkins, FormatStableford:
		return true
	}
	return false
}

// Segment is a contiguous slice of the round used by Nassau matches.
type Segment string

const (
	SegmentFront   Segment = "FRONT"
	SegmentBack    Segment = "BACK"
	SegmentOverall Segment = "OVERALL"
)

// Holes returns the inclusive hole range the segment covers.
func (s Segment) Holes() (start, end int) {
	switch s {
	case SegmentFront:
		return 1, 9
	case SegmentBack:
		return 10, 18
	default:
		return 1, 18
	}
}

// Contains reports whether the hole falls inside the segment.
func (s Segment) Contains(hole int) bool {
	start, end := s.Holes()
	return hole >= start && hole <= end
}

// Pressable reports whether presses may be opened on this segment.
// Only the nine-hole segments take presses, never the overall match.
func (s Segment) Pressable() bool {
	return s == SegmentFront || s == SegmentBack
}

// RoundState represents the lifecycle state of a round.
type RoundState string

const (
	RoundStateUpcoming   RoundState = "UPCOMING"
	RoundStateInProgress RoundState = "IN_PROGRESS"
	RoundStateFinalized  RoundState = "FINALIZED"
)

// Participant is a player in a round. PlayingHandicap is the already-resolved
// playing handicap (course handicap computation happens upstream); it can be
// negative for plus players. Team is empty for individual formats.
type Participant struct {
	PlayerID        PlayerID `json:"player_id"`
	Name            string   `json:"name"`
	PlayingHandicap float64  `json:"playing_handicap"`
	Team            string   `json:"team,omitempty"`
}

// Press is a Nassau side-bet opened mid-round by the team that was behind.
// Presses are immutable once created.
type Press struct {
	ID             uuid.UUID `json:"id"`
	Segment        Segment   `json:"segment"`
	StartingHole   int       `json:"starting_hole"`
	InitiatingTeam string    `json:"initiating_team"`
	CreatedAt      time.Time `json:"created_at"`
}

// GameSettings holds the per-round knobs for the chosen format.
// SkinsPotPerPlayer and SkinsValuePerSkin are mutually exclusive payout
// policies: the pot policy applies when a buy-in is set, otherwise the
// legacy fixed value-per-skin policy applies.
type GameSettings struct {
	Format            GameFormat `json:"format"`
	SkinsCarryover    bool       `json:"skins_carryover"`
	SkinsPotPerPlayer float64    `json:"skins_pot_per_player"`
	SkinsValuePerSkin float64    `json:"skins_value_per_skin"`
}

// Round is the full snapshot the settlement engine computes from. Scores map
// hole number to the gross strokes of each player who has holed out; absence
// means not yet scored. Presses are append-only.
type Round struct {
	ID           uuid.UUID                `json:"id"`
	CourseID     uuid.UUID                `json:"course_id"`
	Title        string                   `json:"title"`
	State        RoundState               `json:"state"`
	Settings     GameSettings             `json:"settings"`
	Participants []Participant            `json:"participants"`
	Scores       map[int]map[PlayerID]int `json:"scores"`
	Presses      []Press                  `json:"presses"`
}

// Participant returns the participant with the given player ID.
func (r Round) Participant(id PlayerID) (Participant, bool) {
	for _, p := range r.Participants {
		if p.PlayerID == id {
			return p, true
		}
	}
	return Participant{}, false
}

// GrossScore returns the recorded gross for a player on a hole.
func (r Round) GrossScore(id PlayerID, hole int) (int, bool) {
	holeScores, ok := r.Scores[hole]
	if !ok {
		return 0, false
	}
	gross, ok := holeScores[id]
	return gross, ok
}

// RecordScore sets the gross for a player on a hole, creating the hole map
// on first use. Corrections overwrite in place.
func (r *Round) RecordScore(id PlayerID, hole, gross int) {
	if r.Scores == nil {
		r.Scores = make(map[int]map[PlayerID]int)
	}
	if r.Scores[hole] == nil {
		r.Scores[hole] = make(map[PlayerID]int)
	}
	r.Scores[hole][id] = gross
}

// Teams groups participants by team name. Participants without a team are
// omitted; individual formats read Participants directly.
func (r Round) Teams() map[string][]Participant {
	teams := make(map[string][]Participant)
	for _, p := range r.Participants {
		if p.Team == "" {
			continue
		}
		teams[p.Team] = append(teams[p.Team], p)
	}
	return teams
}

// PressesForSegment returns the presses opened on a segment, in creation order.
func (r Round) PressesForSegment(segment Segment) []Press {
	var out []Press
	for _, p := range r.Presses {
		if p.Segment == segment {
			out = append(out, p)
		}
	}
	return out
}
