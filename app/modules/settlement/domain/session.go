package settlement

import (
	"fmt"
	"sort"

	coursetypes "github.com/fairway-collective/scorecard/app/modules/course/domain/types"
	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
)

// Session is the scoring facade the presentation layer queries. It pairs a
// round snapshot with its course and recomputes every answer from scratch,
// so partially scored rounds are always representable and there is no
// derived state to invalidate.
type Session struct {
	Course coursetypes.Course
	Round  roundtypes.Round
}

// NewSession builds a session for a round played on a course.
func NewSession(course coursetypes.Course, round roundtypes.Round) Session {
	return Session{Course: course, Round: round}
}

// Side is one half of a head-to-head contest: either a team (best net per
// hole counts) or a single player.
type Side struct {
	Name    string
	Players []roundtypes.PlayerID
}

// NetScoreForHole returns the player's net score on a hole, or false when
// the gross has not been recorded yet.
func (s Session) NetScoreForHole(id roundtypes.PlayerID, hole int) (int, bool) {
	gross, ok := s.Round.GrossScore(id, hole)
	if !ok {
		return 0, false
	}
	participant, ok := s.Round.Participant(id)
	if !ok {
		return 0, false
	}
	h, ok := s.Course.Hole(hole)
	if !ok {
		return 0, false
	}
	return NetScore(gross, participant.PlayingHandicap, h.StrokeIndex), true
}

// PlayerGetsStrokeOnHole reports whether the player receives a handicap
// stroke on the hole.
func (s Session) PlayerGetsStrokeOnHole(id roundtypes.PlayerID, hole int) bool {
	participant, ok := s.Round.Participant(id)
	if !ok {
		return false
	}
	h, ok := s.Course.Hole(hole)
	if !ok {
		return false
	}
	return PlayerGetsStrokeOnHole(participant.PlayingHandicap, h.StrokeIndex)
}

// MatchSides derives the two sides of a match-play contest. Teamed
// participants form team sides; when nobody has a team each participant is
// their own side. Match play needs exactly two.
func (s Session) MatchSides() (Side, Side, error) {
	teams := s.Round.Teams()

	var sides []Side
	if len(teams) > 0 {
		names := make([]string, 0, len(teams))
		for name := range teams {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			members := teams[name]
			players := make([]roundtypes.PlayerID, len(members))
			for i, m := range members {
				players[i] = m.PlayerID
			}
			sides = append(sides, Side{Name: name, Players: players})
		}
	} else {
		for _, p := range s.Round.Participants {
			sides = append(sides, Side{Name: p.Name, Players: []roundtypes.PlayerID{p.PlayerID}})
		}
	}

	if len(sides) != 2 {
		return Side{}, Side{}, fmt.Errorf("match play requires exactly two sides, got %d", len(sides))
	}
	return sides[0], sides[1], nil
}

// sortedHoleNumbers returns the course's hole numbers in playing order.
func sortedHoleNumbers(course coursetypes.Course) []int {
	numbers := make([]int, 0, len(course.Holes))
	for _, h := range course.Holes {
		numbers = append(numbers, h.Number)
	}
	sort.Ints(numbers)
	return numbers
}

// sideNet is the side's score on a hole: the best net among its players.
func (s Session) sideNet(side Side, hole int) (int, bool) {
	best := 0
	found := false
	for _, id := range side.Players {
		net, ok := s.NetScoreForHole(id, hole)
		if !ok {
			continue
		}
		if !found || net < best {
			best = net
			found = true
		}
	}
	return best, found
}
