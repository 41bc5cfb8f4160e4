package settlement

import (
	"errors"
	"fmt"

	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
)

// Press creation failures. Callers are expected to consult
// LosingTeamForMatch/NextHoleForMatch before offering the action; these
// errors are the engine refusing to record an invalid press regardless.
var (
	ErrPressSegmentNotPressable = errors.New("presses are only allowed on the front or back nine")
	ErrPressTeamNotLosing       = errors.New("press initiating team is not currently losing")
	ErrPressNoNextHole          = errors.New("no unplayed hole remains for a press")
	ErrPressStartOutsideSegment = errors.New("press starting hole is outside its segment")
)

// MatchStatusForSegment resolves the base match over a Nassau segment.
func (s Session) MatchStatusForSegment(segment roundtypes.Segment) (MatchStatus, error) {
	sideA, sideB, err := s.MatchSides()
	if err != nil {
		return MatchStatus{}, err
	}
	start, end := segment.Holes()
	return s.MatchStatusForRange(sideA, sideB, start, end), nil
}

// LosingTeamForMatch returns the side behind in a segment's base match, or
// false when the match is square or closed.
func (s Session) LosingTeamForMatch(segment roundtypes.Segment) (string, bool) {
	sideA, sideB, err := s.MatchSides()
	if err != nil {
		return "", false
	}
	start, end := segment.Holes()
	return s.LosingTeamForRange(sideA, sideB, start, end)
}

// NextHoleForMatch returns the next hole still needing a score in a
// segment's base match, or false when fully scored or closed.
func (s Session) NextHoleForMatch(segment roundtypes.Segment) (int, bool) {
	sideA, sideB, err := s.MatchSides()
	if err != nil {
		return 0, false
	}
	start, end := segment.Holes()
	return s.NextHoleForRange(sideA, sideB, start, end)
}

// PressMatchStatus resolves a press as its own match from its starting hole
// to the end of its segment, between the same two sides as the base match.
func (s Session) PressMatchStatus(press roundtypes.Press) (MatchStatus, error) {
	sideA, sideB, err := s.MatchSides()
	if err != nil {
		return MatchStatus{}, err
	}
	_, end := press.Segment.Holes()
	return s.MatchStatusForRange(sideA, sideB, press.StartingHole, end), nil
}

// PressOpportunity describes a press the engine would accept right now.
type PressOpportunity struct {
	Segment      roundtypes.Segment `json:"segment"`
	StartingHole int                `json:"starting_hole"`
	Team         string             `json:"team"`
}

// PressOpportunities lists every press currently creatable on a segment.
// A press can be opened against the base match or against any existing
// press that again shows a losing side with an unplayed next hole, so
// several concurrent presses per segment are possible.
func (s Session) PressOpportunities(segment roundtypes.Segment) []PressOpportunity {
	if !segment.Pressable() {
		return nil
	}
	sideA, sideB, err := s.MatchSides()
	if err != nil {
		return nil
	}

	start, end := segment.Holes()
	var out []PressOpportunity

	consider := func(rangeStart int) {
		loser, ok := s.LosingTeamForRange(sideA, sideB, rangeStart, end)
		if !ok {
			return
		}
		next, ok := s.NextHoleForRange(sideA, sideB, rangeStart, end)
		if !ok {
			return
		}
		out = append(out, PressOpportunity{Segment: segment, StartingHole: next, Team: loser})
	}

	consider(start)
	for _, press := range s.Round.PressesForSegment(segment) {
		consider(press.StartingHole)
	}
	return out
}

// ValidatePress checks that a requested press is currently creatable: the
// segment takes presses, the initiating team is the side behind in the base
// match or an existing press on that segment, and the starting hole is that
// contest's next unplayed hole. Invalid presses are rejected, never silently
// recorded.
func (s Session) ValidatePress(segment roundtypes.Segment, startingHole int, initiatingTeam string) error {
	if !segment.Pressable() {
		return ErrPressSegmentNotPressable
	}
	if !segment.Contains(startingHole) {
		return ErrPressStartOutsideSegment
	}

	opportunities := s.PressOpportunities(segment)
	if len(opportunities) == 0 {
		return ErrPressTeamNotLosing
	}

	teamMatched := false
	for _, opp := range opportunities {
		if opp.Team != initiatingTeam {
			continue
		}
		teamMatched = true
		if opp.StartingHole == startingHole {
			return nil
		}
	}
	if !teamMatched {
		return ErrPressTeamNotLosing
	}
	return fmt.Errorf("%w: hole %d", ErrPressNoNextHole, startingHole)
}

// contestPoints awards a completed contest's single point: the full point to
// a decisive winner, a half each when all square after every hole was
// decided, and nothing while the contest is still open.
func contestPoints(status MatchStatus, rangeLen int, points map[string]float64) {
	switch {
	case status.Closed:
		points[status.Leader()] += 1
	case status.AllSquare() && status.HolesDecided == rangeLen:
		points[status.SideA] += 0.5
		points[status.SideB] += 0.5
	}
}

// NassauPoints settles the whole Nassau: the Front-9, Back-9, and Overall
// matches plus every press are independent one-point contests.
func (s Session) NassauPoints() (map[string]float64, error) {
	sideA, sideB, err := s.MatchSides()
	if err != nil {
		return nil, err
	}

	points := map[string]float64{
		sideA.Name: 0,
		sideB.Name: 0,
	}

	for _, segment := range []roundtypes.Segment{
		roundtypes.SegmentFront,
		roundtypes.SegmentBack,
		roundtypes.SegmentOverall,
	} {
		start, end := segment.Holes()
		contestPoints(s.MatchStatusForRange(sideA, sideB, start, end), end-start+1, points)
	}

	for _, press := range s.Round.Presses {
		_, end := press.Segment.Holes()
		contestPoints(s.MatchStatusForRange(sideA, sideB, press.StartingHole, end), end-press.StartingHole+1, points)
	}

	return points, nil
}

// NassauPointsForTeam returns one team's total across base matches and
// presses, in multiples of 0.5.
func (s Session) NassauPointsForTeam(team string) (float64, error) {
	points, err := s.NassauPoints()
	if err != nil {
		return 0, err
	}
	return points[team], nil
}
