package settlement

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
)

// front nine where alice goes three up after six holes, closing the segment.
func frontNineRunaway() roundtypes.Round {
	round := twoPlayerRound(0, 0)
	for hole := 1; hole <= 3; hole++ {
		score(&round, hole, map[roundtypes.PlayerID]int{"alice": 4, "bob": 5})
	}
	for hole := 4; hole <= 6; hole++ {
		score(&round, hole, map[roundtypes.PlayerID]int{"alice": 4, "bob": 4})
	}
	return round
}

func TestLosingTeamForMatchBySegment(t *testing.T) {
	round := twoPlayerRound(0, 0)
	score(&round, 1, map[roundtypes.PlayerID]int{"alice": 4, "bob": 5})
	score(&round, 10, map[roundtypes.PlayerID]int{"alice": 5, "bob": 4})

	s := NewSession(testCourse(), round)

	loser, ok := s.LosingTeamForMatch(roundtypes.SegmentFront)
	require.True(t, ok)
	assert.Equal(t, "Bob", loser)

	loser, ok = s.LosingTeamForMatch(roundtypes.SegmentBack)
	require.True(t, ok)
	assert.Equal(t, "Alice", loser)

	// Overall is square after a win apiece.
	_, ok = s.LosingTeamForMatch(roundtypes.SegmentOverall)
	assert.False(t, ok)
}

func TestNextHoleForMatch(t *testing.T) {
	round := twoPlayerRound(0, 0)
	score(&round, 1, map[roundtypes.PlayerID]int{"alice": 4, "bob": 5})
	score(&round, 2, map[roundtypes.PlayerID]int{"alice": 4, "bob": 5})

	s := NewSession(testCourse(), round)

	next, ok := s.NextHoleForMatch(roundtypes.SegmentFront)
	require.True(t, ok)
	assert.Equal(t, 3, next)

	next, ok = s.NextHoleForMatch(roundtypes.SegmentBack)
	require.True(t, ok)
	assert.Equal(t, 10, next)
}

func TestValidatePress(t *testing.T) {
	round := twoPlayerRound(0, 0)
	score(&round, 1, map[roundtypes.PlayerID]int{"alice": 4, "bob": 5})
	score(&round, 2, map[roundtypes.PlayerID]int{"alice": 4, "bob": 5})

	s := NewSession(testCourse(), round)

	// Bob is two down with hole 3 next: press accepted.
	assert.NoError(t, s.ValidatePress(roundtypes.SegmentFront, 3, "Bob"))

	// The leader cannot press.
	assert.ErrorIs(t, s.ValidatePress(roundtypes.SegmentFront, 3, "Alice"), ErrPressTeamNotLosing)

	// Overall never takes presses.
	assert.ErrorIs(t, s.ValidatePress(roundtypes.SegmentOverall, 3, "Bob"), ErrPressSegmentNotPressable)

	// Starting hole must be the contest's next unplayed hole.
	assert.ErrorIs(t, s.ValidatePress(roundtypes.SegmentFront, 5, "Bob"), ErrPressNoNextHole)

	// Starting hole must sit inside the segment.
	assert.ErrorIs(t, s.ValidatePress(roundtypes.SegmentFront, 10, "Bob"), ErrPressStartOutsideSegment)

	// Nobody is behind on the untouched back nine.
	assert.ErrorIs(t, s.ValidatePress(roundtypes.SegmentBack, 10, "Bob"), ErrPressTeamNotLosing)
}

// A closed segment leaves no losing side, so the press window is shut.
func TestValidatePressRejectsClosedMatch(t *testing.T) {
	round := frontNineRunaway()
	s := NewSession(testCourse(), round)

	status, err := s.MatchStatusForSegment(roundtypes.SegmentFront)
	require.NoError(t, err)
	require.True(t, status.Closed)
	assert.Equal(t, "Alice wins 3 & 3", status.Status)

	err = s.ValidatePress(roundtypes.SegmentFront, 7, "Bob")
	assert.ErrorIs(t, err, ErrPressTeamNotLosing)
}

func TestPressOpportunitiesStackOnPriorPresses(t *testing.T) {
	round := twoPlayerRound(0, 0)
	for hole := 1; hole <= 4; hole++ {
		score(&round, hole, map[roundtypes.PlayerID]int{"alice": 4, "bob": 5})
	}
	// Bob pressed at hole 3 and has lost both pressed holes since.
	round.Presses = append(round.Presses, roundtypes.Press{
		ID:             uuid.New(),
		Segment:        roundtypes.SegmentFront,
		StartingHole:   3,
		InitiatingTeam: "Bob",
		CreatedAt:      time.Now(),
	})

	s := NewSession(testCourse(), round)

	opportunities := s.PressOpportunities(roundtypes.SegmentFront)
	require.Len(t, opportunities, 2, "base match and the open press both show Bob behind")
	for _, opp := range opportunities {
		assert.Equal(t, "Bob", opp.Team)
		assert.Equal(t, 5, opp.StartingHole)
	}

	// So a re-press at hole 5 is accepted.
	assert.NoError(t, s.ValidatePress(roundtypes.SegmentFront, 5, "Bob"))
}

func TestPressMatchStatus(t *testing.T) {
	round := twoPlayerRound(0, 0)
	for hole := 1; hole <= 4; hole++ {
		score(&round, hole, map[roundtypes.PlayerID]int{"alice": 4, "bob": 5})
	}
	score(&round, 5, map[roundtypes.PlayerID]int{"alice": 5, "bob": 4})

	press := roundtypes.Press{
		ID:             uuid.New(),
		Segment:        roundtypes.SegmentFront,
		StartingHole:   5,
		InitiatingTeam: "Bob",
	}
	round.Presses = append(round.Presses, press)

	s := NewSession(testCourse(), round)

	status, err := s.PressMatchStatus(press)
	require.NoError(t, err)
	assert.Equal(t, "Bob 1 Up", status.Status, "the press ignores holes before its start")
}

func TestNassauPoints(t *testing.T) {
	round := twoPlayerRound(0, 0)
	// Front nine: alice wins holes 1-5, closing it 5 & 4.
	for hole := 1; hole <= 5; hole++ {
		score(&round, hole, map[roundtypes.PlayerID]int{"alice": 4, "bob": 5})
	}
	// Back nine: bob wins holes 10-14, closing it 5 & 4.
	for hole := 10; hole <= 14; hole++ {
		score(&round, hole, map[roundtypes.PlayerID]int{"alice": 5, "bob": 4})
	}

	s := NewSession(testCourse(), round)

	points, err := s.NassauPoints()
	require.NoError(t, err)
	// Overall sits at five wins apiece with holes left: no point yet.
	assert.Equal(t, 1.0, points["Alice"])
	assert.Equal(t, 1.0, points["Bob"])
}

func TestNassauPointsSplitOnCompleteAllSquare(t *testing.T) {
	round := twoPlayerRound(0, 0)
	round.Settings.Format = roundtypes.FormatNassau
	// Entire round halved.
	for hole := 1; hole <= 18; hole++ {
		score(&round, hole, map[roundtypes.PlayerID]int{"alice": 4, "bob": 4})
	}

	s := NewSession(testCourse(), round)

	points, err := s.NassauPoints()
	require.NoError(t, err)
	// Front, back, and overall each split: 1.5 apiece.
	assert.Equal(t, 1.5, points["Alice"])
	assert.Equal(t, 1.5, points["Bob"])
}

func TestNassauPointsCountPresses(t *testing.T) {
	round := twoPlayerRound(0, 0)
	// Alice takes holes 1-5 (front closed 5 & 4), bob presses at 6 and wins
	// every pressed hole, closing the press in his favor.
	for hole := 1; hole <= 5; hole++ {
		score(&round, hole, map[roundtypes.PlayerID]int{"alice": 4, "bob": 5})
	}
	for hole := 6; hole <= 9; hole++ {
		score(&round, hole, map[roundtypes.PlayerID]int{"alice": 5, "bob": 4})
	}
	round.Presses = append(round.Presses, roundtypes.Press{
		ID:             uuid.New(),
		Segment:        roundtypes.SegmentFront,
		StartingHole:   6,
		InitiatingTeam: "Bob",
	})

	s := NewSession(testCourse(), round)

	points, err := s.NassauPoints()
	require.NoError(t, err)
	assert.Equal(t, 1.0, points["Alice"], "front nine")
	assert.Equal(t, 1.0, points["Bob"], "the press")
}

func TestNassauPointsForTeam(t *testing.T) {
	round := frontNineRunaway()
	s := NewSession(testCourse(), round)

	alice, err := s.NassauPointsForTeam("Alice")
	require.NoError(t, err)
	assert.Equal(t, 1.0, alice)

	bob, err := s.NassauPointsForTeam("Bob")
	require.NoError(t, err)
	assert.Zero(t, bob)
}
