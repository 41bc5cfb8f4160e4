package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
)

func TestBestBallScoreForTeam(t *testing.T) {
	round := teamRound()
	score(&round, 1, map[roundtypes.PlayerID]int{"alice": 5, "bob": 4})

	s := NewSession(testCourse(), round)

	gross, ok := s.BestBallScoreForTeam("Sharks", 1)
	require.True(t, ok)
	assert.Equal(t, 4, gross)

	// Nobody on the Jets has scored hole 1.
	_, ok = s.BestBallScoreForTeam("Jets", 1)
	assert.False(t, ok)

	_, ok = s.BestBallScoreForTeam("Sharks", 2)
	assert.False(t, ok)
}

// Best gross and best net are independent selections: with handicaps in
// play, the stroke receiver can supply the better net off the worse gross.
func TestBestBallNetIndependentOfGross(t *testing.T) {
	round := teamRound()
	round.Participants[1].PlayingHandicap = 9 // bob receives a stroke on hole 7

	score(&round, 7, map[roundtypes.PlayerID]int{"alice": 5, "bob": 6})

	s := NewSession(testCourse(), round)

	gross, ok := s.BestBallScoreForTeam("Sharks", 7)
	require.True(t, ok)
	assert.Equal(t, 5, gross, "alice has the best gross")

	net, ok := s.BestBallNetScoreForTeam("Sharks", 7)
	require.True(t, ok)
	assert.Equal(t, 5, net, "bob's 6 nets to 5, tying alice")

	// Monotonicity: team best net never beats any member yet always equals
	// some member's net.
	aliceNet, _ := s.NetScoreForHole("alice", 7)
	bobNet, _ := s.NetScoreForHole("bob", 7)
	assert.LessOrEqual(t, net, aliceNet)
	assert.LessOrEqual(t, net, bobNet)
	assert.Contains(t, []int{aliceNet, bobNet}, net)
}

func TestBestBallContributorsFlagsTies(t *testing.T) {
	round := teamRound()
	score(&round, 1, map[roundtypes.PlayerID]int{"alice": 4, "bob": 4, "carol": 5})

	s := NewSession(testCourse(), round)

	flags := s.BestBallContributors("Sharks", 1, false)
	assert.ElementsMatch(t, []roundtypes.PlayerID{"alice", "bob"}, flags)

	flags = s.BestBallContributors("Jets", 1, false)
	assert.Equal(t, []roundtypes.PlayerID{"carol"}, flags)

	assert.Nil(t, s.BestBallContributors("Jets", 2, false))
}
