package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
)

func skinsRound(carryover bool) roundtypes.Round {
	return roundtypes.Round{
		State: roundtypes.RoundStateInProgress,
		Settings: roundtypes.GameSettings{
			Format:         roundtypes.FormatSkins,
			SkinsCarryover: carryover,
		},
		Participants: []roundtypes.Participant{
			{PlayerID: "x", Name: "Xavier", PlayingHandicap: 0},
			{PlayerID: "y", Name: "Yolanda", PlayingHandicap: 0},
			{PlayerID: "z", Name: "Zach", PlayingHandicap: 0},
		},
		Scores: make(map[int]map[roundtypes.PlayerID]int),
	}
}

func TestSkinsWinnerForHole(t *testing.T) {
	round := skinsRound(false)
	score(&round, 1, map[roundtypes.PlayerID]int{"x": 3, "y": 4, "z": 5})
	score(&round, 2, map[roundtypes.PlayerID]int{"x": 4, "y": 4, "z": 5})
	round.RecordScore("x", 3, 3)

	s := NewSession(testCourse(), round)

	winner, ok := s.SkinsWinnerForHole(1)
	require.True(t, ok)
	assert.Equal(t, roundtypes.PlayerID("x"), winner)

	// Tie for lowest: no skin.
	_, ok = s.SkinsWinnerForHole(2)
	assert.False(t, ok)

	// A single recorded score is not a comparison yet.
	_, ok = s.SkinsWinnerForHole(3)
	assert.False(t, ok)
}

// Holes 1 and 2 tie for lowest; with carryover on, hole 3's outright winner
// collects all three skins.
func TestSkinsCarryover(t *testing.T) {
	round := skinsRound(true)
	score(&round, 1, map[roundtypes.PlayerID]int{"x": 4, "y": 4, "z": 5})
	score(&round, 2, map[roundtypes.PlayerID]int{"x": 5, "y": 4, "z": 4})
	score(&round, 3, map[roundtypes.PlayerID]int{"x": 2, "y": 3, "z": 4})

	s := NewSession(testCourse(), round)

	result := s.Skins()
	assert.Equal(t, 3, result.SkinsByHole[3])
	assert.Equal(t, 3, result.PerPlayer["x"])
	assert.Equal(t, 3, result.TotalAwarded())
	assert.Equal(t, roundtypes.PlayerID("x"), result.WinnerByHole[3])
}

func TestSkinsWithoutCarryoverForfeitsTiedHoles(t *testing.T) {
	round := skinsRound(false)
	score(&round, 1, map[roundtypes.PlayerID]int{"x": 4, "y": 4, "z": 5})
	score(&round, 2, map[roundtypes.PlayerID]int{"x": 5, "y": 4, "z": 4})
	score(&round, 3, map[roundtypes.PlayerID]int{"x": 2, "y": 3, "z": 4})

	s := NewSession(testCourse(), round)

	result := s.Skins()
	assert.Equal(t, 1, result.SkinsByHole[3], "tied holes are gone, not carried")
	assert.Equal(t, 1, result.TotalAwarded())
}

func TestSkinsUseNetScores(t *testing.T) {
	round := skinsRound(false)
	round.Participants[0].PlayingHandicap = 18 // a stroke on every hole

	score(&round, 5, map[roundtypes.PlayerID]int{"x": 4, "y": 4, "z": 5})

	s := NewSession(testCourse(), round)

	winner, ok := s.SkinsWinnerForHole(5)
	require.True(t, ok)
	assert.Equal(t, roundtypes.PlayerID("x"), winner, "net 3 beats the gross-tied 4")
}

// Total skins awarded equals the count of outright-won holes plus carried
// multiples, and never exceeds the holes played.
func TestSkinsConservation(t *testing.T) {
	round := skinsRound(true)
	outright := 0
	for hole := 1; hole <= 18; hole++ {
		switch hole % 3 {
		case 0: // outright winner
			score(&round, hole, map[roundtypes.PlayerID]int{"x": 3, "y": 4, "z": 4})
			outright++
		default: // tie for lowest
			score(&round, hole, map[roundtypes.PlayerID]int{"x": 4, "y": 4, "z": 5})
		}
	}

	s := NewSession(testCourse(), round)

	result := s.Skins()
	total := 0
	for _, skins := range result.PerPlayer {
		total += skins
	}
	assert.Equal(t, 18, total, "every tied hole carried onto a winner")
	assert.Len(t, result.WinnerByHole, outright)

	// Without carryover the total collapses to the outright wins.
	round.Settings.SkinsCarryover = false
	result = NewSession(testCourse(), round).Skins()
	assert.Equal(t, outright, result.TotalAwarded())
}

func TestSkinsPayoutsPotPolicy(t *testing.T) {
	round := skinsRound(false)
	round.Settings.SkinsPotPerPlayer = 10
	// x wins two skins, y one.
	score(&round, 1, map[roundtypes.PlayerID]int{"x": 3, "y": 4, "z": 4})
	score(&round, 2, map[roundtypes.PlayerID]int{"x": 3, "y": 4, "z": 4})
	score(&round, 3, map[roundtypes.PlayerID]int{"x": 4, "y": 2, "z": 4})

	s := NewSession(testCourse(), round)

	payouts := s.SkinsPayouts()
	// Pot 30, three skins awarded, 10 a skin.
	assert.InDelta(t, 10.0, payouts["x"], 1e-9)  // 2*10 - 10
	assert.InDelta(t, 0.0, payouts["y"], 1e-9)   // 1*10 - 10
	assert.InDelta(t, -10.0, payouts["z"], 1e-9) // 0*10 - 10

	sum := payouts["x"] + payouts["y"] + payouts["z"]
	assert.InDelta(t, 0.0, sum, 1e-9, "pot payouts are zero-sum")
}

func TestSkinsPayoutsLegacyPairwise(t *testing.T) {
	round := skinsRound(true)
	round.Settings.SkinsValuePerSkin = 5
	// x three skins, y one, z none.
	for _, hole := range []int{1, 2, 3} {
		score(&round, hole, map[roundtypes.PlayerID]int{"x": 3, "y": 4, "z": 4})
	}
	score(&round, 4, map[roundtypes.PlayerID]int{"x": 5, "y": 3, "z": 4})

	s := NewSession(testCourse(), round)

	payouts := s.SkinsPayouts()
	assert.InDelta(t, 25.0, payouts["x"], 1e-9)  // 5*((3-1)+(3-0))
	assert.InDelta(t, -5.0, payouts["y"], 1e-9)  // 5*((1-3)+(1-0))
	assert.InDelta(t, -20.0, payouts["z"], 1e-9) // 5*((0-3)+(0-1))

	sum := payouts["x"] + payouts["y"] + payouts["z"]
	assert.InDelta(t, 0.0, sum, 1e-9, "pairwise settlement is zero-sum")
}

func TestSkinsPayoutsZeroWhenNothingAwarded(t *testing.T) {
	round := skinsRound(false)
	round.Settings.SkinsPotPerPlayer = 10
	// Every hole tied: no skins, so nobody owes anything.
	score(&round, 1, map[roundtypes.PlayerID]int{"x": 4, "y": 4, "z": 5})

	s := NewSession(testCourse(), round)

	for id, payout := range s.SkinsPayouts() {
		assert.Zerof(t, payout, "player %s", id)
	}
}

func TestSkinsPayoutsZeroWithoutPolicy(t *testing.T) {
	round := skinsRound(false)
	score(&round, 1, map[roundtypes.PlayerID]int{"x": 3, "y": 4, "z": 4})

	s := NewSession(testCourse(), round)

	for id, payout := range s.SkinsPayouts() {
		assert.Zerof(t, payout, "player %s", id)
	}
}
