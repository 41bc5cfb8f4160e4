package settlement

import (
	"github.com/google/uuid"

	coursetypes "github.com/fairway-collective/scorecard/app/modules/course/domain/types"
	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
)

// testCourse builds an 18-hole course with a known stroke-index permutation.
// Hole n has stroke index n, so allocation order matches hole order and
// expectations stay readable. Pars follow a typical 72 layout.
func testCourse() coursetypes.Course {
	pars := []int{4, 5, 3, 4, 4, 3, 4, 5, 4, 4, 3, 4, 5, 4, 4, 3, 5, 4}
	holes := make([]coursetypes.Hole, 18)
	for i := range holes {
		holes[i] = coursetypes.Hole{
			Number:      i + 1,
			Par:         pars[i],
			StrokeIndex: i + 1,
		}
	}
	return coursetypes.Course{
		ID:    uuid.New(),
		Name:  "Cedar Hollow",
		Holes: holes,
	}
}

// scrambledCourse returns a course whose stroke indexes do not follow hole
// order, for tests that must not conflate the two.
func scrambledCourse() coursetypes.Course {
	course := testCourse()
	perm := []int{7, 13, 17, 1, 9, 15, 3, 11, 5, 2, 16, 8, 14, 4, 12, 18, 6, 10}
	for i := range course.Holes {
		course.Holes[i].StrokeIndex = perm[i]
	}
	return course
}

func twoPlayerRound(handicapA, handicapB float64) roundtypes.Round {
	return roundtypes.Round{
		ID:    uuid.New(),
		State: roundtypes.RoundStateInProgress,
		Settings: roundtypes.GameSettings{
			Format: roundtypes.FormatNassau,
		},
		Participants: []roundtypes.Participant{
			{PlayerID: "alice", Name: "Alice", PlayingHandicap: handicapA},
			{PlayerID: "bob", Name: "Bob", PlayingHandicap: handicapB},
		},
		Scores: make(map[int]map[roundtypes.PlayerID]int),
	}
}

func teamRound() roundtypes.Round {
	return roundtypes.Round{
		ID:    uuid.New(),
		State: roundtypes.RoundStateInProgress,
		Settings: roundtypes.GameSettings{
			Format: roundtypes.FormatBestBallMatch,
		},
		Participants: []roundtypes.Participant{
			{PlayerID: "alice", Name: "Alice", PlayingHandicap: 0, Team: "Sharks"},
			{PlayerID: "bob", Name: "Bob", PlayingHandicap: 0, Team: "Sharks"},
			{PlayerID: "carol", Name: "Carol", PlayingHandicap: 0, Team: "Jets"},
			{PlayerID: "dave", Name: "Dave", PlayingHandicap: 0, Team: "Jets"},
		},
		Scores: make(map[int]map[roundtypes.PlayerID]int),
	}
}

// score records gross values on a hole, keyed by player.
func score(r *roundtypes.Round, hole int, grosses map[roundtypes.PlayerID]int) {
	for id, gross := range grosses {
		r.RecordScore(id, hole, gross)
	}
}
