package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	coursetypes "github.com/fairway-collective/scorecard/app/modules/course/domain/types"
	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
)

// TestDataGenerator produces valid domain fixtures for integration tests.
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTestDataGenerator creates a generator with an optional seed for
// reproducible runs.
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}

	return &TestDataGenerator{
		faker: gofakeit.New(uint64(s)),
		seed:  s,
	}
}

// GenerateCourse builds a valid 18-hole course with a par mix and a
// shuffled stroke index permutation.
func (g *TestDataGenerator) GenerateCourse() coursetypes.Course {
	pars := []int{4, 5, 3, 4, 4, 3, 4, 5, 4, 4, 3, 4, 5, 4, 4, 3, 5, 4}

	indexes := make([]int, coursetypes.HoleCount)
	for i := range indexes {
		indexes[i] = i + 1
	}
	g.faker.ShuffleInts(indexes)

	holes := make([]coursetypes.Hole, coursetypes.HoleCount)
	for i := range holes {
		holes[i] = coursetypes.Hole{
			Number:      i + 1,
			Par:         pars[i],
			StrokeIndex: indexes[i],
		}
	}

	return coursetypes.Course{
		ID:    uuid.New(),
		Name:  g.faker.City() + " Golf Club",
		Holes: holes,
	}
}

// GenerateParticipants builds n participants with distinct player IDs. When
// teams is non-empty the participants are distributed round-robin over the
// team names.
func (g *TestDataGenerator) GenerateParticipants(n int, teams ...string) []roundtypes.Participant {
	participants := make([]roundtypes.Participant, n)
	for i := range participants {
		p := roundtypes.Participant{
			PlayerID:        roundtypes.PlayerID(fmt.Sprintf("player-%d-%s", i, g.faker.LetterN(6))),
			Name:            g.faker.Name(),
			PlayingHandicap: float64(g.faker.Number(0, 24)),
		}
		if len(teams) > 0 {
			p.Team = teams[i%len(teams)]
		}
		participants[i] = p
	}
	return participants
}

// GenerateRound builds an in-progress round on the given course.
func (g *TestDataGenerator) GenerateRound(courseID uuid.UUID, format roundtypes.GameFormat, participants []roundtypes.Participant) roundtypes.Round {
	return roundtypes.Round{
		ID:           uuid.New(),
		CourseID:     courseID,
		Title:        g.faker.AdjectiveDescriptive() + " " + g.faker.NounCollectiveThing(),
		State:        roundtypes.RoundStateInProgress,
		Settings:     roundtypes.GameSettings{Format: format},
		Participants: participants,
		Scores:       make(map[int]map[roundtypes.PlayerID]int),
	}
}
