package settlementservice

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace/noop"

	coursetypes "github.com/fairway-collective/scorecard/app/modules/course/domain/types"
	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
	settlementmetrics "github.com/fairway-collective/scorecard/internal/observability/metrics/settlement"
)

var (
	testCourseID = uuid.MustParse("aa50a57e-2c1d-4f6e-921f-17f4f0b2f001")
	testRoundID  = uuid.MustParse("bb50a57e-2c1d-4f6e-921f-17f4f0b2f002")
)

func testCourse() coursetypes.Course {
	pars := []int{4, 5, 3, 4, 4, 3, 4, 5, 4, 4, 3, 4, 5, 4, 4, 3, 5, 4}
	holes := make([]coursetypes.Hole, coursetypes.HoleCount)
	for i := range holes {
		holes[i] = coursetypes.Hole{Number: i + 1, Par: pars[i], StrokeIndex: i + 1}
	}
	return coursetypes.Course{ID: testCourseID, Name: "Pine Hollow", Holes: holes}
}

func strokePlayRound() roundtypes.Round {
	return roundtypes.Round{
		ID:       testRoundID,
		CourseID: testCourseID,
		Title:    "Saturday game",
		State:    roundtypes.RoundStateInProgress,
		Settings: roundtypes.GameSettings{Format: roundtypes.FormatStrokePlay},
		Participants: []roundtypes.Participant{
			{PlayerID: "alice", Name: "Alice", PlayingHandicap: 9},
			{PlayerID: "bob", Name: "Bob", PlayingHandicap: 0},
		},
		Scores: make(map[int]map[roundtypes.PlayerID]int),
	}
}

type testEnv struct {
	svc      *SettlementService
	rounds   *fakeRoundRepo
	settings *fakeSettingsRepo
	bus      *fakeEventBus
}

func newTestEnv(round roundtypes.Round) testEnv {
	rounds := &fakeRoundRepo{rounds: map[uuid.UUID]roundtypes.Round{round.ID: round}}
	settings := &fakeSettingsRepo{}
	bus := newFakeEventBus()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewSettlementService(
		rounds,
		&fakeCourseRepo{course: testCourse()},
		settings,
		bus,
		logger,
		settlementmetrics.NoOpMetrics{},
		noop.NewTracerProvider().Tracer("test"),
	)
	return testEnv{svc: svc, rounds: rounds, settings: settings, bus: bus}
}

func score(round *roundtypes.Round, player roundtypes.PlayerID, hole, gross int) {
	round.RecordScore(player, hole, gross)
}
