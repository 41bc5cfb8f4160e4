package roundservice

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace/noop"

	coursetypes "github.com/fairway-collective/scorecard/app/modules/course/domain/types"
	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
	roundmetrics "github.com/fairway-collective/scorecard/internal/observability/metrics/round"
)

var testCourseID = uuid.MustParse("1b7e4a57-9f5c-4f29-9a51-62c3c2a1a111")

func testCourse() coursetypes.Course {
	holes := make([]coursetypes.Hole, coursetypes.HoleCount)
	for i := range holes {
		holes[i] = coursetypes.Hole{Number: i + 1, Par: 4, StrokeIndex: i + 1}
	}
	return coursetypes.Course{ID: testCourseID, Name: "Pine Hollow", Holes: holes}
}

func newTestService(repo *fakeRoundRepo, bus *fakeEventBus) *RoundService {
	courses := &fakeCourseRepo{course: testCourse()}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRoundService(repo, courses, bus, logger, roundmetrics.NoOpMetrics{}, noop.NewTracerProvider().Tracer("test"))
}

func twoPlayerInput() CreateRoundInput {
	return CreateRoundInput{
		CourseID: testCourseID,
		Title:    "Saturday game",
		Settings: roundtypes.GameSettings{Format: roundtypes.FormatStrokePlay},
		Participants: []roundtypes.Participant{
			{PlayerID: "alice", Name: "Alice", PlayingHandicap: 0},
			{PlayerID: "bob", Name: "Bob", PlayingHandicap: 0},
		},
	}
}

func nassauInput() CreateRoundInput {
	return CreateRoundInput{
		CourseID: testCourseID,
		Title:    "Team Nassau",
		Settings: roundtypes.GameSettings{Format: roundtypes.FormatNassau},
		Participants: []roundtypes.Participant{
			{PlayerID: "alice", Name: "Alice", Team: "Sharks"},
			{PlayerID: "bob", Name: "Bob", Team: "Sharks"},
			{PlayerID: "carol", Name: "Carol", Team: "Jets"},
			{PlayerID: "dave", Name: "Dave", Team: "Jets"},
		},
	}
}
