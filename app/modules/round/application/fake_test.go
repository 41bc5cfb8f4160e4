package roundservice

import (
	"context"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	coursetypes "github.com/fairway-collective/scorecard/app/modules/course/domain/types"
	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
	rounddb "github.com/fairway-collective/scorecard/app/modules/round/infrastructure/repositories"
)

// fakeRoundRepo is an in-memory Repository.
type fakeRoundRepo struct {
	mu     sync.Mutex
	rounds map[uuid.UUID]roundtypes.Round

	createErr error
	updateErr error
}

func newFakeRoundRepo() *fakeRoundRepo {
	return &fakeRoundRepo{rounds: make(map[uuid.UUID]roundtypes.Round)}
}

func (f *fakeRoundRepo) CreateRound(_ context.Context, round roundtypes.Round) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rounds[round.ID] = round
	return nil
}

func (f *fakeRoundRepo) GetRound(_ context.Context, roundID uuid.UUID) (roundtypes.Round, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	round, ok := f.rounds[roundID]
	if !ok {
		return roundtypes.Round{}, rounddb.ErrRoundNotFound
	}
	return round, nil
}

func (f *fakeRoundRepo) UpdateRound(_ context.Context, round roundtypes.Round) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rounds[round.ID]; !ok {
		return rounddb.ErrRoundNotFound
	}
	f.rounds[round.ID] = round
	return nil
}

func (f *fakeRoundRepo) ListRounds(_ context.Context, state roundtypes.RoundState) ([]roundtypes.Round, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []roundtypes.Round
	for _, r := range f.rounds {
		if state == "" || r.State == state {
			out = append(out, r)
		}
	}
	return out, nil
}

// fakeCourseRepo serves a single fixed course.
type fakeCourseRepo struct {
	course coursetypes.Course
	err    error
}

func (f *fakeCourseRepo) CreateCourse(context.Context, coursetypes.Course) error { return nil }

func (f *fakeCourseRepo) GetCourse(_ context.Context, id uuid.UUID) (coursetypes.Course, error) {
	if f.err != nil {
		return coursetypes.Course{}, f.err
	}
	return f.course, nil
}

func (f *fakeCourseRepo) ListCourses(context.Context) ([]coursetypes.Course, error) {
	return []coursetypes.Course{f.course}, nil
}

// fakeEventBus records published messages by topic.
type fakeEventBus struct {
	mu        sync.Mutex
	published map[string][]*message.Message
	publishErr error
}

func newFakeEventBus() *fakeEventBus {
	return &fakeEventBus{published: make(map[string][]*message.Message)}
}

func (f *fakeEventBus) Publish(topic string, messages ...*message.Message) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published[topic] = append(f.published[topic], messages...)
	return nil
}

func (f *fakeEventBus) Subscribe(context.Context, string) (<-chan *message.Message, error) {
	ch := make(chan *message.Message)
	close(ch)
	return ch, nil
}

func (f *fakeEventBus) Close() error { return nil }

func (f *fakeEventBus) count(topic string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.published[topic])
}
