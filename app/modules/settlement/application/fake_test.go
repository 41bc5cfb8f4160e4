package settlementservice

import (
	"context"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	coursetypes "github.com/fairway-collective/scorecard/app/modules/course/domain/types"
	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
	rounddb "github.com/fairway-collective/scorecard/app/modules/round/infrastructure/repositories"
	settlement "github.com/fairway-collective/scorecard/app/modules/settlement/domain"
)

type fakeRoundRepo struct {
	rounds map[uuid.UUID]roundtypes.Round
}

func (f *fakeRoundRepo) CreateRound(_ context.Context, round roundtypes.Round) error {
	f.rounds[round.ID] = round
	return nil
}

func (f *fakeRoundRepo) GetRound(_ context.Context, roundID uuid.UUID) (roundtypes.Round, error) {
	round, ok := f.rounds[roundID]
	if !ok {
		return roundtypes.Round{}, rounddb.ErrRoundNotFound
	}
	return round, nil
}

func (f *fakeRoundRepo) UpdateRound(_ context.Context, round roundtypes.Round) error {
	f.rounds[round.ID] = round
	return nil
}

func (f *fakeRoundRepo) ListRounds(_ context.Context, state roundtypes.RoundState) ([]roundtypes.Round, error) {
	var out []roundtypes.Round
	for _, r := range f.rounds {
		if state == "" || r.State == state {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeCourseRepo struct {
	course coursetypes.Course
}

func (f *fakeCourseRepo) CreateCourse(context.Context, coursetypes.Course) error { return nil }

func (f *fakeCourseRepo) GetCourse(context.Context, uuid.UUID) (coursetypes.Course, error) {
	return f.course, nil
}

func (f *fakeCourseRepo) ListCourses(context.Context) ([]coursetypes.Course, error) {
	return []coursetypes.Course{f.course}, nil
}

type fakeSettingsRepo struct {
	table *settlement.StablefordTable
}

func (f *fakeSettingsRepo) LoadStablefordTable(context.Context) (settlement.StablefordTable, error) {
	if f.table == nil {
		return settlement.DefaultStablefordTable(), nil
	}
	return *f.table, nil
}

func (f *fakeSettingsRepo) SaveStablefordTable(_ context.Context, table settlement.StablefordTable) error {
	f.table = &table
	return nil
}

func (f *fakeSettingsRepo) ResetStablefordTable(context.Context) error {
	f.table = nil
	return nil
}

type fakeEventBus struct {
	mu        sync.Mutex
	published map[string][]*message.Message
}

func newFakeEventBus() *fakeEventBus {
	return &fakeEventBus{published: make(map[string][]*message.Message)}
}

func (f *fakeEventBus) Publish(topic string, messages ...*message.Message) error {
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
