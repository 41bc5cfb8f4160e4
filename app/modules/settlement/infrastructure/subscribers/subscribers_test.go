package settlementsubscribers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
	settlementservice "github.com/fairway-collective/scorecard/app/modules/settlement/application"
	settlement "github.com/fairway-collective/scorecard/app/modules/settlement/domain"
	roundevents "github.com/fairway-collective/scorecard/internal/events/round"
)

type fakeService struct {
	mu       sync.Mutex
	computed []uuid.UUID
}

func (f *fakeService) ComputeSettlement(_ context.Context, roundID uuid.UUID) (settlementservice.SettlementResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.computed = append(f.computed, roundID)
	return settlementservice.SettlementResult{Success: &settlement.Settlement{}}, nil
}

func (f *fakeService) computedIDs() []uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]uuid.UUID(nil), f.computed...)
}

func (f *fakeService) Scorecard(context.Context, uuid.UUID) (settlementservice.Scorecard, error) {
	return settlementservice.Scorecard{}, nil
}

func (f *fakeService) MatchStatus(context.Context, uuid.UUID, roundtypes.Segment) (settlement.MatchStatus, error) {
	return settlement.MatchStatus{}, nil
}

func (f *fakeService) PressOpportunities(context.Context, uuid.UUID, roundtypes.Segment) ([]settlement.PressOpportunity, error) {
	return nil, nil
}

func (f *fakeService) StablefordTable(context.Context) (settlement.StablefordTable, error) {
	return settlement.DefaultStablefordTable(), nil
}

func (f *fakeService) UpdateStablefordTable(context.Context, settlement.StablefordTable) error {
	return nil
}

func (f *fakeService) ResetStablefordTable(context.Context) error { return nil }

func (f *fakeService) ExportScorecardXLSX(context.Context, uuid.UUID) ([]byte, error) {
	return nil, nil
}

func (f *fakeService) PayoutChartPNG(context.Context, uuid.UUID) ([]byte, error) {
	return nil, nil
}

type channelBus struct {
	mu     sync.Mutex
	topics map[string]chan *message.Message
}

func newChannelBus() *channelBus {
	return &channelBus{topics: make(map[string]chan *message.Message)}
}

func (b *channelBus) channel(topic string) chan *message.Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.topics[topic]; !ok {
		b.topics[topic] = make(chan *message.Message, 8)
	}
	return b.topics[topic]
}

func (b *channelBus) Publish(topic string, messages ...*message.Message) error {
	ch := b.channel(topic)
	for _, msg := range messages {
		ch <- msg
	}
	return nil
}

func (b *channelBus) Subscribe(_ context.Context, topic string) (<-chan *message.Message, error) {
	return b.channel(topic), nil
}

func (b *channelBus) Close() error { return nil }

func TestScoreSubmittedTriggersRecompute(t *testing.T) {
	bus := newChannelBus()
	service := &fakeService{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	subs := NewSettlementSubscribers(bus, service, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, subs.Start(ctx))

	roundID := uuid.New()
	payload, err := json.Marshal(roundevents.ScoreSubmittedPayload{RoundID: roundID, PlayerID: "alice", Hole: 1, Strokes: 4})
	require.NoError(t, err)

	msg := message.NewMessage(watermill.NewUUID(), payload)
	require.NoError(t, bus.Publish(roundevents.ScoreSubmitted, msg))

	require.Eventually(t, func() bool {
		return len(service.computedIDs()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, roundID, service.computedIDs()[0])

	select {
	case <-msg.Acked():
	case <-time.After(time.Second):
		t.Fatal("message was not acked")
	}
}

func TestMalformedPayloadIsAcked(t *testing.T) {
	bus := newChannelBus()
	service := &fakeService{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	subs := NewSettlementSubscribers(bus, service, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, subs.Start(ctx))

	msg := message.NewMessage(watermill.NewUUID(), []byte("not json"))
	require.NoError(t, bus.Publish(roundevents.PressCreated, msg))

	select {
	case <-msg.Acked():
	case <-time.After(time.Second):
		t.Fatal("malformed message was not acked")
	}
	assert.Empty(t, service.computedIDs())
}
