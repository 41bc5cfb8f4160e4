// Package settlementsubscribers recomputes settlements when round events
// arrive on the bus.
package settlementsubscribers

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/google/uuid"

	settlementservice "github.com/fairway-collective/scorecard/app/modules/settlement/application"
	"github.com/fairway-collective/scorecard/internal/attr"
	"github.com/fairway-collective/scorecard/internal/eventbus"
	roundevents "github.com/fairway-collective/scorecard/internal/events/round"
)

// SettlementSubscribers listens for score, press, and finalization events and
// triggers a settlement recompute for the affected round.
type SettlementSubscribers struct {
	eventBus eventbus.EventBus
	service  settlementservice.Service
	logger   *slog.Logger
}

// NewSettlementSubscribers creates the settlement event subscribers.
func NewSettlementSubscribers(eventBus eventbus.EventBus, service settlementservice.Service, logger *slog.Logger) *SettlementSubscribers {
	return &SettlementSubscribers{
		eventBus: eventBus,
		service:  service,
		logger:   logger,
	}
}

// recomputeTopics are the events that invalidate a round's settlement.
var recomputeTopics = []string{
	roundevents.ScoreSubmitted,
	roundevents.PressCreated,
	roundevents.RoundFinalized,
}

// Start subscribes to every recompute topic. It returns once the
// subscriptions are established; message handling runs until ctx is
// cancelled.
func (s *SettlementSubscribers) Start(ctx context.Context) error {
	for _, topic := range recomputeTopics {
		messages, err := s.eventBus.Subscribe(ctx, topic)
		if err != nil {
			return err
		}
		go s.consume(ctx, topic, messages)
	}
	return nil
}

func (s *SettlementSubscribers) consume(ctx context.Context, topic string, messages <-chan *message.Message) {
	for msg := range messages {
		s.handle(ctx, topic, msg)
	}
}

// roundRef is the shared shape of every recompute payload.
type roundRef struct {
	RoundID uuid.UUID `json:"round_id"`
}

func (s *SettlementSubscribers) handle(ctx context.Context, topic string, msg *message.Message) {
	var ref roundRef
	if err := json.Unmarshal(msg.Payload, &ref); err != nil || ref.RoundID == uuid.Nil {
		s.logger.ErrorContext(ctx, "Discarding malformed event",
			attr.String("topic", topic),
			attr.String("message_id", msg.UUID),
			attr.Error(err),
		)
		// Malformed payloads never become valid; ack so they are not redelivered.
		msg.Ack()
		return
	}

	if correlationID := msg.Metadata.Get(middleware.CorrelationIDMetadataKey); correlationID != "" {
		ctx = attr.WithCorrelationID(ctx, correlationID)
	}

	result, err := s.service.ComputeSettlement(ctx, ref.RoundID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Settlement recompute failed",
			attr.String("topic", topic),
			attr.RoundID("round_id", ref.RoundID),
			attr.Error(err),
		)
		msg.Nack()
		return
	}
	if result.IsFailure() {
		s.logger.WarnContext(ctx, "Settlement recompute rejected",
			attr.String("topic", topic),
			attr.RoundID("round_id", ref.RoundID),
			attr.String("reason", result.Failure.Error),
		)
	}
	msg.Ack()
}
