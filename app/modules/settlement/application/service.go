package settlementservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	coursedb "github.com/fairway-collective/scorecard/app/modules/course/infrastructure/repositories"
	rounddb "github.com/fairway-collective/scorecard/app/modules/round/infrastructure/repositories"
	settlement "github.com/fairway-collective/scorecard/app/modules/settlement/domain"
	settlementdb "github.com/fairway-collective/scorecard/app/modules/settlement/infrastructure/repositories"
	"github.com/fairway-collective/scorecard/internal/attr"
	"github.com/fairway-collective/scorecard/internal/eventbus"
	settlementmetrics "github.com/fairway-collective/scorecard/internal/observability/metrics/settlement"
	"github.com/fairway-collective/scorecard/internal/results"
)

// ErrRoundNotFound is surfaced to callers when the round does not exist.
var ErrRoundNotFound = rounddb.ErrRoundNotFound

// SettlementService implements the Service interface.
type SettlementService struct {
	rounds   rounddb.Repository
	courses  coursedb.Repository
	settings settlementdb.Repository
	EventBus eventbus.EventBus
	logger   *slog.Logger
	metrics  settlementmetrics.SettlementMetrics
	tracer   trace.Tracer
}

// NewSettlementService creates a new SettlementService.
func NewSettlementService(
	rounds rounddb.Repository,
	courses coursedb.Repository,
	settings settlementdb.Repository,
	eventBus eventbus.EventBus,
	logger *slog.Logger,
	metrics settlementmetrics.SettlementMetrics,
	tracer trace.Tracer,
) *SettlementService {
	return &SettlementService{
		rounds:   rounds,
		courses:  courses,
		settings: settings,
		EventBus: eventBus,
		logger:   logger,
		metrics:  metrics,
		tracer:   tracer,
	}
}

// session loads the round and its course and pairs them for the engine.
func (s *SettlementService) session(ctx context.Context, roundID uuid.UUID) (settlement.Session, error) {
	round, err := s.rounds.GetRound(ctx, roundID)
	if err != nil {
		if errors.Is(err, rounddb.ErrRoundNotFound) {
			return settlement.Session{}, ErrRoundNotFound
		}
		return settlement.Session{}, fmt.Errorf("failed to fetch round: %w", err)
	}
	course, err := s.courses.GetCourse(ctx, round.CourseID)
	if err != nil {
		return settlement.Session{}, fmt.Errorf("failed to fetch course: %w", err)
	}
	return settlement.NewSession(course, round), nil
}

// operationFunc is the generic signature for service operation functions.
type operationFunc[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

// withTelemetry wraps a service operation with tracing, metrics, and panic recovery.
func withTelemetry[S any, F any](
	s *SettlementService,
	ctx context.Context,
	operationName string,
	roundID uuid.UUID,
	op operationFunc[S, F],
) (result results.OperationResult[S, F], err error) {

	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String("round_id", roundID.String()),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName, roundID)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.RoundID("round_id", roundID),
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName, roundID)
			span.RecordError(err)
			result = results.OperationResult[S, F]{}
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.RoundID("round_id", roundID),
			attr.Error(wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName, roundID)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	if result.IsSuccess() {
		s.metrics.RecordOperationSuccess(ctx, operationName, roundID)
	}

	return result, nil
}

// publishEvent marshals a payload and publishes it with the correlation ID
// carried over from the context when present.
func (s *SettlementService) publishEvent(ctx context.Context, topic string, payload any) error {
	if s.EventBus == nil {
		return nil
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload for %s: %w", topic, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payloadBytes)
	correlationID := attr.CorrelationIDFromContext(ctx)
	if correlationID == "" {
		correlationID = watermill.NewUUID()
	}
	msg.Metadata.Set(middleware.CorrelationIDMetadataKey, correlationID)

	if err := s.EventBus.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", topic, err)
	}
	return nil
}
