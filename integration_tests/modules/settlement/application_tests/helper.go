package settlementapplicationtests

import (
	"io"
	"log"
	"log/slog"
	"sync"
	"testing"

	"go.opentelemetry.io/otel/trace/noop"

	coursedb "github.com/fairway-collective/scorecard/app/modules/course/infrastructure/repositories"
	roundservice "github.com/fairway-collective/scorecard/app/modules/round/application"
	rounddb "github.com/fairway-collective/scorecard/app/modules/round/infrastructure/repositories"
	settlementservice "github.com/fairway-collective/scorecard/app/modules/settlement/application"
	settlementdb "github.com/fairway-collective/scorecard/app/modules/settlement/infrastructure/repositories"
	settlementsubscribers "github.com/fairway-collective/scorecard/app/modules/settlement/infrastructure/subscribers"
	"github.com/fairway-collective/scorecard/integration_tests/testutils"
	roundmetrics "github.com/fairway-collective/scorecard/internal/observability/metrics/round"
	settlementmetrics "github.com/fairway-collective/scorecard/internal/observability/metrics/settlement"
)

var (
	testEnv     *testutils.TestEnvironment
	testEnvErr  error
	testEnvOnce sync.Once

	testDeps     TestDeps
	testDepsErr  error
	testDepsOnce sync.Once
)

// TestDeps wires the round and settlement services against the shared
// containers, with the settlement subscribers listening on the real bus.
type TestDeps struct {
	Env               *testutils.TestEnvironment
	RoundService      roundservice.Service
	SettlementService settlementservice.Service
}

// GetTestEnv lazily starts the shared container environment for this package.
func GetTestEnv(t *testing.T) *testutils.TestEnvironment {
	t.Helper()

	testEnvOnce.Do(func() {
		log.Println("Initializing settlement application test environment...")
		env, err := testutils.NewTestEnvironment(t)
		if err != nil {
			testEnvErr = err
			return
		}
		testEnv = env
	})

	if testEnvErr != nil {
		t.Fatalf("Settlement application test environment initialization failed: %v", testEnvErr)
	}

	return testEnv
}

// setupDeps builds the services and starts the subscribers exactly once;
// JetStream durable consumers must not be created twice in one process.
// Tables are truncated on every call.
func setupDeps(t *testing.T) TestDeps {
	t.Helper()

	env := GetTestEnv(t)

	testDepsOnce.Do(func() {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		tracer := noop.NewTracerProvider().Tracer("integration")

		roundRepo := &rounddb.RoundDBImpl{DB: env.DB}
		courseRepo := &coursedb.CourseDBImpl{DB: env.DB}
		settingsRepo := &settlementdb.SettlementDBImpl{DB: env.DB}

		roundSvc := roundservice.NewRoundService(
			roundRepo, courseRepo, env.EventBus, logger, roundmetrics.NoOpMetrics{}, tracer)
		settlementSvc := settlementservice.NewSettlementService(
			roundRepo, courseRepo, settingsRepo, env.EventBus, logger, settlementmetrics.NoOpMetrics{}, tracer)

		subs := settlementsubscribers.NewSettlementSubscribers(env.EventBus, settlementSvc, logger)
		if err := subs.Start(env.Ctx); err != nil {
			testDepsErr = err
			return
		}

		testDeps = TestDeps{
			Env:               env,
			RoundService:      roundSvc,
			SettlementService: settlementSvc,
		}
	})

	if testDepsErr != nil {
		t.Fatalf("failed to start settlement subscribers: %v", testDepsErr)
	}

	if err := env.TruncateTables(env.Ctx); err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}

	return testDeps
}
