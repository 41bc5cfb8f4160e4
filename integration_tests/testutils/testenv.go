package testutils

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	_ "github.com/jackc/pgx/v5/stdlib"

	coursemigrations "github.com/fairway-collective/scorecard/app/modules/course/infrastructure/repositories/migrations"
	roundmigrations "github.com/fairway-collective/scorecard/app/modules/round/infrastructure/repositories/migrations"
	settlementmigrations "github.com/fairway-collective/scorecard/app/modules/settlement/infrastructure/repositories/migrations"
	"github.com/fairway-collective/scorecard/config"
	"github.com/fairway-collective/scorecard/db/bundb"
	"github.com/fairway-collective/scorecard/integration_tests/containers"
	"github.com/fairway-collective/scorecard/internal/eventbus"
)

// TestEnvironment holds the containers and connections shared by a package
// of integration tests.
type TestEnvironment struct {
	Ctx           context.Context
	CancelContext context.CancelFunc
	PgContainer   *postgres.PostgresContainer
	NatsContainer testcontainers.Container
	DB            *bun.DB
	DBService     *bundb.DBService
	EventBus      eventbus.EventBus
	Config        *config.Config
	T             *testing.T
}

// NewTestEnvironment starts Postgres and NATS containers, connects to both
// and runs all module migrations.
func NewTestEnvironment(t *testing.T) (*TestEnvironment, error) {
	ctx, cancel := context.WithCancel(context.Background())

	env := &TestEnvironment{
		Ctx:           ctx,
		CancelContext: cancel,
		T:             t,
	}

	if err := env.setup(ctx); err != nil {
		env.Cleanup()
		return nil, err
	}

	return env, nil
}

func (env *TestEnvironment) setup(ctx context.Context) error {
	pgContainer, pgConnStr, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		return fmt.Errorf("failed to setup postgres container: %w", err)
	}
	env.PgContainer = pgContainer

	natsContainer, natsURL, err := containers.SetupNatsContainer(ctx)
	if err != nil {
		return fmt.Errorf("failed to setup nats container: %w", err)
	}
	env.NatsContainer = natsContainer

	env.Config = &config.Config{
		Postgres: config.PostgresConfig{DSN: pgConnStr},
		NATS:     config.NATSConfig{URL: natsURL},
	}

	dbService, err := bundb.NewBunDBService(ctx, env.Config.Postgres)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	env.DBService = dbService
	env.DB = dbService.GetDB()

	if err := runMigrations(ctx, env.DB); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus, err := eventbus.NewJetStreamEventBus(natsURL, watermill.NewSlogLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create event bus: %w", err)
	}
	env.EventBus = bus

	return nil
}

func runMigrations(ctx context.Context, db *bun.DB) error {
	orderedModules := []struct {
		name       string
		migrations *migrate.Migrations
	}{
		{"course", coursemigrations.Migrations},
		{"round", roundmigrations.Migrations},
		{"settlement", settlementmigrations.Migrations},
	}

	for _, mod := range orderedModules {
		migrator := migrate.NewMigrator(db, mod.migrations)
		if err := migrator.Init(ctx); err != nil {
			return fmt.Errorf("failed to init migrations for %s: %w", mod.name, err)
		}
		group, err := migrator.Migrate(ctx)
		if err != nil {
			return fmt.Errorf("failed to migrate %s: %w", mod.name, err)
		}
		if !group.IsZero() {
			log.Printf("Migrated module %s to %s", mod.name, group)
		}
	}
	return nil
}

// TruncateTables clears all application tables between tests.
func (env *TestEnvironment) TruncateTables(ctx context.Context) error {
	for _, table := range []string{"rounds", "courses", "stableford_settings"} {
		if _, err := env.DB.ExecContext(ctx, "TRUNCATE TABLE "+table); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}

// Cleanup tears down connections and containers in reverse start order.
func (env *TestEnvironment) Cleanup() {
	ctx := context.Background()

	if env.EventBus != nil {
		if err := env.EventBus.Close(); err != nil {
			log.Printf("Failed to close event bus: %v", err)
		}
	}
	if env.DBService != nil {
		if err := env.DBService.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}
	if env.NatsContainer != nil {
		if err := env.NatsContainer.Terminate(ctx); err != nil {
			log.Printf("Failed to terminate NATS container: %v", err)
		}
	}
	if env.PgContainer != nil {
		if err := env.PgContainer.Terminate(ctx); err != nil {
			log.Printf("Failed to terminate Postgres container: %v", err)
		}
	}
	env.CancelContext()
}
