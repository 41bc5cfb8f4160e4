// Package bundb wires the bun connection pool and the module repositories.
package bundb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	coursedb "github.com/fairway-collective/scorecard/app/modules/course/infrastructure/repositories"
	rounddb "github.com/fairway-collective/scorecard/app/modules/round/infrastructure/repositories"
	settlementdb "github.com/fairway-collective/scorecard/app/modules/settlement/infrastructure/repositories"
	"github.com/fairway-collective/scorecard/config"
)

// DBService bundles the module repositories over a shared connection pool.
type DBService struct {
	CourseDB     *coursedb.CourseDBImpl
	RoundDB      *rounddb.RoundDBImpl
	SettlementDB *settlementdb.SettlementDBImpl
	db           *bun.DB
}

// GetDB returns the underlying database connection pool.
func (dbService *DBService) GetDB() *bun.DB {
	return dbService.db
}

// Close closes the connection pool.
func (dbService *DBService) Close() error {
	return dbService.db.Close()
}

// NewBunDBService initializes a new DBService with the provided Postgres configuration.
func NewBunDBService(ctx context.Context, cfg config.PostgresConfig) (*DBService, error) {
	sqldb, err := pgConn(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	db.RegisterModel(
		(*coursedb.Course)(nil),
		(*rounddb.Round)(nil),
		(*settlementdb.StablefordSettings)(nil),
	)

	return &DBService{
		CourseDB:     &coursedb.CourseDBImpl{DB: db},
		RoundDB:      &rounddb.RoundDBImpl{DB: db},
		SettlementDB: &settlementdb.SettlementDBImpl{DB: db},
		db:           db,
	}, nil
}

func pgConn(ctx context.Context, dsn string) (*sql.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))

	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return sqldb, nil
}
