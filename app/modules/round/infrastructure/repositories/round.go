package rounddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	roundtypes "github.com/fairway-collective/scorecard/app/modules/round/domain/types"
)

// RoundDBImpl is the concrete implementation of the Repository interface using bun.
type RoundDBImpl struct {
	DB *bun.DB
}

// CreateRound inserts a new round.
func (db *RoundDBImpl) CreateRound(ctx context.Context, round roundtypes.Round) error {
	model := FromDomain(round)
	if _, err := db.DB.NewInsert().Model(model).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create round: %w", err)
	}
	return nil
}

// GetRound retrieves a specific round by ID.
func (db *RoundDBImpl) GetRound(ctx context.Context, roundID uuid.UUID) (roundtypes.Round, error) {
	model := new(Round)
	err := db.DB.NewSelect().
		Model(model).
		Where("id = ?", roundID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return roundtypes.Round{}, ErrRoundNotFound
		}
		return roundtypes.Round{}, fmt.Errorf("failed to fetch round: %w", err)
	}
	return model.ToDomain(), nil
}

// UpdateRound replaces the stored round document.
func (db *RoundDBImpl) UpdateRound(ctx context.Context, round roundtypes.Round) error {
	model := FromDomain(round)
	model.UpdatedAt = time.Now().UTC()
	res, err := db.DB.NewUpdate().
		Model(model).
		Column("state", "settings", "participants", "scores", "presses", "updated_at").
		Where("id = ?", round.ID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update round: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return ErrRoundNotFound
	}
	return nil
}

// ListRounds returns rounds in the given state, newest first. An empty
// state returns every round.
func (db *RoundDBImpl) ListRounds(ctx context.Context, state roundtypes.RoundState) ([]roundtypes.Round, error) {
	var models []Round
	q := db.DB.NewSelect().
		Model(&models).
		Order("created_at DESC")
	if state != "" {
		q = q.Where("state = ?", state)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}
	rounds := make([]roundtypes.Round, len(models))
	for i := range models {
		rounds[i] = models[i].ToDomain()
	}
	return rounds, nil
}
