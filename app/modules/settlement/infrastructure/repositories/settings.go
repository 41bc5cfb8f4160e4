package settlementdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	settlement "github.com/fairway-collective/scorecard/app/modules/settlement/domain"
)

// SettlementDBImpl is the concrete implementation of the Repository interface using bun.
type SettlementDBImpl struct {
	DB *bun.DB
}

// LoadStablefordTable returns the saved point table, or the default one when
// no row exists.
func (db *SettlementDBImpl) LoadStablefordTable(ctx context.Context) (settlement.StablefordTable, error) {
	model := new(StablefordSettings)
	err := db.DB.NewSelect().
		Model(model).
		Where("name = ?", stablefordSettingsName).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return settlement.DefaultStablefordTable(), nil
		}
		return settlement.StablefordTable{}, fmt.Errorf("failed to load stableford table: %w", err)
	}
	return model.Table, nil
}

// SaveStablefordTable upserts the point table.
func (db *SettlementDBImpl) SaveStablefordTable(ctx context.Context, table settlement.StablefordTable) error {
	model := &StablefordSettings{
		Name:      stablefordSettingsName,
		Table:     table,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := db.DB.NewInsert().
		Model(model).
		On("CONFLICT (name) DO UPDATE").
		Set("point_table = EXCLUDED.point_table").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save stableford table: %w", err)
	}
	return nil
}

// ResetStablefordTable removes the saved row so Load falls back to the default.
func (db *SettlementDBImpl) ResetStablefordTable(ctx context.Context) error {
	_, err := db.DB.NewDelete().
		Model((*StablefordSettings)(nil)).
		Where("name = ?", stablefordSettingsName).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset stableford table: %w", err)
	}
	return nil
}
