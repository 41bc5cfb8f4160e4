package settlementdb

import (
	"context"

	settlement "github.com/fairway-collective/scorecard/app/modules/settlement/domain"
)

// Repository persists the configurable Stableford point table.
//
// Load falls back to the default table when nothing was ever saved, so
// callers always get a usable table.
type Repository interface {
	LoadStablefordTable(ctx context.Context) (settlement.StablefordTable, error)
	SaveStablefordTable(ctx context.Context, table settlement.StablefordTable) error
	ResetStablefordTable(ctx context.Context) error
}
