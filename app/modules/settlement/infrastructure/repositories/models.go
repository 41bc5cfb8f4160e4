package settlementdb

import (
	"time"

	"github.com/uptrace/bun"

	settlement "github.com/fairway-collective/scorecard/app/modules/settlement/domain"
)

// stablefordSettingsName is the single row holding the club's point table.
const stablefordSettingsName = "default"

// StablefordSettings is the bun model for the configurable Stableford point
// table.
type StablefordSettings struct {
	bun.BaseModel `bun:"table:stableford_settings,alias:ss"`

	Name      string                     `bun:"name,pk"`
	Table     settlement.StablefordTable `bun:"point_table,type:jsonb,notnull"`
	UpdatedAt time.Time                  `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
