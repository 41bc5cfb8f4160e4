package settlementmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	settlementdb "github.com/fairway-collective/scorecard/app/modules/settlement/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating stableford_settings table...")

		_, err := db.NewCreateTable().Model((*settlementdb.StablefordSettings)(nil)).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create stableford_settings table: %w", err)
		}

		fmt.Println("Stableford settings table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Rolling back stableford_settings table...")

		_, err := db.NewDropTable().Model((*settlementdb.StablefordSettings)(nil)).IfExists().Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to drop stableford_settings table: %w", err)
		}

		fmt.Println("Stableford settings table dropped successfully!")
		return nil
	})
}
