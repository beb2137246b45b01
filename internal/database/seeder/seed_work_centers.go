package seeder

import (
	"context"
	"fmt"

	"mes-workforce/internal/database"
)

type WorkCentersSeeder struct{}

func (WorkCentersSeeder) Name() string { return "work_centers" }

func (WorkCentersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "work_centers", "id", "code", "name", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Code string
		Name string
	}{
		{Code: "WC-WELD", Name: "Welding Line"},
		{Code: "WC-ASSY", Name: "Assembly Line"},
		{Code: "WC-MACH", Name: "Machining Cell"},
		{Code: "WC-QA", Name: "Quality Inspection"},
		{Code: "WC-MAINT", Name: "Maintenance Shop"},
		{Code: "WC-PACK", Name: "Packaging Station"},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO work_centers (id, code, name) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (code) DO NOTHING`,
			it.Code,
			it.Name,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
