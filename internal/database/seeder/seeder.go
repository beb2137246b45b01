package seeder

import (
	"context"

	"mes-workforce/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
