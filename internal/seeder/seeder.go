package seeder

import (
	"context"
	"fmt"
	"log"

	"talentdesk/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// RunAll executes seeders in order and stops on the first failure. Seeders
// are idempotent; rerunning against a seeded database is a no-op.
func RunAll(ctx context.Context, db database.DB, logger *log.Logger, seeders ...Seeder) error {
	for _, s := range seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seeder %q: %w", s.Name(), err)
		}
		if logger != nil {
			logger.Printf("[Seed] applied: %s", s.Name())
		}
	}
	return nil
}
