package main

import (
	"context"
	"log"
	"os"
	"time"

	"talentdesk/internal/config"
	"talentdesk/internal/database/migration"
	dbpostgres "talentdesk/internal/database/postgres"
	"talentdesk/internal/seeder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	runner := migration.Runner{Dir: cfg.Database.MigrationsDir}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	if err := seeder.RunAll(ctx, db, logger, seeder.DemoSeeder{}); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	logger.Printf("[Seed] done")
}
