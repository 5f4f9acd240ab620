// Command migrate imports the legacy directory data: it applies schema
// migrations, executes the legacy SQL dump, and reports row counts. It is
// operator-invoked and must not run concurrently against the same database.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/cmd/bootstrap"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/config"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/infrastructure/database"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/migration"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	fresh := pflag.Bool("fresh", false, "drop and recreate all schema objects before seeding")
	force := pflag.Bool("force", false, "bypass the production confirmation")
	pflag.Parse()

	if err := run(*fresh, *force); err != nil {
		if errors.Is(err, migration.ErrAborted) {
			fmt.Fprintln(os.Stderr, "Aborted.")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(fresh, force bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	bootstrap.SetupLogger(cfg)
	log := logrus.StandardLogger()

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	orchestrator := migration.NewOrchestrator(
		log,
		cfg,
		migration.NewGolangMigrator(log, db, cfg.Seed.MigrationsPath, cfg.DB.Name),
		migration.NewLegacySeeder(log, db, cfg.Seed),
		repository.NewStatsRepository(db),
		migration.NewStdinPrompter(os.Stdin, os.Stdout),
		os.Stdout,
	)

	return orchestrator.Run(context.Background(), migration.Options{
		Fresh: fresh,
		Force: force,
	})
}
