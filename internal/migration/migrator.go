package migration

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// GolangMigrator runs the versioned SQL migrations under the configured
// migrations directory against the application database.
type GolangMigrator struct {
	log            *logrus.Logger
	db             *gorm.DB
	migrationsPath string
	dbName         string
}

func NewGolangMigrator(log *logrus.Logger, db *gorm.DB, migrationsPath, dbName string) *GolangMigrator {
	return &GolangMigrator{
		log:            log,
		db:             db,
		migrationsPath: migrationsPath,
		dbName:         dbName,
	}
}

func (m *GolangMigrator) Migrate(ctx context.Context, fresh bool) error {
	instance, err := m.newInstance()
	if err != nil {
		return err
	}
	defer instance.Close()

	if fresh {
		// Roll everything back through the down migrations before
		// re-applying from scratch.
		if err := instance.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("rollback failed: %w", err)
		}
		m.log.Info("Schema rolled back for fresh migration")
	}

	if err := instance.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up failed: %w", err)
	}

	m.log.Info("Schema migrations applied")
	return nil
}

func (m *GolangMigrator) newInstance() (*migrate.Migrate, error) {
	sqlDB, err := m.db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	instance, err := migrate.NewWithDatabaseInstance("file://"+m.migrationsPath, m.dbName, driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return instance, nil
}
