// Package migration applies the embedded SQL schema with golang-migrate.
package migration

import (
	"context"
	"embed"
	"log/slog"

	"interest/config"
	"interest/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

//go:embed sql/*.sql
var migrationFS embed.FS

// Params defines the dependencies of the startup migration hook
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// Register runs Up on application start when migrations.autoRun is set.
func Register(params Params) {
	if params.Config.Migrations == nil || !params.Config.Migrations.AutoRun {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return Up(params.DB, params.Logger)
		},
	})
}

// Up applies all pending migrations.
func Up(db *gorm.DB, logger *slog.Logger) error {
	m, err := newMigrate(db)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "migration up failed")
	}

	version, dirty, _ := m.Version()
	logger.Info("Database schema up to date", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

	return nil
}

// Down rolls back every applied migration.
func Down(db *gorm.DB, logger *slog.Logger) error {
	m, err := newMigrate(db)
	if err != nil {
		return err
	}

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "migration down failed")
	}

	logger.Info("Database schema rolled back")

	return nil
}

func newMigrate(db *gorm.DB) (*migrate.Migrate, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	source, err := iofs.New(migrationFS, "sql")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded migrations")
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrate driver")
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, errors.Wrap(err, "failed to init migrate")
	}

	return m, nil
}
