// Package migrations embeds the schema migrations for every supported database driver.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"

	"pushrelay/internal/domain/constants"
	"pushrelay/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/sqlite/*.sql sql/postgres/*.sql
var migrationFiles embed.FS

// Up applies all pending migrations for driver.
func Up(ctx context.Context, db *sql.DB, driver string, logger *slog.Logger) error {
	return run(ctx, db, driver, logger, func(m *migrate.Migrate) error {
		return m.Up()
	})
}

// Rollback reverts the last applied migration.
func Rollback(ctx context.Context, db *sql.DB, driver string, logger *slog.Logger) error {
	return run(ctx, db, driver, logger, func(m *migrate.Migrate) error {
		return m.Steps(-1)
	})
}

func run(ctx context.Context, db *sql.DB, driver string, logger *slog.Logger, step func(*migrate.Migrate) error) error {
	source, err := iofs.New(migrationFiles, "sql/"+driver)
	if err != nil {
		return errors.Wrap(err, "failed to read migration files")
	}
	defer source.Close()

	dbDriver, release, err := newDatabaseDriver(ctx, db, driver)
	if err != nil {
		return err
	}
	defer release()

	m, err := migrate.NewWithInstance("iofs", source, driver, dbDriver)
	if err != nil {
		return errors.Wrap(err, "failed to create migrator")
	}

	if err := step(m); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("Migrations: nothing to apply", slog.String("driver", driver))

			return nil
		}

		return errors.Wrap(err, "migration failed")
	}

	version, dirty, _ := m.Version()
	logger.Info("Migrations applied",
		slog.String("driver", driver),
		slog.Uint64("version", uint64(version)),
		slog.Bool("dirty", dirty),
	)

	return nil
}

// newDatabaseDriver wraps db for golang-migrate. The returned release func
// frees what the driver holds without closing the shared *sql.DB.
func newDatabaseDriver(ctx context.Context, db *sql.DB, driver string) (database.Driver, func(), error) {
	switch driver {
	case constants.DatabaseDriverSQLite:
		d, err := sqlite.WithInstance(db, &sqlite.Config{})
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create sqlite migration driver")
		}

		// sqlite's Close closes the *sql.DB itself
		return d, func() {}, nil

	case constants.DatabaseDriverPostgres:
		conn, err := db.Conn(ctx)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to acquire migration connection")
		}

		d, err := postgres.WithConnection(ctx, conn, &postgres.Config{})
		if err != nil {
			_ = conn.Close()

			return nil, nil, errors.Wrap(err, "failed to create postgres migration driver")
		}

		return d, func() { _ = d.Close() }, nil

	default:
		return nil, nil, errors.Errorf("unsupported database driver: %s", driver)
	}
}
