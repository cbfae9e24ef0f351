package store

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"pushrelay/config"
	"pushrelay/internal/domain/constants"
	"pushrelay/migrations"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite database with the real migrations applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())

	db, err := Open(&config.DatabaseConfig{
		Driver: constants.DatabaseDriverSQLite,
		SQLite: &config.SQLiteConfig{Path: "file:" + name + "?mode=memory&cache=shared"},
	}, logger, false)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migrations.Up(context.Background(), sqlDB, constants.DatabaseDriverSQLite, logger))

	return db
}

func strPtr(s string) *string {
	return &s
}

func testToken(prefix string) string {
	return prefix + strings.Repeat("x", 120)
}
