package main

import (
	"context"
	"log/slog"
	"os"

	"pushrelay/config"
	"pushrelay/internal/infra/persistence/store"
	"pushrelay/migrations"

	"github.com/pkg/errors"
)

func runMigrate(ctx context.Context, direction string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := store.Open(cfg.Database, logger, cfg.Env.Debug)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.WithStack(err)
	}
	defer sqlDB.Close()

	switch direction {
	case "up":
		return migrations.Up(ctx, sqlDB, cfg.Database.Driver, logger)
	case "down":
		return migrations.Rollback(ctx, sqlDB, cfg.Database.Driver, logger)
	default:
		return errors.Errorf("unknown migration direction %q", direction)
	}
}
