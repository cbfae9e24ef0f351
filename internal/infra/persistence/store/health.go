package store

import (
	"context"

	"pushrelay/internal/errors"

	"gorm.io/gorm"
)

// HealthChecker reports whether the database answers.
type HealthChecker struct {
	db *gorm.DB
}

// NewHealthChecker creates a HealthChecker for db.
func NewHealthChecker(db *gorm.DB) *HealthChecker {
	return &HealthChecker{db: db}
}

// Ping checks connectivity to the primary database.
func (h *HealthChecker) Ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(sqlDB.PingContext(ctx))
}
