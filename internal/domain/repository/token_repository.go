// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"pushrelay/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for token persistence.
var (
	// ErrDeviceTokenNotFound is returned when a token is not found.
	ErrDeviceTokenNotFound = errors.New("token not found")
)

// TokenRepository defines the interface for device token database operations.
type TokenRepository interface {
	// Upsert inserts the token or overwrites owner, platform and user agent of the
	// existing row, reactivating it. The creation time of an existing row is kept.
	Upsert(ctx context.Context, token *entity.DeviceToken) (*entity.DeviceToken, error)

	// FindByToken retrieves a token regardless of its active flag.
	FindByToken(ctx context.Context, token string) (*entity.DeviceToken, error)

	// FindActive retrieves all active tokens, most recently updated first.
	FindActive(ctx context.Context) ([]*entity.DeviceToken, error)

	// FindActiveByOwner retrieves the active tokens of one owner, most recently updated first.
	FindActiveByOwner(ctx context.Context, ownerID string) ([]*entity.DeviceToken, error)

	// Deactivate clears the active flag. It reports false when no active row matched.
	Deactivate(ctx context.Context, token string) (bool, error)

	// DeactivateMany clears the active flag for every listed token and returns the affected count.
	DeactivateMany(ctx context.Context, tokens []string) (int64, error)

	// Stats aggregates active tokens; recent registrations are those created at or after since.
	Stats(ctx context.Context, since time.Time) (*entity.DeviceStats, error)
}
