package usecase

import (
	"context"

	"pushrelay/internal/domain/entity"
)

// RegisterDeviceInput carries the fields of a token registration.
type RegisterDeviceInput struct {
	Token     string
	OwnerID   *string
	Platform  entity.Platform
	UserAgent *string
}

// DeviceUsecase defines the interface for device token management use cases
type DeviceUsecase interface {
	// RegisterDevice inserts a token or refreshes an existing one and reactivates it
	RegisterDevice(ctx context.Context, input *RegisterDeviceInput) (*entity.DeviceToken, error)

	// GetDevice retrieves a token record, active or not
	GetDevice(ctx context.Context, token string) (*entity.DeviceToken, error)

	// DeactivateDevice marks an active token inactive
	DeactivateDevice(ctx context.Context, token string) error

	// ListActiveDevices retrieves every active token
	ListActiveDevices(ctx context.Context) ([]*entity.DeviceToken, error)

	// ListOwnerDevices retrieves the active tokens of one owner
	ListOwnerDevices(ctx context.Context, ownerID string) ([]*entity.DeviceToken, error)

	// GetDeviceStats aggregates the active token population
	GetDeviceStats(ctx context.Context) (*entity.DeviceStats, error)
}
