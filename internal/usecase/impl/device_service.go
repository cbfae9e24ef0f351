package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "pushrelay/internal/delivery/context"
	"pushrelay/internal/domain/constants"
	"pushrelay/internal/domain/entity"
	domainerrors "pushrelay/internal/domain/errors"
	"pushrelay/internal/domain/repository"
	"pushrelay/internal/errors"
	"pushrelay/internal/usecase"
)

// statsWindow is the look-back window of the "recent" counters.
const statsWindow = 24 * time.Hour

type deviceService struct {
	logger    *slog.Logger
	tokenRepo repository.TokenRepository
	now       func() time.Time
}

// NewDeviceService creates a new device service instance
func NewDeviceService(logger *slog.Logger, tokenRepo repository.TokenRepository) usecase.DeviceUsecase {
	return &deviceService{
		logger:    logger,
		tokenRepo: tokenRepo,
		now:       time.Now,
	}
}

// RegisterDevice registers a new token or refreshes an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, input *usecase.RegisterDeviceInput) (*entity.DeviceToken, error) {
	if len(input.Token) < constants.MinRegisteredTokenLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails(map[string]string{
			"token": "token must be at least 100 characters",
		})
	}

	platform := input.Platform
	if platform == "" {
		platform = entity.PlatformWeb
	}
	if !platform.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrInvalidPlatform)
	}

	token, err := s.tokenRepo.Upsert(ctx, &entity.DeviceToken{
		Token:     input.Token,
		OwnerID:   input.OwnerID,
		Platform:  platform,
		UserAgent: input.UserAgent,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register device token")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Device token registered",
		slog.String("platform", string(token.Platform)),
		slog.Bool("has_owner", token.OwnerID != nil),
	)

	return token, nil
}

func (s *deviceService) GetDevice(ctx context.Context, token string) (*entity.DeviceToken, error) {
	device, err := s.tokenRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceTokenNotFound) {
			return nil, errors.WithStack(domainerrors.ErrDeviceTokenNotFound)
		}

		return nil, errors.Wrap(err, "failed to find device token")
	}

	return device, nil
}

// DeactivateDevice soft-deletes an active token; unknown or already inactive tokens are not found.
func (s *deviceService) DeactivateDevice(ctx context.Context, token string) error {
	flipped, err := s.tokenRepo.Deactivate(ctx, token)
	if err != nil {
		return errors.Wrap(err, "failed to deactivate device token")
	}
	if !flipped {
		return errors.WithStack(domainerrors.ErrDeviceTokenNotFound)
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Device token deactivated")

	return nil
}

func (s *deviceService) ListActiveDevices(ctx context.Context) ([]*entity.DeviceToken, error) {
	tokens, err := s.tokenRepo.FindActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active device tokens")
	}

	return tokens, nil
}

func (s *deviceService) ListOwnerDevices(ctx context.Context, ownerID string) ([]*entity.DeviceToken, error) {
	if ownerID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails(map[string]string{
			"ownerId": "owner id is required",
		})
	}

	tokens, err := s.tokenRepo.FindActiveByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owner device tokens")
	}

	return tokens, nil
}

func (s *deviceService) GetDeviceStats(ctx context.Context) (*entity.DeviceStats, error) {
	stats, err := s.tokenRepo.Stats(ctx, s.now().Add(-statsWindow))
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate device stats")
	}

	return stats, nil
}
