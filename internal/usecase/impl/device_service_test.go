package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"pushrelay/internal/domain/entity"
	domainerrors "pushrelay/internal/domain/errors"
	"pushrelay/internal/domain/repository"
	mockRepo "pushrelay/internal/mocks/repository"
	"pushrelay/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func createTestDeviceService(t *testing.T) (*deviceService, *mockRepo.MockTokenRepository) {
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	svc := NewDeviceService(testLogger(), tokenRepo).(*deviceService)

	return svc, tokenRepo
}

func strPtr(s string) *string {
	return &s
}

func TestDeviceService_RegisterDevice_DefaultsPlatform(t *testing.T) {
	svc, tokenRepo := createTestDeviceService(t)
	ctx := context.Background()
	token := strings.Repeat("T", 120)

	tokenRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(d *entity.DeviceToken) bool {
			return d.Token == token && d.Platform == entity.PlatformWeb && *d.OwnerID == "user-1"
		})).
		RunAndReturn(func(_ context.Context, d *entity.DeviceToken) (*entity.DeviceToken, error) {
			stored := *d
			stored.Active = true

			return &stored, nil
		})

	device, err := svc.RegisterDevice(ctx, &usecase.RegisterDeviceInput{Token: token, OwnerID: strPtr("user-1")})

	require.NoError(t, err)
	assert.Equal(t, entity.PlatformWeb, device.Platform)
	assert.True(t, device.Active)
}

func TestDeviceService_RegisterDevice_Validation(t *testing.T) {
	svc, _ := createTestDeviceService(t)
	ctx := context.Background()

	_, err := svc.RegisterDevice(ctx, &usecase.RegisterDeviceInput{Token: "short"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.RegisterDevice(ctx, &usecase.RegisterDeviceInput{Token: strings.Repeat("T", 120), Platform: "windows"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPlatform)
}

func TestDeviceService_RegisterDevice_RepositoryError(t *testing.T) {
	svc, tokenRepo := createTestDeviceService(t)
	ctx := context.Background()

	tokenRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil, errors.New("disk full"))

	_, err := svc.RegisterDevice(ctx, &usecase.RegisterDeviceInput{Token: strings.Repeat("T", 120), Platform: entity.PlatformAndroid})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestDeviceService_GetDevice(t *testing.T) {
	svc, tokenRepo := createTestDeviceService(t)
	ctx := context.Background()

	tokenRepo.EXPECT().FindByToken(ctx, "known").Return(&entity.DeviceToken{Token: "known", Active: false}, nil)
	tokenRepo.EXPECT().FindByToken(ctx, "missing").Return(nil, errors.WithStack(repository.ErrDeviceTokenNotFound))

	device, err := svc.GetDevice(ctx, "known")
	require.NoError(t, err)
	assert.False(t, device.Active)

	_, err = svc.GetDevice(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrDeviceTokenNotFound)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	svc, tokenRepo := createTestDeviceService(t)
	ctx := context.Background()

	tokenRepo.EXPECT().Deactivate(ctx, "active").Return(true, nil)
	tokenRepo.EXPECT().Deactivate(ctx, "missing").Return(false, nil)
	tokenRepo.EXPECT().Deactivate(ctx, "broken").Return(false, errors.New("locked"))

	assert.NoError(t, svc.DeactivateDevice(ctx, "active"))
	assert.ErrorIs(t, svc.DeactivateDevice(ctx, "missing"), domainerrors.ErrDeviceTokenNotFound)

	err := svc.DeactivateDevice(ctx, "broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrDeviceTokenNotFound)
}

func TestDeviceService_ListOwnerDevices(t *testing.T) {
	svc, tokenRepo := createTestDeviceService(t)
	ctx := context.Background()

	_, err := svc.ListOwnerDevices(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	tokenRepo.EXPECT().FindActiveByOwner(ctx, "user-1").Return([]*entity.DeviceToken{{Token: "a"}, {Token: "b"}}, nil)

	devices, err := svc.ListOwnerDevices(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, devices, 2)
}

func TestDeviceService_ListActiveDevices(t *testing.T) {
	svc, tokenRepo := createTestDeviceService(t)
	ctx := context.Background()

	tokenRepo.EXPECT().FindActive(ctx).Return([]*entity.DeviceToken{{Token: "a"}}, nil)

	devices, err := svc.ListActiveDevices(ctx)

	require.NoError(t, err)
	assert.Len(t, devices, 1)
}

func TestDeviceService_GetDeviceStats_UsesWindow(t *testing.T) {
	svc, tokenRepo := createTestDeviceService(t)
	now := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	tokenRepo.EXPECT().Stats(ctx, now.Add(-24*time.Hour)).Return(&entity.DeviceStats{TotalActive: 3}, nil)

	stats, err := svc.GetDeviceStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalActive)
}
