package store

import (
	"context"
	"testing"

	"pushrelay/internal/domain/entity"
	"pushrelay/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsAndRollsBack(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	notifications := NewNotificationRepository(db)
	ctx := context.Background()

	n := createTestNotification(t, notifications, "tx")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.NewNotificationRepository()
		if err := repo.UpdateStatus(ctx, n.ID, entity.NotificationStatusSent, entity.DeliveryCounts{SentCount: 1, SuccessCount: 1}); err != nil {
			return err
		}

		return errors.New("boom")
	})
	require.EqualError(t, err, "boom")

	found, err := notifications.FindByID(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.NotificationStatusPending, found.Status, "rolled back")

	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.NewNotificationRepository()
		if err := repo.UpdateStatus(ctx, n.ID, entity.NotificationStatusSent, entity.DeliveryCounts{SentCount: 1, SuccessCount: 1}); err != nil {
			return err
		}

		return repo.BatchCreateDeliveryLogs(ctx, []*entity.DeliveryLog{
			{NotificationID: n.ID, Token: testToken("a"), Status: entity.DeliveryStatusSent},
		})
	})
	require.NoError(t, err)

	found, err = notifications.FindByID(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.NotificationStatusSent, found.Status)

	logs, err := notifications.FindDeliveryLogs(ctx, n.ID)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestTransactionManager_FactoryRepositoriesShareTransaction(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	token := testToken("tx")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := f.NewTokenRepository().Upsert(ctx, &entity.DeviceToken{Token: token, Platform: entity.PlatformWeb}); err != nil {
			return err
		}

		return errors.New("abort")
	})
	require.Error(t, err)

	_, err = NewTokenRepository(db).FindByToken(ctx, token)
	assert.ErrorIs(t, err, repository.ErrDeviceTokenNotFound)
}
