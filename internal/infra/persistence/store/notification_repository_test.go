package store

import (
	"context"
	"testing"
	"time"

	"pushrelay/internal/domain/entity"
	"pushrelay/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestNotification(t *testing.T, repo repository.NotificationRepository, title string) *entity.Notification {
	t.Helper()

	n := &entity.Notification{
		Title:        title,
		Body:         "body",
		ClickAction:  strPtr("https://example.com/open"),
		Data:         map[string]any{"orderId": "42", "count": float64(3)},
		TargetTokens: []string{testToken("a"), testToken("b")},
	}
	require.NoError(t, repo.Create(context.Background(), n))

	return n
}

func TestNotificationRepository_CreateAndFind(t *testing.T) {
	repo := NewNotificationRepository(newTestDB(t))
	ctx := context.Background()

	n := createTestNotification(t, repo, "Hi")
	assert.Positive(t, n.ID)
	assert.Equal(t, entity.NotificationStatusPending, n.Status)

	found, err := repo.FindByID(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hi", found.Title)
	assert.Equal(t, n.TargetTokens, found.TargetTokens)
	assert.Equal(t, "42", found.Data["orderId"])
	assert.Equal(t, float64(3), found.Data["count"])
	assert.Equal(t, entity.NotificationStatusPending, found.Status)
	assert.Nil(t, found.SentAt)

	_, err = repo.FindByID(ctx, n.ID+100)
	assert.ErrorIs(t, err, repository.ErrNotificationNotFound)
}

func TestNotificationRepository_UpdateStatusOnce(t *testing.T) {
	repo := NewNotificationRepository(newTestDB(t))
	ctx := context.Background()
	n := createTestNotification(t, repo, "Hi")

	counts := entity.DeliveryCounts{SentCount: 2, SuccessCount: 1, FailureCount: 1}
	require.NoError(t, repo.UpdateStatus(ctx, n.ID, entity.NotificationStatusSent, counts))

	found, err := repo.FindByID(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.NotificationStatusSent, found.Status)
	assert.Equal(t, 2, found.SentCount)
	assert.Equal(t, 1, found.SuccessCount)
	assert.Equal(t, 1, found.FailureCount)
	assert.NotNil(t, found.SentAt)

	err = repo.UpdateStatus(ctx, n.ID, entity.NotificationStatusFailed, counts)
	assert.ErrorIs(t, err, repository.ErrNotificationFinalized)

	err = repo.UpdateStatus(ctx, n.ID+100, entity.NotificationStatusFailed, counts)
	assert.ErrorIs(t, err, repository.ErrNotificationNotFound)
}

func TestNotificationRepository_FailedLeavesSentAtEmpty(t *testing.T) {
	repo := NewNotificationRepository(newTestDB(t))
	ctx := context.Background()
	n := createTestNotification(t, repo, "Hi")

	require.NoError(t, repo.UpdateStatus(ctx, n.ID, entity.NotificationStatusFailed, entity.DeliveryCounts{SentCount: 2, FailureCount: 2}))

	found, err := repo.FindByID(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.NotificationStatusFailed, found.Status)
	assert.Nil(t, found.SentAt)
}

func TestNotificationRepository_ListNewestFirst(t *testing.T) {
	repo := NewNotificationRepository(newTestDB(t))
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		createTestNotification(t, repo, title)
		time.Sleep(2 * time.Millisecond)
	}

	page, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalCount)
	require.Len(t, page.Records, 2)
	assert.Equal(t, "third", page.Records[0].Title)
	assert.Equal(t, "second", page.Records[1].Title)

	page, err = repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page.Records, 1)
	assert.Equal(t, "first", page.Records[0].Title)
}

func TestNotificationRepository_DeliveryLogs(t *testing.T) {
	repo := NewNotificationRepository(newTestDB(t))
	ctx := context.Background()
	n := createTestNotification(t, repo, "Hi")

	logs := []*entity.DeliveryLog{
		{NotificationID: n.ID, Token: testToken("a"), Status: entity.DeliveryStatusSent},
		{NotificationID: n.ID, Token: testToken("b"), Status: entity.DeliveryStatusFailed, ErrorMessage: strPtr("unregistered")},
	}
	require.NoError(t, repo.BatchCreateDeliveryLogs(ctx, logs))
	assert.Positive(t, logs[0].ID)

	single := &entity.DeliveryLog{NotificationID: n.ID, Token: testToken("c"), Status: entity.DeliveryStatusDelivered}
	require.NoError(t, repo.CreateDeliveryLog(ctx, single))

	found, err := repo.FindDeliveryLogs(ctx, n.ID)
	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Equal(t, entity.DeliveryStatusSent, found[0].Status)
	require.NotNil(t, found[1].ErrorMessage)
	assert.Equal(t, "unregistered", *found[1].ErrorMessage)
	assert.Equal(t, entity.DeliveryStatusDelivered, found[2].Status)

	require.NoError(t, repo.BatchCreateDeliveryLogs(ctx, nil))
}

func TestNotificationRepository_Stats(t *testing.T) {
	repo := NewNotificationRepository(newTestDB(t))
	ctx := context.Background()

	stats, err := repo.Stats(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Zero(t, stats.TotalNotifications)
	assert.Equal(t, "0%", stats.SuccessRate)

	a := createTestNotification(t, repo, "a")
	b := createTestNotification(t, repo, "b")
	createTestNotification(t, repo, "c")

	require.NoError(t, repo.UpdateStatus(ctx, a.ID, entity.NotificationStatusSent, entity.DeliveryCounts{SentCount: 6, SuccessCount: 5, FailureCount: 1}))
	require.NoError(t, repo.UpdateStatus(ctx, b.ID, entity.NotificationStatusSent, entity.DeliveryCounts{SentCount: 2, SuccessCount: 2}))

	stats, err = repo.Stats(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalNotifications)
	assert.Equal(t, int64(2), stats.SentInLast24h)
	assert.Equal(t, int64(2), stats.StatusBreakdown[entity.NotificationStatusSent])
	assert.Equal(t, int64(1), stats.StatusBreakdown[entity.NotificationStatusPending])
	assert.Equal(t, "87.50%", stats.SuccessRate)
}

func TestNotificationRepository_StatsCountsOnlySentInWindow(t *testing.T) {
	repo := NewNotificationRepository(newTestDB(t))
	ctx := context.Background()

	createTestNotification(t, repo, "pending")
	failed := createTestNotification(t, repo, "failed")
	require.NoError(t, repo.UpdateStatus(ctx, failed.ID, entity.NotificationStatusFailed, entity.DeliveryCounts{SentCount: 2, FailureCount: 2}))

	stats, err := repo.Stats(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalNotifications)
	assert.Zero(t, stats.SentInLast24h)

	sent := createTestNotification(t, repo, "sent")
	require.NoError(t, repo.UpdateStatus(ctx, sent.ID, entity.NotificationStatusSent, entity.DeliveryCounts{SentCount: 1, SuccessCount: 1}))

	stats, err = repo.Stats(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.SentInLast24h)

	stats, err = repo.Stats(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Zero(t, stats.SentInLast24h)
}

func TestFormatSuccessRate(t *testing.T) {
	assert.Equal(t, "0%", FormatSuccessRate(0, 0))
	assert.Equal(t, "100.00%", FormatSuccessRate(4, 4))
	assert.Equal(t, "33.33%", FormatSuccessRate(1, 3))
	assert.Equal(t, "66.67%", FormatSuccessRate(2, 3))
}
