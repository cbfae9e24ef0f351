package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"pushrelay/config"
	"pushrelay/internal/dispatch"
	"pushrelay/internal/domain/entity"
	domainerrors "pushrelay/internal/domain/errors"
	"pushrelay/internal/domain/repository"
	"pushrelay/internal/domain/service"
	mockRepo "pushrelay/internal/mocks/repository"
	mockSvc "pushrelay/internal/mocks/service"
	"pushrelay/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationFixtures struct {
	svc              *notificationService
	tokenRepo        *mockRepo.MockTokenRepository
	notificationRepo *mockRepo.MockNotificationRepository
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	provider         *mockSvc.MockPushProvider
	publisher        *mockSvc.MockEventPublisher
}

func createTestNotificationService(t *testing.T, prune bool) *notificationFixtures {
	f := &notificationFixtures{
		tokenRepo:        mockRepo.NewMockTokenRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		txManager:        mockRepo.NewMockTransactionManager(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
		provider:         mockSvc.NewMockPushProvider(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
	}

	cfg := &config.Config{Dispatch: &config.DispatchConfig{BatchLimit: 2, PruneUnregistered: prune}}
	engine := dispatch.NewEngine(f.provider, dispatch.NewTokenGate(50, false), cfg.Dispatch.BatchLimit, testLogger())

	f.svc = NewNotificationService(
		testLogger(),
		cfg,
		f.tokenRepo,
		f.notificationRepo,
		f.txManager,
		engine,
		f.publisher,
	).(*notificationService)

	return f
}

// expectTransaction runs the transactional callback against the shared notification repository mock.
func (f *notificationFixtures) expectTransaction(ctx context.Context) {
	f.txManager.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
	f.factory.EXPECT().NewNotificationRepository().Return(f.notificationRepo)
}

func (f *notificationFixtures) expectCreate(ctx context.Context, id int64) {
	f.notificationRepo.EXPECT().Create(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, n *entity.Notification) error {
			n.ID = id
			n.Status = entity.NotificationStatusPending

			return nil
		})
}

func validToken(c byte) string {
	return strings.Repeat(string(c), 120)
}

func hiInput() *usecase.NotificationInput {
	return &usecase.NotificationInput{Title: "Hi", Body: "there"}
}

func TestNotificationService_SendNotification_SingleTarget(t *testing.T) {
	f := createTestNotificationService(t, false)
	ctx := context.Background()
	token := validToken('T')

	f.expectCreate(ctx, 7)
	f.provider.EXPECT().SendSingle(ctx, token, mock.Anything).Return(&service.SingleResult{MessageID: "m1"}, nil)
	f.expectTransaction(ctx)
	f.notificationRepo.EXPECT().
		UpdateStatus(ctx, int64(7), entity.NotificationStatusSent, entity.DeliveryCounts{SentCount: 1, SuccessCount: 1, FailureCount: 0}).
		Return(nil)
	f.publisher.EXPECT().
		PublishDispatchEvent(ctx, mock.MatchedBy(func(e *service.DispatchEvent) bool {
			return e.NotificationID == 7 && e.Status == "sent" && e.SuccessCount == 1
		})).
		Return(nil)

	result, err := f.svc.SendNotification(ctx, hiInput(), usecase.Target{Tokens: []string{token}})

	require.NoError(t, err)
	assert.Equal(t, int64(7), result.NotificationID)
	assert.Equal(t, entity.NotificationStatusSent, result.Status)
	assert.Equal(t, 1, result.TotalTokens)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 0, result.FailureCount)
}

func TestNotificationService_SendNotification_SingleTargetProviderFailure(t *testing.T) {
	f := createTestNotificationService(t, false)
	ctx := context.Background()
	token := validToken('T')

	f.expectCreate(ctx, 8)
	f.provider.EXPECT().SendSingle(ctx, token, mock.Anything).Return(nil, errors.New("auth failed"))
	f.expectTransaction(ctx)
	f.notificationRepo.EXPECT().
		UpdateStatus(ctx, int64(8), entity.NotificationStatusFailed, entity.DeliveryCounts{SentCount: 1, SuccessCount: 0, FailureCount: 1}).
		Return(nil)
	f.publisher.EXPECT().PublishDispatchEvent(ctx, mock.Anything).Return(nil)

	result, err := f.svc.SendNotification(ctx, hiInput(), usecase.Target{Tokens: []string{token}})

	require.Error(t, err)
	assert.Nil(t, result)

	var providerErr *domainerrors.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, int64(8), providerErr.NotificationID)
	assert.Contains(t, providerErr.ProviderMessage, "auth failed")
	assert.Equal(t, 500, providerErr.HTTPCode())
}

func TestNotificationService_SendNotification_AllActiveWithMixedResults(t *testing.T) {
	f := createTestNotificationService(t, true)
	ctx := context.Background()
	a, b, c := validToken('a'), validToken('b'), validToken('c')

	f.tokenRepo.EXPECT().FindActive(ctx).Return([]*entity.DeviceToken{{Token: a}, {Token: b}, {Token: c}, {Token: "short"}}, nil)
	f.notificationRepo.EXPECT().Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
		return assert.ObjectsAreEqual([]string{a, b, c}, n.TargetTokens)
	})).RunAndReturn(func(_ context.Context, n *entity.Notification) error {
		n.ID = 9

		return nil
	})
	f.provider.EXPECT().SendBatch(ctx, []string{a, b}, mock.Anything).Return(&service.BatchResult{
		SuccessCount: 1,
		FailureCount: 1,
		Responses: []service.SendResponse{
			{Success: true, MessageID: "m1"},
			{Success: false, Error: "registration-token-not-registered", Unregistered: true},
		},
	}, nil)
	f.provider.EXPECT().SendBatch(ctx, []string{c}, mock.Anything).Return(&service.BatchResult{
		SuccessCount: 1,
		Responses:    []service.SendResponse{{Success: true, MessageID: "m2"}},
	}, nil)
	f.expectTransaction(ctx)
	f.notificationRepo.EXPECT().
		UpdateStatus(ctx, int64(9), entity.NotificationStatusSent, entity.DeliveryCounts{SentCount: 3, SuccessCount: 2, FailureCount: 1}).
		Return(nil)
	f.notificationRepo.EXPECT().
		BatchCreateDeliveryLogs(ctx, mock.MatchedBy(func(logs []*entity.DeliveryLog) bool {
			return len(logs) == 3 &&
				logs[0].Token == a && logs[0].Status == entity.DeliveryStatusSent &&
				logs[1].Token == b && logs[1].Status == entity.DeliveryStatusFailed &&
				*logs[1].ErrorMessage == "registration-token-not-registered" &&
				logs[2].Token == c && logs[2].NotificationID == 9
		})).
		Return(nil)
	f.tokenRepo.EXPECT().DeactivateMany(ctx, []string{b}).Return(int64(1), nil)
	f.publisher.EXPECT().PublishDispatchEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	result, err := f.svc.SendNotification(ctx, hiInput(), usecase.Target{All: true})

	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalTokens)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
	assert.Equal(t, 1, result.InvalidTokens)
}

func TestNotificationService_SendNotification_AllBatchesFail(t *testing.T) {
	f := createTestNotificationService(t, false)
	ctx := context.Background()
	tokens := []string{validToken('a'), validToken('b'), validToken('c')}

	f.expectCreate(ctx, 10)
	f.provider.EXPECT().SendBatch(ctx, mock.Anything, mock.Anything).Return(nil, errors.New("unavailable")).Times(2)
	f.expectTransaction(ctx)
	f.notificationRepo.EXPECT().
		UpdateStatus(ctx, int64(10), entity.NotificationStatusFailed, entity.DeliveryCounts{SentCount: 3, SuccessCount: 0, FailureCount: 3}).
		Return(nil)
	f.notificationRepo.EXPECT().BatchCreateDeliveryLogs(ctx, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishDispatchEvent(ctx, mock.Anything).Return(nil)

	_, err := f.svc.SendNotification(ctx, hiInput(), usecase.Target{Tokens: tokens})

	var providerErr *domainerrors.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, int64(10), providerErr.NotificationID)
}

func TestNotificationService_SendNotification_NoValidTokens(t *testing.T) {
	f := createTestNotificationService(t, false)
	ctx := context.Background()

	_, err := f.svc.SendNotification(ctx, hiInput(), usecase.Target{Tokens: []string{"short", "also-short"}})

	assert.ErrorIs(t, err, domainerrors.ErrNoValidTokens)
}

func TestNotificationService_SendNotification_EmptyTarget(t *testing.T) {
	f := createTestNotificationService(t, false)
	ctx := context.Background()

	f.tokenRepo.EXPECT().FindActive(ctx).Return(nil, nil)

	_, err := f.svc.SendNotification(ctx, hiInput(), usecase.Target{All: true})
	assert.ErrorIs(t, err, domainerrors.ErrNoValidTokens)

	_, err = f.svc.SendNotification(ctx, hiInput(), usecase.Target{})
	assert.ErrorIs(t, err, domainerrors.ErrNoValidTokens)
}

func TestNotificationService_SendNotification_Validation(t *testing.T) {
	f := createTestNotificationService(t, false)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.NotificationInput
	}{
		{name: "empty title", input: &usecase.NotificationInput{Body: "b"}},
		{name: "long title", input: &usecase.NotificationInput{Title: strings.Repeat("x", 101), Body: "b"}},
		{name: "empty body", input: &usecase.NotificationInput{Title: "t"}},
		{name: "long body", input: &usecase.NotificationInput{Title: "t", Body: strings.Repeat("x", 1001)}},
		{name: "icon not a url", input: &usecase.NotificationInput{Title: "t", Body: "b", Icon: strPtr("not a url")}},
		{name: "click action not a url", input: &usecase.NotificationInput{Title: "t", Body: "b", ClickAction: strPtr("/relative")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.SendNotification(ctx, tt.input, usecase.Target{Tokens: []string{validToken('T')}})
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestNotificationService_SendToOwner(t *testing.T) {
	f := createTestNotificationService(t, false)
	ctx := context.Background()
	token := validToken('o')

	f.tokenRepo.EXPECT().FindActiveByOwner(ctx, "nobody").Return([]*entity.DeviceToken{}, nil)
	f.tokenRepo.EXPECT().FindActiveByOwner(ctx, "user-1").Return([]*entity.DeviceToken{{Token: token}}, nil)
	f.expectCreate(ctx, 11)
	f.provider.EXPECT().SendSingle(ctx, token, mock.Anything).Return(&service.SingleResult{MessageID: "m"}, nil)
	f.expectTransaction(ctx)
	f.notificationRepo.EXPECT().UpdateStatus(ctx, int64(11), entity.NotificationStatusSent, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishDispatchEvent(ctx, mock.Anything).Return(nil)

	_, err := f.svc.SendToOwner(ctx, "nobody", hiInput())
	assert.ErrorIs(t, err, domainerrors.ErrOwnerHasNoDevices)

	_, err = f.svc.SendToOwner(ctx, "", hiInput())
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	result, err := f.svc.SendToOwner(ctx, "user-1", hiInput())
	require.NoError(t, err)
	assert.Equal(t, int64(11), result.NotificationID)
}

func TestNotificationService_SendToOwner_UnknownOwnerBeforeContentValidation(t *testing.T) {
	f := createTestNotificationService(t, false)
	ctx := context.Background()
	invalid := &usecase.NotificationInput{Title: "", Body: strings.Repeat("x", 1001)}

	f.tokenRepo.EXPECT().FindActiveByOwner(ctx, "nobody").Return(nil, nil)
	f.tokenRepo.EXPECT().FindActiveByOwner(ctx, "user-1").Return([]*entity.DeviceToken{{Token: validToken('o')}}, nil)

	_, err := f.svc.SendToOwner(ctx, "nobody", invalid)
	assert.ErrorIs(t, err, domainerrors.ErrOwnerHasNoDevices)

	_, err = f.svc.SendToOwner(ctx, "user-1", invalid)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, map[string]string{"title": "required", "body": "max=1000"}, appErr.Details())
}

func TestNotificationService_SendNotification_FinalizeError(t *testing.T) {
	f := createTestNotificationService(t, false)
	ctx := context.Background()
	token := validToken('T')

	f.expectCreate(ctx, 12)
	f.provider.EXPECT().SendSingle(ctx, token, mock.Anything).Return(&service.SingleResult{}, nil)
	f.txManager.EXPECT().Execute(ctx, mock.Anything).Return(errors.New("database is locked"))

	_, err := f.svc.SendNotification(ctx, hiInput(), usecase.Target{Tokens: []string{token}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to finalize notification")
}

func TestNotificationService_GetNotification(t *testing.T) {
	f := createTestNotificationService(t, false)
	ctx := context.Background()

	_, err := f.svc.GetNotification(ctx, 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidNotificationID)

	f.notificationRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, errors.WithStack(repository.ErrNotificationNotFound))
	_, err = f.svc.GetNotification(ctx, 404)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)

	f.notificationRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Notification{ID: 1}, nil)
	notification, err := f.svc.GetNotification(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), notification.ID)
}

func TestNotificationService_ListNotifications_Pagination(t *testing.T) {
	tests := []struct {
		name           string
		page, limit    int
		wantLimit      int
		wantOffset     int
		total          int64
		wantTotalPages int
	}{
		{name: "defaults", page: 0, limit: 0, wantLimit: 20, wantOffset: 0, total: 45, wantTotalPages: 3},
		{name: "second page", page: 2, limit: 10, wantLimit: 10, wantOffset: 10, total: 10, wantTotalPages: 1},
		{name: "capped limit", page: 1, limit: 500, wantLimit: 100, wantOffset: 0, total: 0, wantTotalPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestNotificationService(t, false)
			ctx := context.Background()

			f.notificationRepo.EXPECT().List(ctx, tt.wantLimit, tt.wantOffset).
				Return(&entity.NotificationPage{TotalCount: tt.total}, nil)

			history, err := f.svc.ListNotifications(ctx, tt.page, tt.limit)

			require.NoError(t, err)
			assert.NotNil(t, history.Notifications)
			assert.Equal(t, tt.wantLimit, history.Pagination.Limit)
			assert.Equal(t, tt.total, history.Pagination.Total)
			assert.Equal(t, tt.wantTotalPages, history.Pagination.TotalPages)
		})
	}
}

func TestNotificationService_GetDeliveryLogs(t *testing.T) {
	f := createTestNotificationService(t, false)
	ctx := context.Background()

	f.notificationRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Notification{ID: 3}, nil)
	f.notificationRepo.EXPECT().FindDeliveryLogs(ctx, int64(3)).Return([]*entity.DeliveryLog{{ID: 1}, {ID: 2}}, nil)

	logs, err := f.svc.GetDeliveryLogs(ctx, 3)

	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestNotificationService_GetNotificationStats(t *testing.T) {
	f := createTestNotificationService(t, false)
	now := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return now }
	ctx := context.Background()

	f.notificationRepo.EXPECT().Stats(ctx, now.Add(-24*time.Hour)).
		Return(&entity.NotificationStats{TotalNotifications: 4, SuccessRate: "87.50%"}, nil)

	stats, err := f.svc.GetNotificationStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, "87.50%", stats.SuccessRate)
}

func TestBuildPushMessage(t *testing.T) {
	msg := buildPushMessage(&usecase.NotificationInput{
		Title:       "t",
		Body:        "b",
		Icon:        strPtr("/i.png"),
		ClickAction: strPtr("https://example.com"),
		Data: map[string]any{
			"orderId": "42",
			"count":   float64(3),
			"nested":  map[string]any{"a": true},
			"empty":   nil,
		},
	})

	assert.Equal(t, "/i.png", msg.Icon)
	assert.Empty(t, msg.Image)
	assert.Equal(t, "https://example.com", msg.ClickAction)
	assert.Equal(t, "42", msg.Data["orderId"])
	assert.Equal(t, "3", msg.Data["count"])
	assert.Equal(t, `{"a":true}`, msg.Data["nested"])
	assert.Equal(t, "", msg.Data["empty"])
}
