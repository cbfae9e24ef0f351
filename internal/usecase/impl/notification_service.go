package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"
	"unicode/utf8"

	"pushrelay/config"
	deliverycontext "pushrelay/internal/delivery/context"
	"pushrelay/internal/dispatch"
	"pushrelay/internal/domain/constants"
	"pushrelay/internal/domain/entity"
	domainerrors "pushrelay/internal/domain/errors"
	"pushrelay/internal/domain/repository"
	"pushrelay/internal/domain/service"
	"pushrelay/internal/errors"
	"pushrelay/internal/usecase"

	"github.com/go-playground/validator/v10"
)

type notificationService struct {
	logger            *slog.Logger
	tokenRepo         repository.TokenRepository
	notificationRepo  repository.NotificationRepository
	txManager         repository.TransactionManager
	engine            *dispatch.Engine
	publisher         service.EventPublisher
	pruneUnregistered bool
	now               func() time.Time
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	logger *slog.Logger,
	cfg *config.Config,
	tokenRepo repository.TokenRepository,
	notificationRepo repository.NotificationRepository,
	txManager repository.TransactionManager,
	engine *dispatch.Engine,
	publisher service.EventPublisher,
) usecase.NotificationUsecase {
	return &notificationService{
		logger:            logger,
		tokenRepo:         tokenRepo,
		notificationRepo:  notificationRepo,
		txManager:         txManager,
		engine:            engine,
		publisher:         publisher,
		pruneUnregistered: cfg.Dispatch != nil && cfg.Dispatch.PruneUnregistered,
		now:               time.Now,
	}
}

// SendNotification resolves the target, records a pending notification, dispatches it
// and stores the terminal status together with the per-token delivery log.
func (s *notificationService) SendNotification(ctx context.Context, input *usecase.NotificationInput, target usecase.Target) (*usecase.SendResult, error) {
	if err := validateNotificationInput(input); err != nil {
		return nil, err
	}

	tokens, err := s.resolveTarget(ctx, target)
	if err != nil {
		return nil, err
	}

	return s.dispatch(ctx, input, tokens)
}

// SendToOwner dispatches to every active token of ownerID through the same path as SendNotification.
// An owner without active devices is reported before the content is validated.
func (s *notificationService) SendToOwner(ctx context.Context, ownerID string, input *usecase.NotificationInput) (*usecase.SendResult, error) {
	if ownerID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails(map[string]string{
			"ownerId": "required",
		})
	}

	tokens, err := s.resolveTarget(ctx, usecase.Target{OwnerID: ownerID})
	if err != nil {
		return nil, err
	}

	if err := validateNotificationInput(input); err != nil {
		return nil, err
	}

	return s.dispatch(ctx, input, tokens)
}

func (s *notificationService) resolveTarget(ctx context.Context, target usecase.Target) ([]string, error) {
	switch {
	case target.All:
		devices, err := s.tokenRepo.FindActive(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load active tokens")
		}

		return tokenValues(devices), nil

	case len(target.Tokens) > 0:
		return target.Tokens, nil

	case target.OwnerID != "":
		devices, err := s.tokenRepo.FindActiveByOwner(ctx, target.OwnerID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load owner tokens")
		}
		if len(devices) == 0 {
			return nil, errors.WithStack(domainerrors.ErrOwnerHasNoDevices)
		}

		return tokenValues(devices), nil
	}

	return nil, errors.WithStack(domainerrors.ErrNoValidTokens)
}

func (s *notificationService) dispatch(ctx context.Context, input *usecase.NotificationInput, tokens []string) (*usecase.SendResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	valid, invalid := s.engine.Gate().Screen(tokens)
	if len(valid) == 0 {
		logger.Warn("No valid tokens after screening", slog.Int("candidates", len(tokens)))

		return nil, errors.WithStack(domainerrors.ErrNoValidTokens)
	}

	notification := &entity.Notification{
		Title:        input.Title,
		Body:         input.Body,
		Icon:         input.Icon,
		Image:        input.Image,
		ClickAction:  input.ClickAction,
		Data:         input.Data,
		TargetTokens: valid,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to create notification record")
	}

	result, err := s.engine.Dispatch(ctx, buildPushMessage(input), valid)
	if err != nil {
		return nil, err
	}

	status := entity.NotificationStatusSent
	counts := entity.DeliveryCounts{
		SentCount:    len(valid),
		SuccessCount: result.SuccessCount,
		FailureCount: result.FailureCount,
	}
	if !result.Success {
		status = entity.NotificationStatusFailed
		counts.SuccessCount = 0
		counts.FailureCount = len(valid)
	}

	if err := s.finalize(ctx, notification.ID, status, counts, result); err != nil {
		return nil, err
	}

	logger.Info("Notification dispatched",
		slog.Int64("notification_id", notification.ID),
		slog.String("status", string(status)),
		slog.Int("total_tokens", len(valid)),
		slog.Int("success_count", counts.SuccessCount),
		slog.Int("failure_count", counts.FailureCount),
		slog.Int("invalid_tokens", invalid),
	)

	if s.pruneUnregistered {
		s.prune(ctx, logger, result.Unregistered())
	}

	s.publish(ctx, logger, &service.DispatchEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: notification.ID,
		Status:         string(status),
		TotalTokens:    len(valid),
		SuccessCount:   counts.SuccessCount,
		FailureCount:   counts.FailureCount,
		InvalidTokens:  invalid,
		DispatchedAt:   s.now().UTC(),
	})

	if status == entity.NotificationStatusFailed {
		return nil, domainerrors.NewProviderError(notification.ID, result.ErrorMessage)
	}

	return &usecase.SendResult{
		NotificationID: notification.ID,
		Status:         status,
		TotalTokens:    len(valid),
		SuccessCount:   counts.SuccessCount,
		FailureCount:   counts.FailureCount,
		InvalidTokens:  invalid,
	}, nil
}

// finalize writes the terminal status and the delivery log in one transaction.
func (s *notificationService) finalize(
	ctx context.Context,
	id int64,
	status entity.NotificationStatus,
	counts entity.DeliveryCounts,
	result *dispatch.Result,
) error {
	logs := deliveryLogs(id, result)

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		notificationRepo := factory.NewNotificationRepository()
		if err := notificationRepo.UpdateStatus(ctx, id, status, counts); err != nil {
			return err
		}
		if len(logs) == 0 {
			return nil
		}

		return notificationRepo.BatchCreateDeliveryLogs(ctx, logs)
	})
	if err != nil {
		return errors.Wrap(err, "failed to finalize notification")
	}

	return nil
}

func (s *notificationService) prune(ctx context.Context, logger *slog.Logger, tokens []string) {
	if len(tokens) == 0 {
		return
	}

	affected, err := s.tokenRepo.DeactivateMany(ctx, tokens)
	if err != nil {
		logger.Warn("Failed to prune unregistered tokens", slog.Any("error", err))

		return
	}

	logger.Info("Pruned unregistered tokens", slog.Int64("deactivated", affected))
}

func (s *notificationService) publish(ctx context.Context, logger *slog.Logger, event *service.DispatchEvent) {
	if err := s.publisher.PublishDispatchEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish dispatch event",
			slog.Int64("notification_id", event.NotificationID),
			slog.Any("error", err),
		)
	}
}

func (s *notificationService) GetNotification(ctx context.Context, id int64) (*entity.Notification, error) {
	if id <= 0 {
		return nil, errors.WithStack(domainerrors.ErrInvalidNotificationID)
	}

	notification, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, errors.WithStack(domainerrors.ErrNotificationNotFound)
		}

		return nil, errors.Wrap(err, "failed to find notification")
	}

	return notification, nil
}

// ListNotifications returns one page of history. Out-of-range page or limit values fall back to the defaults.
func (s *notificationService) ListNotifications(ctx context.Context, page, limit int) (*usecase.NotificationHistory, error) {
	if page < 1 {
		page = constants.DefaultPage
	}
	if limit < 1 {
		limit = constants.DefaultPageLimit
	}
	if limit > constants.MaxPageLimit {
		limit = constants.MaxPageLimit
	}

	result, err := s.notificationRepo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	records := result.Records
	if records == nil {
		records = []*entity.Notification{}
	}

	return &usecase.NotificationHistory{
		Notifications: records,
		Pagination: usecase.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      result.TotalCount,
			TotalPages: int(math.Ceil(float64(result.TotalCount) / float64(limit))),
		},
	}, nil
}

func (s *notificationService) GetDeliveryLogs(ctx context.Context, id int64) ([]*entity.DeliveryLog, error) {
	if _, err := s.GetNotification(ctx, id); err != nil {
		return nil, err
	}

	logs, err := s.notificationRepo.FindDeliveryLogs(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load delivery logs")
	}

	return logs, nil
}

func (s *notificationService) GetNotificationStats(ctx context.Context) (*entity.NotificationStats, error) {
	stats, err := s.notificationRepo.Stats(ctx, s.now().Add(-statsWindow))
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate notification stats")
	}

	return stats, nil
}

// contentValidator checks the optional URL fields with the same rules the HTTP layer applies.
var contentValidator = validator.New()

func validateNotificationInput(input *usecase.NotificationInput) error {
	fields := map[string]string{}

	switch n := utf8.RuneCountInString(input.Title); {
	case n == 0:
		fields["title"] = "required"
	case n > constants.MaxTitleLength:
		fields["title"] = fmt.Sprintf("max=%d", constants.MaxTitleLength)
	}

	switch n := utf8.RuneCountInString(input.Body); {
	case n == 0:
		fields["body"] = "required"
	case n > constants.MaxBodyLength:
		fields["body"] = fmt.Sprintf("max=%d", constants.MaxBodyLength)
	}

	for name, value := range map[string]*string{
		"icon":        input.Icon,
		"image":       input.Image,
		"clickAction": input.ClickAction,
	} {
		if value == nil || *value == "" {
			continue
		}
		if err := contentValidator.Var(*value, "url"); err != nil {
			fields[name] = "url"
		}
	}

	if len(fields) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails(fields)
	}

	return nil
}

// buildPushMessage flattens the notification into the provider payload. Non-string data values are JSON encoded.
func buildPushMessage(input *usecase.NotificationInput) *service.PushMessage {
	msg := &service.PushMessage{
		Title:       input.Title,
		Body:        input.Body,
		Icon:        deref(input.Icon),
		Image:       deref(input.Image),
		ClickAction: deref(input.ClickAction),
		Data:        make(map[string]string, len(input.Data)),
	}

	for k, v := range input.Data {
		switch value := v.(type) {
		case string:
			msg.Data[k] = value
		case nil:
			msg.Data[k] = ""
		default:
			encoded, err := json.Marshal(value)
			if err != nil {
				continue
			}
			msg.Data[k] = string(encoded)
		}
	}

	return msg
}

// deliveryLogs builds one entry per positional response of a multi-target dispatch.
func deliveryLogs(notificationID int64, result *dispatch.Result) []*entity.DeliveryLog {
	if len(result.Responses) == 0 {
		return nil
	}

	logs := make([]*entity.DeliveryLog, 0, len(result.Responses))
	for i, resp := range result.Responses {
		if i >= len(result.Tokens) {
			break
		}

		entry := &entity.DeliveryLog{
			NotificationID: notificationID,
			Token:          result.Tokens[i],
			Status:         entity.DeliveryStatusSent,
		}
		if !resp.Success {
			entry.Status = entity.DeliveryStatusFailed
			if resp.Error != "" {
				message := resp.Error
				entry.ErrorMessage = &message
			}
		}
		logs = append(logs, entry)
	}

	return logs
}

func tokenValues(devices []*entity.DeviceToken) []string {
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.Token)
	}

	return tokens
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
