package store

import (
	"context"
	"fmt"
	"time"

	"pushrelay/internal/domain/entity"
	domainerrors "pushrelay/internal/domain/errors"
	"pushrelay/internal/domain/repository"
	"pushrelay/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// deliveryLogBatchSize bounds the rows per INSERT when appending delivery logs.
const deliveryLogBatchSize = 100

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists a new pending notification.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)
	notificationM.Status = string(entity.NotificationStatusPending)
	notificationM.SentCount, notificationM.SuccessCount, notificationM.FailureCount = 0, 0, 0
	notificationM.SentAt = nil

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.Status = entity.NotificationStatusPending
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindByID retrieves a notification by its ID.
func (repo *notificationRepository) FindByID(ctx context.Context, id int64) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// List returns one page of notifications, newest first.
func (repo *notificationRepository) List(ctx context.Context, limit, offset int) (*entity.NotificationPage, error) {
	db := repo.db.WithContext(ctx)
	page := &entity.NotificationPage{}

	if err := db.Model(&model.NotificationModel{}).Count(&page.TotalCount).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count notifications")
	}

	var notificationModels []*model.NotificationModel
	query := db.Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	page.Records = make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		page.Records = append(page.Records, toNotificationDomain(notificationM))
	}

	return page, nil
}

// UpdateStatus moves a pending notification to its terminal status.
func (repo *notificationRepository) UpdateStatus(ctx context.Context, id int64, status entity.NotificationStatus, counts entity.DeliveryCounts) error {
	updates := map[string]any{
		"status":        string(status),
		"sent_count":    counts.SentCount,
		"success_count": counts.SuccessCount,
		"failure_count": counts.FailureCount,
	}
	if status == entity.NotificationStatusSent {
		updates["sent_at"] = repo.db.NowFunc()
	}

	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND status = ?", id, string(entity.NotificationStatusPending)).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update notification status")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindByID(ctx, id); err != nil {
			return err
		}

		return repository.ErrNotificationFinalized
	}

	return nil
}

// CreateDeliveryLog appends a single delivery outcome.
func (repo *notificationRepository) CreateDeliveryLog(ctx context.Context, log *entity.DeliveryLog) error {
	logM := fromDeliveryLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrNotificationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// BatchCreateDeliveryLogs appends delivery outcomes in batches.
func (repo *notificationRepository) BatchCreateDeliveryLogs(ctx context.Context, logs []*entity.DeliveryLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.DeliveryLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromDeliveryLogDomain(log))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(logModels, deliveryLogBatchSize).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrNotificationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create delivery logs")
	}

	// Update the entities with generated values
	for i, logM := range logModels {
		logs[i].ID = logM.ID
		logs[i].CreatedAt = logM.CreatedAt
	}

	return nil
}

// FindDeliveryLogs retrieves the delivery outcomes of one notification in insertion order.
func (repo *notificationRepository) FindDeliveryLogs(ctx context.Context, notificationID int64) ([]*entity.DeliveryLog, error) {
	var logModels []*model.DeliveryLogModel

	if err := repo.db.WithContext(ctx).
		Where("notification_id = ?", notificationID).
		Order("id ASC").
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find delivery logs")
	}

	logs := make([]*entity.DeliveryLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toDeliveryLogDomain(logM))
	}

	return logs, nil
}

type statusCount struct {
	Status string
	Count  int64
}

type deliveryTotals struct {
	Success int64
	Sent    int64
}

// Stats aggregates the notification log.
func (repo *notificationRepository) Stats(ctx context.Context, since time.Time) (*entity.NotificationStats, error) {
	db := repo.db.WithContext(ctx)
	stats := &entity.NotificationStats{
		StatusBreakdown: make(map[entity.NotificationStatus]int64),
	}

	if err := db.Model(&model.NotificationModel{}).Count(&stats.TotalNotifications).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count notifications")
	}

	if err := db.Model(&model.NotificationModel{}).
		Where("sent_at >= ?", since.UTC()).
		Count(&stats.SentInLast24h).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count recently sent notifications")
	}

	var counts []statusCount
	if err := db.Model(&model.NotificationModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count notifications by status")
	}
	for _, c := range counts {
		stats.StatusBreakdown[entity.NotificationStatus(c.Status)] = c.Count
	}

	var totals deliveryTotals
	if err := db.Model(&model.NotificationModel{}).
		Select("COALESCE(SUM(success_count), 0) AS success, COALESCE(SUM(sent_count), 0) AS sent").
		Where("sent_count > 0").
		Scan(&totals).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum notification counters")
	}
	stats.SuccessRate = FormatSuccessRate(totals.Success, totals.Sent)

	return stats, nil
}

// FormatSuccessRate renders success/sent as a percentage with two decimals, or "0%" when nothing was sent.
func FormatSuccessRate(success, sent int64) string {
	if sent <= 0 {
		return "0%"
	}

	return fmt.Sprintf("%.2f%%", float64(success)*100/float64(sent))
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	targets := []string(data.TargetTokens)
	if targets == nil {
		targets = []string{}
	}

	return &entity.Notification{
		ID:           data.ID,
		Title:        data.Title,
		Body:         data.Body,
		Icon:         data.Icon,
		Image:        data.Image,
		ClickAction:  data.ClickAction,
		Data:         map[string]any(data.Data),
		TargetTokens: targets,
		SentCount:    data.SentCount,
		SuccessCount: data.SuccessCount,
		FailureCount: data.FailureCount,
		Status:       entity.NotificationStatus(data.Status),
		CreatedAt:    data.CreatedAt,
		SentAt:       data.SentAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	var payload datatypes.JSONMap
	if len(data.Data) > 0 {
		payload = datatypes.JSONMap(data.Data)
	}

	targets := data.TargetTokens
	if targets == nil {
		targets = []string{}
	}

	return &model.NotificationModel{
		ID:           data.ID,
		Title:        data.Title,
		Body:         data.Body,
		Icon:         data.Icon,
		Image:        data.Image,
		ClickAction:  data.ClickAction,
		Data:         payload,
		TargetTokens: datatypes.JSONSlice[string](targets),
		SentCount:    data.SentCount,
		SuccessCount: data.SuccessCount,
		FailureCount: data.FailureCount,
		Status:       string(data.Status),
		CreatedAt:    data.CreatedAt,
		SentAt:       data.SentAt,
	}
}

func toDeliveryLogDomain(data *model.DeliveryLogModel) *entity.DeliveryLog {
	if data == nil {
		return nil
	}

	return &entity.DeliveryLog{
		ID:             data.ID,
		NotificationID: data.NotificationID,
		Token:          data.Token,
		Status:         entity.DeliveryStatus(data.Status),
		ErrorMessage:   data.ErrorMessage,
		CreatedAt:      data.CreatedAt,
	}
}

func fromDeliveryLogDomain(data *entity.DeliveryLog) *model.DeliveryLogModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryLogModel{
		ID:             data.ID,
		NotificationID: data.NotificationID,
		Token:          data.Token,
		Status:         string(data.Status),
		ErrorMessage:   data.ErrorMessage,
		CreatedAt:      data.CreatedAt,
	}
}
