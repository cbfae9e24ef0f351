package repository

import (
	"context"
	"time"

	"pushrelay/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrNotificationFinalized is returned when a status update targets a record that already left pending.
	ErrNotificationFinalized = errors.New("notification already finalized")
)

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// Create persists a new pending notification and fills in its ID and creation time.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Notification, error)

	// List returns one page of notifications, newest first, with the total record count.
	List(ctx context.Context, limit, offset int) (*entity.NotificationPage, error)

	// UpdateStatus moves a pending notification to a terminal status and stores its counters.
	// SentAt is set only for the sent status.
	UpdateStatus(ctx context.Context, id int64, status entity.NotificationStatus, counts entity.DeliveryCounts) error

	// CreateDeliveryLog appends a single delivery outcome.
	CreateDeliveryLog(ctx context.Context, log *entity.DeliveryLog) error

	// BatchCreateDeliveryLogs appends delivery outcomes in one statement.
	BatchCreateDeliveryLogs(ctx context.Context, logs []*entity.DeliveryLog) error

	// FindDeliveryLogs retrieves the delivery outcomes of one notification in insertion order.
	FindDeliveryLogs(ctx context.Context, notificationID int64) ([]*entity.DeliveryLog, error)

	// Stats aggregates the notification log; the recent count covers records created at or after since.
	Stats(ctx context.Context, since time.Time) (*entity.NotificationStats, error)
}
