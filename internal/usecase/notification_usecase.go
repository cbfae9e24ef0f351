package usecase

import (
	"context"

	"pushrelay/internal/domain/entity"
)

// NotificationInput is the user-visible content of a notification.
type NotificationInput struct {
	Title       string
	Body        string
	Icon        *string
	Image       *string
	ClickAction *string
	Data        map[string]any
}

// Target selects the recipients of a send. Exactly one of All, Tokens or OwnerID is used,
// in that order of precedence.
type Target struct {
	All     bool
	Tokens  []string
	OwnerID string
}

// SendResult summarizes a completed dispatch.
type SendResult struct {
	NotificationID int64                     `json:"notificationId"`
	Status         entity.NotificationStatus `json:"status"`
	TotalTokens    int                       `json:"totalTokens"`
	SuccessCount   int                       `json:"successCount"`
	FailureCount   int                       `json:"failureCount"`
	InvalidTokens  int                       `json:"invalidTokens"`
}

// Pagination describes one page of a listing.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NotificationHistory is one page of notification records.
type NotificationHistory struct {
	Notifications []*entity.Notification `json:"notifications"`
	Pagination    Pagination             `json:"pagination"`
}

// NotificationUsecase defines the interface for notification dispatch and history use cases
type NotificationUsecase interface {
	// SendNotification records and dispatches a notification to the resolved target
	SendNotification(ctx context.Context, input *NotificationInput, target Target) (*SendResult, error)

	// SendToOwner dispatches a notification to every active token of one owner
	SendToOwner(ctx context.Context, ownerID string, input *NotificationInput) (*SendResult, error)

	// GetNotification retrieves a single notification record
	GetNotification(ctx context.Context, id int64) (*entity.Notification, error)

	// ListNotifications retrieves notification history, newest first
	ListNotifications(ctx context.Context, page, limit int) (*NotificationHistory, error)

	// GetDeliveryLogs retrieves the per-token outcomes of a notification
	GetDeliveryLogs(ctx context.Context, id int64) ([]*entity.DeliveryLog, error)

	// GetNotificationStats aggregates the notification log
	GetNotificationStats(ctx context.Context) (*entity.NotificationStats, error)
}
