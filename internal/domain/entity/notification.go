package entity

import "time"

// NotificationStatus is the lifecycle state of a notification record.
type NotificationStatus string

// Notification statuses. A record leaves pending exactly once.
const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusFailed  NotificationStatus = "failed"
)

// DeliveryStatus is the outcome recorded for one token of a dispatch.
type DeliveryStatus string

// Delivery statuses.
const (
	DeliveryStatusSent      DeliveryStatus = "sent"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusFailed    DeliveryStatus = "failed"
)

// Notification records one dispatch attempt and its aggregated outcome.
type Notification struct {
	ID           int64              `json:"id"`
	Title        string             `json:"title"`
	Body         string             `json:"body"`
	Icon         *string            `json:"icon,omitempty"`
	Image        *string            `json:"image,omitempty"`
	ClickAction  *string            `json:"clickAction,omitempty"`
	Data         map[string]any     `json:"data,omitempty"`
	TargetTokens []string           `json:"targetTokens"`
	SentCount    int                `json:"sentCount"`
	SuccessCount int                `json:"successCount"`
	FailureCount int                `json:"failureCount"`
	Status       NotificationStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
	SentAt       *time.Time         `json:"sentAt,omitempty"`
}

// DeliveryCounts are the counters written together with a terminal status.
type DeliveryCounts struct {
	SentCount    int
	SuccessCount int
	FailureCount int
}

// DeliveryLog is the append-only outcome of one (notification, token) pair.
type DeliveryLog struct {
	ID             int64          `json:"id"`
	NotificationID int64          `json:"notificationId"`
	Token          string         `json:"token"`
	Status         DeliveryStatus `json:"status"`
	ErrorMessage   *string        `json:"errorMessage,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// NotificationPage is one page of the notification history.
type NotificationPage struct {
	Records    []*Notification
	TotalCount int64
}

// NotificationStats aggregates the notification log.
type NotificationStats struct {
	TotalNotifications int64                        `json:"totalNotifications"`
	SentInLast24h      int64                        `json:"sentInLast24h"`
	StatusBreakdown    map[NotificationStatus]int64 `json:"statusBreakdown"`
	SuccessRate        string                       `json:"successRate"`
}
