package service

import (
	"context"
	"time"
)

// DispatchEvent describes a completed dispatch for downstream consumers.
type DispatchEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	NotificationID int64     `json:"notification_id"`
	Status         string    `json:"status"`
	TotalTokens    int       `json:"total_tokens"`
	SuccessCount   int       `json:"success_count"`
	FailureCount   int       `json:"failure_count"`
	InvalidTokens  int       `json:"invalid_tokens"`
	DispatchedAt   time.Time `json:"dispatched_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDispatchEvent publishes the outcome of a dispatch
	PublishDispatchEvent(ctx context.Context, event *DispatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
