package service

import (
	"context"
)

// PushMessage is the provider-neutral payload of one dispatch.
type PushMessage struct {
	Title       string
	Body        string
	Icon        string
	Image       string
	ClickAction string
	Data        map[string]string
}

// SingleResult is the provider receipt for a single-target send.
type SingleResult struct {
	MessageID string
}

// SendResponse is the outcome for one token of a batch, aligned with the input order.
type SendResponse struct {
	Success      bool
	MessageID    string
	Error        string
	Unregistered bool // Provider reports the token as no longer valid.
}

// BatchResult is the provider receipt for one multi-target call.
type BatchResult struct {
	SuccessCount int
	FailureCount int
	Responses    []SendResponse
}

// PushProvider defines the interface for an external push delivery provider.
type PushProvider interface {
	// SendSingle delivers the message to exactly one token.
	SendSingle(ctx context.Context, token string, msg *PushMessage) (*SingleResult, error)

	// SendBatch delivers the message to up to the provider's batch limit of tokens in one call.
	SendBatch(ctx context.Context, tokens []string, msg *PushMessage) (*BatchResult, error)
}
