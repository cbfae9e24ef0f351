// Package dispatch fans a message out to a token set through the push
// provider, splitting large sets into provider-sized batches and merging
// the per-batch outcomes.
package dispatch

import (
	"context"
	"log/slog"

	"pushrelay/internal/domain/constants"
	domainerrors "pushrelay/internal/domain/errors"
	"pushrelay/internal/domain/service"
	"pushrelay/internal/errors"
)

// Result is the merged outcome of one dispatch.
type Result struct {
	// Success is false only when the single send failed or every batch call failed.
	Success bool
	// MessageID is set for single-target dispatches.
	MessageID    string
	SuccessCount int
	FailureCount int
	// Responses are aligned with the screened token list. Empty for single-target dispatches.
	Responses []service.SendResponse
	// ErrorMessage carries the provider failure when Success is false.
	ErrorMessage string
	// Tokens is the screened list the provider was called with.
	Tokens        []string
	InvalidTokens int
}

// Unregistered returns the tokens the provider reported as no longer valid.
func (r *Result) Unregistered() []string {
	var out []string
	for i, resp := range r.Responses {
		if resp.Unregistered && i < len(r.Tokens) {
			out = append(out, r.Tokens[i])
		}
	}

	return out
}

// Engine dispatches messages through a PushProvider.
type Engine struct {
	provider   service.PushProvider
	gate       *TokenGate
	batchLimit int
	logger     *slog.Logger
}

// NewEngine creates a dispatch engine. A non-positive batchLimit falls back to the provider maximum.
func NewEngine(provider service.PushProvider, gate *TokenGate, batchLimit int, logger *slog.Logger) *Engine {
	if batchLimit <= 0 || batchLimit > constants.DefaultBatchLimit {
		batchLimit = constants.DefaultBatchLimit
	}

	return &Engine{
		provider:   provider,
		gate:       gate,
		batchLimit: batchLimit,
		logger:     logger,
	}
}

// Gate returns the token gate used by the engine.
func (e *Engine) Gate() *TokenGate {
	return e.gate
}

// BatchLimit returns the maximum number of tokens per provider call.
func (e *Engine) BatchLimit() int {
	return e.batchLimit
}

// Dispatch screens tokens and delivers msg to the survivors. It returns
// ErrNoValidTokens without calling the provider when nothing survives.
// Provider failures never surface as an error; they are folded into Result.
func (e *Engine) Dispatch(ctx context.Context, msg *service.PushMessage, tokens []string) (*Result, error) {
	valid, invalid := e.gate.Screen(tokens)
	if len(valid) == 0 {
		return nil, errors.WithStack(domainerrors.ErrNoValidTokens)
	}

	result := &Result{
		Tokens:        valid,
		InvalidTokens: invalid,
	}

	if len(valid) == 1 {
		e.sendSingle(ctx, msg, valid[0], result)

		return result, nil
	}

	e.sendBatches(ctx, msg, valid, result)

	return result, nil
}

func (e *Engine) sendSingle(ctx context.Context, msg *service.PushMessage, token string, result *Result) {
	res, err := e.provider.SendSingle(ctx, token, msg)
	if err != nil {
		e.logger.Error("single-target send failed", slog.Any("error", err))
		result.Success = false
		result.FailureCount = 1
		result.ErrorMessage = err.Error()

		return
	}

	result.Success = true
	result.SuccessCount = 1
	if res != nil {
		result.MessageID = res.MessageID
	}
}

func (e *Engine) sendBatches(ctx context.Context, msg *service.PushMessage, tokens []string, result *Result) {
	result.Responses = make([]service.SendResponse, 0, len(tokens))
	batches := 0
	failedBatches := 0
	var lastErr error

	for start := 0; start < len(tokens); start += e.batchLimit {
		end := min(start+e.batchLimit, len(tokens))
		batch := tokens[start:end]
		batches++

		res, err := e.provider.SendBatch(ctx, batch, msg)
		if err != nil {
			// Continue with the next batch even if one fails
			e.logger.Error("batch send failed",
				slog.Int("batch", batches),
				slog.Int("size", len(batch)),
				slog.Any("error", err),
			)
			failedBatches++
			lastErr = err
			result.FailureCount += len(batch)
			for range batch {
				result.Responses = append(result.Responses, service.SendResponse{Error: err.Error()})
			}

			continue
		}

		result.SuccessCount += res.SuccessCount
		result.FailureCount += res.FailureCount
		result.Responses = append(result.Responses, alignResponses(res.Responses, len(batch))...)
	}

	result.Success = failedBatches < batches
	if !result.Success && lastErr != nil {
		result.ErrorMessage = lastErr.Error()
	}

	e.logger.Info("multi-target dispatch finished",
		slog.Int("tokens", len(tokens)),
		slog.Int("batches", batches),
		slog.Int("failed_batches", failedBatches),
		slog.Int("success_count", result.SuccessCount),
		slog.Int("failure_count", result.FailureCount),
	)
}

// alignResponses pads or truncates provider responses to exactly n entries.
func alignResponses(responses []service.SendResponse, n int) []service.SendResponse {
	if len(responses) == n {
		return responses
	}

	out := make([]service.SendResponse, n)
	copy(out, responses)
	for i := len(responses); i < n; i++ {
		out[i] = service.SendResponse{Error: "missing provider response"}
	}

	return out
}
