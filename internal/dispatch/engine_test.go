package dispatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	domainerrors "pushrelay/internal/domain/errors"
	"pushrelay/internal/domain/service"
	mockSvc "pushrelay/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type engineFixtures struct {
	engine   *Engine
	provider *mockSvc.MockPushProvider
}

func createTestEngine(t *testing.T, batchLimit int) engineFixtures {
	provider := mockSvc.NewMockPushProvider(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return engineFixtures{
		engine:   NewEngine(provider, NewTokenGate(50, false), batchLimit, logger),
		provider: provider,
	}
}

func makeTokens(n int) []string {
	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("%s-%05d", strings.Repeat("t", 60), i)
	}

	return tokens
}

func allSucceeded(n int) *service.BatchResult {
	res := &service.BatchResult{SuccessCount: n, Responses: make([]service.SendResponse, n)}
	for i := range res.Responses {
		res.Responses[i] = service.SendResponse{Success: true, MessageID: fmt.Sprintf("m-%d", i)}
	}

	return res
}

func TestEngine_Dispatch_NoValidTokens(t *testing.T) {
	fx := createTestEngine(t, 500)

	res, err := fx.engine.Dispatch(context.Background(), &service.PushMessage{Title: "t", Body: "b"}, []string{"short", ""})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, domainerrors.ErrNoValidTokens))
	fx.provider.AssertNotCalled(t, "SendSingle", mock.Anything, mock.Anything, mock.Anything)
	fx.provider.AssertNotCalled(t, "SendBatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestEngine_Dispatch_SingleTarget(t *testing.T) {
	fx := createTestEngine(t, 500)
	ctx := context.Background()
	msg := &service.PushMessage{Title: "t", Body: "b"}
	tokens := makeTokens(1)

	fx.provider.EXPECT().
		SendSingle(ctx, tokens[0], msg).
		Return(&service.SingleResult{MessageID: "projects/p/messages/1"}, nil).
		Once()

	res, err := fx.engine.Dispatch(ctx, msg, append(tokens, "bad"))
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "projects/p/messages/1", res.MessageID)
	assert.Equal(t, 1, res.SuccessCount)
	assert.Equal(t, 0, res.FailureCount)
	assert.Equal(t, 1, res.InvalidTokens)
	assert.Empty(t, res.Responses)
}

func TestEngine_Dispatch_SingleTargetFailure(t *testing.T) {
	fx := createTestEngine(t, 500)
	ctx := context.Background()
	tokens := makeTokens(1)

	fx.provider.EXPECT().
		SendSingle(ctx, tokens[0], mock.Anything).
		Return(nil, errors.New("requested entity was not found"))

	res, err := fx.engine.Dispatch(ctx, &service.PushMessage{}, tokens)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, 1, res.FailureCount)
	assert.Equal(t, "requested entity was not found", res.ErrorMessage)
}

func TestEngine_Dispatch_SplitsIntoBatches(t *testing.T) {
	fx := createTestEngine(t, 500)
	ctx := context.Background()
	tokens := makeTokens(501)

	fx.provider.EXPECT().
		SendBatch(ctx, tokens[:500], mock.Anything).
		Return(allSucceeded(500), nil).
		Once()
	fx.provider.EXPECT().
		SendBatch(ctx, tokens[500:], mock.Anything).
		Return(allSucceeded(1), nil).
		Once()

	res, err := fx.engine.Dispatch(ctx, &service.PushMessage{}, tokens)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 501, res.SuccessCount)
	assert.Equal(t, 0, res.FailureCount)
	assert.Len(t, res.Responses, 501)
}

func TestEngine_Dispatch_BatchCountIsCeiling(t *testing.T) {
	cases := []struct {
		tokens, limit, calls int
	}{
		{tokens: 2, limit: 500, calls: 1},
		{tokens: 500, limit: 500, calls: 1},
		{tokens: 1000, limit: 500, calls: 2},
		{tokens: 1001, limit: 500, calls: 3},
		{tokens: 7, limit: 3, calls: 3},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d/%d", tc.tokens, tc.limit), func(t *testing.T) {
			fx := createTestEngine(t, tc.limit)
			calls := 0

			fx.provider.EXPECT().
				SendBatch(mock.Anything, mock.Anything, mock.Anything).
				RunAndReturn(func(_ context.Context, batch []string, _ *service.PushMessage) (*service.BatchResult, error) {
					calls++
					assert.LessOrEqual(t, len(batch), tc.limit)

					return allSucceeded(len(batch)), nil
				})

			res, err := fx.engine.Dispatch(context.Background(), &service.PushMessage{}, makeTokens(tc.tokens))
			require.NoError(t, err)
			assert.Equal(t, tc.calls, calls)
			assert.Equal(t, tc.tokens, res.SuccessCount+res.FailureCount)
		})
	}
}

func TestEngine_Dispatch_BatchErrorCountsWholeBatch(t *testing.T) {
	fx := createTestEngine(t, 3)
	ctx := context.Background()
	tokens := makeTokens(5)

	fx.provider.EXPECT().
		SendBatch(ctx, tokens[:3], mock.Anything).
		Return(nil, errors.New("quota exceeded")).
		Once()
	fx.provider.EXPECT().
		SendBatch(ctx, tokens[3:], mock.Anything).
		Return(&service.BatchResult{
			SuccessCount: 1,
			FailureCount: 1,
			Responses: []service.SendResponse{
				{Success: true, MessageID: "m-1"},
				{Error: "unregistered", Unregistered: true},
			},
		}, nil).
		Once()

	res, err := fx.engine.Dispatch(ctx, &service.PushMessage{}, tokens)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.SuccessCount)
	assert.Equal(t, 4, res.FailureCount)
	require.Len(t, res.Responses, 5)
	assert.Equal(t, "quota exceeded", res.Responses[0].Error)
	assert.True(t, res.Responses[3].Success)
	assert.Equal(t, []string{tokens[4]}, res.Unregistered())
}

func TestEngine_Dispatch_AllBatchesFail(t *testing.T) {
	fx := createTestEngine(t, 2)
	ctx := context.Background()

	fx.provider.EXPECT().
		SendBatch(ctx, mock.Anything, mock.Anything).
		Return(nil, errors.New("provider unavailable")).
		Times(2)

	res, err := fx.engine.Dispatch(ctx, &service.PushMessage{}, makeTokens(4))
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, 0, res.SuccessCount)
	assert.Equal(t, 4, res.FailureCount)
	assert.Equal(t, "provider unavailable", res.ErrorMessage)
}

func TestEngine_Dispatch_PadsShortProviderResponse(t *testing.T) {
	fx := createTestEngine(t, 500)
	ctx := context.Background()

	fx.provider.EXPECT().
		SendBatch(ctx, mock.Anything, mock.Anything).
		Return(&service.BatchResult{SuccessCount: 1, FailureCount: 1, Responses: []service.SendResponse{{Success: true}}}, nil)

	res, err := fx.engine.Dispatch(ctx, &service.PushMessage{}, makeTokens(2))
	require.NoError(t, err)
	require.Len(t, res.Responses, 2)
	assert.False(t, res.Responses[1].Success)
}

func TestNewEngine_ClampsBatchLimit(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Equal(t, 500, NewEngine(nil, NewTokenGate(0, false), 0, logger).BatchLimit())
	assert.Equal(t, 500, NewEngine(nil, NewTokenGate(0, false), 1000, logger).BatchLimit())
	assert.Equal(t, 10, NewEngine(nil, NewTokenGate(0, false), 10, logger).BatchLimit())
}
