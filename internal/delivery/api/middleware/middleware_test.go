package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pushrelay/config"
	"pushrelay/internal/delivery/api/response"
	domainerrors "pushrelay/internal/domain/errors"
	"pushrelay/internal/domain/service"
	mockSvc "pushrelay/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantDetail bool
	}{
		{name: "app error", err: errors.WithStack(domainerrors.ErrNoValidTokens), wantStatus: 400, wantCode: "NO_VALID_TOKENS"},
		{name: "provider error keeps details", err: domainerrors.NewProviderError(5, "auth failed"), wantStatus: 500, wantCode: "NOTIFICATION_SEND_FAILED", wantDetail: true},
		{name: "database error hides details", err: domainerrors.NewDatabaseExecuteError(errors.New("syntax"), "select"), wantStatus: 500, wantCode: "DATABASE_EXECUTE_FAILED"},
		{name: "route not found", err: echo.ErrNotFound, wantStatus: 404, wantCode: "NOT_FOUND"},
		{name: "echo error", err: echo.NewHTTPError(http.StatusRequestEntityTooLarge, "too big"), wantStatus: 413, wantCode: "HTTP_ERROR"},
		{name: "unknown error", err: errors.New("boom"), wantStatus: 500, wantCode: "INTERNAL_ERROR"},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetail, body.Error.Details != nil)
		})
	}
}

func authConfig(enabled bool) *config.Config {
	return &config.Config{Auth: &config.AuthConfig{Enabled: enabled, Secret: "s", RequiredRole: "operator"}}
}

func TestAuthMiddleware_Disabled(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), authConfig(false))
	c, rec := newContext(httptest.NewRequest(http.MethodPost, "/", nil))

	err := m.Authenticate(m.RequireOperator(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}))(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthMiddleware_Enabled(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(tokenSvc *mockSvc.MockTokenService)
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("bad").Return(nil, errors.New("expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "missing role",
			header: "Bearer viewer",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("viewer").Return(&service.Claims{Roles: []string{"viewer"}}, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "operator",
			header: "Bearer good",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{Roles: []string{"operator"}}, nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}
			m := NewAuthMiddleware(tokenSvc, authConfig(true))

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c, rec := newContext(req)

			err := m.Authenticate(m.RequireOperator(func(c echo.Context) error {
				return c.NoContent(http.StatusNoContent)
			}))(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
