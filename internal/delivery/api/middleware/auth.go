package middleware

import (
	"strings"

	"pushrelay/config"
	"pushrelay/internal/delivery/api/response"
	deliverycontext "pushrelay/internal/delivery/context"
	domainerrors "pushrelay/internal/domain/errors"
	"pushrelay/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards operator endpoints with a bearer JWT. It is a pass-through when auth is disabled.
type AuthMiddleware struct {
	tokenSvc     service.TokenService
	enabled      bool
	requiredRole string
}

func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	m := &AuthMiddleware{tokenSvc: tokenSvc}
	if cfg.Auth != nil {
		m.enabled = cfg.Auth.Enabled
		m.requiredRole = cfg.Auth.RequiredRole
	}

	return m
}

// Authenticate validates the bearer token and stores its claims on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Missing bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}

// RequireOperator rejects authenticated callers without the configured operator role.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequireOperator(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled || m.requiredRole == "" {
			return next(c)
		}

		claims := deliverycontext.GetClaims(c)
		if claims == nil || !claims.HasRole(m.requiredRole) {
			return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), domainerrors.ErrForbidden.Message())
		}

		return next(c)
	}
}
