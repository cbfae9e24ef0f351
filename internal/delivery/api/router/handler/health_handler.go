package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"pushrelay/config"
	deliverycontext "pushrelay/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const healthPingTimeout = 2 * time.Second

// DatabasePinger reports database reachability.
type DatabasePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Config   *config.Config
	Database DatabasePinger
	Logger   *slog.Logger
}

type HealthHandler struct {
	version   string
	database  DatabasePinger
	endpoints map[string]string
	logger    *slog.Logger
	now       func() time.Time
}

func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		version:   params.Config.Env.Version,
		database:  params.Database,
		endpoints: endpointCatalogue(params.Config.HTTP.BasePath),
		logger:    params.Logger,
		now:       time.Now,
	}
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	Timestamp string            `json:"timestamp"`
	Version   string            `json:"version"`
	Database  string            `json:"database"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthCheck always answers 200; a failed database ping is reported as a degraded status.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	resp := HealthResponse{
		Status:    "ok",
		Message:   "Push Notification API is running",
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Version:   h.version,
		Database:  "ok",
		Endpoints: h.endpoints,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	if err := h.database.Ping(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Database ping failed", slog.Any("error", err))
		resp.Status = "degraded"
		resp.Database = "unavailable"
	}

	return c.JSON(http.StatusOK, resp)
}

func endpointCatalogue(basePath string) map[string]string {
	routes := []struct{ method, path, description string }{
		{http.MethodPost, "/devices/register", "Register device token"},
		{http.MethodGet, "/devices/tokens", "Get all active device tokens"},
		{http.MethodGet, "/devices/user/:ownerId/tokens", "Get device tokens of a user"},
		{http.MethodGet, "/devices/token/:token", "Get a device token"},
		{http.MethodDelete, "/devices/token/:token", "Deactivate device token"},
		{http.MethodGet, "/devices/stats", "Get device statistics"},
		{http.MethodPost, "/notifications/send", "Send notification"},
		{http.MethodPost, "/notifications/send-to-user/:ownerId", "Send notification to a user"},
		{http.MethodGet, "/notifications/history", "Get notification history"},
		{http.MethodGet, "/notifications/stats", "Get notification statistics"},
		{http.MethodGet, "/notifications/:id", "Get notification"},
		{http.MethodGet, "/notifications/:id/deliveries", "Get notification delivery log"},
		{http.MethodGet, "/health", "Health check"},
	}

	catalogue := make(map[string]string, len(routes))
	for _, r := range routes {
		catalogue[r.method+" "+basePath+r.path] = r.description
	}

	return catalogue
}
