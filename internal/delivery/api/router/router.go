// Package router wires the HTTP routes to their handlers.
package router

import (
	"pushrelay/config"
	"pushrelay/internal/delivery/api/middleware"
	"pushrelay/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeviceHandler       *handler.DeviceHandler
	NotificationHandler *handler.NotificationHandler
	HealthHandler       *handler.HealthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler       *handler.DeviceHandler
	notificationHandler *handler.NotificationHandler
	healthHandler       *handler.HealthHandler
	authMiddleware      *middleware.AuthMiddleware
	basePath            string
}

func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler:       params.DeviceHandler,
		notificationHandler: params.NotificationHandler,
		healthHandler:       params.HealthHandler,
		authMiddleware:      params.AuthMiddleware,
		basePath:            params.Config.HTTP.BasePath,
	}
}

// RegisterRoutes sets up all the API routes under the configured base path.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group(r.basePath)

	api.GET("/health", r.healthHandler.HealthCheck)

	devicesGroup := api.Group("/devices")
	{
		devicesGroup.POST("/register", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("/tokens", r.deviceHandler.ListActiveDevices)
		devicesGroup.GET("/user/:ownerId/tokens", r.deviceHandler.ListOwnerDevices)
		devicesGroup.GET("/token/:token", r.deviceHandler.GetDevice)
		devicesGroup.DELETE("/token/:token", r.deviceHandler.DeactivateDevice)
		devicesGroup.GET("/stats", r.deviceHandler.GetDeviceStats)
	}

	notificationsGroup := api.Group("/notifications")
	{
		// Sending requires an operator when auth is enabled
		operatorOnly := []echo.MiddlewareFunc{r.authMiddleware.Authenticate, r.authMiddleware.RequireOperator}
		notificationsGroup.POST("/send", r.notificationHandler.SendNotification, operatorOnly...)
		notificationsGroup.POST("/send-to-user/:ownerId", r.notificationHandler.SendToUser, operatorOnly...)

		notificationsGroup.GET("/history", r.notificationHandler.GetHistory)
		notificationsGroup.GET("/stats", r.notificationHandler.GetStats)
		notificationsGroup.GET("/:id", r.notificationHandler.GetNotification)
		notificationsGroup.GET("/:id/deliveries", r.notificationHandler.GetDeliveryLogs)
	}
}
