package handler

import (
	"log/slog"
	"net/http"

	"pushrelay/internal/delivery/api/response"
	"pushrelay/internal/delivery/api/validator"
	"pushrelay/internal/domain/entity"
	"pushrelay/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler serves the device token registry.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device token
type RegisterDeviceRequest struct {
	Token     string  `json:"token" validate:"required,min=100"`
	OwnerID   *string `json:"ownerId,omitempty" validate:"omitempty,min=1,max=255"`
	Platform  string  `json:"platform,omitempty" validate:"omitempty,oneof=web android ios"`
	UserAgent *string `json:"userAgent,omitempty" validate:"omitempty,max=1000"`
}

// RegisterDevice handles POST /devices/register
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Validation error", validator.FieldErrors(err))
	}

	userAgent := req.UserAgent
	if userAgent == nil {
		if header := c.Request().UserAgent(); header != "" {
			userAgent = &header
		}
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), &usecase.RegisterDeviceInput{
		Token:     req.Token,
		OwnerID:   req.OwnerID,
		Platform:  entity.Platform(req.Platform),
		UserAgent: userAgent,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// ListActiveDevices handles GET /devices/tokens
func (h *DeviceHandler) ListActiveDevices(c echo.Context) error {
	devices, err := h.deviceUC.ListActiveDevices(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, "", len(devices), nonNil(devices))
}

// ListOwnerDevices handles GET /devices/user/:ownerId/tokens
func (h *DeviceHandler) ListOwnerDevices(c echo.Context) error {
	ownerID := c.Param("ownerId")
	if ownerID == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "User ID is required")
	}

	devices, err := h.deviceUC.ListOwnerDevices(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, ownerID, len(devices), nonNil(devices))
}

// GetDevice handles GET /devices/token/:token. Inactive tokens are returned too.
func (h *DeviceHandler) GetDevice(c echo.Context) error {
	device, err := h.deviceUC.GetDevice(c.Request().Context(), c.Param("token"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device)
}

// DeactivateDevice handles DELETE /devices/token/:token
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), c.Param("token")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Token deactivated successfully")
}

// GetDeviceStats handles GET /devices/stats
func (h *DeviceHandler) GetDeviceStats(c echo.Context) error {
	stats, err := h.deviceUC.GetDeviceStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

func nonNil(devices []*entity.DeviceToken) []*entity.DeviceToken {
	if devices == nil {
		return []*entity.DeviceToken{}
	}

	return devices
}
