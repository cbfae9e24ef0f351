package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"pushrelay/internal/delivery/api/response"
	"pushrelay/internal/delivery/api/validator"
	deliverycontext "pushrelay/internal/delivery/context"
	"pushrelay/internal/domain/constants"
	"pushrelay/internal/domain/entity"
	domainerrors "pushrelay/internal/domain/errors"
	"pushrelay/internal/errors"
	"pushrelay/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves notification dispatch and history.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// TargetTokens is either the literal "all" or an explicit token list.
// Explicit tokens must have the registration length.
type TargetTokens struct {
	All    bool
	Tokens []string `json:"targetTokens" validate:"omitempty,dive,min=100"`
}

// UnmarshalJSON accepts "all" or an array of strings.
func (t *TargetTokens) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return errors.WithStack(err)
		}
		if value != constants.TargetAll {
			return errors.Errorf("targetTokens must be %q or an array of tokens", constants.TargetAll)
		}
		t.All = true

		return nil
	}

	var tokens []string
	if err := json.Unmarshal(data, &tokens); err != nil {
		return errors.Wrap(err, "targetTokens must be \"all\" or an array of tokens")
	}
	t.Tokens = tokens

	return nil
}

// MarshalJSON writes the same shape UnmarshalJSON accepts.
func (t TargetTokens) MarshalJSON() ([]byte, error) {
	if t.All {
		return json.Marshal(constants.TargetAll)
	}

	return json.Marshal(t.Tokens)
}

// NotificationContent is the shared body of both send endpoints.
type NotificationContent struct {
	Title       string         `json:"title" validate:"required,max=100"`
	Body        string         `json:"body" validate:"required,max=1000"`
	Icon        *string        `json:"icon,omitempty" validate:"omitempty,url"`
	Image       *string        `json:"image,omitempty" validate:"omitempty,url"`
	ClickAction *string        `json:"clickAction,omitempty" validate:"omitempty,url"`
	Data        map[string]any `json:"data,omitempty"`
}

// SendNotificationRequest represents the body of POST /notifications/send
type SendNotificationRequest struct {
	NotificationContent
	TargetTokens *TargetTokens `json:"targetTokens" validate:"required"`
}

// SendToUserRequest represents the body of POST /notifications/send-to-user/:ownerId
type SendToUserRequest struct {
	NotificationContent
}

func (n *NotificationContent) toInput() *usecase.NotificationInput {
	return &usecase.NotificationInput{
		Title:       n.Title,
		Body:        n.Body,
		Icon:        n.Icon,
		Image:       n.Image,
		ClickAction: n.ClickAction,
		Data:        n.Data,
	}
}

// SendNotification handles POST /notifications/send
func (h *NotificationHandler) SendNotification(c echo.Context) error {
	var req SendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Validation error", validator.FieldErrors(err))
	}
	if !req.TargetTokens.All && len(req.TargetTokens.Tokens) == 0 {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Validation error",
			map[string]string{"targetTokens": "required"})
	}

	result, err := h.notificationUC.SendNotification(c.Request().Context(), req.toInput(), usecase.Target{
		All:    req.TargetTokens.All,
		Tokens: req.TargetTokens.Tokens,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// SendToUser handles POST /notifications/send-to-user/:ownerId.
// An owner without devices answers 404 even when the body would fail validation.
func (h *NotificationHandler) SendToUser(c echo.Context) error {
	ownerID := c.Param("ownerId")
	if ownerID == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "User ID is required")
	}

	var req SendToUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request body")
	}

	// Content rules are applied by the usecase once the owner is known to have devices.
	result, err := h.notificationUC.SendToOwner(c.Request().Context(), ownerID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// HistoryResponse is the body of GET /notifications/history
type HistoryResponse struct {
	Success       bool               `json:"success"`
	Notifications any                `json:"notifications"`
	Pagination    usecase.Pagination `json:"pagination"`
	Meta          *response.MetaInfo `json:"meta"`
}

// GetHistory handles GET /notifications/history?page&limit. Unparseable values use the defaults.
func (h *NotificationHandler) GetHistory(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	history, err := h.notificationUC.ListNotifications(c.Request().Context(), page, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, HistoryResponse{
		Success:       true,
		Notifications: history.Notifications,
		Pagination:    history.Pagination,
		Meta:          &response.MetaInfo{RequestID: deliverycontext.GetRequestID(c)},
	})
}

// GetStats handles GET /notifications/stats
func (h *NotificationHandler) GetStats(c echo.Context) error {
	stats, err := h.notificationUC.GetNotificationStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// GetNotification handles GET /notifications/:id
func (h *NotificationHandler) GetNotification(c echo.Context) error {
	id, err := parseNotificationID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	notification, err := h.notificationUC.GetNotification(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notification)
}

// GetDeliveryLogs handles GET /notifications/:id/deliveries
func (h *NotificationHandler) GetDeliveryLogs(c echo.Context) error {
	id, err := parseNotificationID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	logs, err := h.notificationUC.GetDeliveryLogs(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if logs == nil {
		logs = []*entity.DeliveryLog{}
	}

	return response.List(c, "", len(logs), logs)
}

func parseNotificationID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.WithStack(domainerrors.ErrInvalidNotificationID)
	}

	return id, nil
}
