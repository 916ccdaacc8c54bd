package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mhd-interiors/crm-console/internal/core/ports"
)

// NotificationHandler handles HTTP requests for notifications. Delivery over
// the live channel is the service's concern; this layer only shapes requests.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

type sendNotificationRequest struct {
	UserID  string `json:"userId"`
	Title   string `json:"title"   validate:"required"`
	Message string `json:"message" validate:"required"`
}

// My handles GET /notification/my — the caller's notifications plus
// broadcasts, newest first.
func (h *NotificationHandler) My(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	notifications, err := h.service.My(c.Request().Context(), sess.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notifications)
}

// Send handles POST /notification/send. An empty userId broadcasts to every
// connected operator.
func (h *NotificationHandler) Send(c echo.Context) error {
	var req sendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Send(c.Request().Context(), ports.SendNotificationInput{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}
