package handlers

import (
	"errors"
	"net/http"

	response "buffet_festas/internal/adapter/http/dto/response"
	"buffet_festas/internal/usecase"
	"buffet_festas/pkg"

	"github.com/gin-gonic/gin"
)

// NotificationHandler previews and sends freelancer reminders.
type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// Preview godoc
// @Summary      Compose the reminder of a freelancer
// @Tags         notifications
// @Produce      json
// @Param        id   path      string  true  "Freelancer ID"
// @Success      200  {object}  response.NotificationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /freelancers/{id}/notification [get]
func (h *NotificationHandler) Preview(c *gin.Context) {
	preview, err := h.usecase.Compose(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapNotificationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNotification(preview, false))
}

// Send godoc
// @Summary      Send the reminder of a freelancer through Telegram
// @Tags         notifications
// @Produce      json
// @Param        id   path      string  true  "Freelancer ID"
// @Success      200  {object}  response.NotificationResponse
// @Failure      422  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /freelancers/{id}/notification [post]
func (h *NotificationHandler) Send(c *gin.Context) {
	preview, err := h.usecase.Send(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapNotificationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNotification(preview, true))
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFreelancerID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrFreelancerNotFound):
		return pkg.NewDomainErrorSimple("FREELANCER_NOT_FOUND", "Freelancer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotificationChannelMissing):
		return pkg.NewDomainErrorSimple("NOTIFICATION_CHANNEL_MISSING", "Freelancer has no Telegram chat id", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMessagingNotConfigured):
		return pkg.NewDomainErrorSimple("MESSAGING_NOT_CONFIGURED", "Telegram is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrMessageDeliveryFailed):
		return pkg.NewDomainError("MESSAGE_DELIVERY_FAILED", "Telegram rejected the message", err, http.StatusBadGateway)
	default:
		return internalError(err)
	}
}
