package handlers

import (
	"errors"
	"net/http"

	request "buffet_festas/internal/adapter/http/dto/request"
	response "buffet_festas/internal/adapter/http/dto/response"
	"buffet_festas/internal/domain/entities"
	"buffet_festas/internal/usecase"
	"buffet_festas/pkg"

	"github.com/gin-gonic/gin"
)

// EventHandler handles HTTP requests for party events.
type EventHandler struct {
	usecase usecase.IEventUseCase
}

func NewEventHandler(uc usecase.IEventUseCase) *EventHandler {
	return &EventHandler{usecase: uc}
}

// CreateEvent godoc
// @Summary      Create event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        payload  body      request.EventRequest  true  "Event"
// @Success      201      {object}  response.EventResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var payload request.EventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	event, err := h.usecase.CreateEvent(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapEventError(err))
		return
	}

	c.JSON(http.StatusCreated, h.toResponse(event))
}

// ListEvents godoc
// @Summary      List events
// @Tags         events
// @Produce      json
// @Success      200  {array}   response.EventResponse
// @Security     Bearer
// @Router       /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapEventError(err))
		return
	}

	out := make([]response.EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, h.toResponse(e))
	}
	c.JSON(http.StatusOK, out)
}

// GetEvent godoc
// @Summary      Get event
// @Tags         events
// @Produce      json
// @Param        id   path      string  true  "Event ID"
// @Success      200  {object}  response.EventResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEventError(err))
		return
	}
	c.JSON(http.StatusOK, h.toResponse(event))
}

// ChangeStatus godoc
// @Summary      Change event status
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Event ID"
// @Param        payload  body      request.StatusRequest  true  "New status"
// @Success      200      {object}  response.EventResponse
// @Failure      422      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /events/{id}/status [patch]
func (h *EventHandler) ChangeStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	event, err := h.usecase.ChangeStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus())
	if err != nil {
		writeError(c, mapEventError(err))
		return
	}
	c.JSON(http.StatusOK, h.toResponse(event))
}

func (h *EventHandler) toResponse(e entities.Event) response.EventResponse {
	started, err := h.usecase.HasStarted(e)
	if err != nil {
		started = false
	}
	return response.FromEvent(e, started)
}

func mapEventError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEventID), errors.Is(err, usecase.ErrInvalidEventInput), errors.Is(err, entities.ErrInvalidArgument):
		return errInvalidRequest
	case errors.Is(err, entities.ErrInvalidState):
		return errInvalidState
	case errors.Is(err, usecase.ErrEventNotFound):
		return pkg.NewDomainErrorSimple("EVENT_NOT_FOUND", "Event not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
