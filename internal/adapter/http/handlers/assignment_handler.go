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

// AssignmentHandler handles freelancer assignments (escalas) on events.
type AssignmentHandler struct {
	usecase usecase.IAssignmentUseCase
}

func NewAssignmentHandler(uc usecase.IAssignmentUseCase) *AssignmentHandler {
	return &AssignmentHandler{usecase: uc}
}

// Assign godoc
// @Summary      Assign freelancer to event
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Event ID"
// @Param        payload  body      request.AssignmentRequest  true  "Assignment"
// @Success      201      {object}  response.AssignmentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /events/{id}/assignments [post]
func (h *AssignmentHandler) Assign(c *gin.Context) {
	var payload request.AssignmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	in, err := payload.ToInput(c.Param("id"))
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	a, err := h.usecase.Assign(c.Request.Context(), in)
	if err != nil {
		writeError(c, mapAssignmentError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromAssignment(a))
}

// ListByEvent godoc
// @Summary      List event assignments
// @Tags         assignments
// @Produce      json
// @Param        id   path     string  true  "Event ID"
// @Success      200  {array}  response.AssignmentResponse
// @Security     Bearer
// @Router       /events/{id}/assignments [get]
func (h *AssignmentHandler) ListByEvent(c *gin.Context) {
	list, err := h.usecase.ListByEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapAssignmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAssignments(list))
}

// SetPaymentStatus godoc
// @Summary      Set assignment payment status
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Assignment ID"
// @Param        payload  body      request.StatusRequest  true  "pago, parcial or pendente"
// @Success      200      {object}  response.AssignmentResponse
// @Security     Bearer
// @Router       /assignments/{id}/payment-status [patch]
func (h *AssignmentHandler) SetPaymentStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	a, err := h.usecase.SetPaymentStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus())
	if err != nil {
		writeError(c, mapAssignmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAssignment(a))
}

// SetBonus godoc
// @Summary      Set assignment bonus
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "Assignment ID"
// @Param        payload  body      request.BonusRequest  true  "Bonus"
// @Success      200      {object}  response.AssignmentResponse
// @Security     Bearer
// @Router       /assignments/{id}/bonus [patch]
func (h *AssignmentHandler) SetBonus(c *gin.Context) {
	var payload request.BonusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	bonus, err := payload.ResolveBonus()
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	a, err := h.usecase.SetBonus(c.Request.Context(), c.Param("id"), bonus, payload.Reason)
	if err != nil {
		writeError(c, mapAssignmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAssignment(a))
}

func mapAssignmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAssignmentID), errors.Is(err, usecase.ErrInvalidAssignmentInput),
		errors.Is(err, usecase.ErrInvalidEventID), errors.Is(err, usecase.ErrInvalidFreelancerID),
		errors.Is(err, entities.ErrInvalidArgument):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrAssignmentAlreadyExists):
		return pkg.NewDomainErrorSimple("ASSIGNMENT_ALREADY_EXISTS", "Freelancer already assigned to this event", http.StatusConflict)
	case errors.Is(err, usecase.ErrAssignmentNotFound):
		return pkg.NewDomainErrorSimple("ASSIGNMENT_NOT_FOUND", "Assignment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEventNotFound):
		return pkg.NewDomainErrorSimple("EVENT_NOT_FOUND", "Event not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFreelancerNotFound):
		return pkg.NewDomainErrorSimple("FREELANCER_NOT_FOUND", "Freelancer not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
