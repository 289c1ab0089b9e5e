package handlers

import (
	"context"
	"errors"
	"net/http"

	request "buffet_festas/internal/adapter/http/dto/request"
	response "buffet_festas/internal/adapter/http/dto/response"
	"buffet_festas/internal/domain/entities"
	"buffet_festas/internal/usecase"
	"buffet_festas/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)
)

// BudgetHandler handles HTTP requests for event budgets (orçamentos).
type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

// CreateBudget godoc
// @Summary      Calculate the budget of an event
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Event ID"
// @Param        payload  body      request.BudgetRequest  true  "Budget lines"
// @Success      201      {object}  response.BudgetResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /events/{id}/budget [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	in, ok := bindBudget(c)
	if !ok {
		return
	}

	budget, err := h.usecase.CalculateBudget(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	writeBudget(c, http.StatusCreated, budget)
}

// UpdateItems godoc
// @Summary      Recalculate a pending budget
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Event ID"
// @Param        payload  body      request.BudgetRequest  true  "Budget lines"
// @Success      200      {object}  response.BudgetResponse
// @Failure      422      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /events/{id}/budget/items [put]
func (h *BudgetHandler) UpdateItems(c *gin.Context) {
	in, ok := bindBudget(c)
	if !ok {
		return
	}

	budget, err := h.usecase.UpdateItems(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	writeBudget(c, http.StatusOK, budget)
}

// GetBudget godoc
// @Summary      Get the budget of an event
// @Tags         budgets
// @Produce      json
// @Param        id   path      string  true  "Event ID"
// @Success      200  {object}  response.BudgetResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /events/{id}/budget [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budget, err := h.usecase.GetByEventID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	writeBudget(c, http.StatusOK, budget)
}

func (h *BudgetHandler) ApproveBudget(c *gin.Context) {
	h.patchBudgetStatus(c, h.usecase.ApproveByEventID)
}

func (h *BudgetHandler) RejectBudget(c *gin.Context) {
	h.patchBudgetStatus(c, h.usecase.RejectByEventID)
}

func (h *BudgetHandler) CancelBudget(c *gin.Context) {
	h.patchBudgetStatus(c, h.usecase.CancelByEventID)
}

func (h *BudgetHandler) patchBudgetStatus(
	c *gin.Context,
	updater func(ctx context.Context, eventID string) (entities.Budget, error),
) {
	budget, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	writeBudget(c, http.StatusOK, budget)
}

func bindBudget(c *gin.Context) (usecase.BudgetInput, bool) {
	var payload request.BudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidBudgetPayload)
		return usecase.BudgetInput{}, false
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, errInvalidBudgetPayload)
		return usecase.BudgetInput{}, false
	}
	return in, true
}

func writeBudget(c *gin.Context, status int, b entities.Budget) {
	res, err := response.FromBudget(b)
	if err != nil {
		writeError(c, internalError(err))
		return
	}
	c.JSON(status, res)
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetInput), errors.Is(err, entities.ErrInvalidArgument):
		return errInvalidBudgetPayload
	case errors.Is(err, usecase.ErrInvalidEventID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrBudgetAlreadyExists):
		return pkg.NewDomainErrorSimple("BUDGET_ALREADY_EXISTS", "Budget already exists for this event", http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetNotEditable):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_EDITABLE", "Only pending budgets can be recalculated", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEventNotFound):
		return pkg.NewDomainErrorSimple("EVENT_NOT_FOUND", "Event not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
