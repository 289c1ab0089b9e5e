package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	request "buffet_festas/internal/adapter/http/dto/request"
	response "buffet_festas/internal/adapter/http/dto/response"
	"buffet_festas/internal/logger"
	"buffet_festas/internal/usecase"
	"buffet_festas/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChargeHandler handles client charges (Mercado Pago payments) of budgets.
type ChargeHandler struct {
	usecase  usecase.IChargeUseCase
	mockMode bool
	log      *zap.Logger
}

func NewChargeHandler(uc usecase.IChargeUseCase, mockMode bool) *ChargeHandler {
	return &ChargeHandler{usecase: uc, mockMode: mockMode, log: logger.Component("charge.handler")}
}

// CreateCharge godoc
// @Summary      Create and process a charge for an approved budget
// @Tags         charges
// @Accept       json
// @Produce      json
// @Param        budget_id  path      string                       true  "Budget ID (event ID)"
// @Param        payload    body      request.ChargeCreateRequest  false  "Mercado Pago payload"
// @Success      200        {object}  response.ChargeResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      409        {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /charges/{budget_id} [post]
func (h *ChargeHandler) CreateCharge(c *gin.Context) {
	budgetID := c.Param("budget_id")
	h.log.Debug("create start", zap.String("budget_id", budgetID))

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			h.log.Warn("invalid payload", zap.String("budget_id", budgetID), zap.Error(err))
			writeError(c, errInvalidRequest)
			return
		}
		h.log.Info("payload invalid in mock mode; using empty payload", zap.String("budget_id", budgetID), zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), budgetID, mpPayload)
	if err != nil {
		h.log.Warn("create failed", zap.String("budget_id", budgetID), zap.Error(err))
		writeError(c, mapChargeError(err))
		return
	}
	h.log.Info("create success",
		zap.String("budget_id", budgetID),
		zap.String("charge_id", created.ID),
		zap.String("status", string(created.Status)),
	)

	c.JSON(http.StatusOK, response.FromCharge(created))
}

// GetCharge godoc
// @Summary      Latest charge of a budget
// @Tags         charges
// @Produce      json
// @Param        budget_id  path      string  true  "Budget ID (event ID)"
// @Success      200        {object}  response.ChargeResponse
// @Failure      404        {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /charges/{budget_id} [get]
func (h *ChargeHandler) GetCharge(c *gin.Context) {
	budgetID := c.Param("budget_id")

	charges, err := h.usecase.ListByBudgetID(c.Request.Context(), budgetID)
	if err != nil {
		writeError(c, mapChargeError(err))
		return
	}
	if len(charges) == 0 {
		writeError(c, pkg.NewDomainErrorSimple("CHARGE_NOT_FOUND", "Charge not found", http.StatusNotFound))
		return
	}

	latest := charges[0]
	for _, ch := range charges[1:] {
		if ch.Date.After(latest.Date) {
			latest = ch
		}
	}
	c.JSON(http.StatusOK, response.FromCharge(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	return request.ParseChargeBody(raw)
}

func mapChargeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidChargeBudgetID), errors.Is(err, usecase.ErrInvalidChargeID),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotApproved):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_APPROVED", "Budget not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidChargeAmount):
		return pkg.NewDomainErrorSimple("INVALID_CHARGE_AMOUNT", "Budget total must be positive", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrChargeNotFound):
		return pkg.NewDomainErrorSimple("CHARGE_NOT_FOUND", "Charge not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
