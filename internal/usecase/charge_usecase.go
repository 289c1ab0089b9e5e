package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"buffet_festas/internal/domain/entities"
	"buffet_festas/internal/logger"
	"buffet_festas/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrChargeNotFound                 = errors.New("charge not found")
	ErrInvalidChargeID                = errors.New("invalid charge id")
	ErrInvalidChargeBudgetID          = errors.New("invalid budget_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrBudgetNotApproved              = errors.New("budget not approved")
	ErrInvalidChargeAmount            = errors.New("budget total must be positive")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// sandboxFallbackPayerEmail is the test buyer used by Mercado Pago examples.
const sandboxFallbackPayerEmail = "test_user_br@testuser.com"

// ChargeOptions tunes how payloads are sent to Mercado Pago.
type ChargeOptions struct {
	// MockMode relaxes payload and approval checks; the gateway is expected
	// to be in mock mode as well.
	MockMode bool
	// Sandbox is true when the access token is a TEST- credential.
	Sandbox         bool
	TestPayerEmail  string
	TestPayerUserID string
}

// IChargeUseCase charges the client for an approved budget.
type IChargeUseCase interface {
	CreateAndApprove(ctx context.Context, budgetID string, mpPayload json.RawMessage) (entities.Charge, error)
	GetByID(ctx context.Context, id string) (entities.Charge, error)
	ListByBudgetID(ctx context.Context, budgetID string) ([]entities.Charge, error)
}

type ChargeUseCase struct {
	repo       interfaces.IChargeRepository
	budgetRepo interfaces.IBudgetRepository
	gateway    interfaces.IPaymentGateway
	opts       ChargeOptions
	log        *zap.Logger
}

var _ IChargeUseCase = (*ChargeUseCase)(nil)

func NewChargeUseCase(repo interfaces.IChargeRepository, budgetRepo interfaces.IBudgetRepository, gateway interfaces.IPaymentGateway, opts ChargeOptions) *ChargeUseCase {
	return &ChargeUseCase{
		repo:       repo,
		budgetRepo: budgetRepo,
		gateway:    gateway,
		opts:       opts,
		log:        logger.Component("charge.usecase"),
	}
}

func (u *ChargeUseCase) CreateAndApprove(ctx context.Context, budgetID string, mpPayload json.RawMessage) (entities.Charge, error) {
	log := u.log.With(zap.String("budget_id", strings.TrimSpace(budgetID)))
	log.Debug("create-and-approve start", zap.Int("payload_len", len(mpPayload)))

	mockMode := u.opts.MockMode
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return entities.Charge{}, ErrInvalidChargeBudgetID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Warn("invalid payload")
			return entities.Charge{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.Charge{}, ErrPaymentGatewayNotConfigured
	}

	budget, err := u.budgetRepo.GetByEventID(ctx, budgetID)
	if err != nil {
		log.Error("failed loading budget", zap.Error(err))
		return entities.Charge{}, err
	}
	if budget.ID == "" {
		return entities.Charge{}, ErrBudgetNotFound
	}
	if !mockMode && budget.Status != entities.BudgetStatusAprovado {
		log.Warn("budget not approved", zap.String("status", string(budget.Status)))
		return entities.Charge{}, ErrBudgetNotApproved
	}
	total, err := budget.Total()
	if err != nil {
		return entities.Charge{}, err
	}
	if !total.IsPositive() {
		return entities.Charge{}, ErrInvalidChargeAmount
	}
	amount := total.Round(2).InexactFloat64()

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil {
		log.Warn("payload is not an object", zap.Error(err))
		return entities.Charge{}, ErrInvalidMPPayload
	}
	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Warn("missing payment_method_id")
			return entities.Charge{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayerFromUserID(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Warn("missing or invalid payer")
			return entities.Charge{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = budgetID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Orçamento da festa %s", budgetID)
	}
	// The budget in DB is the source of truth for the amount.
	reqMap["transaction_amount"] = amount
	if mpPayload, err = json.Marshal(reqMap); err != nil {
		return entities.Charge{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, mpPayload)
	if err != nil {
		log.Error("payment gateway failed", zap.Error(err))
		return entities.Charge{}, mapGatewayError(err)
	}
	log.Info("payment gateway success",
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("provider_status", providerStatus),
	)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn("provider response unmarshal failed", zap.Error(err))
	}

	c := entities.Charge{
		ID:           providerPaymentID,
		BudgetID:     budgetID,
		Date:         time.Now().UTC(),
		Status:       chargeStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		log.Error("charge repository create failed", zap.String("charge_id", c.ID), zap.Error(err))
		return entities.Charge{}, err
	}
	log.Info("create-and-approve success", zap.String("charge_id", created.ID), zap.String("status", string(created.Status)))
	return created, nil
}

func (u *ChargeUseCase) GetByID(ctx context.Context, id string) (entities.Charge, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Charge{}, ErrInvalidChargeID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Charge{}, err
	}
	if c.ID == "" {
		return entities.Charge{}, ErrChargeNotFound
	}
	return c, nil
}

func (u *ChargeUseCase) ListByBudgetID(ctx context.Context, budgetID string) ([]entities.Charge, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return nil, ErrInvalidChargeBudgetID
	}
	return u.repo.ListByBudgetID(ctx, budgetID)
}

// chargeStatusFromProvider maps Mercado Pago payment statuses.
func chargeStatusFromProvider(status string) entities.ChargeStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.ChargeStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.ChargeStatusNegado
	default:
		return entities.ChargeStatusPendente
	}
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *ChargeUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
		payer["email"] = email
	} else if u.opts.Sandbox {
		payer["email"] = sandboxFallbackPayerEmail
	}
}

// normalizeSandboxPayerFromUserID swaps the configured sandbox test user id
// for its e-mail, which the payments API accepts for test buyers.
func (u *ChargeUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	if !u.opts.Sandbox {
		return
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}

	userID := strings.TrimSpace(u.opts.TestPayerUserID)
	email := strings.TrimSpace(u.opts.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}

	payer["email"] = email
	delete(payer, "id")
	u.log.Debug("mapped sandbox payer user_id to payer.email")
}
