package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the caller-assigned payment state of an assignment.
type PaymentStatus string

const (
	PaymentStatusPago     PaymentStatus = "pago"
	PaymentStatusParcial  PaymentStatus = "parcial"
	PaymentStatusPendente PaymentStatus = "pendente"
)

func ParsePaymentStatus(v string) (PaymentStatus, error) {
	switch s := PaymentStatus(v); s {
	case PaymentStatusPago, PaymentStatusParcial, PaymentStatusPendente:
		return s, nil
	}
	return "", fmt.Errorf("%w: unknown payment status %q", ErrInvalidArgument, v)
}

// Assignment links a freelancer to an event with a role and a payment.
//
// FreelancerName is denormalised so listings and reports do not need a lookup.
type Assignment struct {
	ID             string          `json:"id"`
	EventID        string          `json:"event_id"`
	FreelancerID   string          `json:"freelancer_id"`
	FreelancerName string          `json:"freelancer_name"`
	Role           Role            `json:"role"`
	Value          decimal.Decimal `json:"value"`
	Bonus          decimal.Decimal `json:"bonus"`
	BonusReason    string          `json:"bonus_reason,omitempty"`
	PaymentStatus  PaymentStatus   `json:"payment_status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Valuation derives the bonus-aware value of the assignment.
func (a Assignment) Valuation() Valuation {
	return Valuation{Base: a.Value, Bonus: a.Bonus, Reason: a.BonusReason}
}
