package entities

import (
	"encoding/json"
	"time"
)

// ChargeStatus represents the payment processing outcome of a client charge.
type ChargeStatus string

const (
	ChargeStatusPendente ChargeStatus = "pendente"
	ChargeStatusAprovado ChargeStatus = "aprovado"
	ChargeStatusNegado   ChargeStatus = "negado"
)

// Charge is the client payment of an approved budget, processed by Mercado Pago.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (budget_id-index): budget_id
//
// MPPayloadRaw keeps the provider response body for audit; MPPayload is its
// parsed form.
type Charge struct {
	ID       string       `json:"id"`
	BudgetID string       `json:"budget_id"`
	Date     time.Time    `json:"date"`
	Status   ChargeStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
