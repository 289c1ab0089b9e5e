package response

import (
	"time"

	"buffet_festas/internal/domain/entities"
)

type ChargeResponse struct {
	ChargeID string    `json:"charge_id"`
	ID       string    `json:"id"`
	BudgetID string    `json:"budget_id"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromCharge(c entities.Charge) ChargeResponse {
	return ChargeResponse{
		ChargeID:     c.ID,
		ID:           c.ID,
		BudgetID:     c.BudgetID,
		Date:         c.Date,
		Status:       string(c.Status),
		MPPayloadRaw: string(c.MPPayloadRaw),
		MPPayload:    c.MPPayload,
	}
}
