package response

import (
	"time"

	"buffet_festas/internal/domain/entities"
)

type AssignmentResponse struct {
	ID             string    `json:"id"`
	EventID        string    `json:"event_id"`
	FreelancerID   string    `json:"freelancer_id"`
	FreelancerName string    `json:"freelancer_name"`
	Role           string    `json:"role"`
	Value          Money     `json:"value"`
	Bonus          Money     `json:"bonus"`
	BonusReason    string    `json:"bonus_reason,omitempty"`
	Total          Money     `json:"total"`
	HasBonus       bool      `json:"has_bonus"`
	PaymentStatus  string    `json:"payment_status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromAssignment(a entities.Assignment) AssignmentResponse {
	v := a.Valuation()
	return AssignmentResponse{
		ID:             a.ID,
		EventID:        a.EventID,
		FreelancerID:   a.FreelancerID,
		FreelancerName: a.FreelancerName,
		Role:           string(a.Role),
		Value:          NewMoney(v.Base),
		Bonus:          NewMoney(v.Bonus),
		BonusReason:    v.Reason,
		Total:          NewMoney(v.Total()),
		HasBonus:       v.HasBonus(),
		PaymentStatus:  string(a.PaymentStatus),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func FromAssignments(list []entities.Assignment) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAssignment(a))
	}
	return out
}
