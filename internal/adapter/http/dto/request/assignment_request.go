package request

import (
	"strings"

	"buffet_festas/internal/domain/entities"
	"buffet_festas/internal/usecase"

	"github.com/shopspring/decimal"
)

// AssignmentRequest assigns a freelancer to the event in the path. Role and
// Value fall back to the freelancer's default role and its rate.
type AssignmentRequest struct {
	FreelancerID string   `json:"freelancer_id" binding:"required"`
	Role         string   `json:"role"`
	Value        *float64 `json:"value"`
}

func (r AssignmentRequest) ToInput(eventID string) (usecase.AssignInput, error) {
	in := usecase.AssignInput{
		EventID:      strings.TrimSpace(eventID),
		FreelancerID: strings.TrimSpace(r.FreelancerID),
		Role:         strings.ToLower(strings.TrimSpace(r.Role)),
	}
	if r.Value != nil {
		v, err := entities.NonNegativeMoneyFromFloat("value", *r.Value)
		if err != nil {
			return usecase.AssignInput{}, err
		}
		in.Value = &v
	}
	return in, nil
}

// BonusRequest sets the bonus of an assignment. A zero bonus clears it.
type BonusRequest struct {
	Bonus  *float64 `json:"bonus" binding:"required"`
	Reason string   `json:"reason"`
}

func (r BonusRequest) ResolveBonus() (decimal.Decimal, error) {
	return entities.NonNegativeMoneyFromFloat("bonus", *r.Bonus)
}
