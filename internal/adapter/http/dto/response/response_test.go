package response

import (
	"encoding/json"
	"testing"
	"time"

	"buffet_festas/internal/domain/entities"
	"buffet_festas/internal/domain/report"
	"buffet_festas/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestNewMoney(t *testing.T) {
	m := NewMoney(decimal.RequireFromString("1234.565"))
	if m.Amount != "1234.57" || m.Formatted != "R$ 1.234,57" {
		t.Fatalf("unexpected money: %+v", m)
	}
}

func TestFromEvent(t *testing.T) {
	now := time.Now().UTC()
	e := entities.Event{
		ID:        "ev-1",
		Title:     "Aniversário Ana",
		Date:      time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		Time:      "14:00",
		Status:    entities.EventStatusConfirmada,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromEvent(e, true)
	if res.Date != "2026-03-12" || res.DateFormatted != "12/03/2026" {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.Status != "confirmada" || !res.Started || res.Time != "14:00" {
		t.Fatalf("unexpected fields: %+v", res)
	}
}

func TestFromAssignment(t *testing.T) {
	a := entities.Assignment{
		ID:            "as-1",
		EventID:       "ev-1",
		FreelancerID:  "f-1",
		Role:          entities.RoleGarcom,
		Value:         decimal.NewFromInt(110),
		Bonus:         decimal.NewFromInt(20),
		BonusReason:   "hora extra",
		PaymentStatus: entities.PaymentStatusPendente,
	}

	res := FromAssignment(a)
	if res.Total.Amount != "130.00" || res.Total.Formatted != "R$ 130,00" {
		t.Fatalf("unexpected total: %+v", res.Total)
	}
	if !res.HasBonus || res.BonusReason != "hora extra" || res.Role != "garcom" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if got := FromAssignments([]entities.Assignment{a, a}); len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
}

func TestFromBudget(t *testing.T) {
	b := entities.Budget{
		ID:      "ev-1",
		EventID: "ev-1",
		Items: []entities.BudgetItem{
			{Description: "Buffet", Quantity: 30, UnitPrice: decimal.RequireFromString("45.90")},
		},
		Discount:  decimal.NewFromInt(77),
		Surcharge: decimal.Zero,
		Status:    entities.BudgetStatusPendente,
	}

	res, err := FromBudget(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Items[0].Subtotal.Amount != "1377.00" || res.Total.Amount != "1300.00" {
		t.Fatalf("unexpected amounts: %+v", res)
	}

	b.Items[0].Quantity = 0
	if _, err := FromBudget(b); err == nil {
		t.Fatalf("expected error for corrupt budget")
	}
}

func TestFromCharge(t *testing.T) {
	now := time.Now().UTC()
	raw := json.RawMessage(`{"id":123}`)

	res := FromCharge(entities.Charge{
		ID:           "ch-1",
		BudgetID:     "ev-1",
		Date:         now,
		Status:       entities.ChargeStatusAprovado,
		MPPayloadRaw: raw,
		MPPayload:    map[string]interface{}{"a": "b"},
	})
	if res.ID != "ch-1" || res.ChargeID != "ch-1" || res.BudgetID != "ev-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "aprovado" || res.MPPayloadRaw != string(raw) || res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected fields: %+v", res)
	}
}

func TestReportResponses(t *testing.T) {
	s := FromFinancialSummary(usecase.ReportPeriod{Year: 2026, Month: 3}, report.FinancialSummary{
		Total:     decimal.NewFromInt(300),
		Paid:      decimal.NewFromInt(100),
		Partial:   decimal.Zero,
		Pending:   decimal.NewFromInt(200),
		Count:     3,
		PaidCount: 1,
	})
	if s.Total.Formatted != "R$ 300,00" || s.Year != 2026 || s.Month != 3 || s.Count != 3 {
		t.Fatalf("unexpected summary: %+v", s)
	}

	rank := FromRanking([]report.RankEntry{{Position: 1, Key: "c-1", Name: "Ana", Events: 4}})
	if len(rank) != 1 || rank[0].ID != "c-1" || rank[0].Position != 1 {
		t.Fatalf("unexpected ranking: %+v", rank)
	}

	peak := FromPeakMonth(2026, report.PeakMonth{Month: time.March, Name: "Março", Events: 5})
	if peak.Month != 3 || peak.Year != 2026 || peak.Name != "Março" {
		t.Fatalf("unexpected peak: %+v", peak)
	}
}
