// Package report derives dashboard figures from plain records: payment
// totals by state, rankings and the month of peak demand.
package report

import (
	"fmt"

	"buffet_festas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PaymentRecord is a valuation already tagged with a payment state by the
// caller's ledger.
type PaymentRecord struct {
	Status    entities.PaymentStatus
	Valuation entities.Valuation
}

// FinancialSummary rolls up payment records.
//
// Total always equals Paid + Partial + Pending.
type FinancialSummary struct {
	Total   decimal.Decimal
	Paid    decimal.Decimal
	Partial decimal.Decimal
	Pending decimal.Decimal

	Count        int
	PaidCount    int
	PartialCount int
	PendingCount int
}

// Summarize sums the derived totals of every record by payment state. An empty
// input gives an all-zero summary.
func Summarize(records []PaymentRecord) (FinancialSummary, error) {
	s := FinancialSummary{
		Total:   decimal.Zero,
		Paid:    decimal.Zero,
		Partial: decimal.Zero,
		Pending: decimal.Zero,
	}
	for i, r := range records {
		amount := r.Valuation.Total()
		switch r.Status {
		case entities.PaymentStatusPago:
			s.Paid = s.Paid.Add(amount)
			s.PaidCount++
		case entities.PaymentStatusParcial:
			s.Partial = s.Partial.Add(amount)
			s.PartialCount++
		case entities.PaymentStatusPendente:
			s.Pending = s.Pending.Add(amount)
			s.PendingCount++
		default:
			return FinancialSummary{}, fmt.Errorf("%w: record %d has unknown payment status %q", entities.ErrInvalidArgument, i, r.Status)
		}
		s.Total = s.Total.Add(amount)
		s.Count++
	}
	return s, nil
}

// RecordsFromAssignments tags each assignment valuation with its payment status.
func RecordsFromAssignments(assignments []entities.Assignment) []PaymentRecord {
	out := make([]PaymentRecord, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, PaymentRecord{Status: a.PaymentStatus, Valuation: a.Valuation()})
	}
	return out
}
