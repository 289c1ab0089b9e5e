package response

import (
	"buffet_festas/internal/domain/report"
	"buffet_festas/internal/usecase"
)

type FinancialSummaryResponse struct {
	Year         int   `json:"year,omitempty"`
	Month        int   `json:"month,omitempty"`
	Total        Money `json:"total"`
	Paid         Money `json:"paid"`
	Partial      Money `json:"partial"`
	Pending      Money `json:"pending"`
	Count        int   `json:"count"`
	PaidCount    int   `json:"paid_count"`
	PartialCount int   `json:"partial_count"`
	PendingCount int   `json:"pending_count"`
}

func FromFinancialSummary(p usecase.ReportPeriod, s report.FinancialSummary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		Year:         p.Year,
		Month:        p.Month,
		Total:        NewMoney(s.Total),
		Paid:         NewMoney(s.Paid),
		Partial:      NewMoney(s.Partial),
		Pending:      NewMoney(s.Pending),
		Count:        s.Count,
		PaidCount:    s.PaidCount,
		PartialCount: s.PartialCount,
		PendingCount: s.PendingCount,
	}
}

type RankEntryResponse struct {
	Position int    `json:"position"`
	ID       string `json:"id"`
	Name     string `json:"name"`
	Events   int    `json:"events"`
	Subtitle string `json:"subtitle,omitempty"`
}

func FromRanking(entries []report.RankEntry) []RankEntryResponse {
	out := make([]RankEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, RankEntryResponse{
			Position: e.Position,
			ID:       e.Key,
			Name:     e.Name,
			Events:   e.Events,
			Subtitle: e.Subtitle,
		})
	}
	return out
}

type PeakMonthResponse struct {
	Year                int     `json:"year"`
	Month               int     `json:"month"`
	Name                string  `json:"name"`
	Events              int     `json:"events"`
	Average             float64 `json:"average"`
	PercentAboveAverage int     `json:"percent_above_average"`
	AboveAverage        bool    `json:"above_average"`
}

func FromPeakMonth(year int, p report.PeakMonth) PeakMonthResponse {
	return PeakMonthResponse{
		Year:                year,
		Month:               int(p.Month),
		Name:                p.Name,
		Events:              p.Events,
		Average:             p.Average,
		PercentAboveAverage: p.PercentAboveAverage,
		AboveAverage:        p.AboveAverage,
	}
}

type NotificationResponse struct {
	FreelancerID string `json:"freelancer_id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Message      string `json:"message"`
	WhatsAppLink string `json:"whatsapp_link,omitempty"`
	Upcoming     int    `json:"upcoming"`
	Sent         bool   `json:"sent"`
}

func FromNotification(p usecase.NotificationPreview, sent bool) NotificationResponse {
	return NotificationResponse{
		FreelancerID: p.FreelancerID,
		Name:         p.Name,
		Phone:        p.Phone,
		Message:      p.Message,
		WhatsAppLink: p.WhatsAppLink,
		Upcoming:     p.Upcoming,
		Sent:         sent,
	}
}
