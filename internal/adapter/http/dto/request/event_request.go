package request

import (
	"strings"

	"buffet_festas/internal/usecase"
)

// EventRequest is the payload for POST /events. Date is "AAAA-MM-DD" and
// Time, when present, "HH:MM".
type EventRequest struct {
	Title    string `json:"title" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time"`
	Location string `json:"location"`
	ClientID string `json:"client_id"`
	Notes    string `json:"notes"`
}

func (r EventRequest) ToInput() usecase.CreateEventInput {
	return usecase.CreateEventInput{
		Title:    strings.TrimSpace(r.Title),
		Date:     strings.TrimSpace(r.Date),
		Time:     strings.TrimSpace(r.Time),
		Location: strings.TrimSpace(r.Location),
		ClientID: strings.TrimSpace(r.ClientID),
		Notes:    r.Notes,
	}
}

// StatusRequest carries a new status label, for events and assignments.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r StatusRequest) ResolveStatus() string {
	return strings.ToLower(strings.TrimSpace(r.Status))
}
