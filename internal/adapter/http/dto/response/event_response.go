package response

import (
	"time"

	"buffet_festas/internal/domain/entities"
	"buffet_festas/internal/domain/format"
)

type EventResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Date          string    `json:"date"`
	DateFormatted string    `json:"date_formatted"`
	Time          string    `json:"time,omitempty"`
	Location      string    `json:"location"`
	ClientID      string    `json:"client_id,omitempty"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	Started       bool      `json:"started"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FromEvent maps an event. started is computed by the caller against its
// clock.
func FromEvent(e entities.Event, started bool) EventResponse {
	return EventResponse{
		ID:            e.ID,
		Title:         e.Title,
		Date:          e.Date.Format("2006-01-02"),
		DateFormatted: format.Date(e.Date),
		Time:          e.Time,
		Location:      e.Location,
		ClientID:      e.ClientID,
		Status:        string(e.Status),
		Notes:         e.Notes,
		Started:       started,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{ID: c.ID, Name: c.Name, Phone: c.Phone, Notes: c.Notes, CreatedAt: c.CreatedAt}
}

type FreelancerResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	DefaultRole    string    `json:"default_role"`
	TelegramChatID string    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromFreelancer(f entities.Freelancer) FreelancerResponse {
	return FreelancerResponse{
		ID:             f.ID,
		Name:           f.Name,
		Phone:          f.Phone,
		DefaultRole:    string(f.DefaultRole),
		TelegramChatID: f.TelegramChatID,
		CreatedAt:      f.CreatedAt,
	}
}
