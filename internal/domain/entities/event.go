package entities

import (
	"fmt"
	"strings"
	"time"
)

// EventStatus represents the lifecycle of an event (festa).
//
// Order of the happy path:
//
//	planejamento -> confirmada -> encerrada_pendente -> encerrada
//
// The machine is deliberately permissive: any known status may be requested
// from any other one (administrative correction path). Only the label is
// validated.
type EventStatus string

const (
	EventStatusPlanejamento      EventStatus = "planejamento"
	EventStatusConfirmada        EventStatus = "confirmada"
	EventStatusEncerradaPendente EventStatus = "encerrada_pendente"
	EventStatusEncerrada         EventStatus = "encerrada"
)

// EventStatuses lists every known status in lifecycle order.
var EventStatuses = []EventStatus{
	EventStatusPlanejamento,
	EventStatusConfirmada,
	EventStatusEncerradaPendente,
	EventStatusEncerrada,
}

// InitialEventStatus is the status every new event starts in.
const InitialEventStatus = EventStatusPlanejamento

// ParseEventStatus validates a requested label. Labels are matched exactly.
func ParseEventStatus(label string) (EventStatus, error) {
	for _, s := range EventStatuses {
		if string(s) == label {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: unknown event status %q", ErrInvalidState, label)
}

// TransitionTo returns the accepted target status. The current status does not
// restrict the target; requesting the same label twice yields the same result.
func (s EventStatus) TransitionTo(label string) (EventStatus, error) {
	return ParseEventStatus(label)
}

func (s EventStatus) IsTerminal() bool {
	return s == EventStatusEncerrada
}

func (s EventStatus) IsValid() bool {
	_, err := ParseEventStatus(string(s))
	return err == nil
}

// Event is a party booking (festa).
//
// Date holds the calendar day (midnight in the business timezone) and Time the
// optional time of day as "HH:MM". Both are fixed at creation.
type Event struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Date      time.Time   `json:"date"`
	Time      string      `json:"time,omitempty"`
	Location  string      `json:"location"`
	ClientID  string      `json:"client_id"`
	Status    EventStatus `json:"status"`
	Notes     string      `json:"notes,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// HasTime reports whether a time of day was informed.
func (e Event) HasTime() bool {
	return strings.TrimSpace(e.Time) != ""
}
