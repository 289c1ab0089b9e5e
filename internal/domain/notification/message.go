// Package notification composes the reminder sent to a freelancer with the
// events they are scheduled for.
package notification

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"buffet_festas/internal/domain/format"
	"buffet_festas/internal/domain/schedule"
)

const (
	greetingTemplate   = "Olá, %s! Estas são as suas próximas festas:"
	noEventsTemplate   = "Olá, %s! Você não tem festas agendadas no momento."
	closingLine        = "Qualquer dúvida, estamos à disposição!"
	whatsAppBaseURL    = "https://wa.me/"
	brazilCountryCode  = "55"
	localNumberDigits  = 11
	localLandlineDigit = 10
)

// ScheduledEvent is an event a freelancer is assigned to.
type ScheduledEvent struct {
	Title    string
	Date     time.Time
	Time     string
	Location string
}

// UpcomingEvents keeps the events that have not started yet, in input order.
func UpcomingEvents(clock schedule.Clock, events []ScheduledEvent) ([]ScheduledEvent, error) {
	out := make([]ScheduledEvent, 0, len(events))
	for _, e := range events {
		started, err := schedule.HasEventStarted(clock, e.Date, e.Time)
		if err != nil {
			return nil, err
		}
		if !started {
			out = append(out, e)
		}
	}
	return out, nil
}

// Compose renders the message for name with the upcoming events among events.
//
// Layout: greeting line, one block per event separated by a single blank line,
// a blank line and the closing line. Without upcoming events only the fixed
// "no events" line is returned.
func Compose(clock schedule.Clock, name string, events []ScheduledEvent) (string, error) {
	upcoming, err := UpcomingEvents(clock, events)
	if err != nil {
		return "", err
	}
	if len(upcoming) == 0 {
		return NoEventsMessage(name), nil
	}

	blocks := make([]string, 0, len(upcoming))
	for _, e := range upcoming {
		blocks = append(blocks, eventBlock(e))
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf(greetingTemplate, name))
	b.WriteString("\n")
	b.WriteString(strings.Join(blocks, "\n\n"))
	b.WriteString("\n\n")
	b.WriteString(closingLine)
	return b.String(), nil
}

// NoEventsMessage is the fixed message sent when nothing is scheduled.
func NoEventsMessage(name string) string {
	return fmt.Sprintf(noEventsTemplate, name)
}

func eventBlock(e ScheduledEvent) string {
	lines := []string{
		"🎉 " + e.Title,
		"📅 Data: " + format.Date(e.Date),
	}
	if t := strings.TrimSpace(e.Time); t != "" {
		lines = append(lines, "⏰ Horário: "+shortTime(t))
	}
	lines = append(lines, "📍 Local: "+e.Location)
	return strings.Join(lines, "\n")
}

// shortTime drops the seconds of "HH:MM:SS".
func shortTime(t string) string {
	if len(t) == len("15:04:05") && t[5] == ':' {
		return t[:5]
	}
	return t
}

// WhatsAppLink builds a click-to-chat link carrying the message. Local numbers
// (10 or 11 digits) get the Brazilian country code. It returns "" when the
// phone has no digits.
func WhatsAppLink(phone, message string) string {
	digits := format.Digits(phone)
	if digits == "" {
		return ""
	}
	if len(digits) == localNumberDigits || len(digits) == localLandlineDigit {
		digits = brazilCountryCode + digits
	}
	return whatsAppBaseURL + digits + "?text=" + strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}
