// Package schedule answers "has this event already started?".
//
// HasEventStarted is the only past/future predicate in the codebase; the
// notification composer and the use cases rely on it.
package schedule

import (
	"fmt"
	"strings"
	"time"

	"buffet_festas/internal/domain/entities"
)

const (
	DateLayout = "2006-01-02"
)

var timeLayouts = []string{"15:04", "15:04:05"}

// ParseDate parses a calendar day (YYYY-MM-DD) at midnight in loc.
func ParseDate(v string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(v), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", entities.ErrInvalidArgument, v)
	}
	return t, nil
}

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour, Minute, Second int
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS". An empty value means "no
// time informed" and yields the zero TimeOfDay, false.
func ParseTimeOfDay(v string) (TimeOfDay, bool, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return TimeOfDay{}, false, nil
	}
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, v)
		if err == nil {
			return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, true, nil
		}
	}
	return TimeOfDay{}, false, fmt.Errorf("%w: invalid time of day %q", entities.ErrInvalidArgument, v)
}

// EventInstant combines the calendar day of date with the optional time of
// day as wall-clock time in date's location. Without a time, midnight is used.
func EventInstant(date time.Time, timeOfDay string) (time.Time, error) {
	tod, _, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, tod.Hour, tod.Minute, tod.Second, 0, date.Location()), nil
}

// HasEventStarted reports whether the event instant is strictly before
// clock.Now().
func HasEventStarted(clock Clock, date time.Time, timeOfDay string) (bool, error) {
	at, err := EventInstant(date, timeOfDay)
	if err != nil {
		return false, err
	}
	return at.Before(clock.Now()), nil
}

// HasStarted is HasEventStarted for an event record.
func HasStarted(clock Clock, e entities.Event) (bool, error) {
	return HasEventStarted(clock, e.Date, e.Time)
}
