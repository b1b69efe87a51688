package botconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/senseyeio/duration"
)

// Window is a daily time window during which the bot is allowed to act. A
// schedule entry is an ISO-8601 duration pair "offset/length" counted from
// midnight (e.g. "PT22H/PT6H" covers 22:00 to 04:00), or a bare length that
// starts at midnight (e.g. "PT2H"). "P1D" covers the whole day.
type Window struct {
	Offset duration.Duration
	Length duration.Duration
}

// ParseWindow parses a schedule entry.
func ParseWindow(s string) (Window, error) {
	var w Window
	offset := ""
	length := s
	if idx := strings.Index(s, "/"); idx >= 0 {
		offset = s[:idx]
		length = s[idx+1:]
	}
	if offset != "" {
		d, err := duration.ParseISO8601(offset)
		if err != nil {
			return w, fmt.Errorf("%q is not an ISO-8601 duration window", s)
		}
		w.Offset = d
	}
	d, err := duration.ParseISO8601(length)
	if err != nil {
		return w, fmt.Errorf("%q is not an ISO-8601 duration window", s)
	}
	w.Length = d
	return w, nil
}

// Contains reports whether t falls inside the window. A window that crosses
// midnight also covers the early hours of the following day, so the window
// anchored at the previous day's midnight is checked as well.
func (w Window) Contains(t time.Time) bool {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	for _, anchor := range []time.Time{midnight, midnight.AddDate(0, 0, -1)} {
		start := w.Offset.Shift(anchor)
		end := w.Length.Shift(start)
		if !t.Before(start) && t.Before(end) {
			return true
		}
	}
	return false
}

// InWindow reports whether now falls inside any of the schedule's windows. An
// empty schedule means the bot may act at any time.
func InWindow(schedule []string, now time.Time) bool {
	if len(schedule) == 0 {
		return true
	}
	for _, s := range schedule {
		w, err := ParseWindow(s)
		if err != nil {
			// entries are validated before they are stored
			continue
		}
		if w.Contains(now) {
			return true
		}
	}
	return false
}
