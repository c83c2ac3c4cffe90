package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical stored date format.
const DateLayout = "2006-01-02"

// ResolveDate turns a user-supplied date token into a calendar date.
// Resolution order: "hoy", "ayer", full ISO date, then DD-MM combined with
// the reference date's year. The short form always uses the current year, so
// an expense dated 31-12 and entered after January 1st resolves to the wrong
// year; that is accepted behavior, not something this function guards
// against.
func ResolveDate(token string, today time.Time) (time.Time, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	switch token {
	case "hoy":
		return midnight(today), nil
	case "ayer":
		return midnight(today).AddDate(0, 0, -1), nil
	}
	if t, err := time.Parse(DateLayout, token); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2-1", token); err == nil {
		return time.Date(today.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("fecha %q: %w", token, ErrInvalidDate)
}

// ParseStoredDate parses a date cell read back from the ledger. Besides the
// canonical format it accepts the legacy slash form DD/MM[/YYYY] found in
// rows written by older periods; a missing year defaults to refYear. The
// slash form is never produced on write.
func ParseStoredDate(s string, refYear int) (time.Time, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) < 2 || len(parts) > 3 {
			return time.Time{}, fmt.Errorf("fecha %q: %w", s, ErrInvalidDate)
		}
		day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return time.Time{}, fmt.Errorf("fecha %q: %w", s, ErrInvalidDate)
		}
		month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || month < 1 || month > 12 || day < 1 || day > 31 {
			return time.Time{}, fmt.Errorf("fecha %q: %w", s, ErrInvalidDate)
		}
		year := refYear
		if len(parts) == 3 {
			year, err = strconv.Atoi(strings.TrimSpace(parts[2]))
			if err != nil {
				return time.Time{}, fmt.Errorf("fecha %q: %w", s, ErrInvalidDate)
			}
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha %q: %w", s, ErrInvalidDate)
	}
	return t, nil
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
