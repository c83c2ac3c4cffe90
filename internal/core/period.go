package core

import (
	"strconv"
	"time"
)

// PreviousPeriod returns the month immediately before the one containing t,
// rolling the year back across January.
func PreviousPeriod(t time.Time) (year int, month time.Month) {
	if t.Month() == time.January {
		return t.Year() - 1, time.December
	}
	return t.Year(), t.Month() - 1
}

// IsReminderDay reports whether the previous-month summary should go out.
// The check runs once a day; on the 1st it always fires, so repeated runs on
// the same day produce the same message again rather than being suppressed.
func IsReminderDay(t time.Time) bool {
	return t.Day() == 1
}

// PeriodLabel renders the archive title for the period containing t, e.g.
// "December 2025".
func PeriodLabel(t time.Time) string {
	return t.Month().String() + " " + strconv.Itoa(t.Year())
}
