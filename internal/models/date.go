package models

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used for check-in and check-out
const DateLayout = "2006-01-02"

// Counted in seconds; a time.Duration overflows past about 292 years
const secondsPerDay = 24 * 60 * 60

// ParseDate parses a YYYY-MM-DD string into a calendar date at midnight UTC
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrMalformedInput, s)
	}
	return t, nil
}

// Date truncates t to its calendar date in t's own location, expressed in UTC
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from a to b.
// The result is negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int((Date(b).Unix() - Date(a).Unix()) / secondsPerDay)
}

// FormatDate renders a date in DateLayout
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
