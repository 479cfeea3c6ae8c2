package timex

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date form older snapshots used for createdAt.
const DateLayout = time.DateOnly

// ParseTimestamp accepts RFC 3339 (with or without fractional seconds) or a
// bare YYYY-MM-DD date, which is read as midnight UTC.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}

// FormatTimestamp renders t in UTC as RFC 3339 with millisecond precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
