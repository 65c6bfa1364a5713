package utils

import (
	"fmt"
	"time"
)

// ParseDate parses a yyyy-mm-dd string. An empty string yields nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.ParseInLocation(time.DateOnly, dateStr, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected yyyy-mm-dd: %w", dateStr, err)
	}

	return &date, nil
}

// EndOfDay returns the last instant of t's day
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
