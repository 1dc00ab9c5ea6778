// Package biztime centralizes time handling. All storage and transport
// use UTC; implicit Local timezone is prohibited.
package biztime

import (
	"fmt"
	"time"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDateUTC parses a date string (YYYY-MM-DD) as UTC midnight.
func ParseDateUTC(dateStr string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", dateStr, err)
	}
	return t, nil
}
