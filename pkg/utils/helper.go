package utils

import (
	"time"
)

// ParseDate parses an ISO calendar date (2006-01-02).
func ParseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

// NightsBetween returns whole nights between two calendar dates.
func NightsBetween(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}
