// Package rules implements the policy rule engine: pure validation and
// refund arithmetic over a policy aggregate. Nothing in this package performs
// I/O; reference instants are passed in and compared as UTC calendar dates.
package rules

import "time"

// DateOnly truncates t to its UTC calendar date. All rule checks discard the
// time of day.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole calendar days from one date to the other.
// Safe in UTC, where every day is exactly 24 hours.
func daysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}
