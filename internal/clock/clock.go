// Package clock provides a time source with calendar-day arithmetic.
package clock

import "time"

// Clock is a source of the current time, injectable for testing.
type Clock interface {
	Now() time.Time
}

// SystemClock returns the wall-clock time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// StartOfDay returns midnight of the day containing t, in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayDifference returns the number of calendar days from one date to another.
// Day boundaries are calendar boundaries, not 24-hour elapsed periods, so
// 23:59 and 00:01 of the following day are one day apart.
// The result is negative when to is before from.
func DayDifference(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
