package models

import (
	"time"
)

// Clock returns the current time. Components take one so tests can pin time.
type Clock func() time.Time

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// DayBounds returns the start of t's calendar day and the start of the next one, in t's location
func DayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
