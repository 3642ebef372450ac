package domain

import "time"

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Valid reports whether End is strictly after Start.
func (i Interval) Valid() bool {
	return i.End.After(i.Start)
}

// Overlaps reports whether i and o share at least one instant.
// Intervals that only touch (one ends exactly when the other starts) do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

// CanBook reports whether candidate is clear of every interval in existing.
// An artist with no bookings can always be booked.
func CanBook(existing []Interval, candidate Interval) bool {
	for _, e := range existing {
		if e.Overlaps(candidate) {
			return false
		}
	}
	return true
}
