// Package dateutil isolates the calendar math used by the engine so that
// window and week-grouping logic does not depend on any particular date
// library's conventions. Weeks start on Monday.
package dateutil

import "time"

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddDays returns t shifted by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysBetween returns the number of whole calendar days from a to b.
// Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(StartOfDay(b).Sub(StartOfDay(a)).Hours() / 24)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfWeek returns the Monday midnight at or before t.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return AddDays(day, -offset)
}

// WithinLastDays reports whether t falls within the n calendar days ending at
// now, inclusive of today.
func WithinLastDays(now, t time.Time, n int) bool {
	diff := DaysBetween(t, now)
	return diff >= 0 && diff < n
}

// WithinNextDays reports whether t falls strictly after now but within the
// next n calendar days.
func WithinNextDays(now, t time.Time, n int) bool {
	if !t.After(now) {
		return false
	}
	return DaysBetween(now, t) <= n
}
