package eligibility

import (
	"fmt"
	"time"
)

// All calendar computations use the location of the time passed in,
// so callers control the "device" calendar by choosing the location of now.

// StartOfDay returns local midnight of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns Sunday 00:00 of the calendar week containing t.
func StartOfWeek(t time.Time) time.Time {
	return StartOfWeekOn(t, time.Sunday)
}

// StartOfWeekOn returns 00:00 of the most recent firstDay on or before t.
func StartOfWeekOn(t time.Time, firstDay time.Weekday) time.Time {
	if firstDay < time.Sunday || firstDay > time.Saturday {
		panic(fmt.Sprintf("invalid first day of week: %d", firstDay))
	}
	back := (int(t.Weekday()) - int(firstDay) + 7) % 7
	return StartOfDay(t).AddDate(0, 0, -back)
}

// EndOfWeek returns the last instant (Saturday 23:59:59.999999999) of t's calendar week.
func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 7).Add(-time.Nanosecond)
}

// Weekday1 numbers days 1=Sunday .. 7=Saturday.
func Weekday1(t time.Time) int {
	return int(t.Weekday()) + 1
}

// InDay reports whether d falls in [StartOfDay(ref), StartOfDay(ref)+1 day), in ref's location.
// Zero times never fall in any day.
func InDay(ref, d time.Time) bool {
	if d.IsZero() {
		return false
	}
	start := StartOfDay(ref)
	end := start.AddDate(0, 0, 1)
	d = d.In(ref.Location())
	return !d.Before(start) && d.Before(end)
}

// SameWeek reports whether d falls in the calendar week containing ref, in ref's location.
// Zero times never fall in any week.
func SameWeek(ref, d time.Time) bool {
	if d.IsZero() {
		return false
	}
	start := StartOfWeek(ref)
	end := start.AddDate(0, 0, 7)
	d = d.In(ref.Location())
	return !d.Before(start) && d.Before(end)
}
