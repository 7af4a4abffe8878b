// Package calendar buckets timestamps into local calendar days and builds the
// week and month views used to pick a day.
package calendar

import "time"

// StartOfDay returns local midnight of the calendar day t falls on in loc.
// On days where midnight does not exist (DST gap) time.Date normalizes to the
// first valid instant of that day.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// EndOfDay returns the exclusive end of t's calendar day, i.e. the start of the
// next day. It is not StartOfDay+24h: DST days are 23 or 25 hours long.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, loc)
}

// DayRange returns the half-open interval [start, end) covering t's calendar day.
func DayRange(t time.Time, loc *time.Location) (time.Time, time.Time) {
	return StartOfDay(t, loc), EndOfDay(t, loc)
}

// SameDay reports whether a and b fall on the same calendar date in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// Today returns the start of the current day.
func Today(now time.Time, loc *time.Location) time.Time {
	return StartOfDay(now, loc)
}
