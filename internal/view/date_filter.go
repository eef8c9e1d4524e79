package view

import "time"

// DateFilter restricts the list to notes created on one calendar day. The
// zero value is AnyDate.
type DateFilter struct {
	set   bool
	year  int
	month time.Month
	day   int
}

// AnyDate matches every note.
var AnyDate = DateFilter{}

// OnDay matches notes created on the calendar day t falls on in t's own
// location.
func OnDay(t time.Time) DateFilter {
	y, m, d := t.Date()
	return DateFilter{set: true, year: y, month: m, day: d}
}

func (f DateFilter) IsAny() bool { return !f.set }

// Day returns the selected calendar day at midnight in loc.
func (f DateFilter) Day(loc *time.Location) (time.Time, bool) {
	if !f.set {
		return time.Time{}, false
	}
	return time.Date(f.year, f.month, f.day, 0, 0, 0, 0, loc), true
}

// matches reports whether t, read in loc, falls on the selected day.
func (f DateFilter) matches(t time.Time, loc *time.Location) bool {
	if !f.set {
		return true
	}
	y, m, d := t.In(loc).Date()
	return y == f.year && m == f.month && d == f.day
}
