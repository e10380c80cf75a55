package planner

import (
	"sort"
	"strings"
	"time"
)

// AddClass appends a session to the day's list of every schedule selected by
// scope. Blank fields, an unknown day or an unknown scope leave the state
// untouched and report false. Identical sessions may be added repeatedly.
func (s State) AddClass(day Weekday, name, start, end string, scope WeekScope) (State, bool) {
	if !day.IsValid() || !scope.IsValid() {
		return s, false
	}
	if isBlank(name) || isBlank(start) || isBlank(end) {
		return s, false
	}

	next := s.Clone()
	session := ClassSession{Name: name, Start: start, End: end}
	if scope.includes(WeekEven) {
		next.EvenWeek[day] = append(next.EvenWeek[day], session)
	}
	if scope.includes(WeekOdd) {
		next.OddWeek[day] = append(next.OddWeek[day], session)
	}
	return next, true
}

// ListDay returns a copy of the day's sessions ordered by Start. The order is
// plain string comparison, so "10:00" sorts before "2:00".
func ListDay(ws WeekSchedule, day Weekday) []ClassSession {
	out := append([]ClassSession{}, ws[day]...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// WeekFor reports whether date falls in an even or odd week, given anchor,
// any day of a known even week. Weeks start on Saturday.
func WeekFor(date, anchor time.Time) Week {
	weeks := floorDiv(daysBetween(weekStart(anchor), weekStart(date)), 7)
	if weeks%2 == 0 {
		return WeekEven
	}
	return WeekOdd
}

// WeekdayOf maps a calendar date to its planner weekday.
func WeekdayOf(t time.Time) Weekday {
	return Weekdays[(int(t.Weekday())+1)%7]
}

func weekStart(t time.Time) time.Time {
	d := civilDay(t)
	return d.AddDate(0, 0, -((int(d.Weekday()) + 1) % 7))
}

func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
