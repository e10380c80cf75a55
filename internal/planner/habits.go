package planner

import (
	"slices"
	"strings"
	"time"
)

// AddHabit creates a positive habit under the trimmed name. An existing
// habit with that name is replaced and its history is lost.
func (s State) AddHabit(name string) (State, string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s, "", false
	}
	next := s.Clone()
	next.PositiveHabits[name] = PositiveHabit{History: []string{}}
	return next, name, true
}

// MarkToday records today's date for the habit. Marking twice on the same
// calendar day has the effect of marking once.
func (s State) MarkToday(name string, now time.Time) (State, bool) {
	h, ok := s.PositiveHabits[name]
	if !ok {
		return s, false
	}
	today := now.Format(ISODate)
	if slices.Contains(h.History, today) {
		return s, false
	}
	next := s.Clone()
	h = next.PositiveHabits[name]
	h.History = append(h.History, today)
	h.Streak++
	next.PositiveHabits[name] = h
	return next, true
}

func (s State) DeleteHabit(name string) (State, bool) {
	if _, ok := s.PositiveHabits[name]; !ok {
		return s, false
	}
	next := s.Clone()
	delete(next.PositiveHabits, name)
	return next, true
}

// AddVice creates a negative habit under the trimmed name, replacing any
// existing one.
func (s State) AddVice(name string) (State, string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s, "", false
	}
	next := s.Clone()
	next.NegativeHabits[name] = NegativeHabit{}
	return next, name, true
}

// StartOver restarts the sobriety counter from today.
func (s State) StartOver(name string, now time.Time) (State, bool) {
	if _, ok := s.NegativeHabits[name]; !ok {
		return s, false
	}
	next := s.Clone()
	next.NegativeHabits[name] = NegativeHabit{DaysSober: 0, StartDate: now.Format(ISODate)}
	return next, true
}

func (s State) DeleteVice(name string) (State, bool) {
	if _, ok := s.NegativeHabits[name]; !ok {
		return s, false
	}
	next := s.Clone()
	delete(next.NegativeHabits, name)
	return next, true
}
