package planner

import (
	"fmt"
	"strings"
)

// Weekday is one of the seven fixed day names of the planner week.
// The week starts on Saturday.
type Weekday string

const (
	Saturday  Weekday = "شنبه"
	Sunday    Weekday = "یکشنبه"
	Monday    Weekday = "دوشنبه"
	Tuesday   Weekday = "سه‌شنبه"
	Wednesday Weekday = "چهارشنبه"
	Thursday  Weekday = "پنجشنبه"
	Friday    Weekday = "جمعه"
)

// Weekdays lists the fixed day names in week order.
var Weekdays = []Weekday{Saturday, Sunday, Monday, Tuesday, Wednesday, Thursday, Friday}

func (d Weekday) IsValid() bool {
	switch d {
	case Saturday, Sunday, Monday, Tuesday, Wednesday, Thursday, Friday:
		return true
	default:
		return false
	}
}

// ParseWeekday accepts the fixed names as well as English names and
// three-letter abbreviations.
func ParseWeekday(input string) (Weekday, error) {
	s := strings.TrimSpace(input)
	if d := Weekday(s); d.IsValid() {
		return d, nil
	}
	switch strings.ToLower(s) {
	case "sat", "saturday":
		return Saturday, nil
	case "sun", "sunday":
		return Sunday, nil
	case "mon", "monday":
		return Monday, nil
	case "tue", "tuesday":
		return Tuesday, nil
	case "wed", "wednesday":
		return Wednesday, nil
	case "thu", "thursday":
		return Thursday, nil
	case "fri", "friday":
		return Friday, nil
	}
	return "", fmt.Errorf("invalid weekday: %q", input)
}

type Week string

const (
	WeekEven Week = "even"
	WeekOdd  Week = "odd"
)

func (w Week) IsValid() bool {
	return w == WeekEven || w == WeekOdd
}

func ParseWeek(input string) (Week, error) {
	w := Week(strings.TrimSpace(strings.ToLower(input)))
	if !w.IsValid() {
		return "", fmt.Errorf("invalid week: %q", input)
	}
	return w, nil
}

// WeekScope says which schedules a new class session goes into.
type WeekScope string

const (
	ScopeEven WeekScope = "even"
	ScopeOdd  WeekScope = "odd"
	ScopeBoth WeekScope = "both"
)

func (s WeekScope) IsValid() bool {
	switch s {
	case ScopeEven, ScopeOdd, ScopeBoth:
		return true
	default:
		return false
	}
}

func (s WeekScope) includes(w Week) bool {
	return s == ScopeBoth || string(s) == string(w)
}

func ParseWeekScope(input string) (WeekScope, error) {
	switch s := strings.TrimSpace(strings.ToLower(input)); s {
	case "even", "زوج":
		return ScopeEven, nil
	case "odd", "فرد":
		return ScopeOdd, nil
	case "both", "all", "هر هفته":
		return ScopeBoth, nil
	}
	return "", fmt.Errorf("invalid week scope: %q", input)
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	return p.Rank() > 0
}

// Rank orders priorities for listing: high=3, medium=2, low=1.
// Unknown priorities rank 0.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// ParsePriority parses user or stored input. Empty input is low. The
// Persian labels written by older data files are accepted too.
func ParsePriority(input string) (Priority, error) {
	switch s := strings.TrimSpace(strings.ToLower(input)); s {
	case "", "low", "l", "کم":
		return PriorityLow, nil
	case "medium", "med", "m", "متوسط":
		return PriorityMedium, nil
	case "high", "h", "زیاد":
		return PriorityHigh, nil
	}
	return "", fmt.Errorf("invalid priority: %q", input)
}
