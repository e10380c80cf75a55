package planner

import (
	"sort"
	"time"
)

// ISODate is the layout of habit dates.
const ISODate = "2006-01-02"

type ClassSession struct {
	Name  string
	Start string
	End   string
}

// WeekSchedule maps each fixed weekday to its sessions in insertion order.
type WeekSchedule map[Weekday][]ClassSession

// NewWeekSchedule returns a schedule with every weekday present and empty.
func NewWeekSchedule() WeekSchedule {
	ws := make(WeekSchedule, len(Weekdays))
	for _, d := range Weekdays {
		ws[d] = []ClassSession{}
	}
	return ws
}

func (ws WeekSchedule) clone() WeekSchedule {
	out := NewWeekSchedule()
	for d, list := range ws {
		out[d] = append([]ClassSession{}, list...)
	}
	return out
}

type Task struct {
	ID              int
	Title           string
	DurationMinutes int
	Priority        Priority
	Completed       bool
	CreatedAt       time.Time
}

// PositiveHabit counts the distinct days it was marked. Streak never decreases.
type PositiveHabit struct {
	Streak  int
	History []string
}

// NegativeHabit tracks abstinence since StartDate. DaysSober is only ever
// reset; nothing advances it from elapsed time.
type NegativeHabit struct {
	DaysSober int
	StartDate string
}

// State is the whole application state. Handlers treat it as a value:
// they clone before mutating and return the next state.
type State struct {
	EvenWeek       WeekSchedule
	OddWeek        WeekSchedule
	Tasks          []Task
	PositiveHabits map[string]PositiveHabit
	NegativeHabits map[string]NegativeHabit
	Challenge      ChallengeGrid
}

var (
	defaultPositiveHabits = []string{"مطالعه روزانه", "ورزش", "زبان انگلیسی"}
	defaultNegativeHabits = []string{"دیر خوابیدن", "تعلل در کارها"}
)

func DefaultPositiveHabits() map[string]PositiveHabit {
	out := make(map[string]PositiveHabit, len(defaultPositiveHabits))
	for _, name := range defaultPositiveHabits {
		out[name] = PositiveHabit{History: []string{}}
	}
	return out
}

func DefaultNegativeHabits() map[string]NegativeHabit {
	out := make(map[string]NegativeHabit, len(defaultNegativeHabits))
	for _, name := range defaultNegativeHabits {
		out[name] = NegativeHabit{}
	}
	return out
}

// Defaults returns the first-run state.
func Defaults() State {
	return State{
		EvenWeek:       NewWeekSchedule(),
		OddWeek:        NewWeekSchedule(),
		Tasks:          []Task{},
		PositiveHabits: DefaultPositiveHabits(),
		NegativeHabits: DefaultNegativeHabits(),
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := State{
		EvenWeek:       s.EvenWeek.clone(),
		OddWeek:        s.OddWeek.clone(),
		Tasks:          append([]Task{}, s.Tasks...),
		PositiveHabits: make(map[string]PositiveHabit, len(s.PositiveHabits)),
		NegativeHabits: make(map[string]NegativeHabit, len(s.NegativeHabits)),
		Challenge:      s.Challenge,
	}
	for name, h := range s.PositiveHabits {
		h.History = append([]string{}, h.History...)
		out.PositiveHabits[name] = h
	}
	for name, h := range s.NegativeHabits {
		out.NegativeHabits[name] = h
	}
	return out
}

// Schedule returns the schedule for the given week.
func (s State) Schedule(w Week) WeekSchedule {
	if w == WeekOdd {
		return s.OddWeek
	}
	return s.EvenWeek
}

// HabitNames returns positive habit names in sorted order.
func (s State) HabitNames() []string {
	return sortedKeys(s.PositiveHabits)
}

// ViceNames returns negative habit names in sorted order.
func (s State) ViceNames() []string {
	return sortedKeys(s.NegativeHabits)
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
