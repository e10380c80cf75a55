package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Gonga3/study-planner/internal/planner"
)

// Top-level document keys.
const (
	FieldEvenWeek       = "even_week_schedule"
	FieldOddWeek        = "odd_week_schedule"
	FieldTasks          = "daily_tasks"
	FieldPositiveHabits = "positive_habits"
	FieldNegativeHabits = "negative_habits"
	FieldHundredDays    = "hundred_days"
)

// CreatedAtLayout is the on-disk format of task creation times.
const CreatedAtLayout = "2006-01-02 15:04"

type classJSON struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type taskJSON struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Duration  int    `json:"duration"`
	Priority  string `json:"priority"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"created_at"`
}

type positiveJSON struct {
	Streak  int      `json:"streak"`
	History []string `json:"history"`
}

type negativeJSON struct {
	DaysSober int    `json:"days_sober"`
	StartDate string `json:"start_date"`
}

type document struct {
	EvenWeek       scheduleJSON            `json:"even_week_schedule"`
	OddWeek        scheduleJSON            `json:"odd_week_schedule"`
	Tasks          []taskJSON              `json:"daily_tasks"`
	PositiveHabits map[string]positiveJSON `json:"positive_habits"`
	NegativeHabits map[string]negativeJSON `json:"negative_habits"`
	HundredDays    gridJSON                `json:"hundred_days"`
}

// scheduleJSON writes weekdays in week order rather than sorted key order.
type scheduleJSON planner.WeekSchedule

func (ws scheduleJSON) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, d := range planner.Weekdays {
		if i > 0 {
			buf.WriteByte(',')
		}
		list := make([]classJSON, 0, len(ws[d]))
		for _, c := range ws[d] {
			list = append(list, classJSON{Name: c.Name, Start: c.Start, End: c.End})
		}
		if err := writeMember(&buf, string(d), list); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// gridJSON writes days "1".."100" in numeric order.
type gridJSON planner.ChallengeGrid

func (g gridJSON) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, done := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, strconv.Itoa(i+1), done); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, key string, v any) error {
	k, err := marshalNoEscape(key)
	if err != nil {
		return err
	}
	val, err := marshalNoEscape(v)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(val)
	return nil
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Encode serialises the complete state as an indented UTF-8 JSON document.
func Encode(s planner.State) ([]byte, error) {
	doc := document{
		EvenWeek:       scheduleJSON(s.EvenWeek),
		OddWeek:        scheduleJSON(s.OddWeek),
		Tasks:          make([]taskJSON, 0, len(s.Tasks)),
		PositiveHabits: make(map[string]positiveJSON, len(s.PositiveHabits)),
		NegativeHabits: make(map[string]negativeJSON, len(s.NegativeHabits)),
		HundredDays:    gridJSON(s.Challenge),
	}
	for _, t := range s.Tasks {
		doc.Tasks = append(doc.Tasks, taskJSON{
			ID:        t.ID,
			Title:     t.Title,
			Duration:  t.DurationMinutes,
			Priority:  string(t.Priority),
			Completed: t.Completed,
			CreatedAt: t.CreatedAt.Local().Format(CreatedAtLayout),
		})
	}
	for name, h := range s.PositiveHabits {
		history := h.History
		if history == nil {
			history = []string{}
		}
		doc.PositiveHabits[name] = positiveJSON{Streak: h.Streak, History: history}
	}
	for name, h := range s.NegativeHabits {
		doc.NegativeHabits[name] = negativeJSON{DaysSober: h.DaysSober, StartDate: h.StartDate}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a stored document field by field. Absent fields take their
// defaults silently. A malformed field takes its default and is reported in
// a *LoadError while the other fields still load. A document that is not a
// JSON object yields ErrCorruptDocument and the full default state.
func Decode(data []byte) (planner.State, error) {
	st := planner.Defaults()

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return st, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	if raw == nil {
		return st, fmt.Errorf("%w: not an object", ErrCorruptDocument)
	}

	var fieldErrs []FieldError
	parse := func(key string, fn func(json.RawMessage) error) {
		msg, ok := raw[key]
		if !ok {
			return
		}
		if bytes.Equal(bytes.TrimSpace(msg), []byte("null")) {
			fieldErrs = append(fieldErrs, FieldError{Field: key, Err: errors.New("must not be null")})
			return
		}
		if err := fn(msg); err != nil {
			fieldErrs = append(fieldErrs, FieldError{Field: key, Err: err})
		}
	}

	parse(FieldEvenWeek, func(msg json.RawMessage) error {
		ws, err := decodeSchedule(msg)
		if err == nil {
			st.EvenWeek = ws
		}
		return err
	})
	parse(FieldOddWeek, func(msg json.RawMessage) error {
		ws, err := decodeSchedule(msg)
		if err == nil {
			st.OddWeek = ws
		}
		return err
	})
	parse(FieldTasks, func(msg json.RawMessage) error {
		tasks, err := decodeTasks(msg)
		if err == nil {
			st.Tasks = tasks
		}
		return err
	})
	parse(FieldPositiveHabits, func(msg json.RawMessage) error {
		habits, err := decodePositive(msg)
		if err == nil {
			st.PositiveHabits = habits
		}
		return err
	})
	parse(FieldNegativeHabits, func(msg json.RawMessage) error {
		habits, err := decodeNegative(msg)
		if err == nil {
			st.NegativeHabits = habits
		}
		return err
	})
	parse(FieldHundredDays, func(msg json.RawMessage) error {
		grid, err := decodeGrid(msg)
		if err == nil {
			st.Challenge = grid
		}
		return err
	})

	if len(fieldErrs) > 0 {
		return st, &LoadError{Fields: fieldErrs}
	}
	return st, nil
}

func decodeSchedule(msg json.RawMessage) (planner.WeekSchedule, error) {
	var in map[string][]classJSON
	if err := json.Unmarshal(msg, &in); err != nil {
		return nil, err
	}
	ws := planner.NewWeekSchedule()
	for key, list := range in {
		day := planner.Weekday(key)
		if !day.IsValid() {
			return nil, fmt.Errorf("unknown weekday %q", key)
		}
		sessions := make([]planner.ClassSession, 0, len(list))
		for _, c := range list {
			sessions = append(sessions, planner.ClassSession{Name: c.Name, Start: c.Start, End: c.End})
		}
		ws[day] = sessions
	}
	return ws, nil
}

func decodeTasks(msg json.RawMessage) ([]planner.Task, error) {
	var in []taskJSON
	if err := json.Unmarshal(msg, &in); err != nil {
		return nil, err
	}
	out := make([]planner.Task, 0, len(in))
	for i, t := range in {
		prio, err := planner.ParsePriority(t.Priority)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i, err)
		}
		created, err := parseCreatedAt(t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i, err)
		}
		out = append(out, planner.Task{
			ID:              t.ID,
			Title:           t.Title,
			DurationMinutes: t.Duration,
			Priority:        prio,
			Completed:       t.Completed,
			CreatedAt:       created,
		})
	}
	return out, nil
}

func parseCreatedAt(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.ParseInLocation(CreatedAtLayout, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid created_at %q", s)
	}
	return t, nil
}

func decodePositive(msg json.RawMessage) (map[string]planner.PositiveHabit, error) {
	var in map[string]positiveJSON
	if err := json.Unmarshal(msg, &in); err != nil {
		return nil, err
	}
	out := make(map[string]planner.PositiveHabit, len(in))
	for name, h := range in {
		if h.Streak < 0 {
			return nil, fmt.Errorf("habit %q: negative streak %d", name, h.Streak)
		}
		history := h.History
		if history == nil {
			history = []string{}
		}
		out[name] = planner.PositiveHabit{Streak: h.Streak, History: history}
	}
	return out, nil
}

func decodeNegative(msg json.RawMessage) (map[string]planner.NegativeHabit, error) {
	var in map[string]negativeJSON
	if err := json.Unmarshal(msg, &in); err != nil {
		return nil, err
	}
	out := make(map[string]planner.NegativeHabit, len(in))
	for name, h := range in {
		if h.DaysSober < 0 {
			return nil, fmt.Errorf("habit %q: negative days_sober %d", name, h.DaysSober)
		}
		out[name] = planner.NegativeHabit{DaysSober: h.DaysSober, StartDate: h.StartDate}
	}
	return out, nil
}

func decodeGrid(msg json.RawMessage) (planner.ChallengeGrid, error) {
	var grid planner.ChallengeGrid
	var in map[string]bool
	if err := json.Unmarshal(msg, &in); err != nil {
		return grid, err
	}
	for key, done := range in {
		n, err := strconv.Atoi(key)
		if err != nil || n < 1 || n > planner.ChallengeDays {
			return grid, fmt.Errorf("day %q out of range 1..%d", key, planner.ChallengeDays)
		}
		grid[n-1] = done
	}
	return grid, nil
}
