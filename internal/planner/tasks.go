package planner

import (
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	MinTaskMinutes = 1
	MaxTaskMinutes = 480
	// DefaultTaskMinutes is the preset duration of the task form.
	DefaultTaskMinutes = 30
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type NewTask struct {
	Title           string   `validate:"required"`
	DurationMinutes int      `validate:"min=1,max=480"`
	Priority        Priority `validate:"oneof=low medium high"`
}

// AddTask appends a task built from in. The id is the task count plus one,
// which can repeat an id still held by another task once a task has been
// deleted. CreatedAt is now in local time truncated to the minute, which is
// what the stored document can represent. Invalid input reports false and
// leaves the state untouched.
func (s State) AddTask(in NewTask, now time.Time) (State, Task, bool) {
	in.Title = strings.TrimSpace(in.Title)
	if err := validate.Struct(in); err != nil {
		return s, Task{}, false
	}

	task := Task{
		ID:              len(s.Tasks) + 1,
		Title:           in.Title,
		DurationMinutes: in.DurationMinutes,
		Priority:        in.Priority,
		CreatedAt:       now.Local().Truncate(time.Minute),
	}
	next := s.Clone()
	next.Tasks = append(next.Tasks, task)
	return next, task, true
}

// CompleteTask marks the first task with id as completed. Unknown ids and
// already completed tasks report false.
func (s State) CompleteTask(id int) (State, bool) {
	for i := range s.Tasks {
		if s.Tasks[i].ID != id {
			continue
		}
		if s.Tasks[i].Completed {
			return s, false
		}
		next := s.Clone()
		next.Tasks[i].Completed = true
		return next, true
	}
	return s, false
}

// DeleteTask removes every task carrying id.
func (s State) DeleteTask(id int) (State, bool) {
	kept := make([]Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(s.Tasks) {
		return s, false
	}
	next := s.Clone()
	next.Tasks = kept
	return next, true
}

// ListSorted returns incomplete tasks before completed ones, each group by
// priority rank descending. Ties keep insertion order.
func ListSorted(tasks []Task) []Task {
	out := append([]Task{}, tasks...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Completed != out[j].Completed {
			return !out[i].Completed
		}
		return out[i].Priority.Rank() > out[j].Priority.Rank()
	})
	return out
}

func (s State) FindTask(id int) (Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}
