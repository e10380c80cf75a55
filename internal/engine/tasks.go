package engine

import (
	"context"

	"github.com/Gonga3/study-planner/internal/planner"
)

// AddTask returns the created task, or nil when the input was rejected.
// A *SaveError comes back together with the task: it exists in memory.
func (s *Service) AddTask(ctx context.Context, in planner.NewTask) (*planner.Task, error) {
	var created planner.Task
	ok, err := s.apply(ctx, "add_task", func(st planner.State) (planner.State, bool) {
		next, task, ok := st.AddTask(in, s.now())
		created = task
		return next, ok
	})
	if !ok {
		return nil, err
	}
	return &created, err
}

func (s *Service) CompleteTask(ctx context.Context, id int) (bool, error) {
	return s.apply(ctx, "complete_task", func(st planner.State) (planner.State, bool) {
		return st.CompleteTask(id)
	})
}

func (s *Service) DeleteTask(ctx context.Context, id int) (bool, error) {
	return s.apply(ctx, "delete_task", func(st planner.State) (planner.State, bool) {
		return st.DeleteTask(id)
	})
}

// ListTasks returns tasks in display order.
func (s *Service) ListTasks() []planner.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return planner.ListSorted(s.state.Tasks)
}
