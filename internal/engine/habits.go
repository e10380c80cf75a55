package engine

import (
	"context"

	"github.com/Gonga3/study-planner/internal/planner"
)

// AddHabit returns the stored (trimmed) name, or "" when the name was blank.
func (s *Service) AddHabit(ctx context.Context, name string) (string, error) {
	var stored string
	_, err := s.apply(ctx, "add_habit", func(st planner.State) (planner.State, bool) {
		next, n, ok := st.AddHabit(name)
		stored = n
		return next, ok
	})
	return stored, err
}

func (s *Service) MarkHabitToday(ctx context.Context, name string) (bool, error) {
	return s.apply(ctx, "mark_habit", func(st planner.State) (planner.State, bool) {
		return st.MarkToday(name, s.now())
	})
}

func (s *Service) DeleteHabit(ctx context.Context, name string) (bool, error) {
	return s.apply(ctx, "delete_habit", func(st planner.State) (planner.State, bool) {
		return st.DeleteHabit(name)
	})
}

// AddVice returns the stored (trimmed) name, or "" when the name was blank.
func (s *Service) AddVice(ctx context.Context, name string) (string, error) {
	var stored string
	_, err := s.apply(ctx, "add_vice", func(st planner.State) (planner.State, bool) {
		next, n, ok := st.AddVice(name)
		stored = n
		return next, ok
	})
	return stored, err
}

func (s *Service) StartOverVice(ctx context.Context, name string) (bool, error) {
	return s.apply(ctx, "start_over", func(st planner.State) (planner.State, bool) {
		return st.StartOver(name, s.now())
	})
}

func (s *Service) DeleteVice(ctx context.Context, name string) (bool, error) {
	return s.apply(ctx, "delete_vice", func(st planner.State) (planner.State, bool) {
		return st.DeleteVice(name)
	})
}
