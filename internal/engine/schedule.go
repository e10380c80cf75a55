package engine

import (
	"context"

	"github.com/Gonga3/study-planner/internal/planner"
)

type AddClassInput struct {
	Day   planner.Weekday
	Name  string
	Start string
	End   string
	Scope planner.WeekScope
}

// AddClass reports false when the input was rejected.
func (s *Service) AddClass(ctx context.Context, in AddClassInput) (bool, error) {
	return s.apply(ctx, "add_class", func(st planner.State) (planner.State, bool) {
		return st.AddClass(in.Day, in.Name, in.Start, in.End, in.Scope)
	})
}

// ListDay returns the day's sessions of the given week ordered by start label.
func (s *Service) ListDay(week planner.Week, day planner.Weekday) []planner.ClassSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return planner.ListDay(s.state.Schedule(week), day)
}

// CurrentWeek picks the schedule for today. Without an anchor every week
// is even.
func (s *Service) CurrentWeek() planner.Week {
	if s.evenAnchor == nil {
		return planner.WeekEven
	}
	return planner.WeekFor(s.now(), *s.evenAnchor)
}

// Today returns the current week, weekday and that day's sessions.
func (s *Service) Today() (planner.Week, planner.Weekday, []planner.ClassSession) {
	week := s.CurrentWeek()
	day := planner.WeekdayOf(s.now())
	return week, day, s.ListDay(week, day)
}
