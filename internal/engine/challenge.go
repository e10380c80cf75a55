package engine

import (
	"context"

	"github.com/Gonga3/study-planner/internal/planner"
)

func (s *Service) ToggleDay(ctx context.Context, n int) (bool, error) {
	return s.apply(ctx, "toggle_day", func(st planner.State) (planner.State, bool) {
		return st.ToggleDay(n)
	})
}

func (s *Service) ChallengeSummary() planner.ChallengeSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Challenge.Summary()
}
