package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Gonga3/study-planner/internal/planner"
	"github.com/Gonga3/study-planner/internal/storage"
)

// Service owns the planner state. Every mutation runs the matching pure
// handler and, when something changed, writes the whole state through the
// persistence port before returning.
type Service struct {
	mu     sync.Mutex
	state  planner.State
	port   storage.Port
	now    func() time.Time
	logger *slog.Logger

	evenAnchor *time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithEvenWeekAnchor sets a date known to fall in an even week.
func WithEvenWeekAnchor(anchor time.Time) Option {
	return func(s *Service) { s.evenAnchor = &anchor }
}

func NewService(port storage.Port, opts ...Option) *Service {
	s := &Service{
		state:  planner.Defaults(),
		port:   port,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "engine")
	return s
}

// Load replaces the in-memory state with the stored one. The port always
// hands back a usable state, so a returned error is for reporting only and
// the service keeps working with whatever was loaded.
func (s *Service) Load(ctx context.Context) error {
	st, err := s.port.Load(ctx)

	s.mu.Lock()
	s.state = st
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("load failed, continuing with defaults where needed", "err", err)
		return err
	}
	s.logger.Debug("state loaded", "tasks", len(st.Tasks))
	return nil
}

// State returns a deep copy of the current state.
func (s *Service) State() planner.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *Service) apply(ctx context.Context, op string, fn func(planner.State) (planner.State, bool)) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := fn(s.state)
	if !changed {
		s.logger.Debug("no change", "op", op)
		return false, nil
	}
	s.state = next
	if err := s.port.Save(ctx, next); err != nil {
		s.logger.Error("save failed, change kept in memory only", "op", op, "err", err)
		return true, &SaveError{Op: op, Err: err}
	}
	s.logger.Debug("saved", "op", op)
	return true, nil
}
