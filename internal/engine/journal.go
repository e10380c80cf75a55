package engine

import (
	"context"

	"github.com/Gonga3/study-planner/internal/storage"
)

// SaveStats reports the save journal of the underlying store. ok is false
// when the store keeps no journal.
func (s *Service) SaveStats(ctx context.Context) (count int, last *storage.SaveRecord, ok bool, err error) {
	stats, ok := s.port.(storage.SaveStats)
	if !ok {
		return 0, nil, false, nil
	}
	count, last, err = stats.SaveStats(ctx)
	return count, last, true, err
}
