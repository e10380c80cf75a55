package storage

import (
	"context"

	"github.com/Gonga3/study-planner/internal/planner"
)

// Port reads and writes the whole planner state as one document.
//
// Load always returns a usable state. When it also returns an error the
// state holds defaults for whatever could not be read.
type Port interface {
	Load(ctx context.Context) (planner.State, error)
	Save(ctx context.Context, s planner.State) error
}

// SaveStats is implemented by stores that journal their saves.
type SaveStats interface {
	SaveStats(ctx context.Context) (count int, last *SaveRecord, err error)
}
