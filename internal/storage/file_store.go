package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Gonga3/study-planner/internal/planner"
)

// FileStore keeps the document in a single JSON file.
//
// Save rewrites the file in place. A crash mid-write can leave a truncated
// file, which the next Load reports as a corrupt document.
type FileStore struct {
	path   string
	logger *slog.Logger
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path:   path,
		logger: slog.Default().With("component", "file_store", "path", path),
	}
}

func (f *FileStore) Path() string { return f.path }

func (f *FileStore) Load(ctx context.Context) (planner.State, error) {
	if err := ctx.Err(); err != nil {
		return planner.Defaults(), err
	}
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		f.logger.Debug("no document yet, using defaults")
		return planner.Defaults(), nil
	}
	if err != nil {
		return planner.Defaults(), fmt.Errorf("read document: %w", err)
	}
	return Decode(data)
}

func (f *FileStore) Save(ctx context.Context, s planner.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create document directory: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	f.logger.Debug("document saved", "bytes", len(data))
	return nil
}
