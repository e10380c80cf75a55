package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gonga3/study-planner/internal/planner"
)

func TestFileStoreMissingFileIsDefaults(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "study_data.json"))
	got, err := fs.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, planner.Defaults(), got)
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "study_data.json")
	fs := NewFileStore(path)

	want := sampleState(t)
	require.NoError(t, fs.Save(ctx, want))

	got, err := fs.Load(ctx)
	require.NoError(t, err)
	assertStateEqual(t, want, got)
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	fs := NewFileStore(filepath.Join(t.TempDir(), "study_data.json"))

	require.NoError(t, fs.Save(ctx, sampleState(t)))
	require.NoError(t, fs.Save(ctx, planner.Defaults()))

	got, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, planner.Defaults(), got)
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "study_data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"daily_tasks": [`), 0o644))

	got, err := NewFileStore(path).Load(context.Background())
	assert.True(t, errors.Is(err, ErrCorruptDocument))
	assert.Equal(t, planner.Defaults(), got)
}

func TestFileStoreSaveFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := NewFileStore(filepath.Join(blocker, "study_data.json")).Save(context.Background(), planner.Defaults())
	assert.Error(t, err)
}
