package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gonga3/study-planner/internal/planner"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "planner.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStoreEmptyIsDefaults(t *testing.T) {
	s := newTestSQLiteStore(t)
	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, planner.Defaults(), got)
}

func TestSQLiteStoreRoundTripAndJournal(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)
	s.now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }

	want := sampleState(t)
	require.NoError(t, s.Save(ctx, planner.Defaults()))
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assertStateEqual(t, want, got)

	n, err := s.Saves().Count(ctx, MainDocumentKey)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	last, err := s.Saves().Last(ctx, MainDocumentKey)
	require.NoError(t, err)
	require.NotNil(t, last)
	body, err := s.Documents().Get(ctx, MainDocumentKey)
	require.NoError(t, err)
	assert.Equal(t, len(body), last.Size)
	assert.Equal(t, s.Session(), last.Session)
	assert.NotEmpty(t, last.Session)
}

func TestSQLiteStoreReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "planner.db")

	s, err := OpenSQLiteStore(ctx, path)
	require.NoError(t, err)
	want := sampleState(t)
	require.NoError(t, s.Save(ctx, want))
	require.NoError(t, s.Close())

	s, err = OpenSQLiteStore(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Load(ctx)
	require.NoError(t, err)
	assertStateEqual(t, want, got)
}

func TestSQLiteStoreCorruptRow(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)
	require.NoError(t, s.Documents().Upsert(ctx, MainDocumentKey, []byte("not json"), time.Now()))

	got, err := s.Load(ctx)
	assert.ErrorIs(t, err, ErrCorruptDocument)
	assert.Equal(t, planner.Defaults(), got)
}

func TestSQLiteStoreJournalsSessions(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "planner.db")

	first, err := OpenSQLiteStore(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, planner.Defaults()))
	require.NoError(t, first.Close())

	second, err := OpenSQLiteStore(ctx, path)
	require.NoError(t, err)
	defer second.Close()
	require.NotEqual(t, first.Session(), second.Session())
	require.NoError(t, second.Save(ctx, planner.Defaults()))

	n, last, err := second.SaveStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.NotNil(t, last)
	assert.Equal(t, second.Session(), last.Session)
}
