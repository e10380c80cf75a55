package storage

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Gonga3/study-planner/internal/planner"
)

// MainDocumentKey is the row key of the planner document.
const MainDocumentKey = "main"

// SQLiteStore keeps the same JSON document as FileStore in one row of a
// SQLite table and journals every save. Journal rows carry the session id
// of the store that wrote them, so saves from the CLI and the board can be
// told apart.
type SQLiteStore struct {
	db      *sql.DB
	key     string
	session string
	now     func() time.Time
	logger  *slog.Logger
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	session := uuid.New().String()
	return &SQLiteStore{
		db:      db,
		key:     MainDocumentKey,
		session: session,
		now:     time.Now,
		logger:  slog.Default().With("component", "sqlite_store", "session", session),
	}
}

func (s *SQLiteStore) Session() string { return s.session }

// OpenSQLiteStore opens the database at path and wraps it in a store.
func OpenSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	return NewSQLiteStore(db), nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) Documents() *DocumentRepo { return NewDocumentRepo(s.db) }
func (s *SQLiteStore) Saves() *SaveRepo         { return NewSaveRepo(s.db) }

func (s *SQLiteStore) Load(ctx context.Context) (planner.State, error) {
	body, err := s.Documents().Get(ctx, s.key)
	if err != nil {
		return planner.Defaults(), err
	}
	if body == nil {
		s.logger.Debug("no document yet, using defaults")
		return planner.Defaults(), nil
	}
	return Decode(body)
}

func (s *SQLiteStore) Save(ctx context.Context, st planner.State) error {
	body, err := Encode(st)
	if err != nil {
		return err
	}
	now := s.now().UTC()
	err = WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := NewDocumentRepo(tx).Upsert(ctx, s.key, body, now); err != nil {
			return err
		}
		_, err := NewSaveRepo(tx).Insert(ctx, SaveRecord{DocKey: s.key, SavedAt: now, Size: len(body), Session: s.session})
		return err
	})
	if err != nil {
		return err
	}
	s.logger.Debug("document saved", "bytes", len(body))
	return nil
}

func (s *SQLiteStore) SaveStats(ctx context.Context) (int, *SaveRecord, error) {
	saves := s.Saves()
	n, err := saves.Count(ctx, s.key)
	if err != nil {
		return 0, nil, err
	}
	last, err := saves.Last(ctx, s.key)
	if err != nil {
		return 0, nil, err
	}
	return n, last, nil
}
