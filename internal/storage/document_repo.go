package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type DocumentRepo struct {
	q querier
}

func NewDocumentRepo(q querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Get returns the stored body for key, or nil when no row exists.
func (r *DocumentRepo) Get(ctx context.Context, key string) ([]byte, error) {
	row := r.q.QueryRowContext(ctx, `SELECT body FROM documents WHERE key = ?`, key)
	var body string
	if err := row.Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("document get: %w", err)
	}
	return []byte(body), nil
}

func (r *DocumentRepo) Upsert(ctx context.Context, key string, body []byte, updatedAt time.Time) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO documents (key, body, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at
	`, key, string(body), updatedAt)
	if err != nil {
		return fmt.Errorf("document upsert: %w", err)
	}
	return nil
}
