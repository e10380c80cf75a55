package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type SaveRepo struct {
	q querier
}

func NewSaveRepo(q querier) *SaveRepo {
	return &SaveRepo{q: q}
}

func (r *SaveRepo) Insert(ctx context.Context, rec SaveRecord) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO saves (doc_key, saved_at, size, session)
		VALUES (?, ?, ?, ?)
	`, rec.DocKey, rec.SavedAt, rec.Size, rec.Session)
	if err != nil {
		return 0, fmt.Errorf("save insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("save last insert id: %w", err)
	}
	return id, nil
}

func (r *SaveRepo) Count(ctx context.Context, key string) (int, error) {
	row := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM saves WHERE doc_key = ?`, key)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("save count: %w", err)
	}
	return n, nil
}

func (r *SaveRepo) Last(ctx context.Context, key string) (*SaveRecord, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, doc_key, saved_at, size, session
		FROM saves
		WHERE doc_key = ?
		ORDER BY id DESC
		LIMIT 1
	`, key)
	var rec SaveRecord
	if err := row.Scan(&rec.ID, &rec.DocKey, &rec.SavedAt, &rec.Size, &rec.Session); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("save last: %w", err)
	}
	return &rec, nil
}
