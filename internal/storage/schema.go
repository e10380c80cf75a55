package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`PRAGMA foreign_keys = ON;`,
		`CREATE TABLE IF NOT EXISTS documents (
			key TEXT PRIMARY KEY,
			body TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);`,
		// One row per save, for auditing how often and how much is written.
		`CREATE TABLE IF NOT EXISTS saves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			doc_key TEXT NOT NULL,
			saved_at DATETIME NOT NULL,
			size INTEGER NOT NULL,
			session TEXT NOT NULL DEFAULT '',
			FOREIGN KEY(doc_key) REFERENCES documents(key)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_saves_doc_key_saved_at ON saves(doc_key, saved_at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
