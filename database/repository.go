package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pocket-notes/storage"
)

// Repository is the SQLite-backed record store.
type Repository struct {
	db *DB
}

var _ storage.RecordStore = (*Repository)(nil)
var _ storage.Lister = (*Repository)(nil)

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// ==================== RECORDS ====================

// Get returns the stored value for key, or found == false when the key was never written.
func (r *Repository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `
		SELECT value FROM records WHERE key = ?
	`, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %s: %v", storage.ErrReadFailure, key, err)
	}

	return value, true, nil
}

// Set replaces the value for key in a single upsert statement.
func (r *Repository) Set(ctx context.Context, key, value string) error {
	now := time.Now()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO records (key, value, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value, now, now)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", storage.ErrWriteFailure, key, err)
	}
	return nil
}

// Keys lists every stored key in lexical order.
func (r *Repository) Keys(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key FROM records ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrReadFailure, err)
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: %v", storage.ErrReadFailure, err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrReadFailure, err)
	}
	return keys, nil
}
