package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// DBStore implements Store on a single MySQL key-value table.
type DBStore struct {
	db *sqlx.DB
}

// NewDBStore creates a DBStore.
func NewDBStore(db *sqlx.DB) *DBStore {
	return &DBStore{db: db}
}

// Load returns the stored payload for key, or nil if absent.
func (s *DBStore) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.GetContext(ctx, &value,
		"SELECT entry_value FROM kv_entries WHERE entry_key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(kv_entries) > %w", err)
	}
	return value, nil
}

// Save upserts the payload for key.
func (s *DBStore) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_entries (entry_key, entry_value) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE entry_value = VALUES(entry_value)`,
		key, value)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert kv_entries) > %w", err)
	}
	return nil
}
