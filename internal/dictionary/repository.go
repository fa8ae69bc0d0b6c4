package dictionary

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Repository defines operations for persisted dictionary entries.
type Repository interface {
	FindAll(ctx context.Context) ([]Entry, error)
	BatchUpsert(ctx context.Context, entries []*Entry) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindAll returns all dictionary entries ordered by word.
func (r *DBRepository) FindAll(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	if err := r.db.SelectContext(ctx, &entries, "SELECT * FROM dictionary_entries ORDER BY word"); err != nil {
		return nil, fmt.Errorf("load all dictionary entries: %w", err)
	}
	return entries, nil
}

// BatchUpsert inserts or updates multiple dictionary entries.
func (r *DBRepository) BatchUpsert(ctx context.Context, entries []*Entry) error {
	for _, e := range entries {
		_, err := r.db.NamedExecContext(ctx,
			"INSERT INTO dictionary_entries (word, source_type, response) VALUES (:word, :source_type, :response) ON DUPLICATE KEY UPDATE source_type = VALUES(source_type), response = VALUES(response)",
			e)
		if err != nil {
			return fmt.Errorf("upsert dictionary entry: %w", err)
		}
	}
	return nil
}
