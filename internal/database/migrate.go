package database

import (
	"context"
	"fmt"
	"sort"

	"github.com/jmoiron/sqlx"

	"github.com/k-yamane/vocamind/schemas"
)

// Migrate applies the embedded schema migrations in file name order. Every
// statement is idempotent, so running it on startup is safe.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	names, err := migrationFiles()
	if err != nil {
		return err
	}

	for _, name := range names {
		contents, err := schemas.Migrations.ReadFile(name)
		if err != nil {
			return fmt.Errorf("schemas.Migrations.ReadFile(%s) > %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(contents)); err != nil {
			return fmt.Errorf("db.ExecContext(%s) > %w", name, err)
		}
	}
	return nil
}

func migrationFiles() ([]string, error) {
	entries, err := schemas.Migrations.ReadDir("migrations")
	if err != nil {
		return nil, fmt.Errorf("schemas.Migrations.ReadDir(migrations) > %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, "migrations/"+entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
