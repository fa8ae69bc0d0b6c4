package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBRepository_FindAll(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantLen   int
		wantErr   bool
	}{
		{
			name: "returns all entries",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{
					"word", "source_type", "response", "created_at", "updated_at",
				}).
					AddRow("abundant", "dictionaryapi", json.RawMessage(`[{"word":"abundant"}]`), now, now).
					AddRow("brisk", "dictionaryapi", json.RawMessage(`[{"word":"brisk"}]`), now, now)
				mock.ExpectQuery("SELECT \\* FROM dictionary_entries ORDER BY word").WillReturnRows(rows)
			},
			wantLen: 2,
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM dictionary_entries ORDER BY word").
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			sqlxDB := sqlx.NewDb(db, "mysql")
			repo := NewDBRepository(sqlxDB)
			tt.setupMock(mock)

			got, err := repo.FindAll(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, tt.wantLen)

			assert.Equal(t, "abundant", got[0].Word)
			assert.Equal(t, "dictionaryapi", got[0].SourceType)
			assert.Equal(t, json.RawMessage(`[{"word":"abundant"}]`), got[0].Response)
			assert.Equal(t, "brisk", got[1].Word)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_BatchUpsert(t *testing.T) {
	tests := []struct {
		name      string
		entries   []*Entry
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name:      "empty slice",
			entries:   []*Entry{},
			setupMock: func(mock sqlmock.Sqlmock) {},
		},
		{
			name: "upserts records",
			entries: []*Entry{
				{
					Word:       "abundant",
					SourceType: "dictionaryapi",
					Response:   json.RawMessage(`[{"word":"abundant"}]`),
				},
				{
					Word:       "brisk",
					SourceType: "dictionaryapi",
					Response:   json.RawMessage(`[{"word":"brisk"}]`),
				},
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO dictionary_entries").
					WithArgs("abundant", "dictionaryapi", json.RawMessage(`[{"word":"abundant"}]`)).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec("INSERT INTO dictionary_entries").
					WithArgs("brisk", "dictionaryapi", json.RawMessage(`[{"word":"brisk"}]`)).
					WillReturnResult(sqlmock.NewResult(2, 1))
			},
		},
		{
			name: "db error",
			entries: []*Entry{
				{
					Word:       "abundant",
					SourceType: "dictionaryapi",
					Response:   json.RawMessage(`[{"word":"abundant"}]`),
				},
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO dictionary_entries").
					WithArgs("abundant", "dictionaryapi", json.RawMessage(`[{"word":"abundant"}]`)).
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			sqlxDB := sqlx.NewDb(db, "mysql")
			repo := NewDBRepository(sqlxDB)
			tt.setupMock(mock)

			err = repo.BatchUpsert(context.Background(), tt.entries)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
