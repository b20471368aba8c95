package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/fittrack/internal/db"
)

// SQLiteSettingsStore implements SettingsStore on the settings table.
type SQLiteSettingsStore struct {
	db db.DBTX
}

// NewSQLiteSettingsStore creates a new SQLiteSettingsStore.
func NewSQLiteSettingsStore(conn db.DBTX) *SQLiteSettingsStore {
	return &SQLiteSettingsStore{db: conn}
}

func (s *SQLiteSettingsStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("setting %q: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("reading setting %q: %w", key, err)
	}
	return []byte(value), nil
}

func (s *SQLiteSettingsStore) Put(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := s.db.ExecContext(ctx, query, key, string(value), nowUTC()); err != nil {
		return fmt.Errorf("writing setting %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *SQLiteSettingsStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting setting %q: %w", key, err)
	}
	return nil
}
