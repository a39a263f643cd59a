package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/voidvault/voidvault-cli/internal/client/session/migrations"
)

// SQLiteStore keeps state in a single-table key/value schema managed by
// goose migrations.
type SQLiteStore struct {
	db *sql.DB
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// OpenSQLite opens (creating if needed) the state database at path and
// brings its schema up to date.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping state db: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate state db: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) get(ctx context.Context, key string) string {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM client_state WHERE key = ?`, key).Scan(&value)
	if err != nil {
		// Missing key and read failure both degrade to "no value", the
		// same way browser storage reads never throw here.
		return ""
	}
	return value
}

func (s *SQLiteStore) set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO client_state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

func (s *SQLiteStore) delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM client_state WHERE key = ?`, key)
	return err
}

func (s *SQLiteStore) Token(ctx context.Context) string {
	return s.get(ctx, keyToken)
}

func (s *SQLiteStore) SetToken(ctx context.Context, token string) error {
	return s.set(ctx, keyToken, token)
}

func (s *SQLiteStore) ClearToken(ctx context.Context) error {
	return s.delete(ctx, keyToken)
}

func (s *SQLiteStore) Theme(ctx context.Context) string {
	if theme := s.get(ctx, keyTheme); theme == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

func (s *SQLiteStore) SetTheme(ctx context.Context, theme string) error {
	return s.set(ctx, keyTheme, theme)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
