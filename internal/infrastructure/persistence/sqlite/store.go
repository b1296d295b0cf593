// Package sqlite implements todo.Repository on an embedded SQLite database.
// It backs local development and the HTTP handler tests.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/rezkam/todos/internal/application/todo"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const driverName = "sqlite"

// defaultPragmas are appended to DSNs that carry no query string.
const defaultPragmas = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// Store provides the SQLite implementation of todo.Repository.
type Store struct {
	db *sql.DB
}

var _ todo.Repository = (*Store)(nil)

// NewStore opens the SQLite database at dsn (a file path or file: URI).
// SQLite serializes writers, so the pool is limited to one connection.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if !strings.Contains(dsn, "?") {
		dsn += "?" + defaultPragmas
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	return &Store{db: db}, nil
}

// InitSchema applies the embedded goose migrations. It is idempotent.
func (s *Store) InitSchema(ctx context.Context) error {
	migrations, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	// provider.Close would close s.db, so the provider is simply dropped
	provider, err := goose.NewProvider(goose.DialectSQLite3, s.db, migrations)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	for _, r := range results {
		slog.InfoContext(ctx, "migration applied",
			"version", r.Source.Version,
			"duration_ms", r.Duration.Milliseconds())
	}

	return nil
}

// Ping checks out a connection, verifies it and returns it to the pool.
func (s *Store) Ping(ctx context.Context) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	if err := conn.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
