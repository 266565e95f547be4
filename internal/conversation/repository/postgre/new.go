package postgre

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"travel-assistant/internal/conversation/repository"
	"travel-assistant/pkg/log"
)

// DriverName is the database/sql driver registered by lib/pq.
const DriverName = "postgres"

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// Open connects to dsn, verifies the connection and creates the schema.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := EnsureTables(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// EnsureTables creates the conversation tables when missing.
func EnsureTables(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS conversations (
			session_id TEXT PRIMARY KEY,
			history JSONB NOT NULL DEFAULT '[]',
			draft JSONB NOT NULL DEFAULT '{}',
			created_at BIGINT NOT NULL,
			updated_at BIGINT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversations_updated ON conversations(updated_at)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure conversation tables: %w", err)
		}
	}
	return nil
}

// New creates a PostgreSQL-backed Repository for the conversation domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("conversation/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("conversation/repository/postgre.%s", method)
}
