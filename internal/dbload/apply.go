// Package dbload applies a generated statement script directly to a target
// database. The dump file stays the source of truth; direct loading is a
// convenience for environments where the importer can reach the database.
package dbload

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "modernc.org/sqlite"
)

// Execer runs one SQL statement. Satisfied by the pgx and database/sql
// adapters below, and by fakes in tests.
type Execer interface {
	Exec(ctx context.Context, stmt string) error
}

// PgxExecer adapts a pgx connection pool.
type PgxExecer struct {
	Pool *pgxpool.Pool
}

func (e *PgxExecer) Exec(ctx context.Context, stmt string) error {
	_, err := e.Pool.Exec(ctx, stmt)
	return err
}

// SQLExecer adapts a database/sql handle.
type SQLExecer struct {
	DB *sql.DB
}

func (e *SQLExecer) Exec(ctx context.Context, stmt string) error {
	_, err := e.DB.ExecContext(ctx, stmt)
	return err
}

// Open connects to the database named by url. postgres:// and postgresql://
// URLs get a pgx pool; anything else is treated as a SQLite database path.
// The returned func closes the connection.
func Open(ctx context.Context, url string) (Execer, func(), error) {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		pool, err := pgxpool.New(ctx, url)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("pinging postgres: %w", err)
		}
		return &PgxExecer{Pool: pool}, pool.Close, nil
	}

	db, err := sql.Open("sqlite", url)
	if err != nil {
		return nil, nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("pinging sqlite database: %w", err)
	}
	return &SQLExecer{DB: db}, func() { db.Close() }, nil
}

// Apply executes the statements one at a time, in order, stopping at the
// first failure. It returns the number of statements that succeeded.
func Apply(ctx context.Context, ex Execer, stmts []string, log *slog.Logger) (int, error) {
	for i, stmt := range stmts {
		if err := ex.Exec(ctx, stmt); err != nil {
			return i, fmt.Errorf("statement %d of %d: %w", i+1, len(stmts), err)
		}
	}
	log.Info("statements applied", "count", len(stmts))
	return len(stmts), nil
}
