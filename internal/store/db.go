// Package store is the local worker directory: categories, workers and the
// customer's jobs, kept in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"
)

const FileName = "directory.db"

var (
	ErrWorkerNotFound   = errors.New("worker not found")
	ErrCategoryNotFound = errors.New("category not found")
)

type DB struct {
	Pool *sql.DB
	SQ   sq.StatementBuilderType
}

func Open(path string) (*DB, error) {
	// modernc DSN: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)

	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// sqlite wants a single writer
	pool.SetMaxOpenConns(1)
	pool.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, err
	}

	return &DB{Pool: pool, SQ: sq.StatementBuilder}, nil
}

// OpenDir opens (and migrates) the directory database inside dataDir.
func OpenDir(ctx context.Context, dataDir string) (*DB, error) {
	d, err := Open(filepath.Join(dataDir, FileName))
	if err != nil {
		return nil, fmt.Errorf("open directory: %w", err)
	}
	if err := Migrate(ctx, d.Pool); err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("migrate directory: %w", err)
	}
	return d, nil
}

func (d *DB) Close() error {
	if d == nil || d.Pool == nil {
		return nil
	}
	return d.Pool.Close()
}
