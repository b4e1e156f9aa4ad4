package store

import (
	"context"
	"database/sql"
	"fmt"
)

type migration func(ctx context.Context, tx *sql.Tx) error

// migrations[i] moves the schema from user_version i to i+1.
var migrations = []migration{
	migrateSchemaV1,
	func(ctx context.Context, tx *sql.Tx) error {
		_, err := seedTx(ctx, tx)
		return err
	},
}

// SchemaVersion is the user_version a fully migrated database reports.
func SchemaVersion() int { return len(migrations) }

func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRowContext(ctx, `PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}

	for i := v; i < len(migrations); i++ {
		if err := migrations[i](ctx, tx); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	if v < len(migrations) {
		// PRAGMA takes no bind parameters.
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`PRAGMA user_version = %d;`, len(migrations))); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func migrateSchemaV1(ctx context.Context, tx *sql.Tx) error {
	stmts := []string{`
CREATE TABLE IF NOT EXISTS categories (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  icon TEXT NOT NULL DEFAULT '',
  color TEXT NOT NULL DEFAULT '',
  worker_count INTEGER NOT NULL DEFAULT 0,
  sort_order INTEGER NOT NULL DEFAULT 0
);`, `
CREATE TABLE IF NOT EXISTS subcategories (
  parent_id TEXT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
  id TEXT NOT NULL,
  name TEXT NOT NULL,
  icon TEXT NOT NULL DEFAULT '',
  sort_order INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (parent_id, id)
);`, `
CREATE TABLE IF NOT EXISTS workers (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  profile_image TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL REFERENCES categories(id),
  rating REAL NOT NULL DEFAULT 0,
  review_count INTEGER NOT NULL DEFAULT 0,
  hourly_rate REAL NOT NULL DEFAULT 0,
  location TEXT NOT NULL DEFAULT '',
  distance REAL,
  province TEXT NOT NULL DEFAULT '',
  district TEXT NOT NULL DEFAULT '',
  city TEXT NOT NULL DEFAULT '',
  skills TEXT NOT NULL DEFAULT '[]',
  is_available INTEGER NOT NULL DEFAULT 0,
  is_verified INTEGER NOT NULL DEFAULT 0,
  completed_jobs INTEGER NOT NULL DEFAULT 0,
  response_time TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  sort_order INTEGER NOT NULL DEFAULT 0
);`, `
CREATE TABLE IF NOT EXISTS jobs (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  category TEXT NOT NULL,
  status TEXT NOT NULL,
  budget REAL NOT NULL DEFAULT 0,
  applicants INTEGER NOT NULL DEFAULT 0,
  posted_date TEXT NOT NULL DEFAULT '',
  worker_name TEXT NOT NULL DEFAULT '',
  sort_order INTEGER NOT NULL DEFAULT 0
);`,
		`CREATE INDEX IF NOT EXISTS idx_workers_category ON workers(category);`,
		`CREATE INDEX IF NOT EXISTS idx_jobs_status ON jobs(status);`,
	}
	for _, s := range stmts {
		if _, err := tx.ExecContext(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
