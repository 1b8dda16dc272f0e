// Package sqlstore keeps snapshots as rows of a single table in Postgres or
// MySQL.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/gelato/internal/snapshot"
)

type Dialect string

const (
	Postgres Dialect = "postgres"
	MySQL    Dialect = "mysql"
)

type queries struct {
	create string
	load   string
	save   string
	delete string
}

var dialects = map[Dialect]queries{
	Postgres: {
		create: `
			CREATE TABLE IF NOT EXISTS snapshots (
				name       TEXT PRIMARY KEY,
				payload    TEXT NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
		load: `SELECT payload FROM snapshots WHERE name = $1`,
		save: `
			INSERT INTO snapshots (name, payload, updated_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()`,
		delete: `DELETE FROM snapshots WHERE name = $1`,
	},
	MySQL: {
		create: `
			CREATE TABLE IF NOT EXISTS snapshots (
				name       VARCHAR(64) PRIMARY KEY,
				payload    LONGTEXT NOT NULL,
				updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`,
		load: `SELECT payload FROM snapshots WHERE name = ?`,
		save: `
			INSERT INTO snapshots (name, payload, updated_at)
			VALUES (?, ?, NOW())
			ON DUPLICATE KEY UPDATE payload = VALUES(payload), updated_at = NOW()`,
		delete: `DELETE FROM snapshots WHERE name = ?`,
	},
}

type Store struct {
	db *sql.DB
	q  queries
}

func New(db *sql.DB, dialect Dialect) (*Store, error) {
	q, ok := dialects[dialect]
	if !ok {
		return nil, fmt.Errorf("unknown sql dialect: %s", dialect)
	}

	return &Store{db: db, q: q}, nil
}

// Migrate creates the snapshots table when it does not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.q.create); err != nil {
		return fmt.Errorf("creating snapshots table: %w", err)
	}

	return nil
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	var payload string

	err := s.db.QueryRowContext(ctx, s.q.load, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, snapshot.ErrNotFound
		}

		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	return []byte(payload), nil
}

func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	if _, err := s.db.ExecContext(ctx, s.q.save, key, string(data)); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	return nil
}

// Delete removes all keys inside one database transaction.
func (s *Store) Delete(ctx context.Context, keys ...string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, k := range keys {
		if _, err := tx.ExecContext(ctx, s.q.delete, k); err != nil {
			return fmt.Errorf("deleting snapshot %s: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
