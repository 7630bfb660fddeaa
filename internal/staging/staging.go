// Package staging is a local SQLite store for raw source records. Each
// record is keyed by its source identifier and the release it arrived
// in, so a release can be re-mapped without refetching and a record's
// history across releases stays queryable.
package staging

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound indicates no staged record matched the key.
var ErrNotFound = errors.New("record not found")

const schema = `
CREATE TABLE IF NOT EXISTS records (
  uid TEXT NOT NULL,
  release INTEGER NOT NULL,
  xml TEXT NOT NULL,
  staged_at TEXT NOT NULL,
  PRIMARY KEY (uid, release)
);
CREATE INDEX IF NOT EXISTS idx_records_release ON records(release);
`

// Store holds raw records in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the staging database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stages a raw record, replacing any earlier copy with the same
// UID and release.
func (s *Store) Put(ctx context.Context, uid string, release int, xml []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO records (uid, release, xml, staged_at) VALUES (?, ?, ?, ?)`,
		uid, release, string(xml), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("staging record %s: %w", uid, err)
	}
	return nil
}

// Get returns the raw XML for a record in a release.
func (s *Store) Get(ctx context.Context, uid string, release int) ([]byte, error) {
	var xml string
	err := s.db.QueryRowContext(ctx,
		`SELECT xml FROM records WHERE uid = ? AND release = ?`, uid, release).Scan(&xml)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("record %s release %d: %w", uid, release, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return []byte(xml), nil
}

// Count returns the number of records staged for a release.
func (s *Store) Count(ctx context.Context, release int) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM records WHERE release = ?`, release).Scan(&n)
	return n, err
}

// Walk calls fn for every record in a release, in UID order. Iteration
// stops at the first error from fn.
func (s *Store) Walk(ctx context.Context, release int, fn func(uid string, xml []byte) error) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT uid, xml FROM records WHERE release = ? ORDER BY uid`, release)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var uid, xml string
		if err := rows.Scan(&uid, &xml); err != nil {
			return err
		}
		if err := fn(uid, []byte(xml)); err != nil {
			return err
		}
	}
	return rows.Err()
}

// Releases lists the releases with staged records, oldest first.
func (s *Store) Releases(ctx context.Context) ([]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT release FROM records ORDER BY release`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var r int
		if err := rows.Scan(&r); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
