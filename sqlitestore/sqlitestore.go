// Package sqlitestore provides a durable mmr.NodeStore backed by SQLite.
// The node sequence is the only persistent state an accumulator needs; the
// peaks and root are recomputed from the stored size on restore.
package sqlitestore

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/cairnlog/cairn/mmr"
)

const schema = `
CREATE TABLE IF NOT EXISTS nodes (
    pos     INTEGER PRIMARY KEY,
    digest  BLOB NOT NULL
);
`

// Store is a NodeStore persisted in a single SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the digest at pos.
func (s *Store) Get(pos uint64) ([]byte, error) {
	var digest []byte
	err := s.db.QueryRow(`SELECT digest FROM nodes WHERE pos = ?`, int64(pos)).Scan(&digest)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", mmr.ErrPositionOutOfRange, pos)
	}
	if err != nil {
		return nil, err
	}
	return digest, nil
}

// Append writes digest at the next position and returns that position. The
// insert and the position read share a transaction so a crash can never
// leave a gap in the sequence.
func (s *Store) Append(digest []byte) (uint64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var count int64
	if err = tx.QueryRow(`SELECT COUNT(*) FROM nodes`).Scan(&count); err != nil {
		return 0, err
	}
	pos := uint64(count) + 1
	if _, err = tx.Exec(`INSERT INTO nodes (pos, digest) VALUES (?, ?)`, int64(pos), digest); err != nil {
		return 0, err
	}
	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return pos, nil
}

// Size returns the number of stored digests.
func (s *Store) Size() (uint64, error) {
	var count int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM nodes`).Scan(&count); err != nil {
		return 0, err
	}
	return uint64(count), nil
}
