// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/PsychedelicShayna/smokey/internal/words"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store caches word-list line counts so large files are only scanned once.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS wordlist_meta (
			path TEXT PRIMARY KEY,
			mtime_ns INTEGER NOT NULL,
			lines INTEGER NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// LineCount returns the cached line count for a word list, if the cached
// entry matches the file's current modification time.
func (s *Store) LineCount(ctx context.Context, path string, mtimeNS int64) (int, bool, error) {
	var lines int
	err := s.db.QueryRowContext(ctx,
		`SELECT lines FROM wordlist_meta WHERE path = ? AND mtime_ns = ?`,
		path, mtimeNS,
	).Scan(&lines)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return lines, true, nil
}

// PutLineCount records the line count for a word list at a given mtime.
func (s *Store) PutLineCount(ctx context.Context, path string, mtimeNS int64, lines int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO wordlist_meta (path, mtime_ns, lines) VALUES (?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET mtime_ns = excluded.mtime_ns, lines = excluded.lines`,
		path, mtimeNS, lines,
	)
	return err
}

// CountLines returns the number of lines in a word list, scanning the
// file only when the cache misses or the file has changed on disk.
func (s *Store) CountLines(ctx context.Context, path string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	mtimeNS := info.ModTime().UnixNano()
	if lines, ok, err := s.LineCount(ctx, path, mtimeNS); err == nil && ok {
		return lines, nil
	}
	lines, err := words.CountLines(path)
	if err != nil {
		return 0, err
	}
	if err := s.PutLineCount(ctx, path, mtimeNS, lines); err != nil {
		return 0, err
	}
	return lines, nil
}
