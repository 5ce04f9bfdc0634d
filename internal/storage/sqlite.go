// Package storage provides SQLite-based persistence for finished session
// records. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"snakecoach/internal/game"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SessionEntry is one persisted session outcome.
type SessionEntry struct {
	ID           int64
	Mode         string
	Score        int
	SurvivalSecs int
	MaxLength    int
	Cause        string
	CreatedAt    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			survival_secs INTEGER NOT NULL,
			max_length INTEGER NOT NULL,
			cause TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_score ON sessions(score DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSession persists a finished session record and returns its row id.
func (s *Store) SaveSession(rec game.Record) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions (mode, score, survival_secs, max_length, cause) VALUES (?, ?, ?, ?, ?)`,
		string(rec.Mode), rec.Score, rec.SurvivalSecs, rec.MaxLength, rec.Cause,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: save session: %w", err)
	}
	return result.LastInsertId()
}

// BestSessions returns up to limit sessions ordered by score descending.
func (s *Store) BestSessions(limit int) ([]SessionEntry, error) {
	return s.querySessions(
		`SELECT id, mode, score, survival_secs, max_length, cause, created_at
		 FROM sessions ORDER BY score DESC, created_at DESC LIMIT ?`, limit)
}

// RecentSessions returns up to limit sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionEntry, error) {
	return s.querySessions(
		`SELECT id, mode, score, survival_secs, max_length, cause, created_at
		 FROM sessions ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
}

func (s *Store) querySessions(query string, limit int) ([]SessionEntry, error) {
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		if err := rows.Scan(&e.ID, &e.Mode, &e.Score, &e.SurvivalSecs, &e.MaxLength, &e.Cause, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: scan session: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
