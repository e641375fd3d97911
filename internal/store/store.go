package store

import (
	"database/sql"
	"encoding/json"
	"log/slog"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store persists named JSON documents in a local SQLite file. The catalog
// and the wishlist are each a single document, written whole on every
// mutation and read once at startup.
type Store struct {
	DB *sql.DB
}

func NewStore(dataSourceName string) (*Store, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &Store{DB: db}, nil
}

func (s *Store) InitSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS kv (
		name  TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.DB.Exec(query)
	if err != nil {
		slog.Error("Error creating schema", "error", err)
		return err
	}
	return nil
}

// Get loads the named document into v and reports whether it was present.
// A missing name, a failed read or a value that does not decode all count
// as absent; callers start from their empty state instead of failing.
func (s *Store) Get(name string, v any) bool {
	var raw string
	err := s.DB.QueryRow(`SELECT value FROM kv WHERE name = ?`, name).Scan(&raw)
	if err != nil {
		if err != sql.ErrNoRows {
			slog.Warn("Failed to read document", "name", name, "error", err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		slog.Warn("Stored document is not valid JSON, treating as absent", "name", name, "error", err)
		return false
	}
	return true
}

// Put serializes v and upserts it under the given name.
func (s *Store) Put(name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	query := `
	INSERT INTO kv (name, value) VALUES (?, ?)
	ON CONFLICT(name) DO UPDATE SET value = excluded.value
	`
	_, err = s.DB.Exec(query, name, string(raw))
	return err
}

func (s *Store) Close() error {
	return s.DB.Close()
}
