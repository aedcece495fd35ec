// Package history persists past capacity and token estimates in a local
// sqlite database so they can be reviewed later.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db   *sql.DB
	path string
}

// Record is one stored estimate. Kind is "capacity" or "analyze".
type Record struct {
	ID             string  `json:"id"`
	Kind           string  `json:"kind"`
	Model          string  `json:"model"`
	AvgInputTokens float64 `json:"avg_input_tokens"`
	RequestsDay    float64 `json:"requests_day"`
	CapacityNeed   float64 `json:"capacity_need"`
	Lines          int     `json:"lines"`
	Tokens         int     `json:"tokens"`
	CreatedAt      string  `json:"created_at"` // RFC3339
}

// Open creates or opens the sqlite database at path with WAL mode and a
// busy timeout, creating the estimates table if needed.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("history: open: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: ping: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("history: %s: %w", p, err)
		}
	}

	ddl := `CREATE TABLE IF NOT EXISTS estimates (
		id               TEXT PRIMARY KEY,
		kind             TEXT NOT NULL,
		model            TEXT NOT NULL DEFAULT '',
		avg_input_tokens REAL NOT NULL DEFAULT 0,
		requests_day     REAL NOT NULL DEFAULT 0,
		capacity_need    REAL NOT NULL DEFAULT 0,
		lines            INTEGER NOT NULL DEFAULT 0,
		tokens           INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL
	)`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create table: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Append stores a record, stamping a fresh ID and creation time. The
// stored record is returned.
func (s *Store) Append(r Record) (Record, error) {
	r.ID = uuid.NewString()
	r.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	_, err := s.db.Exec(
		`INSERT INTO estimates (id, kind, model, avg_input_tokens, requests_day, capacity_need, lines, tokens, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Kind, r.Model, r.AvgInputTokens, r.RequestsDay, r.CapacityNeed, r.Lines, r.Tokens, r.CreatedAt,
	)
	if err != nil {
		return Record{}, fmt.Errorf("history: insert: %w", err)
	}
	return r, nil
}

// Recent returns the most recent records, newest first. A limit of 0
// returns all records.
func (s *Store) Recent(limit int) ([]Record, error) {
	query := `SELECT id, kind, model, avg_input_tokens, requests_day, capacity_need, lines, tokens, created_at
		FROM estimates ORDER BY rowid DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Kind, &r.Model, &r.AvgInputTokens, &r.RequestsDay, &r.CapacityNeed, &r.Lines, &r.Tokens, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: rows: %w", err)
	}
	return records, nil
}
