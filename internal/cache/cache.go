// Package cache memoizes adventofcode.com responses in a local SQLite
// database so repeat runs never re-hit the site. Entries are keyed by a
// short hash of the session cookie, so switching accounts never serves
// another account's puzzle input.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SessionHash derives the cache identity key from a session cookie: the
// first 8 hex characters of its SHA-256.
func SessionHash(session string) string {
	sum := sha256.Sum256([]byte(session))
	return hex.EncodeToString(sum[:])[:8]
}

// Store is the on-disk response cache.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open creates or opens the cache database at path, creating parent
// directories as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cache: create directory: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: busy_timeout: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: journal_mode: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS inputs (
			session_hash TEXT NOT NULL,
			year INTEGER NOT NULL,
			day INTEGER NOT NULL,
			content TEXT NOT NULL,
			fetched_at INTEGER NOT NULL,
			PRIMARY KEY (session_hash, year, day)
		)`,
		`CREATE TABLE IF NOT EXISTS instructions (
			session_hash TEXT NOT NULL,
			year INTEGER NOT NULL,
			day INTEGER NOT NULL,
			content TEXT NOT NULL,
			fetched_at INTEGER NOT NULL,
			PRIMARY KEY (session_hash, year, day)
		)`,
		`CREATE TABLE IF NOT EXISTS submissions (
			session_hash TEXT NOT NULL,
			year INTEGER NOT NULL,
			day INTEGER NOT NULL,
			part INTEGER NOT NULL,
			answer TEXT NOT NULL,
			verdict TEXT NOT NULL,
			message TEXT NOT NULL,
			submitted_at INTEGER NOT NULL,
			PRIMARY KEY (session_hash, year, day, part, answer)
		)`,
		`CREATE TABLE IF NOT EXISTS stats (
			session_hash TEXT NOT NULL,
			year INTEGER NOT NULL,
			day INTEGER NOT NULL,
			stars INTEGER NOT NULL,
			scraped_at INTEGER NOT NULL,
			PRIMARY KEY (session_hash, year, day)
		)`,
	}
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("cache: migrate: %w", err)
		}
	}
	return nil
}

// Input returns the cached puzzle input, if present.
func (s *Store) Input(sessionHash string, year, day int) (string, bool, error) {
	return s.getText("inputs", sessionHash, year, day)
}

// PutInput caches a puzzle input.
func (s *Store) PutInput(sessionHash string, year, day int, content string) error {
	return s.putText("inputs", sessionHash, year, day, content)
}

// Instructions returns the cached rendered puzzle text, if present.
func (s *Store) Instructions(sessionHash string, year, day int) (string, bool, error) {
	return s.getText("instructions", sessionHash, year, day)
}

// PutInstructions caches rendered puzzle text. Fetching the page again
// after finishing part 1 reveals part 2, so callers overwrite freely.
func (s *Store) PutInstructions(sessionHash string, year, day int, content string) error {
	return s.putText("instructions", sessionHash, year, day, content)
}

func (s *Store) getText(table, sessionHash string, year, day int) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var content string
	err := s.db.QueryRow(
		fmt.Sprintf(`SELECT content FROM %s WHERE session_hash = ? AND year = ? AND day = ?`, table),
		sessionHash, year, day,
	).Scan(&content)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache: query %s: %w", table, err)
	}
	return content, true, nil
}

func (s *Store) putText(table, sessionHash string, year, day int, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(
		fmt.Sprintf(`INSERT OR REPLACE INTO %s (session_hash, year, day, content, fetched_at)
			VALUES (?, ?, ?, ?, ?)`, table),
		sessionHash, year, day, content, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("cache: store %s: %w", table, err)
	}
	return nil
}

// Submission is a remembered answer verdict.
type Submission struct {
	Answer  string
	Verdict string
	Message string
}

// Submission returns the cached verdict for a specific answer, if this
// exact answer was submitted before.
func (s *Store) Submission(sessionHash string, year, day, part int, answer string) (Submission, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sub Submission
	err := s.db.QueryRow(
		`SELECT answer, verdict, message FROM submissions
		 WHERE session_hash = ? AND year = ? AND day = ? AND part = ? AND answer = ?`,
		sessionHash, year, day, part, answer,
	).Scan(&sub.Answer, &sub.Verdict, &sub.Message)
	if err == sql.ErrNoRows {
		return Submission{}, false, nil
	}
	if err != nil {
		return Submission{}, false, fmt.Errorf("cache: query submissions: %w", err)
	}
	return sub, true, nil
}

// CorrectSubmission returns the cached correct answer for a puzzle part,
// regardless of which answer the caller is about to submit.
func (s *Store) CorrectSubmission(sessionHash string, year, day, part int) (Submission, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sub Submission
	err := s.db.QueryRow(
		`SELECT answer, verdict, message FROM submissions
		 WHERE session_hash = ? AND year = ? AND day = ? AND part = ? AND verdict = 'correct'`,
		sessionHash, year, day, part,
	).Scan(&sub.Answer, &sub.Verdict, &sub.Message)
	if err == sql.ErrNoRows {
		return Submission{}, false, nil
	}
	if err != nil {
		return Submission{}, false, fmt.Errorf("cache: query submissions: %w", err)
	}
	return sub, true, nil
}

// PutSubmission caches an answer verdict.
func (s *Store) PutSubmission(sessionHash string, year, day, part int, sub Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO submissions
			(session_hash, year, day, part, answer, verdict, message, submitted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sessionHash, year, day, part, sub.Answer, sub.Verdict, sub.Message, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("cache: store submission: %w", err)
	}
	return nil
}

// Stars returns the cached star counts (day -> 0, 1 or 2) for a year.
func (s *Store) Stars(sessionHash string, year int) (map[int]int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query(
		`SELECT day, stars FROM stats WHERE session_hash = ? AND year = ?`,
		sessionHash, year,
	)
	if err != nil {
		return nil, false, fmt.Errorf("cache: query stats: %w", err)
	}
	defer rows.Close()

	stars := map[int]int{}
	for rows.Next() {
		var day, n int
		if err := rows.Scan(&day, &n); err != nil {
			return nil, false, fmt.Errorf("cache: scan stats: %w", err)
		}
		stars[day] = n
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("cache: stats rows: %w", err)
	}
	return stars, len(stars) > 0, nil
}

// PutStars caches the star counts for a year.
func (s *Store) PutStars(sessionHash string, year int, stars map[int]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("cache: begin: %w", err)
	}
	now := time.Now().Unix()
	for day, n := range stars {
		if _, err := tx.Exec(
			`INSERT OR REPLACE INTO stats (session_hash, year, day, stars, scraped_at)
			 VALUES (?, ?, ?, ?, ?)`,
			sessionHash, year, day, n, now,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("cache: store stats: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("cache: commit stats: %w", err)
	}
	return nil
}

// Category names one clearable slice of the cache.
type Category struct {
	Name  string
	Table string
	Count int
}

// Categories returns the clearable cache categories with row counts.
func (s *Store) Categories() ([]Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cats := []Category{
		{Name: "Puzzle inputs", Table: "inputs"},
		{Name: "Puzzle instructions", Table: "instructions"},
		{Name: "Submission results", Table: "submissions"},
		{Name: "Star statistics", Table: "stats"},
	}
	for i := range cats {
		row := s.db.QueryRow(fmt.Sprintf(`SELECT COUNT(*) FROM %s`, cats[i].Table))
		if err := row.Scan(&cats[i].Count); err != nil {
			return nil, fmt.Errorf("cache: count %s: %w", cats[i].Table, err)
		}
	}
	return cats, nil
}

// ClearTables deletes all rows from the named tables.
func (s *Store) ClearTables(tables ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	allowed := map[string]bool{"inputs": true, "instructions": true, "submissions": true, "stats": true}
	for _, table := range tables {
		if !allowed[table] {
			return fmt.Errorf("cache: unknown table %q", table)
		}
		if _, err := s.db.Exec(fmt.Sprintf(`DELETE FROM %s`, table)); err != nil {
			return fmt.Errorf("cache: clear %s: %w", table, err)
		}
	}
	return nil
}
