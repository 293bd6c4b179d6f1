// Package storage provides SQLite-based persistence for run history and the
// custom question-set library.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run outcomes recorded with each run.
const (
	OutcomeVictory   = "victory"
	OutcomeAbandoned = "abandoned"
)

// RunRecord is one finished run.
type RunRecord struct {
	ID        string // ULID, sortable by creation time
	ChapterID string
	Score     int
	Distance  float64
	Gems      int
	Letters   int // Letters collected
	Outcome   string
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			chapter_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			distance REAL NOT NULL DEFAULT 0,
			gems INTEGER NOT NULL DEFAULT 0,
			letters INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_chapter_id ON runs(chapter_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(chapter_id, score DESC);

		CREATE TABLE IF NOT EXISTS question_sets (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS chapters (
			set_id TEXT NOT NULL,
			id TEXT NOT NULL,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			target_word TEXT NOT NULL,
			PRIMARY KEY (set_id, id)
		);

		CREATE TABLE IF NOT EXISTS questions (
			set_id TEXT NOT NULL,
			chapter_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			id TEXT NOT NULL,
			notion TEXT NOT NULL,
			prompt TEXT NOT NULL,
			option1 TEXT NOT NULL,
			option2 TEXT NOT NULL,
			option3 TEXT NOT NULL,
			correct INTEGER NOT NULL,
			explanation TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (set_id, chapter_id, position)
		);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its generated ID.
func (s *Store) SaveRun(run RunRecord) (string, error) {
	id := ulid.Make().String()
	if run.Outcome == "" {
		run.Outcome = OutcomeAbandoned
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, chapter_id, score, distance, gems, letters, outcome)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, run.ChapterID, run.Score, run.Distance, run.Gems, run.Letters, run.Outcome,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return id, nil
}

// TopRuns retrieves the top N runs for the given chapter.
// Results are ordered by score descending.
func (s *Store) TopRuns(chapterID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, chapter_id, score, distance, gems, letters, outcome, created_at
		 FROM runs
		 WHERE chapter_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		chapterID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns retrieves the most recent runs across all chapters.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, chapter_id, score, distance, gems, letters, outcome, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]RunRecord, error) {
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.ChapterID, &r.Score, &r.Distance, &r.Gems, &r.Letters, &r.Outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// HighScore returns the highest score for the given chapter.
// Returns 0 if no runs exist.
func (s *Store) HighScore(chapterID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE chapter_id = ?",
		chapterID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearRuns deletes all runs for the given chapter.
func (s *Store) ClearRuns(chapterID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE chapter_id = ?", chapterID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// ChapterStats contains aggregated statistics for a chapter.
type ChapterStats struct {
	ChapterID    string
	RunsCount    int
	Victories    int
	HighScore    int
	AvgScore     float64
	BestDistance float64
	TotalGems    int64
	LastPlayed   time.Time
}

// GetChapterStats retrieves aggregated statistics for a specific chapter.
func (s *Store) GetChapterStats(chapterID string) (*ChapterStats, error) {
	stats := &ChapterStats{ChapterID: chapterID}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(distance), 0), COALESCE(SUM(gems), 0)
		 FROM runs WHERE chapter_id = ?`,
		OutcomeVictory, chapterID,
	).Scan(&stats.RunsCount, &stats.Victories, &stats.HighScore, &stats.AvgScore, &stats.BestDistance, &stats.TotalGems)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get chapter stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE chapter_id = ? ORDER BY id DESC LIMIT 1`,
		chapterID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetime values from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
