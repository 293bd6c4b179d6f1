package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/vovakirdan/word-runner/internal/content"
)

// ErrSetNotFound is returned when a question set ID is not in the library.
var ErrSetNotFound = errors.New("storage: question set not found")

const activeSetKey = "active_set"

// SetInfo summarizes a stored question set.
type SetInfo struct {
	ID          string
	Name        string
	Description string
	Chapters    int
	CreatedAt   time.Time
}

// NewSetID generates an ID for a question set imported without one.
func NewSetID() string {
	return "qcm-" + strings.ToLower(ulid.Make().String())
}

// SaveSet inserts a question set, replacing any stored set with the same ID.
// The set is expected to be validated already. Returns the stored ID.
func (s *Store) SaveSet(set content.Set) (string, error) {
	if set.ID == "" {
		set.ID = NewSetID()
	}
	if set.Name == "" {
		set.Name = set.ID
	}

	tx, err := s.db.BeginTx(context.Background(), nil)
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := deleteSetRows(tx, set.ID); err != nil {
		return "", err
	}

	if _, err := tx.Exec(
		"INSERT INTO question_sets (id, name, description) VALUES (?, ?, ?)",
		set.ID, set.Name, set.Description,
	); err != nil {
		return "", fmt.Errorf("storage: cannot save set: %w", err)
	}

	for pos, ch := range set.Chapters {
		if _, err := tx.Exec(
			`INSERT INTO chapters (set_id, id, position, title, description, target_word)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			set.ID, ch.ID, pos, ch.Title, ch.Description, ch.TargetWord,
		); err != nil {
			return "", fmt.Errorf("storage: cannot save chapter %s: %w", ch.ID, err)
		}

		for qpos, q := range ch.Questions {
			if _, err := tx.Exec(
				`INSERT INTO questions
				 (set_id, chapter_id, position, id, notion, prompt, option1, option2, option3, correct, explanation)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				set.ID, ch.ID, qpos, q.ID, q.Notion, q.Prompt,
				q.Options[0], q.Options[1], q.Options[2], q.Correct, q.Explanation,
			); err != nil {
				return "", fmt.Errorf("storage: cannot save question %s: %w", q.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit set: %w", err)
	}
	return set.ID, nil
}

func deleteSetRows(tx *sql.Tx, setID string) error {
	for _, table := range []string{"questions", "chapters"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE set_id = ?", setID); err != nil {
			return fmt.Errorf("storage: cannot delete %s: %w", table, err)
		}
	}
	if _, err := tx.Exec("DELETE FROM question_sets WHERE id = ?", setID); err != nil {
		return fmt.Errorf("storage: cannot delete set: %w", err)
	}
	return nil
}

// ListSets returns every stored set in creation order.
func (s *Store) ListSets() ([]SetInfo, error) {
	rows, err := s.db.Query(
		`SELECT qs.id, qs.name, qs.description, qs.created_at,
		        (SELECT COUNT(*) FROM chapters c WHERE c.set_id = qs.id)
		 FROM question_sets qs
		 ORDER BY qs.created_at ASC, qs.id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sets: %w", err)
	}
	defer rows.Close()

	var sets []SetInfo
	for rows.Next() {
		var info SetInfo
		var createdAt any
		if err := rows.Scan(&info.ID, &info.Name, &info.Description, &createdAt, &info.Chapters); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.CreatedAt = parseTime(createdAt)
		sets = append(sets, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return sets, nil
}

// LoadSet reads a full question set.
func (s *Store) LoadSet(id string) (content.Set, error) {
	set := content.Set{ID: id}
	err := s.db.QueryRow(
		"SELECT name, description FROM question_sets WHERE id = ?", id,
	).Scan(&set.Name, &set.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return content.Set{}, fmt.Errorf("%w: %s", ErrSetNotFound, id)
	}
	if err != nil {
		return content.Set{}, fmt.Errorf("storage: cannot query set: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT id, title, description, target_word
		 FROM chapters WHERE set_id = ? ORDER BY position`,
		id,
	)
	if err != nil {
		return content.Set{}, fmt.Errorf("storage: cannot query chapters: %w", err)
	}
	for rows.Next() {
		var ch content.Chapter
		if err := rows.Scan(&ch.ID, &ch.Title, &ch.Description, &ch.TargetWord); err != nil {
			rows.Close()
			return content.Set{}, fmt.Errorf("storage: cannot scan chapter: %w", err)
		}
		set.Chapters = append(set.Chapters, ch)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return content.Set{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	for i := range set.Chapters {
		qs, err := s.loadQuestions(id, set.Chapters[i].ID)
		if err != nil {
			return content.Set{}, err
		}
		set.Chapters[i].Questions = qs
	}
	return set, nil
}

func (s *Store) loadQuestions(setID, chapterID string) ([]content.Question, error) {
	rows, err := s.db.Query(
		`SELECT id, notion, prompt, option1, option2, option3, correct, explanation
		 FROM questions WHERE set_id = ? AND chapter_id = ? ORDER BY position`,
		setID, chapterID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query questions: %w", err)
	}
	defer rows.Close()

	var qs []content.Question
	for rows.Next() {
		var q content.Question
		if err := rows.Scan(&q.ID, &q.Notion, &q.Prompt,
			&q.Options[0], &q.Options[1], &q.Options[2], &q.Correct, &q.Explanation); err != nil {
			return nil, fmt.Errorf("storage: cannot scan question: %w", err)
		}
		qs = append(qs, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return qs, nil
}

// DeleteSet removes a set. When it was the active set the selection is
// cleared.
func (s *Store) DeleteSet(id string) error {
	tx, err := s.db.BeginTx(context.Background(), nil)
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	if err := tx.QueryRow("SELECT COUNT(*) FROM question_sets WHERE id = ?", id).Scan(&exists); err != nil {
		return fmt.Errorf("storage: cannot query set: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("%w: %s", ErrSetNotFound, id)
	}

	if err := deleteSetRows(tx, id); err != nil {
		return err
	}
	if _, err := tx.Exec(
		"DELETE FROM settings WHERE key = ? AND value = ?", activeSetKey, id,
	); err != nil {
		return fmt.Errorf("storage: cannot reset active set: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// ActiveSet returns the ID of the active set, or "" when the built-in
// chapters are in use.
func (s *Store) ActiveSet() (string, error) {
	var id string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", activeSetKey).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot query active set: %w", err)
	}
	return id, nil
}

// SetActiveSet selects a stored set. An empty ID clears the selection.
func (s *Store) SetActiveSet(id string) error {
	if id == "" {
		if _, err := s.db.Exec("DELETE FROM settings WHERE key = ?", activeSetKey); err != nil {
			return fmt.Errorf("storage: cannot clear active set: %w", err)
		}
		return nil
	}

	var exists int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM question_sets WHERE id = ?", id).Scan(&exists); err != nil {
		return fmt.Errorf("storage: cannot query set: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("%w: %s", ErrSetNotFound, id)
	}

	if _, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		activeSetKey, id,
	); err != nil {
		return fmt.Errorf("storage: cannot set active set: %w", err)
	}
	return nil
}

// ResolveLibrary returns the chapters of the active set, or fallback when no
// set is active. The second value names the source.
func (s *Store) ResolveLibrary(fallback *content.Library) (*content.Library, string, error) {
	id, err := s.ActiveSet()
	if err != nil {
		return fallback, "", err
	}
	if id == "" {
		return fallback, "", nil
	}

	set, err := s.LoadSet(id)
	if err != nil {
		return fallback, "", err
	}
	lib := content.NewLibrary()
	lib.AddSet(set)
	return lib, set.Name, nil
}
