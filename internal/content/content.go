// Package content holds the static chapter/question model consumed by the
// runner engine, plus validation and file loading for chapter packs.
// Chapters are immutable once loaded.
package content

import (
	"errors"
	"fmt"
	"sort"
)

// OptionCount is the number of answer options every question carries.
const OptionCount = 3

// ErrChapterNotFound is returned by library lookups for unknown chapter IDs.
var ErrChapterNotFound = errors.New("content: chapter not found")

// Question is a three-option multiple-choice question bound to one letter.
type Question struct {
	ID          string
	Notion      string // Concept label shown with the question
	Prompt      string
	Options     [OptionCount]string
	Correct     int // Index of the correct option in [0, OptionCount)
	Explanation string
}

// CorrectOption returns the text of the correct option.
func (q Question) CorrectOption() string {
	if q.Correct < 0 || q.Correct >= OptionCount {
		return ""
	}
	return q.Options[q.Correct]
}

// Chapter pairs a target word with one question per letter.
type Chapter struct {
	ID          string
	Title       string
	Description string
	TargetWord  string // Uppercase; letter i maps to Questions[i]
	Questions   []Question
}

// Letters returns the target word as runes.
func (c *Chapter) Letters() []rune {
	return []rune(c.TargetWord)
}

// WordLength returns the number of letters in the target word.
func (c *Chapter) WordLength() int {
	return len([]rune(c.TargetWord))
}

// Letter returns the letter at a word index, or 0 when out of range.
func (c *Chapter) Letter(index int) rune {
	letters := c.Letters()
	if index < 0 || index >= len(letters) {
		return 0
	}
	return letters[index]
}

// Question returns the question for a word index.
func (c *Chapter) Question(index int) (Question, bool) {
	if index < 0 || index >= len(c.Questions) {
		return Question{}, false
	}
	return c.Questions[index], true
}

// Set is a named collection of chapters (a question-set).
type Set struct {
	ID          string
	Name        string
	Description string
	Chapters    []Chapter
}

// Library is an ordered, read-only index of chapters keyed by ID.
// Later additions with a duplicate ID replace earlier ones in place.
type Library struct {
	order    []string
	chapters map[string]*Chapter
}

// NewLibrary creates a library from the given chapters.
func NewLibrary(chapters ...Chapter) *Library {
	lib := &Library{chapters: make(map[string]*Chapter)}
	for _, ch := range chapters {
		lib.Add(ch)
	}
	return lib
}

// Add inserts or replaces a chapter.
func (l *Library) Add(ch Chapter) {
	if l.chapters == nil {
		l.chapters = make(map[string]*Chapter)
	}
	c := ch
	if _, exists := l.chapters[ch.ID]; !exists {
		l.order = append(l.order, ch.ID)
	}
	l.chapters[ch.ID] = &c
}

// AddSet inserts every chapter of a set.
func (l *Library) AddSet(s Set) {
	for _, ch := range s.Chapters {
		l.Add(ch)
	}
}

// Get returns the chapter with the given ID.
func (l *Library) Get(id string) (*Chapter, error) {
	if l == nil {
		return nil, fmt.Errorf("%w: %q", ErrChapterNotFound, id)
	}
	ch, ok := l.chapters[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrChapterNotFound, id)
	}
	return ch, nil
}

// Has reports whether a chapter exists.
func (l *Library) Has(id string) bool {
	if l == nil {
		return false
	}
	_, ok := l.chapters[id]
	return ok
}

// List returns chapters in insertion order.
func (l *Library) List() []*Chapter {
	if l == nil {
		return nil
	}
	result := make([]*Chapter, 0, len(l.order))
	for _, id := range l.order {
		result = append(result, l.chapters[id])
	}
	return result
}

// IDs returns the chapter IDs sorted alphabetically.
func (l *Library) IDs() []string {
	if l == nil {
		return nil
	}
	ids := make([]string, len(l.order))
	copy(ids, l.order)
	sort.Strings(ids)
	return ids
}

// Len returns the number of chapters.
func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.order)
}
