package content

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultExplanation replaces a missing explanation after validation.
const DefaultExplanation = "Aucune explication fournie."

// csvColumns is the number of columns in a chapter CSV row:
// ChapitreID,Titre,Description,MotCible,Notion,Question,Reponse1,Reponse2,Reponse3,IndexCorrect,Explication
const csvColumns = 11

// FileChapter is the on-disk chapter structure.
// Both the native English keys and the French import keys are accepted.
type FileChapter struct {
	ID          string         `yaml:"id"`
	Title       string         `yaml:"title,omitempty"`
	Titre       string         `yaml:"titre,omitempty"`
	Description string         `yaml:"description,omitempty"`
	Word        string         `yaml:"word,omitempty"`
	MotCible    string         `yaml:"motCible,omitempty"`
	Questions   []FileQuestion `yaml:"questions"`
}

// FileQuestion is the on-disk question structure.
type FileQuestion struct {
	Notion          string   `yaml:"notion"`
	Prompt          string   `yaml:"prompt,omitempty"`
	Question        string   `yaml:"question,omitempty"`
	Options         []string `yaml:"options,omitempty"`
	Reponses        []string `yaml:"reponses,omitempty"`
	Correct         *int     `yaml:"correct,omitempty"`
	ReponseCorrecte *int     `yaml:"reponseCorrecte,omitempty"`
	Explanation     string   `yaml:"explanation,omitempty"`
	Explication     string   `yaml:"explication,omitempty"`
}

// FilePack is a set file: metadata plus a list of chapters.
type FilePack struct {
	ID          string        `yaml:"id,omitempty"`
	Name        string        `yaml:"name,omitempty"`
	Description string        `yaml:"description,omitempty"`
	Chapters    []FileChapter `yaml:"chapters"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// ToChapter converts and validates a file chapter.
// The target word is uppercased, question IDs are derived from the chapter ID
// and a missing explanation is replaced by DefaultExplanation.
func (fc FileChapter) ToChapter() (Chapter, []string, error) {
	var errs ValidationErrors

	ch := Chapter{
		ID:          strings.TrimSpace(fc.ID),
		Title:       firstNonEmpty(fc.Title, fc.Titre),
		Description: fc.Description,
		TargetWord:  strings.ToUpper(strings.TrimSpace(firstNonEmpty(fc.Word, fc.MotCible))),
		Questions:   make([]Question, 0, len(fc.Questions)),
	}

	for i, fq := range fc.Questions {
		prefix := fmt.Sprintf("question %d", i+1)

		opts := fq.Options
		if len(opts) == 0 {
			opts = fq.Reponses
		}
		if len(opts) != OptionCount {
			errs = append(errs, ValidationError{
				Code:    "OPTION_COUNT",
				Message: fmt.Sprintf("%s: exactly %d options are required (got %d)", prefix, OptionCount, len(opts)),
			})
		}

		correct := fq.Correct
		if correct == nil {
			correct = fq.ReponseCorrecte
		}
		if correct == nil {
			errs = append(errs, ValidationError{
				Code:    "MISSING_CORRECT",
				Message: prefix + ": the correct option index must be a number",
			})
		}

		q := Question{
			ID:          fmt.Sprintf("%s-q%d", ch.ID, i+1),
			Notion:      fq.Notion,
			Prompt:      firstNonEmpty(fq.Prompt, fq.Question),
			Explanation: firstNonEmpty(fq.Explanation, fq.Explication),
		}
		for j := 0; j < OptionCount && j < len(opts); j++ {
			q.Options[j] = strings.TrimSpace(opts[j])
		}
		if correct != nil {
			q.Correct = *correct
		}
		ch.Questions = append(ch.Questions, q)
	}

	warnings, err := Validate(ch)
	if err != nil {
		var ves ValidationErrors
		if errors.As(err, &ves) {
			errs = append(errs, ves...)
		}
	}
	if len(errs) > 0 {
		return Chapter{}, warnings, errs
	}

	for i := range ch.Questions {
		if strings.TrimSpace(ch.Questions[i].Explanation) == "" {
			ch.Questions[i].Explanation = DefaultExplanation
		}
	}
	return ch, warnings, nil
}

// FromChapter builds the native file representation of a chapter.
func FromChapter(ch Chapter) FileChapter {
	fc := FileChapter{
		ID:          ch.ID,
		Title:       ch.Title,
		Description: ch.Description,
		Word:        ch.TargetWord,
		Questions:   make([]FileQuestion, len(ch.Questions)),
	}
	for i, q := range ch.Questions {
		correct := q.Correct
		fc.Questions[i] = FileQuestion{
			Notion:      q.Notion,
			Prompt:      q.Prompt,
			Options:     []string{q.Options[0], q.Options[1], q.Options[2]},
			Correct:     &correct,
			Explanation: q.Explanation,
		}
	}
	return fc
}

// ParseYAML parses a chapter document. JSON input is accepted as YAML.
// The document may be a single chapter, a list of chapters, or a pack
// mapping with a "chapters" key.
func ParseYAML(data []byte) (FilePack, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return FilePack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return FilePack{}, fmt.Errorf("yaml unmarshal: empty document")
	}
	node := root.Content[0]

	var pack FilePack
	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&pack.Chapters); err != nil {
			return FilePack{}, fmt.Errorf("decode chapter list: %w", err)
		}
	case yaml.MappingNode:
		if hasKey(node, "chapters") {
			if err := node.Decode(&pack); err != nil {
				return FilePack{}, fmt.Errorf("decode pack: %w", err)
			}
		} else {
			var fc FileChapter
			if err := node.Decode(&fc); err != nil {
				return FilePack{}, fmt.Errorf("decode chapter: %w", err)
			}
			pack.Chapters = []FileChapter{fc}
		}
	default:
		return FilePack{}, fmt.Errorf("unexpected document kind %d", node.Kind)
	}
	return pack, nil
}

func hasKey(mapping *yaml.Node, key string) bool {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return true
		}
	}
	return false
}

// ParseCSV parses the 11-column chapter CSV layout. The first row is a
// header. Rows are grouped by chapter ID in first-seen order; short rows are
// skipped with a warning.
func ParseCSV(data []byte) (FilePack, []string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var (
		pack     FilePack
		warnings []string
		index    = make(map[string]int)
		line     int
	)

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return FilePack{}, warnings, fmt.Errorf("csv read: %w", err)
		}
		line++
		if line == 1 {
			continue // header
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		if len(record) < csvColumns {
			warnings = append(warnings, fmt.Sprintf("line %d: %d columns instead of %d", line, len(record), csvColumns))
			continue
		}
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}

		id := record[0]
		pos, ok := index[id]
		if !ok {
			pack.Chapters = append(pack.Chapters, FileChapter{
				ID:          id,
				Title:       record[1],
				Description: record[2],
				Word:        record[3],
			})
			pos = len(pack.Chapters) - 1
			index[id] = pos
		}

		fq := FileQuestion{
			Notion:      record[4],
			Prompt:      record[5],
			Options:     []string{record[6], record[7], record[8]},
			Explanation: record[10],
		}
		if n, err := strconv.Atoi(record[9]); err == nil {
			fq.Correct = &n
		}
		pack.Chapters[pos].Questions = append(pack.Chapters[pos].Questions, fq)
	}

	if len(pack.Chapters) == 0 {
		return FilePack{}, warnings, fmt.Errorf("csv: no data rows")
	}
	return pack, warnings, nil
}

// ToSet converts every chapter of a pack. Warnings are prefixed with the
// chapter ID. All conversion failures are collected into one
// ValidationErrors value.
func (p FilePack) ToSet() (Set, []string, error) {
	set := Set{ID: p.ID, Name: p.Name, Description: p.Description}
	var (
		warnings []string
		errs     ValidationErrors
		seen     = make(map[string]bool)
	)

	if len(p.Chapters) == 0 {
		return Set{}, nil, ValidationErrors{{Code: "EMPTY_SET", Message: "no chapters found"}}
	}

	for i, fc := range p.Chapters {
		label := fc.ID
		if strings.TrimSpace(label) == "" {
			label = fmt.Sprintf("chapter %d", i+1)
		}

		ch, w, err := fc.ToChapter()
		for _, msg := range w {
			warnings = append(warnings, label+": "+msg)
		}
		if err != nil {
			var ves ValidationErrors
			if errors.As(err, &ves) {
				for _, ve := range ves {
					ve.Message = label + ": " + ve.Message
					errs = append(errs, ve)
				}
			}
			continue
		}
		if seen[ch.ID] {
			errs = append(errs, ValidationError{
				Code:    "DUPLICATE_ID",
				Message: fmt.Sprintf("chapter id %q appears more than once", ch.ID),
			})
			continue
		}
		seen[ch.ID] = true
		set.Chapters = append(set.Chapters, ch)
	}

	if len(errs) > 0 {
		return Set{}, warnings, errs
	}
	return set, warnings, nil
}

// MarshalSet renders a set in the native YAML layout.
func MarshalSet(s Set) ([]byte, error) {
	pack := FilePack{ID: s.ID, Name: s.Name, Description: s.Description}
	for _, ch := range s.Chapters {
		pack.Chapters = append(pack.Chapters, FromChapter(ch))
	}
	data, err := yaml.Marshal(pack)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// FormatExtensions returns supported chapter file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".json", ".csv"}
}
