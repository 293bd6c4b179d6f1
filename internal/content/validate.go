package content

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidationError contains details about a single validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ValidationErrors aggregates every failure found in a chapter.
type ValidationErrors []ValidationError

func (es ValidationErrors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the invariants the runner engine assumes about a chapter:
//   - ID, title and target word are present
//   - one question per target-word letter
//   - every question has a notion, prompt and three non-empty options
//   - the correct index is in range
//
// Warnings flag recoverable issues (missing explanation, non-letter runes).
// The returned error is a ValidationErrors value, or nil.
func Validate(ch Chapter) (warnings []string, err error) {
	var errs ValidationErrors

	if strings.TrimSpace(ch.ID) == "" {
		errs = append(errs, ValidationError{Code: "MISSING_ID", Message: "chapter must have an id"})
	}
	if strings.TrimSpace(ch.Title) == "" {
		errs = append(errs, ValidationError{Code: "MISSING_TITLE", Message: "chapter must have a title"})
	}

	word := strings.TrimSpace(ch.TargetWord)
	if word == "" {
		errs = append(errs, ValidationError{Code: "MISSING_WORD", Message: "chapter must have a target word"})
	} else if word != strings.ToUpper(word) {
		errs = append(errs, ValidationError{
			Code:    "WORD_NOT_UPPERCASE",
			Message: fmt.Sprintf("target word %q must be uppercase", ch.TargetWord),
		})
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			warnings = append(warnings, fmt.Sprintf("target word %q contains non-letter %q", word, r))
			break
		}
	}

	wordLen := len([]rune(ch.TargetWord))
	if len(ch.Questions) != wordLen {
		errs = append(errs, ValidationError{
			Code: "QUESTION_COUNT",
			Message: fmt.Sprintf("question count (%d) must equal the length of target word %q (%d letters)",
				len(ch.Questions), ch.TargetWord, wordLen),
		})
	}

	for i, q := range ch.Questions {
		prefix := fmt.Sprintf("question %d", i+1)

		if strings.TrimSpace(q.Notion) == "" {
			errs = append(errs, ValidationError{Code: "MISSING_NOTION", Message: prefix + ": notion must not be empty"})
		}
		if strings.TrimSpace(q.Prompt) == "" {
			errs = append(errs, ValidationError{Code: "MISSING_PROMPT", Message: prefix + ": prompt must not be empty"})
		}
		for j, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				errs = append(errs, ValidationError{
					Code:    "EMPTY_OPTION",
					Message: fmt.Sprintf("%s: option %d must not be empty", prefix, j+1),
				})
			}
		}
		if q.Correct < 0 || q.Correct >= OptionCount {
			errs = append(errs, ValidationError{
				Code:    "CORRECT_RANGE",
				Message: fmt.Sprintf("%s: correct index must be 0, 1 or 2 (got %d)", prefix, q.Correct),
			})
		}
		if strings.TrimSpace(q.Explanation) == "" {
			warnings = append(warnings, prefix+": an explanation is recommended")
		}
	}

	if len(errs) > 0 {
		return warnings, errs
	}
	return warnings, nil
}

// ValidateSet validates every chapter of a set and rejects duplicate IDs.
func ValidateSet(s Set) (warnings []string, err error) {
	var errs ValidationErrors
	seen := make(map[string]bool)

	if len(s.Chapters) == 0 {
		errs = append(errs, ValidationError{Code: "EMPTY_SET", Message: "question set has no chapters"})
	}

	for _, ch := range s.Chapters {
		if seen[ch.ID] {
			errs = append(errs, ValidationError{
				Code:    "DUPLICATE_ID",
				Message: fmt.Sprintf("chapter id %q appears more than once", ch.ID),
			})
		}
		seen[ch.ID] = true

		w, chErr := Validate(ch)
		for _, msg := range w {
			warnings = append(warnings, fmt.Sprintf("%s: %s", ch.ID, msg))
		}
		if chErr != nil {
			var ves ValidationErrors
			if asErrs, ok := chErr.(ValidationErrors); ok {
				ves = asErrs
			}
			for _, ve := range ves {
				ve.Message = fmt.Sprintf("%s: %s", ch.ID, ve.Message)
				errs = append(errs, ve)
			}
		}
	}

	if len(errs) > 0 {
		return warnings, errs
	}
	return warnings, nil
}
