package content

import (
	"errors"
	"fmt"
	"testing"
)

// testChapter builds a valid chapter for the given word.
func testChapter(id, word string) Chapter {
	ch := Chapter{ID: id, Title: "Chapter " + id, Description: "test", TargetWord: word}
	for i, r := range []rune(word) {
		ch.Questions = append(ch.Questions, Question{
			ID:          fmt.Sprintf("%s-q%d", id, i+1),
			Notion:      string(r),
			Prompt:      fmt.Sprintf("Letter %d?", i+1),
			Options:     [OptionCount]string{"a", "b", "c"},
			Correct:     i % OptionCount,
			Explanation: "because",
		})
	}
	return ch
}

func TestChapterLetters(t *testing.T) {
	ch := testChapter("c1", "ÉTÉ")

	if ch.WordLength() != 3 {
		t.Errorf("WordLength() = %d, expected 3", ch.WordLength())
	}
	if ch.Letter(0) != 'É' {
		t.Errorf("Letter(0) = %q, expected 'É'", ch.Letter(0))
	}
	if ch.Letter(3) != 0 || ch.Letter(-1) != 0 {
		t.Error("out of range Letter() should return 0")
	}
	if _, ok := ch.Question(3); ok {
		t.Error("Question(3) should not exist")
	}
	q, ok := ch.Question(1)
	if !ok || q.CorrectOption() != "b" {
		t.Errorf("Question(1).CorrectOption() = %q, expected %q", q.CorrectOption(), "b")
	}
}

func TestLibraryOrderAndReplace(t *testing.T) {
	lib := NewLibrary(testChapter("b", "AB"), testChapter("a", "ABC"))
	lib.Add(testChapter("b", "XYZ"))

	if lib.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", lib.Len())
	}

	list := lib.List()
	if list[0].ID != "b" || list[1].ID != "a" {
		t.Errorf("List() order = [%s %s], expected insertion order [b a]", list[0].ID, list[1].ID)
	}
	if list[0].TargetWord != "XYZ" {
		t.Errorf("replaced chapter word = %q, expected XYZ", list[0].TargetWord)
	}

	ids := lib.IDs()
	if ids[0] != "a" || ids[1] != "b" {
		t.Errorf("IDs() = %v, expected sorted [a b]", ids)
	}
}

func TestLibraryGetUnknown(t *testing.T) {
	lib := NewLibrary(testChapter("a", "A"))

	if _, err := lib.Get("missing"); !errors.Is(err, ErrChapterNotFound) {
		t.Errorf("Get(missing) error = %v, expected ErrChapterNotFound", err)
	}
	if !lib.Has("a") || lib.Has("missing") {
		t.Error("Has() reported wrong membership")
	}

	var nilLib *Library
	if _, err := nilLib.Get("a"); !errors.Is(err, ErrChapterNotFound) {
		t.Error("nil library Get() should return ErrChapterNotFound")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Chapter)
		code   string
	}{
		{"valid", func(*Chapter) {}, ""},
		{"missing id", func(c *Chapter) { c.ID = " " }, "MISSING_ID"},
		{"missing title", func(c *Chapter) { c.Title = "" }, "MISSING_TITLE"},
		{"missing word", func(c *Chapter) { c.TargetWord = ""; c.Questions = nil }, "MISSING_WORD"},
		{"lowercase word", func(c *Chapter) { c.TargetWord = "abc" }, "WORD_NOT_UPPERCASE"},
		{"count mismatch", func(c *Chapter) { c.Questions = c.Questions[:2] }, "QUESTION_COUNT"},
		{"empty notion", func(c *Chapter) { c.Questions[0].Notion = "" }, "MISSING_NOTION"},
		{"empty prompt", func(c *Chapter) { c.Questions[1].Prompt = "" }, "MISSING_PROMPT"},
		{"empty option", func(c *Chapter) { c.Questions[2].Options[1] = "  " }, "EMPTY_OPTION"},
		{"correct too high", func(c *Chapter) { c.Questions[0].Correct = 3 }, "CORRECT_RANGE"},
		{"correct negative", func(c *Chapter) { c.Questions[0].Correct = -1 }, "CORRECT_RANGE"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ch := testChapter("c", "ABC")
			tc.mutate(&ch)

			_, err := Validate(ch)
			if tc.code == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, expected nil", err)
				}
				return
			}

			var ves ValidationErrors
			if !errors.As(err, &ves) {
				t.Fatalf("Validate() = %v, expected ValidationErrors", err)
			}
			found := false
			for _, ve := range ves {
				if ve.Code == tc.code {
					found = true
				}
			}
			if !found {
				t.Errorf("Validate() codes = %v, expected %s", ves, tc.code)
			}
		})
	}
}

func TestValidateWarnings(t *testing.T) {
	ch := testChapter("c", "AB")
	ch.Questions[1].Explanation = ""

	warnings, err := Validate(ch)
	if err != nil {
		t.Fatalf("Validate() = %v, expected nil", err)
	}
	if len(warnings) != 1 {
		t.Errorf("warnings = %v, expected one explanation warning", warnings)
	}
}

func TestValidateSetDuplicates(t *testing.T) {
	s := Set{ID: "s", Chapters: []Chapter{testChapter("x", "A"), testChapter("x", "B")}}

	_, err := ValidateSet(s)
	var ves ValidationErrors
	if !errors.As(err, &ves) || ves[0].Code != "DUPLICATE_ID" {
		t.Errorf("ValidateSet() = %v, expected DUPLICATE_ID", err)
	}

	if _, err := ValidateSet(Set{ID: "empty"}); err == nil {
		t.Error("ValidateSet() should reject an empty set")
	}
}
