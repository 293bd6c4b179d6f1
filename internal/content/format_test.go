package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const importJSON = `[
  {
    "id": "chapx",
    "titre": "Les marchés",
    "description": "Import test",
    "motCible": "ofe",
    "questions": [
      {"notion": "Offre", "question": "Q1 ?", "reponses": ["a", "b", "c"], "reponseCorrecte": 0, "explication": "E1"},
      {"notion": "Fixation", "question": "Q2 ?", "reponses": ["a", "b", "c"], "reponseCorrecte": 2, "explication": ""},
      {"notion": "Equilibre", "question": "Q3 ?", "reponses": ["a", "b", "c"], "reponseCorrecte": 1, "explication": "E3"}
    ]
  }
]`

const nativeYAML = `id: pack
name: Test pack
chapters:
  - id: one
    title: One
    word: HI
    questions:
      - notion: H
        prompt: First?
        options: [x, y, z]
        correct: 1
        explanation: because
      - notion: I
        prompt: Second?
        options: [x, y, z]
        correct: 0
        explanation: because
`

func TestParseImportJSON(t *testing.T) {
	set, warnings, err := Parse([]byte(importJSON), ".json")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(set.Chapters) != 1 {
		t.Fatalf("got %d chapters, expected 1", len(set.Chapters))
	}

	ch := set.Chapters[0]
	if ch.TargetWord != "OFE" {
		t.Errorf("TargetWord = %q, expected uppercased OFE", ch.TargetWord)
	}
	if ch.Title != "Les marchés" {
		t.Errorf("Title = %q", ch.Title)
	}
	if ch.Questions[1].ID != "chapx-q2" {
		t.Errorf("question ID = %q, expected chapx-q2", ch.Questions[1].ID)
	}
	if ch.Questions[1].Correct != 2 {
		t.Errorf("Correct = %d, expected 2", ch.Questions[1].Correct)
	}
	if ch.Questions[1].Explanation != DefaultExplanation {
		t.Errorf("missing explanation = %q, expected default", ch.Questions[1].Explanation)
	}
	if len(warnings) != 1 {
		t.Errorf("warnings = %v, expected one", warnings)
	}
}

func TestParseSingleChapterObject(t *testing.T) {
	data := `{"id": "solo", "titre": "Solo", "motCible": "A", "questions": [
	  {"notion": "n", "question": "q", "reponses": ["1", "2", "3"], "reponseCorrecte": 2, "explication": "e"}]}`

	set, _, err := Parse([]byte(data), ".json")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(set.Chapters) != 1 || set.Chapters[0].ID != "solo" {
		t.Errorf("single object import = %+v", set.Chapters)
	}
}

func TestParseNativeYAML(t *testing.T) {
	set, warnings, err := Parse([]byte(nativeYAML), ".yaml")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if set.ID != "pack" || set.Name != "Test pack" {
		t.Errorf("set metadata = %q/%q", set.ID, set.Name)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if got := set.Chapters[0].Questions[0].CorrectOption(); got != "y" {
		t.Errorf("CorrectOption() = %q, expected y", got)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		code string
	}{
		{
			"two options",
			`{"id": "c", "titre": "T", "motCible": "A", "questions": [{"notion": "n", "question": "q", "reponses": ["1", "2"], "reponseCorrecte": 0}]}`,
			"OPTION_COUNT",
		},
		{
			"no correct index",
			`{"id": "c", "titre": "T", "motCible": "A", "questions": [{"notion": "n", "question": "q", "reponses": ["1", "2", "3"]}]}`,
			"MISSING_CORRECT",
		},
		{
			"count mismatch",
			`{"id": "c", "titre": "T", "motCible": "AB", "questions": [{"notion": "n", "question": "q", "reponses": ["1", "2", "3"], "reponseCorrecte": 0}]}`,
			"QUESTION_COUNT",
		},
		{
			"missing title",
			`{"id": "c", "motCible": "A", "questions": [{"notion": "n", "question": "q", "reponses": ["1", "2", "3"], "reponseCorrecte": 0}]}`,
			"MISSING_TITLE",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse([]byte(tc.data), ".json")
			var ves ValidationErrors
			if !errors.As(err, &ves) {
				t.Fatalf("Parse() = %v, expected ValidationErrors", err)
			}
			found := false
			for _, ve := range ves {
				if ve.Code == tc.code {
					found = true
				}
			}
			if !found {
				t.Errorf("codes = %v, expected %s", ves, tc.code)
			}
		})
	}
}

func TestParseCSV(t *testing.T) {
	data := "ChapitreID,Titre,Description,MotCible,Notion,Question,Réponse1,Réponse2,Réponse3,IndexCorrect,Explication\n" +
		"c1,Titre,Desc,OK,Lettre O,\"Question, avec virgule ?\",a,b,c,1,Exp\n" +
		"c1,Titre,Desc,OK,Lettre K,Q2,a,b,c,0,Exp\n" +
		"short,row\n" +
		"\n"

	set, warnings, err := Parse([]byte(data), ".csv")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(set.Chapters) != 1 {
		t.Fatalf("got %d chapters, expected 1", len(set.Chapters))
	}
	ch := set.Chapters[0]
	if ch.Questions[0].Prompt != "Question, avec virgule ?" {
		t.Errorf("quoted prompt = %q", ch.Questions[0].Prompt)
	}
	if ch.Questions[0].Correct != 1 {
		t.Errorf("Correct = %d, expected 1", ch.Questions[0].Correct)
	}
	if len(warnings) != 1 {
		t.Errorf("warnings = %v, expected one short-row warning", warnings)
	}
}

func TestMarshalSetRoundTrip(t *testing.T) {
	original := Set{ID: "rt", Name: "Round trip", Chapters: []Chapter{testChapter("c", "AB")}}

	data, err := MarshalSet(original)
	if err != nil {
		t.Fatalf("MarshalSet() failed: %v", err)
	}
	set, _, err := Parse(data, ".yaml")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if set.Chapters[0].Questions[1].Correct != 1 || set.Chapters[0].TargetWord != "AB" {
		t.Errorf("round trip lost data: %+v", set.Chapters[0])
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"pack.yaml":       nativeYAML,
		"import.json":     importJSON,
		"broken.yaml":     "id: [",
		"notes.txt":       "ignored",
		"sub/nested.json": `{"id": "aaa", "titre": "T", "motCible": "A", "questions": [{"notion": "n", "question": "q", "reponses": ["1", "2", "3"], "reponseCorrecte": 0, "explication": "e"}]}`,
	}
	for name, body := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("MkdirAll() failed: %v", err)
		}
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatalf("WriteFile() failed: %v", err)
		}
	}

	chapters, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}

	want := []string{"aaa", "chapx", "one"}
	if len(chapters) != len(want) {
		t.Fatalf("got %d chapters, expected %d", len(chapters), len(want))
	}
	for i, id := range want {
		if chapters[i].ID != id {
			t.Errorf("chapters[%d].ID = %q, expected %q", i, chapters[i].ID, id)
		}
	}

	set, _, err := LoadFile(filepath.Join(dir, "import.json"))
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if set.ID != "import" || set.Name != "import" {
		t.Errorf("set ID/Name = %q/%q, expected file name", set.ID, set.Name)
	}
}
