package storage

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/word-runner/internal/content"
)

func testSet(id string) content.Set {
	ch := content.Chapter{
		ID:          "c1",
		Title:       "Chapitre 1",
		Description: "Découverte",
		TargetWord:  "AB",
		Questions: []content.Question{
			{ID: "c1-q1", Notion: "A", Prompt: "Qu'est-ce que A ?", Options: [3]string{"a", "b", "c"}, Correct: 0, Explanation: "A est a."},
			{ID: "c1-q2", Notion: "B", Prompt: "Qu'est-ce que B ?", Options: [3]string{"x", "y", "z"}, Correct: 2, Explanation: "B est z."},
		},
	}
	ch2 := ch
	ch2.ID = "c2"
	ch2.Title = "Chapitre 2"
	return content.Set{ID: id, Name: "Mon QCM", Description: "Révisions", Chapters: []content.Chapter{ch, ch2}}
}

func TestSaveAndLoadSet(t *testing.T) {
	store := openTestStore(t)
	want := testSet("mine")

	id, err := store.SaveSet(want)
	if err != nil {
		t.Fatalf("SaveSet() failed: %v", err)
	}
	if id != "mine" {
		t.Errorf("SaveSet() id = %q, expected mine", id)
	}

	got, err := store.LoadSet("mine")
	if err != nil {
		t.Fatalf("LoadSet() failed: %v", err)
	}
	if got.Name != want.Name || got.Description != want.Description {
		t.Errorf("Set metadata = %q/%q", got.Name, got.Description)
	}
	if len(got.Chapters) != 2 || got.Chapters[0].ID != "c1" || got.Chapters[1].ID != "c2" {
		t.Fatalf("Chapters not in saved order: %+v", got.Chapters)
	}
	for i := range want.Chapters {
		w, g := want.Chapters[i], got.Chapters[i]
		if g.Title != w.Title || g.Description != w.Description || g.TargetWord != w.TargetWord {
			t.Errorf("Chapter %d = %+v", i, g)
		}
		if len(g.Questions) != len(w.Questions) {
			t.Fatalf("Chapter %d has %d questions", i, len(g.Questions))
		}
		for j := range w.Questions {
			if g.Questions[j] != w.Questions[j] {
				t.Errorf("Question %d/%d = %+v, expected %+v", i, j, g.Questions[j], w.Questions[j])
			}
		}
	}
}

func TestSaveSetReplaces(t *testing.T) {
	store := openTestStore(t)
	set := testSet("mine")
	store.SaveSet(set)

	set.Name = "Renamed"
	set.Chapters = set.Chapters[:1]
	if _, err := store.SaveSet(set); err != nil {
		t.Fatalf("SaveSet() failed: %v", err)
	}

	sets, err := store.ListSets()
	if err != nil {
		t.Fatalf("ListSets() failed: %v", err)
	}
	if len(sets) != 1 || sets[0].Name != "Renamed" || sets[0].Chapters != 1 {
		t.Errorf("ListSets() = %+v, expected one renamed set with 1 chapter", sets)
	}

	got, _ := store.LoadSet("mine")
	if len(got.Chapters) != 1 {
		t.Errorf("stale chapters left: %d", len(got.Chapters))
	}
}

func TestSaveSetGeneratesID(t *testing.T) {
	store := openTestStore(t)
	set := testSet("")
	set.Name = ""

	id, err := store.SaveSet(set)
	if err != nil {
		t.Fatalf("SaveSet() failed: %v", err)
	}
	if !strings.HasPrefix(id, "qcm-") {
		t.Errorf("generated id = %q", id)
	}

	got, err := store.LoadSet(id)
	if err != nil {
		t.Fatalf("LoadSet() failed: %v", err)
	}
	if got.Name != id {
		t.Errorf("Name = %q, expected it to default to the id", got.Name)
	}
}

func TestLoadSetNotFound(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.LoadSet("nope"); !errors.Is(err, ErrSetNotFound) {
		t.Errorf("LoadSet() error = %v, expected ErrSetNotFound", err)
	}
	if err := store.DeleteSet("nope"); !errors.Is(err, ErrSetNotFound) {
		t.Errorf("DeleteSet() error = %v, expected ErrSetNotFound", err)
	}
	if err := store.SetActiveSet("nope"); !errors.Is(err, ErrSetNotFound) {
		t.Errorf("SetActiveSet() error = %v, expected ErrSetNotFound", err)
	}
}

func TestActiveSet(t *testing.T) {
	store := openTestStore(t)
	store.SaveSet(testSet("one"))
	store.SaveSet(testSet("two"))

	active, err := store.ActiveSet()
	if err != nil || active != "" {
		t.Fatalf("ActiveSet() = %q, %v; expected none", active, err)
	}

	for _, id := range []string{"one", "two"} {
		if err := store.SetActiveSet(id); err != nil {
			t.Fatalf("SetActiveSet(%s) failed: %v", id, err)
		}
		if active, _ := store.ActiveSet(); active != id {
			t.Errorf("ActiveSet() = %q, expected %q", active, id)
		}
	}

	if err := store.SetActiveSet(""); err != nil {
		t.Fatalf("SetActiveSet(\"\") failed: %v", err)
	}
	if active, _ := store.ActiveSet(); active != "" {
		t.Errorf("ActiveSet() = %q after clear", active)
	}
}

func TestDeleteActiveSetResetsSelection(t *testing.T) {
	store := openTestStore(t)
	store.SaveSet(testSet("one"))
	store.SaveSet(testSet("two"))
	store.SetActiveSet("one")

	if err := store.DeleteSet("two"); err != nil {
		t.Fatalf("DeleteSet() failed: %v", err)
	}
	if active, _ := store.ActiveSet(); active != "one" {
		t.Errorf("deleting another set changed the selection to %q", active)
	}

	if err := store.DeleteSet("one"); err != nil {
		t.Fatalf("DeleteSet() failed: %v", err)
	}
	if active, _ := store.ActiveSet(); active != "" {
		t.Errorf("ActiveSet() = %q, expected reset", active)
	}
	if sets, _ := store.ListSets(); len(sets) != 0 {
		t.Errorf("ListSets() = %+v, expected empty", sets)
	}
}

func TestResolveLibrary(t *testing.T) {
	store := openTestStore(t)
	fallback := content.NewLibrary(content.Chapter{ID: "chap1", Title: "Built-in", TargetWord: "A"})

	lib, source, err := store.ResolveLibrary(fallback)
	if err != nil || lib != fallback || source != "" {
		t.Fatalf("ResolveLibrary() without active set = %v, %q, %v", lib, source, err)
	}

	store.SaveSet(testSet("mine"))
	store.SetActiveSet("mine")

	lib, source, err = store.ResolveLibrary(fallback)
	if err != nil {
		t.Fatalf("ResolveLibrary() failed: %v", err)
	}
	if source != "Mon QCM" {
		t.Errorf("source = %q", source)
	}
	if lib.Has("chap1") || !lib.Has("c1") || !lib.Has("c2") {
		t.Errorf("library IDs = %v, expected the active set only", lib.IDs())
	}
}
