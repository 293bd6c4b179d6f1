package builtin

import (
	"testing"

	"github.com/vovakirdan/word-runner/internal/registry"
)

func TestBuiltinPackLoads(t *testing.T) {
	set, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	want := map[string]string{
		"chap1": "PESTEL",
		"chap2": "ACCORD",
		"chap3": "VALEUR",
	}
	if len(set.Chapters) != len(want) {
		t.Fatalf("got %d chapters, expected %d", len(set.Chapters), len(want))
	}
	for _, ch := range set.Chapters {
		if want[ch.ID] != ch.TargetWord {
			t.Errorf("chapter %s word = %q, expected %q", ch.ID, ch.TargetWord, want[ch.ID])
		}
		for _, q := range ch.Questions {
			if q.Correct != 0 {
				t.Errorf("%s: correct index = %d, expected 0", q.ID, q.Correct)
			}
		}
	}
}

func TestBuiltinRegistered(t *testing.T) {
	if !registry.Exists(PackID) {
		t.Fatal("builtin pack not registered")
	}

	lib, err := registry.Library()
	if err != nil {
		t.Fatalf("Library() failed: %v", err)
	}
	ch, err := lib.Get("chap1")
	if err != nil {
		t.Fatalf("Get(chap1) failed: %v", err)
	}
	if ch.Questions[0].Notion != "POLITIQUE" {
		t.Errorf("first notion = %q, expected POLITIQUE", ch.Questions[0].Notion)
	}
}
