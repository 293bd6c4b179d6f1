package runner

import (
	"math/rand"
	"testing"
)

func TestShuffleQuestionKeepsCorrectText(t *testing.T) {
	q := testChapter("c", "PESTEL").Questions[1]
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		shuffled, order := shuffleQuestion(q, rng)
		if shuffled.CorrectOption() != q.CorrectOption() {
			t.Fatalf("correct text changed: %q != %q", shuffled.CorrectOption(), q.CorrectOption())
		}
		for pos, src := range order {
			if shuffled.Options[pos] != q.Options[src] {
				t.Fatalf("order %v does not map option %d", order, pos)
			}
		}
		if shuffled.Prompt != q.Prompt || shuffled.Explanation != q.Explanation {
			t.Fatal("shuffle altered prompt or explanation")
		}
	}
}

func TestShuffleQuestionUniform(t *testing.T) {
	q := testChapter("c", "P").Questions[0]
	rng := rand.New(rand.NewSource(99))

	counts := make(map[[3]int]int)
	const trials = 6000
	for i := 0; i < trials; i++ {
		_, order := shuffleQuestion(q, rng)
		counts[order]++
	}

	if len(counts) != 6 {
		t.Fatalf("saw %d orderings, expected 6", len(counts))
	}
	for order, n := range counts {
		if n < 800 || n > 1200 {
			t.Errorf("ordering %v appeared %d times, expected about %d", order, n, trials/6)
		}
	}
}

func TestQuizCorrect(t *testing.T) {
	q := Quiz{Question: testChapter("c", "PES").Questions[2]}

	if !q.Correct(2) {
		t.Error("option 2 should be correct")
	}
	for _, opt := range []int{0, 1, 3, -1} {
		if q.Correct(opt) {
			t.Errorf("option %d should be wrong", opt)
		}
	}
}
