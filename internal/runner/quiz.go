package runner

import (
	"math/rand"

	"github.com/vovakirdan/word-runner/internal/content"
)

// Quiz is the pending question for a letter encountered on the track.
// Question holds the shuffled copy; Order maps each shown option back to
// its position in the chapter's question.
type Quiz struct {
	Index    int  // Word position of the letter
	Letter   rune // Letter glyph
	Question content.Question
	Order    [content.OptionCount]int
}

// Correct reports whether an option index answers the quiz.
func (q *Quiz) Correct(option int) bool {
	return option == q.Question.Correct
}

// shuffleQuestion applies a uniform Fisher-Yates permutation to the options
// and recomputes the correct index under it.
func shuffleQuestion(q content.Question, rng *rand.Rand) (content.Question, [content.OptionCount]int) {
	var order [content.OptionCount]int
	for i := range order {
		order[i] = i
	}
	for i := len(order) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}

	shuffled := q
	for i, src := range order {
		shuffled.Options[i] = q.Options[src]
		if src == q.Correct {
			shuffled.Correct = i
		}
	}
	return shuffled, order
}
