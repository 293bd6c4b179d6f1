package runner

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/word-runner/internal/config"
	"github.com/vovakirdan/word-runner/internal/content"
)

const frame = 1.0 / 60.0

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// testChapter builds a valid chapter whose question i has correct index i%3.
func testChapter(id, word string) content.Chapter {
	ch := content.Chapter{ID: id, Title: "Chapitre " + id, TargetWord: word}
	for i, r := range []rune(word) {
		ch.Questions = append(ch.Questions, content.Question{
			ID:          fmt.Sprintf("%s-q%d", id, i+1),
			Notion:      string(r),
			Prompt:      fmt.Sprintf("Question %d ?", i+1),
			Options:     [content.OptionCount]string{"alpha " + string(r), "beta " + string(r), "gamma " + string(r)},
			Correct:     i % content.OptionCount,
			Explanation: "explication",
		})
	}
	return ch
}

func testLibrary() *content.Library {
	return content.NewLibrary(testChapter("chap1", "PESTEL"), testChapter("short", "AB"))
}

// newTestEngine creates a seeded engine with a fake clock.
func newTestEngine(t *testing.T, opts ...Option) (*Engine, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	all := append([]Option{WithSeed(42), WithClock(clock)}, opts...)
	return NewEngine(testLibrary(), all...), clock
}

// startPlaying starts chap1 and closes the tutorial.
func startPlaying(t *testing.T, e *Engine) {
	t.Helper()
	if !e.StartGame("chap1") {
		t.Fatal("StartGame(chap1) returned false")
	}
	e.CloseTutorial()
	if e.Status() != StatusPlaying {
		t.Fatalf("status = %v, expected Playing", e.Status())
	}
}

// quietConfig disables random spawning near the player so hand-placed
// objects are the only ones that can interact within a few ticks.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.World.LetterInterval = 1e9
	cfg.World.ShopInterval = 0
	return cfg
}

// place adds an active object directly to the world.
func place(e *Engine, typ ObjectType, x, y, z float64) *WorldObject {
	o := e.spawner.newObjectAt(typ, mgl64.Vec3{x, y, z})
	o.Phase = PhaseActive
	e.world.Add(o)
	return o
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func findEvent(events []Event, kind EventKind) (Event, bool) {
	for _, ev := range events {
		if ev.Kind == kind {
			return ev, true
		}
	}
	return Event{}, false
}
