package runner

import (
	"io"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/word-runner/internal/config"
	"github.com/vovakirdan/word-runner/internal/content"
)

// Engine is the authoritative simulation state of one player session.
// It is single-threaded: callers drive it from one goroutine, typically the
// front-end update loop, and drain events after each tick.
type Engine struct {
	cfg        config.RunnerConfig
	library    *content.Library
	difficulty *config.DifficultyModel
	rng        *rand.Rand
	clock      Clock
	logger     *log.Logger
	seed       int64

	status       Status
	score        int
	speed        float64
	distance     float64
	gems         int
	collected    map[int]bool
	chapter      *content.Chapter
	inventory    Inventory
	quiz         *Quiz
	showTutorial bool
	immortal     deadline
	invincible   deadline
	ticks        uint64

	world   *World
	spawner *spawner
	player  *playerBody
	events  eventQueue
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig sets the runner tunables.
func WithConfig(cfg config.RunnerConfig) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// WithSeed makes spawning, shuffling and object IDs deterministic.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.seed = seed }
}

// WithClock replaces the wall clock used for power-up deadlines.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithLogger sets the logger for state transitions and purchases.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine creates an engine in the Menu state over a chapter library.
func NewEngine(lib *content.Library, opts ...Option) *Engine {
	e := &Engine{
		cfg:     config.DefaultRunnerConfig(),
		library: lib,
		clock:   systemClock{},
		seed:    time.Now().UnixNano(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	if e.library == nil {
		e.library = content.NewLibrary()
	}

	e.rng = rand.New(rand.NewSource(e.seed))
	e.difficulty = config.NewDifficultyModel(e.cfg)
	e.world = NewWorld()
	e.spawner = newSpawner(e.cfg, e.difficulty, e.rng)
	e.player = newPlayerBody(e.cfg.Physics, e.cfg.World)
	e.collected = make(map[int]bool)
	e.inventory = Inventory{ScoreMultiplier: 1}
	e.status = StatusMenu
	return e
}

// transition applies a trigger to the state machine.
// Returns false when the trigger is undefined for the current status.
func (e *Engine) transition(t Trigger) bool {
	to, ok := nextStatus(e.status, t)
	if !ok {
		e.logger.Debug("trigger ignored", "status", e.status, "trigger", t)
		return false
	}
	from := e.status
	e.status = to
	if from != to {
		e.logger.Debug("status changed", "from", from, "to", to, "trigger", t)
		e.events.push(Event{Kind: EventStatus, Status: to})
	}
	return true
}

// ticking reports whether simulation and player intents are live.
func (e *Engine) ticking() bool {
	return e.status == StatusPlaying && !e.showTutorial
}

func (e *Engine) addScore(delta int) {
	e.score += delta
	if e.score < 0 {
		e.score = 0
	}
}

// resetRun restores every per-run value for a fresh start on a chapter.
func (e *Engine) resetRun(ch *content.Chapter) {
	e.chapter = ch
	e.score = 0
	e.speed = e.cfg.Physics.BaseSpeed
	e.distance = 0
	e.gems = 0
	e.collected = make(map[int]bool)
	e.inventory = Inventory{ScoreMultiplier: 1}
	e.quiz = nil
	e.immortal.clear()
	e.invincible.clear()
	e.ticks = 0
	e.events.reset()
	e.world.Reset()
	e.spawner.reset()
	e.player.reset()
}

// StartGame begins a run on a chapter. Unknown chapters are ignored.
// The tutorial flag is raised; ticking waits for CloseTutorial.
func (e *Engine) StartGame(chapterID string) bool {
	ch, err := e.library.Get(chapterID)
	if err != nil {
		e.logger.Debug("start ignored", "chapter", chapterID, "err", err)
		return false
	}
	if _, ok := nextStatus(e.status, TriggerStart); !ok {
		return false
	}

	e.resetRun(ch)
	e.showTutorial = true
	e.transition(TriggerStart)
	e.logger.Debug("run started", "chapter", ch.ID, "word", ch.TargetWord)
	return true
}

// RestartGame restarts the active chapter with the tutorial skipped, or
// returns to the menu when no chapter is active.
func (e *Engine) RestartGame() {
	if e.chapter == nil {
		e.ReturnToMenu()
		return
	}
	if e.StartGame(e.chapter.ID) {
		e.showTutorial = false
	}
}

// ReturnToMenu leaves any status for the menu and clears the chapter.
func (e *Engine) ReturnToMenu() {
	e.transition(TriggerMenu)
	e.chapter = nil
	e.quiz = nil
	e.showTutorial = false
}

// CloseTutorial dismisses the pre-roll and lets the simulation tick.
func (e *Engine) CloseTutorial() {
	e.showTutorial = false
}

// EndRun abandons the current run. It is the only way to reach GameOver.
func (e *Engine) EndRun() bool {
	if !e.transition(TriggerEndRun) {
		return false
	}
	e.quiz = nil
	e.logger.Debug("run ended", "score", e.score, "distance", e.distance)
	return true
}

// RequestLaneChange moves one lane left (dir < 0) or right (dir > 0).
func (e *Engine) RequestLaneChange(dir int) bool {
	if !e.ticking() {
		return false
	}
	return e.player.shiftLane(dir)
}

// RequestJump jumps, or double-jumps in the air when the power-up is owned.
func (e *Engine) RequestJump() bool {
	if !e.ticking() {
		return false
	}
	n := e.player.jump(e.inventory.DoubleJump)
	if n == 0 {
		return false
	}
	e.events.push(Event{Kind: EventJump, Pos: e.player.Pos(), Value: n})
	return true
}

// TakeDamage deducts the hit penalty unless immortality or the post-hit
// invincibility window is active. Returns true when the penalty applied.
func (e *Engine) TakeDamage() bool {
	now := e.clock.Now()
	if e.immortal.active(now) || e.invincible.active(now) {
		return false
	}
	e.addScore(-e.cfg.Scoring.HitPenalty)
	e.invincible.start(now, e.cfg.Combat.Invincibility)
	e.events.push(Event{Kind: EventDamage, Pos: e.player.Pos(), Value: -e.cfg.Scoring.HitPenalty})
	return true
}

// CollectGem awards a gem scaled by the score multiplier.
func (e *Engine) CollectGem(value int) {
	mult := e.inventory.ScoreMultiplier
	if mult < 1 {
		mult = 1
	}
	e.score += value * mult
	e.gems++
}

// EncounterLetter opens the quiz for an uncollected word index.
// Out-of-range or already collected indices are ignored.
func (e *Engine) EncounterLetter(index int) bool {
	if e.chapter == nil {
		return false
	}
	q, ok := e.chapter.Question(index)
	if !ok || e.collected[index] {
		return false
	}
	if _, ok := nextStatus(e.status, TriggerEncounterLetter); !ok {
		return false
	}

	shuffled, order := shuffleQuestion(q, e.rng)
	e.quiz = &Quiz{
		Index:    index,
		Letter:   e.chapter.Letter(index),
		Question: shuffled,
		Order:    order,
	}
	return e.transition(TriggerEncounterLetter)
}

// SubmitAnswer answers the pending quiz and reports whether it was correct.
// Without a pending quiz the run resumes and false is returned.
func (e *Engine) SubmitAnswer(option int) bool {
	if e.quiz == nil || e.chapter == nil {
		e.transition(TriggerAnswerMissing)
		return false
	}
	if e.status != StatusQuiz {
		return false
	}

	q := e.quiz
	if !q.Correct(option) {
		e.addScore(-e.cfg.Scoring.WrongPenalty)
		e.events.push(Event{Kind: EventAnswer, Label: string(q.Letter), Value: 0})
		e.transition(TriggerAnswerWrong)
		return false
	}

	e.collected[q.Index] = true
	e.addScore(e.cfg.Scoring.LetterBonus)
	e.quiz = nil
	e.events.push(Event{Kind: EventAnswer, Label: string(q.Letter), Value: 1})

	if len(e.collected) == e.chapter.WordLength() {
		e.addScore(e.cfg.Scoring.CompletionBonus)
		e.transition(TriggerWordComplete)
		e.logger.Debug("word complete", "chapter", e.chapter.ID, "score", e.score)
		return true
	}
	e.transition(TriggerAnswerCorrect)
	return true
}

// CloseFeedback dismisses the explanation after a wrong answer.
func (e *Engine) CloseFeedback() {
	if e.transition(TriggerCloseFeedback) {
		e.quiz = nil
	}
}

// OpenShop enters the shop from Playing.
func (e *Engine) OpenShop() bool {
	return e.transition(TriggerOpenShop)
}

// CloseShop resumes the run.
func (e *Engine) CloseShop() bool {
	return e.transition(TriggerCloseShop)
}

// BuyItem spends score on a power-up. Returns false without mutation for
// unknown kinds, negative costs or insufficient score.
func (e *Engine) BuyItem(kind ItemKind, cost int) bool {
	if !knownItem(kind) || cost < 0 || e.score < cost {
		return false
	}
	e.score -= cost
	e.inventory.applyItem(kind)
	e.events.push(Event{Kind: EventPurchase, Label: string(kind), Value: cost})
	e.logger.Debug("item bought", "kind", kind, "cost", cost, "score", e.score)
	return true
}

// ActivateImmortality starts the immortality window when the power is owned
// and not already running.
func (e *Engine) ActivateImmortality() bool {
	now := e.clock.Now()
	if !e.inventory.Immortality || e.immortal.active(now) {
		return false
	}
	e.immortal.start(now, e.cfg.Powerups.ImmortalityDuration)
	e.events.push(Event{Kind: EventImmortality, Pos: e.player.Pos()})
	e.logger.Debug("immortality activated", "duration", e.cfg.Powerups.ImmortalityDuration)
	return true
}

// Tick advances the simulation by dt seconds. It does nothing unless the
// status is Playing and the tutorial is closed.
func (e *Engine) Tick(dt float64) {
	if !e.ticking() || dt <= 0 {
		return
	}
	physics := e.cfg.Physics

	// Acceleration follows real elapsed time; motion uses the clamped step
	e.speed = math.Min(e.speed+physics.Acceleration*dt, physics.MaxSpeed)
	step := math.Min(dt, physics.MaxStep)
	moved := e.speed * step
	e.distance += moved

	f := e.difficulty.Factor(e.distance)
	e.player.integrate(step)
	e.advance(moved, step, f)
	e.world.prune(e.cfg.World.RemoveDistance)
	e.spawner.step(e.world, e.distance, e.chapter, e.collected)
	e.ticks++
}

// Drain returns pending events in emission order and clears the queue.
func (e *Engine) Drain() []Event {
	return e.events.drain()
}

// Status returns the current mode.
func (e *Engine) Status() Status { return e.status }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Speed returns the current forward speed.
func (e *Engine) Speed() float64 { return e.speed }

// Distance returns the distance traveled in this run.
func (e *Engine) Distance() float64 { return e.distance }

// Difficulty returns the current difficulty factor.
func (e *Engine) Difficulty() float64 { return e.difficulty.Factor(e.distance) }

// GemsCollected returns the number of gems picked up in this run.
func (e *Engine) GemsCollected() int { return e.gems }

// Ticks returns the number of simulated ticks in this run.
func (e *Engine) Ticks() uint64 { return e.ticks }

// Seed returns the RNG seed.
func (e *Engine) Seed() int64 { return e.seed }

// Config returns the runner tunables.
func (e *Engine) Config() config.RunnerConfig { return e.cfg }

// Library returns the chapter library.
func (e *Engine) Library() *content.Library { return e.library }

// Chapter returns the active chapter, or nil.
func (e *Engine) Chapter() *content.Chapter { return e.chapter }

// Inventory returns the owned power-ups.
func (e *Engine) Inventory() Inventory { return e.inventory }

// ShowTutorial reports whether the pre-roll is displayed.
func (e *Engine) ShowTutorial() bool { return e.showTutorial }

// Player returns a copy of the player state.
func (e *Engine) Player() Player { return e.player.Player }

// Objects returns a copy of the live world objects.
func (e *Engine) Objects() []WorldObject { return e.world.Objects() }

// Collected returns the collected word indices in ascending order.
func (e *Engine) Collected() []int {
	out := make([]int, 0, len(e.collected))
	for i := range e.collected {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// IsCollected reports whether a word index has been collected.
func (e *Engine) IsCollected(index int) bool { return e.collected[index] }

// Quiz returns the pending quiz.
func (e *Engine) Quiz() (Quiz, bool) {
	if e.quiz == nil {
		return Quiz{}, false
	}
	return *e.quiz, true
}

// ImmortalityActive reports whether the immortality window is running.
func (e *Engine) ImmortalityActive() bool {
	return e.immortal.active(e.clock.Now())
}

// ImmortalityRemaining returns the time left in the immortality window.
func (e *Engine) ImmortalityRemaining() time.Duration {
	return e.immortal.remaining(e.clock.Now())
}

// Invincible reports whether the post-hit invincibility window is running.
func (e *Engine) Invincible() bool {
	return e.invincible.active(e.clock.Now())
}
