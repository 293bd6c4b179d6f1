// Package tui provides the Bubble Tea front-end of the runner: the game view,
// the chapter menu, the scoreboard and the SSH server.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/word-runner/internal/core"
	"github.com/vovakirdan/word-runner/internal/runner"
	"github.com/vovakirdan/word-runner/internal/storage"
)

const (
	maxFrameSeconds = 0.1 // Longer gaps (suspended terminal, slow link) are clamped
	minScreenW      = 40
	minScreenH      = 16
	helpRows        = 1
)

// TickMsg asks the model to advance the simulation. It carries the frame time
// so the engine receives the real elapsed step.
type TickMsg time.Time

// tickCmd schedules the next frame at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// EngineFactory builds a fresh engine for one game session.
type EngineFactory func(seed int64) *runner.Engine

// GameModel drives a runner engine from the Bubble Tea loop: it maps keys
// to engine operations, ticks the simulation, renders the corridor and
// records finished runs.
type GameModel struct {
	engine     *runner.Engine
	chapterID  string
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	keys       GameKeyMap
	help       help.Model
	fx         *floaters
	shopCursor int
	lastTick   time.Time
	elapsed    float64
	best       int
	quitting   bool
	backToMenu bool
	exitOnBack bool // Standalone play quits the program instead of returning to a menu
	runSaved   bool
}

// NewGameModel creates a model that plays chapterID on engine.
// The store and logger may be nil.
func NewGameModel(engine *runner.Engine, chapterID string, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	best := 0
	if store != nil {
		if hs, err := store.HighScore(chapterID); err == nil {
			best = hs
		} else {
			logger.Warn("could not read high score", "chapter", chapterID, "err", err)
		}
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		engine:     engine,
		chapterID:  chapterID,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpRows),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		keys:       DefaultGameKeyMap(),
		help:       h,
		fx:         &floaters{},
		best:       best,
	}
}

// Init starts the run and the tick loop.
func (m GameModel) Init() tea.Cmd {
	if !m.engine.StartGame(m.chapterID) {
		m.logger.Warn("cannot start chapter", "chapter", m.chapterID)
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height-helpRows)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the action for the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		// Leaving mid-run still records the attempt
		if m.engine.Status().InRun() && m.engine.Distance() > 0 {
			m.engine.EndRun()
			m.saveRun()
		}
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick applies buffered input, advances the simulation and collects
// its events.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.config.TickSeconds()
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now
	dt = core.ClampF(dt, 0, maxFrameSeconds)

	m.applyInput()
	m.engine.Tick(dt)
	for _, ev := range m.engine.Drain() {
		m.fx.push(ev)
		m.logEvent(ev)
	}
	m.fx.update(dt)
	m.elapsed += dt
	m.saveRun()

	m.inputFrame.Clear()

	if m.backToMenu && m.exitOnBack {
		m.quitting = true
		return m, tea.Quit
	}
	if m.backToMenu {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// applyInput routes the frame's actions to the engine according to the
// current status.
func (m *GameModel) applyInput() {
	e := m.engine
	for _, a := range m.inputFrame.Actions() {
		switch e.Status() {
		case runner.StatusPlaying:
			if e.ShowTutorial() {
				switch a {
				case core.ActionConfirm, core.ActionJump:
					e.CloseTutorial()
				case core.ActionBack:
					m.leave()
				}
				continue
			}
			switch a {
			case core.ActionLeft:
				e.RequestLaneChange(-1)
			case core.ActionRight:
				e.RequestLaneChange(1)
			case core.ActionJump:
				e.RequestJump()
			case core.ActionImmortality:
				e.ActivateImmortality()
			case core.ActionBack:
				e.EndRun()
			}

		case runner.StatusQuiz:
			if idx, ok := a.OptionIndex(); ok {
				e.SubmitAnswer(idx)
			}

		case runner.StatusFeedback:
			switch a {
			case core.ActionConfirm, core.ActionBack, core.ActionJump:
				e.CloseFeedback()
			}

		case runner.StatusShop:
			m.shopInput(a)

		case runner.StatusGameOver, runner.StatusVictory:
			switch a {
			case core.ActionRestart:
				m.restart()
			case core.ActionConfirm, core.ActionBack:
				m.leave()
			}

		case runner.StatusMenu:
			m.leave()
		}
	}
}

// shopInput moves the shop cursor, buys the selected item or leaves.
func (m *GameModel) shopInput(a core.Action) {
	items := m.engine.ShopItems()
	switch a {
	case core.ActionLeft:
		if m.shopCursor > 0 {
			m.shopCursor--
		}
	case core.ActionRight:
		if m.shopCursor < len(items)-1 {
			m.shopCursor++
		}
	case core.ActionConfirm:
		if m.shopCursor < len(items) {
			item := items[m.shopCursor]
			if !m.engine.BuyItem(item.Kind, item.Cost) {
				m.fx.add(m.engine.Player().Pos().Add(feedbackRise), "BUDGET INSUFFISANT", core.ColorBrightRed, floaterLife)
			}
		}
	case core.ActionBack:
		m.engine.CloseShop()
		m.shopCursor = 0
	}

	if n := len(m.engine.ShopItems()); m.shopCursor >= n && n > 0 {
		m.shopCursor = n - 1
	}
}

func (m *GameModel) restart() {
	m.engine.RestartGame()
	m.fx.reset()
	m.shopCursor = 0
	m.runSaved = false
}

func (m *GameModel) leave() {
	m.engine.ReturnToMenu()
	m.backToMenu = true
}

// saveRun records the run once it reached Victory or GameOver.
func (m *GameModel) saveRun() {
	status := m.engine.Status()
	if m.runSaved || (status != runner.StatusVictory && status != runner.StatusGameOver) {
		return
	}
	m.runSaved = true

	outcome := storage.OutcomeAbandoned
	if status == runner.StatusVictory {
		outcome = storage.OutcomeVictory
	}
	score := m.engine.Score()
	if m.store != nil {
		id, err := m.store.SaveRun(storage.RunRecord{
			ChapterID: m.chapterID,
			Score:     score,
			Distance:  m.engine.Distance(),
			Gems:      m.engine.GemsCollected(),
			Letters:   len(m.engine.Collected()),
			Outcome:   outcome,
		})
		if err != nil {
			m.logger.Warn("could not save run", "err", err)
		} else {
			m.logger.Info("run saved", "id", id, "chapter", m.chapterID, "score", score, "outcome", outcome)
		}
	}
	if score > m.best {
		m.best = score
	}
}

func (m *GameModel) logEvent(ev runner.Event) {
	switch ev.Kind {
	case runner.EventStatus:
		m.logger.Debug("status", "status", ev.Status)
	case runner.EventAnswer:
		m.logger.Debug("answer", "letter", ev.Label, "correct", ev.Value == 1)
	case runner.EventPurchase:
		m.logger.Debug("purchase", "item", ev.Label, "cost", ev.Value)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".wordrunner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.chapterID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
	}
}

// render draws the current frame into the screen buffer.
func (m GameModel) render() {
	m.screen.Clear()
	if m.screen.Width() < minScreenW || m.screen.Height() < minScreenH {
		m.screen.DrawTextCentered(m.screen.Height()/2, "Terminal trop petit")
		return
	}
	drawWorld(m.screen, m.engine, m.fx, m.elapsed)
	drawOverlay(m.screen, m.engine, m.shopCursor, m.best)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.render()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Engine returns the driven engine.
func (m GameModel) Engine() *runner.Engine {
	return m.engine
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Config returns the current runtime config (may have been updated by resize).
func (m GameModel) Config() core.RuntimeConfig {
	return m.config
}

// Run plays one chapter in a standalone Bubble Tea program. Leaving the run
// exits the program.
func Run(engine *runner.Engine, chapterID string, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (core.RuntimeConfig, error) {
	model := NewGameModel(engine, chapterID, store, cfg, logger)
	model.exitOnBack = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return cfg, err
	}
	if gm, ok := final.(GameModel); ok {
		return gm.Config(), nil
	}
	return cfg, nil
}
