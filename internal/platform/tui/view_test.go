package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/word-runner/internal/config"
	"github.com/vovakirdan/word-runner/internal/core"
	"github.com/vovakirdan/word-runner/internal/runner"
)

func TestProjectionPlayerPlane(t *testing.T) {
	world := config.DefaultRunnerConfig().World
	p := newProjection(100, 30, world)

	col, row, s, ok := p.point(mgl64.Vec3{0, 0, 0})
	if !ok {
		t.Fatal("player position should be visible")
	}
	if s != 1 {
		t.Errorf("scale at z=0 = %v, expected 1", s)
	}
	if col != p.center || row != p.feetRow {
		t.Errorf("point = (%d,%d), expected (%d,%d)", col, row, p.center, p.feetRow)
	}

	// One lane to the right sits one lane spacing away
	col, _, _, _ = p.point(mgl64.Vec3{world.LaneWidth, 0, 0})
	if col-p.center != int(p.laneSpacing+0.5) {
		t.Errorf("lane offset = %d, expected %v", col-p.center, p.laneSpacing)
	}
}

func TestProjectionDepth(t *testing.T) {
	world := config.DefaultRunnerConfig().World
	p := newProjection(100, 30, world)

	_, nearRow, _, _ := p.point(mgl64.Vec3{0, 0, -10})
	_, farRow, _, ok := p.point(mgl64.Vec3{0, 0, -100})
	if !ok {
		t.Fatal("objects inside the spawn distance should be visible")
	}
	if !(farRow < nearRow && nearRow < p.feetRow) {
		t.Errorf("rows far=%d near=%d feet=%d should approach the player", farRow, nearRow, p.feetRow)
	}
	if farRow < p.horizon {
		t.Errorf("far row %d above horizon %d", farRow, p.horizon)
	}

	if _, _, _, ok := p.point(mgl64.Vec3{0, 0, -world.SpawnDistance - 1}); ok {
		t.Error("objects beyond the spawn distance should be hidden")
	}
	if _, _, _, ok := p.point(mgl64.Vec3{0, 0, 15}); ok {
		t.Error("objects behind the camera should be hidden")
	}
}

func TestProjectionHeight(t *testing.T) {
	p := newProjection(100, 30, config.DefaultRunnerConfig().World)

	_, ground, _, _ := p.point(mgl64.Vec3{0, 0, -5})
	_, raised, _, _ := p.point(mgl64.Vec3{0, 2, -5})
	if raised >= ground {
		t.Errorf("raised row %d should be above ground row %d", raised, ground)
	}
}

func TestDrawHUD(t *testing.T) {
	engine := runner.NewEngine(testLibrary(), runner.WithSeed(1))
	engine.StartGame("c1")
	engine.CloseTutorial()
	engine.CollectGem(100)

	s := core.NewScreen(100, 30)
	drawHUD(s, engine)

	if row := s.Row(0); !strings.Contains(row, "SCORE 0000100") {
		t.Errorf("score line = %q", row)
	}
	if row := s.Row(0); !strings.Contains(row, "◆ 1") {
		t.Errorf("gem counter missing from %q", row)
	}
	if row := s.Row(1); !strings.Contains(row, "MOT _ _") {
		t.Errorf("word progress = %q, expected two blanks", row)
	}

	engine.EncounterLetter(0)
	quiz, _ := engine.Quiz()
	engine.SubmitAnswer(quiz.Question.Correct)
	s.Clear()
	drawHUD(s, engine)
	if row := s.Row(1); !strings.Contains(row, "MOT A _") {
		t.Errorf("word progress = %q, expected the first letter revealed", row)
	}
}

func TestDrawWorldShowsObjects(t *testing.T) {
	engine := runner.NewEngine(testLibrary(), runner.WithSeed(3))
	engine.StartGame("c1")
	engine.CloseTutorial()
	for i := 0; i < 200; i++ {
		engine.Tick(0.05)
		if engine.Status() != runner.StatusPlaying {
			break
		}
	}

	s := core.NewScreen(100, 30)
	drawWorld(s, engine, &floaters{}, 0)

	out := s.String()
	if !strings.Contains(out, "/|\\") {
		t.Error("player body should be drawn")
	}
	if !strings.ContainsAny(out, "/\\") {
		t.Error("corridor rails should be drawn")
	}
}

func TestDrawOverlayQuiz(t *testing.T) {
	engine := runner.NewEngine(testLibrary(), runner.WithSeed(1))
	engine.StartGame("c1")
	engine.CloseTutorial()
	engine.EncounterLetter(1)

	s := core.NewScreen(100, 30)
	drawOverlay(s, engine, 0, 0)
	out := s.String()

	for _, want := range []string{"LETTRE B", "Question q2", "1. ", "2. ", "3. "} {
		if !strings.Contains(out, want) {
			t.Errorf("quiz overlay should contain %q", want)
		}
	}
}

func TestDrawOverlayShopHidesOwned(t *testing.T) {
	engine := runner.NewEngine(testLibrary(), runner.WithSeed(1))
	engine.StartGame("c1")
	engine.CloseTutorial()
	engine.CollectGem(10000)
	engine.OpenShop()
	engine.BuyItem(runner.ItemMagnet, 1500)

	s := core.NewScreen(100, 40)
	drawOverlay(s, engine, 0, 0)
	out := s.String()

	if !strings.Contains(out, "BOUTIQUE") {
		t.Error("shop title missing")
	}
	if strings.Contains(out, "AIMANT CORPORATE") {
		t.Error("owned items should not be offered")
	}
	if !strings.Contains(out, "JETPACK BOOSTER") {
		t.Error("items not owned should be offered")
	}
}

func TestWrapText(t *testing.T) {
	text := "Le chiffre d'affaires correspond au total des ventes réalisées sur la période"
	lines := wrapText(text, 20)
	if len(lines) < 4 {
		t.Fatalf("got %d lines, expected the text to wrap", len(lines))
	}
	for _, l := range lines {
		if w := lipgloss.Width(l); w > 20 {
			t.Errorf("line %q is %d wide", l, w)
		}
	}

	if got := wrapText("", 20); len(got) != 1 || got[0] != "" {
		t.Errorf("empty text = %q, expected one blank line", got)
	}
}
