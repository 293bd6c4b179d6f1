package tui

import (
	"fmt"

	"github.com/vovakirdan/word-runner/internal/core"
	"github.com/vovakirdan/word-runner/internal/runner"
)

// drawOverlay renders the modal panel matching the engine status, if any.
func drawOverlay(s *core.Screen, e *runner.Engine, shopCursor, best int) {
	switch e.Status() {
	case runner.StatusPlaying:
		if e.ShowTutorial() {
			drawTutorial(s, e)
		}
	case runner.StatusQuiz:
		drawQuiz(s, e)
	case runner.StatusFeedback:
		drawFeedback(s, e)
	case runner.StatusShop:
		drawShop(s, e, shopCursor)
	case runner.StatusVictory:
		drawEnding(s, e, "MOT COMPLET !", core.ColorBrightGreen, best)
	case runner.StatusGameOver:
		drawEnding(s, e, "FIN DE PARTIE", core.ColorBrightRed, best)
	}
}

func drawTutorial(s *core.Screen, e *runner.Engine) {
	cfg := e.Config()
	lines := []panelLine{}
	if ch := e.Chapter(); ch != nil {
		lines = append(lines,
			panelLine{ch.Title, core.ColorBrightWhite},
			panelLine{fmt.Sprintf("Mot à reconstituer : %d lettres", ch.WordLength()), core.ColorBrightGreen},
			panelLine{"", core.ColorDefault},
		)
	}
	lines = append(lines,
		panelLine{"←/→ changer de couloir, espace pour sauter.", core.ColorWhite},
		panelLine{"Attrape les lettres [X] et réponds au QCM avec 1, 2 ou 3.", core.ColorWhite},
		panelLine{fmt.Sprintf("Bonne réponse +%d, mauvaise -%d, collision -%d.",
			cfg.Scoring.LetterBonus, cfg.Scoring.WrongPenalty, cfg.Scoring.HitPenalty), core.ColorWhite},
		panelLine{"Ramasse les ◆ et dépense-les dans la BOUTIQUE.", core.ColorBrightYellow},
		panelLine{"", core.ColorDefault},
		panelLine{"Entrée pour commencer, Échap pour revenir au menu.", core.ColorGray},
	)
	drawPanel(s, "BRIEFING", core.ColorBrightCyan, lines)
}

func drawQuiz(s *core.Screen, e *runner.Engine) {
	quiz, ok := e.Quiz()
	if !ok {
		return
	}
	q := quiz.Question
	lines := []panelLine{
		{fmt.Sprintf("Notion : %s", q.Notion), core.ColorBrightMagenta},
		{"", core.ColorDefault},
		{q.Prompt, core.ColorBrightWhite},
		{"", core.ColorDefault},
	}
	for i, opt := range q.Options {
		lines = append(lines, panelLine{fmt.Sprintf("%d. %s", i+1, opt), core.ColorWhite})
	}
	lines = append(lines,
		panelLine{"", core.ColorDefault},
		panelLine{"Réponds avec 1, 2 ou 3.", core.ColorGray},
	)
	drawPanel(s, fmt.Sprintf("LETTRE %c", quiz.Letter), core.ColorBrightGreen, lines)
}

func drawFeedback(s *core.Screen, e *runner.Engine) {
	quiz, ok := e.Quiz()
	if !ok {
		return
	}
	q := quiz.Question
	lines := []panelLine{
		{fmt.Sprintf("-%d points", e.Config().Scoring.WrongPenalty), core.ColorBrightRed},
		{"", core.ColorDefault},
		{"Bonne réponse : " + q.CorrectOption(), core.ColorBrightGreen},
	}
	if q.Explanation != "" {
		lines = append(lines,
			panelLine{"", core.ColorDefault},
			panelLine{q.Explanation, core.ColorWhite},
		)
	}
	lines = append(lines,
		panelLine{"", core.ColorDefault},
		panelLine{"La lettre reviendra plus loin. Entrée pour continuer.", core.ColorGray},
	)
	drawPanel(s, "MAUVAISE RÉPONSE", core.ColorBrightRed, lines)
}

func drawShop(s *core.Screen, e *runner.Engine, cursor int) {
	items := e.ShopItems()
	lines := []panelLine{
		{fmt.Sprintf("Budget : %d", e.Score()), core.ColorBrightYellow},
		{"", core.ColorDefault},
	}
	if len(items) == 0 {
		lines = append(lines, panelLine{"Tout est déjà acheté.", core.ColorGray})
	}
	for i, item := range items {
		marker := "  "
		color := core.ColorWhite
		if i == cursor {
			marker = "> "
			color = core.ColorBrightWhite
		}
		if item.Cost > e.Score() {
			color = core.ColorGray
		}
		lines = append(lines,
			panelLine{fmt.Sprintf("%s%s (%d)", marker, item.Name, item.Cost), color},
			panelLine{"    " + item.Description, core.ColorGray},
		)
	}
	lines = append(lines,
		panelLine{"", core.ColorDefault},
		panelLine{"←/→ choisir, Entrée acheter, Échap reprendre la course.", core.ColorGray},
	)
	drawPanel(s, "BOUTIQUE", core.ColorBrightMagenta, lines)
}

func drawEnding(s *core.Screen, e *runner.Engine, title string, color core.Color, best int) {
	lines := []panelLine{
		{fmt.Sprintf("Score : %d", e.Score()), core.ColorBrightWhite},
		{fmt.Sprintf("Distance : %.0fm", e.Distance()), core.ColorWhite},
		{fmt.Sprintf("Gains ramassés : %d", e.GemsCollected()), core.ColorBrightYellow},
	}
	if ch := e.Chapter(); ch != nil {
		lines = append(lines, panelLine{
			fmt.Sprintf("Lettres : %d/%d", len(e.Collected()), ch.WordLength()),
			core.ColorBrightGreen,
		})
		if e.Status() == runner.StatusVictory {
			lines = append(lines, panelLine{"Mot : " + ch.TargetWord, core.ColorBrightGreen})
		}
	}
	if best > 0 {
		bestColor := core.ColorGray
		if e.Score() >= best {
			bestColor = core.ColorBrightYellow
		}
		lines = append(lines, panelLine{fmt.Sprintf("Record : %d", best), bestColor})
	}
	lines = append(lines,
		panelLine{"", core.ColorDefault},
		panelLine{"R rejouer, Entrée menu, Q quitter.", core.ColorGray},
	)
	drawPanel(s, title, color, lines)
}
