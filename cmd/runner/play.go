package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/word-runner/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <chapter>",
	Short: "Play a chapter",
	Long: `Start a run on the specified chapter.

Controls:
  Left/Right, A/D  - Change lane
  Space/Up/W       - Jump (again in the air with the jetpack)
  1/2/3            - Answer the question of a letter
  I                - Activate the golden parachute
  Enter            - Start, continue, buy in the shop
  Esc/B            - Leave the shop, abandon the run
  R                - Restart (after the run)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, forgiving hits
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, faster base speed
  fixed  - No progression, stays at config's initial level

Examples:
  runner play chap1
  runner play chap2 --difficulty easy
  runner play chap3 --config ./my-runner.yaml
  runner play chap1 --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) {
	chapterID := args[0]
	logger := newLogger(true)

	store := openStore(logger)

	lib, _, err := loadLibrary(store, logger)
	if err != nil {
		closeStore(store)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !lib.Has(chapterID) {
		closeStore(store)
		fmt.Fprintf(os.Stderr, "Error: unknown chapter %q\n", chapterID)
		fmt.Fprintln(os.Stderr, "Run 'runner chapters' to see available chapters.")
		os.Exit(1)
	}

	runnerCfg, err := loadRunnerConfig(flagConfig, flagDifficulty)
	if err != nil {
		closeStore(store)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()
	engine := engineFactory(lib, runnerCfg, logger)(cfg.Seed)

	_, runErr := tui.Run(engine, chapterID, store, cfg, logger)

	closeStore(store)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
