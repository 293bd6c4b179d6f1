// runner is a lane-based endless runner for revising course notions in the
// terminal: collect the letters of a target word by answering one
// multiple-choice question per letter.
//
// Usage:
//
//	runner chapters              - List available chapters
//	runner play <chapter>        - Play a chapter
//	runner menu                  - Start menu to pick chapters interactively
//	runner serve                 - Start SSH server for remote play
//	runner scores <chapter>      - Show the best runs of a chapter
//	runner import <file>         - Add a question set to the library
//	runner library               - Manage imported question sets
//	runner config                - Print the default runner config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.wordrunner/runs.db)
//	--chapters <dir>     - Load extra chapter files from a directory
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file (TUI commands discard logs otherwise)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/word-runner/internal/config"
	"github.com/vovakirdan/word-runner/internal/content"
	"github.com/vovakirdan/word-runner/internal/core"
	"github.com/vovakirdan/word-runner/internal/platform/tui"
	"github.com/vovakirdan/word-runner/internal/registry"
	"github.com/vovakirdan/word-runner/internal/runner"
	"github.com/vovakirdan/word-runner/internal/storage"

	// Import packs to register them
	_ "github.com/vovakirdan/word-runner/internal/content/builtin"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagDBPath      string
	flagChaptersDir string
	flagLogLevel    string
	flagLogFile     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Word Runner - revise your courses in a terminal endless runner",
	Long: `Word Runner is a lane-based endless runner played in the terminal.
Each chapter hides a target word: pick up its letters on the track and
answer the multiple-choice question bound to each one to spell it out.

Available commands:
  chapters - Show all available chapters
  play     - Play a specific chapter directly
  menu     - Interactive chapter picker menu
  serve    - Start SSH server for remote play
  scores   - View the best runs of a chapter
  import   - Add a question set to the library
  library  - List, select or remove imported question sets
  config   - Print the default runner config

Examples:
  runner chapters
  runner play chap1
  runner menu --difficulty easy
  runner import ./mon-qcm.json --activate
  runner serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wordrunner/runs.db", "Path to runs and library database")
	rootCmd.PersistentFlags().StringVar(&flagChaptersDir, "chapters", "", "Directory of extra chapter files (yaml, json, csv)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(chaptersCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(libraryCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger. Full-screen commands cannot share the
// terminal with log output, so they log only when --log-file is set.
func newLogger(fullScreen bool) *log.Logger {
	var w io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
			w = io.Discard
		} else {
			w = f
		}
	} else if fullScreen {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger
}

// openStore opens the database. Runs still work without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		logger.Warn("could not open runs database", "err", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}

// builtinLibrary merges the registered packs with the chapter directory.
func builtinLibrary() (*content.Library, error) {
	lib, err := registry.Library()
	if err != nil {
		return nil, err
	}
	if flagChaptersDir != "" {
		chapters, err := content.NewLoader(flagChaptersDir).LoadAll()
		if err != nil {
			return nil, err
		}
		for _, ch := range chapters {
			lib.Add(ch)
		}
	}
	return lib, nil
}

// loadLibrary returns the active question set from the store, or the built-in
// chapters. The second value names the active set.
func loadLibrary(store *storage.Store, logger *log.Logger) (*content.Library, string, error) {
	lib, err := builtinLibrary()
	if err != nil {
		return nil, "", err
	}
	if store == nil {
		return lib, "", nil
	}

	resolved, source, err := store.ResolveLibrary(lib)
	if err != nil {
		logger.Warn("could not load active question set, using built-in chapters", "err", err)
		return lib, "", nil
	}
	return resolved, source, nil
}

// loadRunnerConfig loads the tunables and applies the difficulty preset.
func loadRunnerConfig(path, difficulty string) (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(path)
	if err != nil {
		return cfg, err
	}
	config.ApplyRunnerPreset(&cfg, config.ParsePreset(difficulty))
	return cfg, nil
}

// engineFactory builds engines over lib. A fixed --seed is reused for every
// run so runs are reproducible.
func engineFactory(lib *content.Library, cfg config.RunnerConfig, logger *log.Logger) tui.EngineFactory {
	return func(seed int64) *runner.Engine {
		if flagSeed != 0 {
			seed = flagSeed
		}
		return runner.NewEngine(lib,
			runner.WithConfig(cfg),
			runner.WithSeed(seed),
			runner.WithLogger(logger),
		)
	}
}

// runtimeConfig reads the terminal size and the global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}

	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}
