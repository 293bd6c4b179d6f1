package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/word-runner/internal/registry"
)

var chaptersCmd = &cobra.Command{
	Use:   "chapters",
	Short: "List all available chapters",
	Long: `Shows the chapters of the active question set, or the built-in
chapters when no imported set is selected.`,
	Run: runChapters,
}

func runChapters(_ *cobra.Command, _ []string) {
	logger := newLogger(false)
	store := openStore(logger)
	defer closeStore(store)

	lib, source, err := loadLibrary(store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	chapters := lib.List()
	if len(chapters) == 0 {
		fmt.Println("No chapters available.")
		return
	}

	if source == "" {
		fmt.Println("Built-in chapters:")
		for _, p := range registry.List() {
			fmt.Printf("  pack %s - %s (%d chapters)\n", p.ID, p.Name, p.Chapters)
		}
	} else {
		fmt.Printf("Chapters of %q:\n", source)
	}
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, ch := range chapters {
		if len(ch.ID) > maxIDLen {
			maxIDLen = len(ch.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "ID", "Word", "Title")
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "--", "----", "-----")

	for _, ch := range chapters {
		fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, ch.ID, ch.TargetWord, ch.Title)
	}

	fmt.Println()
	fmt.Println("Run 'runner play <id>' to play a chapter.")
}
