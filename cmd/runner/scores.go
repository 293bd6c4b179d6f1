package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/word-runner/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores <chapter>",
	Short: "Show the best runs of a chapter",
	Long: `Display the top 10 runs for the specified chapter.

Examples:
  runner scores chap1
  runner scores chap2 --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the recorded runs of the chapter")
}

func runScores(_ *cobra.Command, args []string) {
	chapterID := args[0]

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	lib, _, err := loadLibrary(store, newLogger(false))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	ch, err := lib.Get(chapterID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown chapter %q\n", chapterID)
		fmt.Fprintln(os.Stderr, "Run 'runner chapters' to see available chapters.")
		return
	}

	if flagClearScores {
		if err := store.ClearRuns(chapterID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			return
		}
		fmt.Printf("Runs of %s cleared.\n", ch.Title)
		return
	}

	runs, err := store.TopRuns(chapterID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Best runs - %s\n", ch.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'runner play %s' to set the first record!\n", chapterID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-8s  %-9s  %-9s  %s\n", "Rank", "Score", "Letters", "Distance", "Outcome", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-9s  %-9s  %s\n", "----", "-----", "-------", "--------", "-------", "----")

	word := ch.WordLength()
	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		letters := fmt.Sprintf("%d/%d", r.Letters, word)
		dist := fmt.Sprintf("%.0fm", r.Distance)
		fmt.Printf("  %-4d  %-10d  %-8s  %-9s  %-9s  %s\n", i+1, r.Score, letters, dist, r.Outcome, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetChapterStats(chapterID); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Victories: %d  Avg: %.0f\n",
			stats.HighScore, stats.RunsCount, stats.Victories, stats.AvgScore)
	}
}
