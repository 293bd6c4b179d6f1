package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/word-runner/internal/content"
	"github.com/vovakirdan/word-runner/internal/storage"
)

var (
	flagActivate   bool
	flagExportPath string
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add a question set to the library",
	Long: `Import a question set from a file and store it in the database.

Supported formats: ` + strings.Join(content.FormatExtensions(), ", ") + `

Every chapter is validated: the target word must have one question per
letter and each question needs three options with a valid correct index.
Warnings are printed but do not stop the import.

Examples:
  runner import ./mon-qcm.yaml
  runner import ./export.csv --activate`,
	Args: cobra.ExactArgs(1),
	Run:  runImport,
}

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "List imported question sets",
	Long: `List the question sets stored in the database. The active set, marked
with *, replaces the built-in chapters in every command.`,
	Run: runLibraryList,
}

var libraryUseCmd = &cobra.Command{
	Use:   "use <set-id>",
	Short: "Select the active question set",
	Args:  cobra.ExactArgs(1),
	Run:   runLibraryUse,
}

var libraryResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Go back to the built-in chapters",
	Args:  cobra.NoArgs,
	Run:   runLibraryReset,
}

var libraryRemoveCmd = &cobra.Command{
	Use:     "rm <set-id>",
	Aliases: []string{"remove"},
	Short:   "Delete an imported question set",
	Args:    cobra.ExactArgs(1),
	Run:     runLibraryRemove,
}

var libraryExportCmd = &cobra.Command{
	Use:   "export <set-id>",
	Short: "Write a stored question set as YAML",
	Args:  cobra.ExactArgs(1),
	Run:   runLibraryExport,
}

func init() {
	importCmd.Flags().BoolVar(&flagActivate, "activate", false, "Make the imported set the active one")
	libraryExportCmd.Flags().StringVarP(&flagExportPath, "output", "o", "", "Output file (default: stdout)")

	libraryCmd.AddCommand(libraryUseCmd)
	libraryCmd.AddCommand(libraryResetCmd)
	libraryCmd.AddCommand(libraryRemoveCmd)
	libraryCmd.AddCommand(libraryExportCmd)
}

// mustOpenStore opens the database or exits; the library commands need it.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runImport(_ *cobra.Command, args []string) {
	logger := newLogger(false)

	set, warnings, err := content.LoadFile(args[0])
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := mustOpenStore()
	defer store.Close()

	id, err := store.SaveSet(set)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	logger.Info("question set imported", "id", id, "chapters", len(set.Chapters))

	fmt.Printf("Imported %q as %s (%d chapters)\n", set.Name, id, len(set.Chapters))

	if flagActivate {
		if err := store.SetActiveSet(id); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Println("Set is now active.")
		return
	}
	fmt.Printf("Run 'runner library use %s' to play it.\n", id)
}

func runLibraryList(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	sets, err := store.ListSets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	active, _ := store.ActiveSet()

	if len(sets) == 0 {
		fmt.Println("No imported question sets.")
		fmt.Println()
		fmt.Println("Run 'runner import <file>' to add one.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, s := range sets {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("    %-*s  %-8s  %-16s  %s\n", maxIDLen, "ID", "Chapters", "Imported", "Name")
	fmt.Printf("    %-*s  %-8s  %-16s  %s\n", maxIDLen, "--", "--------", "--------", "----")
	for _, s := range sets {
		mark := " "
		if s.ID == active {
			mark = "*"
		}
		fmt.Printf("  %s %-*s  %-8d  %-16s  %s\n", mark, maxIDLen, s.ID, s.Chapters,
			s.CreatedAt.Format("2006-01-02 15:04"), s.Name)
	}

	if active == "" {
		fmt.Println()
		fmt.Println("Using the built-in chapters.")
	}
}

func runLibraryUse(_ *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	if err := store.SetActiveSet(args[0]); err != nil {
		reportSetError(args[0], err)
		return
	}
	fmt.Printf("Active question set: %s\n", args[0])
}

func runLibraryReset(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	if err := store.SetActiveSet(""); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Println("Using the built-in chapters.")
}

func runLibraryRemove(_ *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	if err := store.DeleteSet(args[0]); err != nil {
		reportSetError(args[0], err)
		return
	}
	fmt.Printf("Deleted %s\n", args[0])
}

func runLibraryExport(_ *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	set, err := store.LoadSet(args[0])
	if err != nil {
		reportSetError(args[0], err)
		return
	}

	data, err := content.MarshalSet(set)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	if flagExportPath == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(flagExportPath, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("Wrote %s\n", flagExportPath)
}

func reportSetError(id string, err error) {
	if errors.Is(err, storage.ErrSetNotFound) {
		fmt.Fprintf(os.Stderr, "Error: no question set %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'runner library' to see imported sets.")
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
