package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader handles loading chapter files from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new chapter loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all chapter files.
// Invalid files are skipped. Chapters are sorted by ID.
func (l *Loader) LoadAll() ([]Chapter, error) {
	var chapters []Chapter

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		set, _, err := LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		chapters = append(chapters, set.Chapters...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.SliceStable(chapters, func(i, j int) bool {
		return chapters[i].ID < chapters[j].ID
	})
	return chapters, nil
}

// LoadFile reads, parses and validates a single chapter file.
// A set without an ID takes the file name (without extension).
func LoadFile(path string) (Set, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	set, warnings, err := Parse(data, ext)
	if err != nil {
		return Set{}, warnings, fmt.Errorf("parsing file %s: %w", path, err)
	}

	if set.ID == "" {
		set.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if set.Name == "" {
		set.Name = set.ID
	}
	return set, warnings, nil
}

// Parse routes raw file contents to the parser for the extension and
// converts the result into a validated Set.
func Parse(data []byte, ext string) (Set, []string, error) {
	var (
		pack     FilePack
		warnings []string
		err      error
	)

	switch ext {
	case ".yaml", ".yml", ".json":
		pack, err = ParseYAML(data)
	case ".csv":
		pack, warnings, err = ParseCSV(data)
	default:
		return Set{}, nil, fmt.Errorf("unsupported extension: %s", ext)
	}
	if err != nil {
		return Set{}, warnings, err
	}

	set, convWarnings, err := pack.ToSet()
	warnings = append(warnings, convWarnings...)
	if err != nil {
		return Set{}, warnings, err
	}
	return set, warnings, nil
}

func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
