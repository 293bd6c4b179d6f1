// Package registry provides a global registry for chapter packs.
// Packs register themselves in init() functions, allowing the platform
// to discover built-in question sets without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/word-runner/internal/content"
)

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID       string
	Name     string
	Chapters int
}

// Factory loads a pack. It is called once at registration to read metadata
// and again on every Create, so it must return an independent Set.
type Factory func() (content.Set, error)

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]PackInfo)
	mu        sync.RWMutex
)

// Register adds a pack factory to the registry.
// Typically called from a pack's init() function.
// Panics if a pack with the same ID is already registered or if the pack
// fails to load.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", id))
	}

	set, err := f()
	if err != nil {
		panic(fmt.Sprintf("registry: pack %q failed to load: %v", id, err))
	}

	factories[id] = f
	name := set.Name
	if name == "" {
		name = id
	}
	infos[id] = PackInfo{ID: id, Name: name, Chapters: len(set.Chapters)}
}

// List returns information about all registered packs, sorted by ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create loads a pack by its ID.
// Returns an error if the pack ID is not registered.
func Create(id string) (content.Set, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return content.Set{}, fmt.Errorf("registry: unknown pack %q", id)
	}

	set, err := f()
	if err != nil {
		return content.Set{}, fmt.Errorf("registry: load pack %q: %w", id, err)
	}
	return set, nil
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Library merges every registered pack into one chapter library, in pack ID
// order. A chapter ID defined by more than one pack resolves to the last pack.
func Library() (*content.Library, error) {
	lib := content.NewLibrary()
	for _, info := range List() {
		set, err := Create(info.ID)
		if err != nil {
			return nil, err
		}
		lib.AddSet(set)
	}
	return lib, nil
}

// unregister removes a pack. Used by tests.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()

	delete(factories, id)
	delete(infos, id)
}
