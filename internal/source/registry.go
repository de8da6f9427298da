package source

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry   = make(map[string]Page)
	registryMu sync.RWMutex
)

// Register adds a page to the registry.
// Panics if a page with the same key is already registered, or if the
// page's descriptors fail view validation; both are wiring mistakes that
// should surface at startup, not per request.
func Register(p Page) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[p.Key]; exists {
		panic(fmt.Sprintf("page already registered: %s", p.Key))
	}
	if p.Key == "" {
		panic("page key must not be empty")
	}
	if p.Query == "" {
		panic(fmt.Sprintf("page %s has no query", p.Key))
	}
	if _, err := p.NewView(1); err != nil {
		panic(fmt.Sprintf("page %s: %v", p.Key, err))
	}

	registry[p.Key] = p
}

// Get returns a page by key.
// Returns false if not found.
func Get(key string) (Page, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	p, ok := registry[key]
	return p, ok
}

// All returns all registered pages, sorted by key for consistent ordering.
func All() []Page {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]Page, 0, len(registry))
	for _, p := range registry {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})

	return result
}

// Count returns the number of registered pages.
func Count() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// Clear removes all registered pages.
// Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]Page)
}
