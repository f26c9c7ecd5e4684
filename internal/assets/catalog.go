// Package assets holds the lookup-by-key asset collaborator. Frontends fill a
// Catalog once at start-up; the game core only ever hands out opaque keys
// such as "asteroid_3_1" or "explosion_2".
package assets

import (
	"fmt"
	"sort"
	"sync"
)

// Catalog maps sprite/font keys to frontend-specific handles.
type Catalog[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// NewCatalog creates an empty catalog.
func NewCatalog[T any]() *Catalog[T] {
	return &Catalog[T]{items: make(map[string]T)}
}

// Register adds a handle under key. Registering the same key twice is a
// programming error and panics.
func (c *Catalog[T]) Register(key string, handle T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; exists {
		panic(fmt.Sprintf("assets: key %q already registered", key))
	}
	c.items[key] = handle
}

// Lookup returns the handle for key. Unknown keys panic: every key the game
// core can produce must be registered before the first frame.
func (c *Catalog[T]) Lookup(key string) T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	h, ok := c.items[key]
	if !ok {
		panic(fmt.Sprintf("assets: unknown key %q", key))
	}
	return h
}

// Has reports whether key is registered.
func (c *Catalog[T]) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.items[key]
	return ok
}

// Keys returns all registered keys, sorted.
func (c *Catalog[T]) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.items))
	for k := range c.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of registered handles.
func (c *Catalog[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
