// Package registry provides a small concurrency-safe collection of named
// implementations. Concrete implementations register themselves from
// init(), callers look them up by name, in the manner of database/sql
// driver registration.
package registry

import (
	"sort"
	"sync"
)

// Registry holds named instances of T. The zero value is not usable; call
// New.
type Registry[T any] struct {
	mu      sync.RWMutex
	entries map[string]T
}

func New[T any]() *Registry[T] {
	return &Registry[T]{entries: make(map[string]T)}
}

// Register stores v under name, replacing any previous entry.
func (r *Registry[T]) Register(name string, v T) {
	r.mu.Lock()
	r.entries[name] = v
	r.mu.Unlock()
}

// Lookup returns the entry registered under name.
func (r *Registry[T]) Lookup(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[name]
	return v, ok
}

// Names returns all registered names, sorted.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all entries in name order.
func (r *Registry[T]) All() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]T, 0, len(names))
	for _, name := range names {
		out = append(out, r.entries[name])
	}
	return out
}
