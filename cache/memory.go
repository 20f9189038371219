package cache

import (
	"context"
	"sync"
)

// Memory is a bounded in-process Store. Eviction is least-recently-written:
// once maxEntries is reached, the oldest entry makes room for the newest.
// Safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	max     int
	entries map[string]*Solution
	order   []string // insertion order, oldest first
}

var _ Store = (*Memory)(nil)

// DefaultMemoryEntries bounds a Memory store when the caller passes max <= 0.
const DefaultMemoryEntries = 1024

// NewMemory returns a Memory store holding at most max entries
// (DefaultMemoryEntries when max <= 0).
func NewMemory(max int) *Memory {
	if max <= 0 {
		max = DefaultMemoryEntries
	}

	return &Memory{
		max:     max,
		entries: make(map[string]*Solution, max),
	}
}

// Get returns the solution under key, or ErrMiss.
func (m *Memory) Get(_ context.Context, key string) (*Solution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sol, ok := m.entries[key]
	if !ok {
		return nil, ErrMiss
	}

	return sol, nil
}

// Put stores the solution under key, evicting the oldest entry when full.
func (m *Memory) Put(_ context.Context, key string, sol *Solution) error {
	if sol == nil {
		return ErrNilSolution
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[key]; !exists {
		if len(m.entries) >= m.max {
			oldest := m.order[0]
			m.order = m.order[1:]
			delete(m.entries, oldest)
		}
		m.order = append(m.order, key)
	}
	m.entries[key] = sol

	return nil
}

// Len returns the number of cached entries.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries)
}
