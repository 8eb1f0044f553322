package filter

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Manager holds named filters for one value type and resolves ad-hoc
// expressions through the same compiler.
type Manager[T any] struct {
	compiler *Compiler[T]
	filters  map[string]*Filter[T]
	mu       sync.RWMutex
}

// NewManager creates a manager backed by compiler.
func NewManager[T any](compiler *Compiler[T]) *Manager[T] {
	return &Manager[T]{
		compiler: compiler,
		filters:  make(map[string]*Filter[T]),
	}
}

// RegisterFilter registers a new filter or updates an existing one
func (m *Manager[T]) RegisterFilter(name, expression string) error {
	f, err := m.compiler.Compile(expression)
	if err != nil {
		return fmt.Errorf("failed to compile filter '%s': %w", name, err)
	}

	m.mu.Lock()
	m.filters[name] = f
	m.mu.Unlock()

	return nil
}

// RegisterFilters registers multiple filters at once. Nothing is registered
// unless every expression compiles.
func (m *Manager[T]) RegisterFilters(filters map[string]string) error {
	compiled := make(map[string]*Filter[T], len(filters))

	for _, name := range slices.Sorted(maps.Keys(filters)) {
		f, err := m.compiler.Compile(filters[name])
		if err != nil {
			return fmt.Errorf("failed to compile filter '%s': %w", name, err)
		}
		compiled[name] = f
	}

	m.mu.Lock()
	maps.Copy(m.filters, compiled)
	m.mu.Unlock()

	return nil
}

// GetFilter returns a compiled filter by name
func (m *Manager[T]) GetFilter(name string) (*Filter[T], bool) {
	m.mu.RLock()
	f, exists := m.filters[name]
	m.mu.RUnlock()
	return f, exists
}

// ListFilters returns all registered filter names, sorted
func (m *Manager[T]) ListFilters() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Sorted(maps.Keys(m.filters))
}

// Resolve returns the filter registered under nameOrExpr, or compiles
// nameOrExpr as an expression when no such name exists.
func (m *Manager[T]) Resolve(nameOrExpr string) (*Filter[T], error) {
	if f, ok := m.GetFilter(nameOrExpr); ok {
		return f, nil
	}
	return m.compiler.Compile(nameOrExpr)
}
