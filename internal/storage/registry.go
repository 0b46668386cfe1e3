// Package storage maps configured backend names to TaskStore constructors.
// Adding a backend means registering a factory and implementing the
// TaskStore port; nothing else couples to it.
package storage

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/todo/internal/ports/secondary"
)

// Factory constructs a TaskStore from backend-specific parameters.
type Factory func(params map[string]string) (secondary.TaskStore, error)

// Registry resolves backend names to factories. It is an explicit value
// built at startup and passed to the wiring; there is no package-level
// registry.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a backend factory under name, replacing any previous
// registration.
func (r *Registry) Register(name string, factory Factory) {
	r.factories[name] = factory
}

// Open constructs the backend registered under name with the given
// parameters.
func (r *Registry) Open(name string, params map[string]string) (secondary.TaskStore, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unsupported storage backend %q (available: %s)",
			name, strings.Join(r.Backends(), ", "))
	}
	return factory(params)
}

// Has reports whether a backend is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.factories[name]
	return ok
}

// Backends returns the registered backend names, sorted.
func (r *Registry) Backends() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
