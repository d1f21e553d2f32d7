package exercise

import (
	"fmt"
	"sort"
	"sync"
)

// Factory constructs an exercise with the provided configuration.
type Factory func(Config) (Exercise, error)

// Registry maintains known exercise factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// Register installs an exercise factory. Returns an error if the ID already exists.
func (r *Registry) Register(id string, factory Factory) error {
	if id == "" {
		return fmt.Errorf("exercise: id is required")
	}
	if factory == nil {
		return fmt.Errorf("exercise: factory is required for %s", id)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[id]; exists {
		return fmt.Errorf("exercise: %s already registered", id)
	}
	r.factories[id] = factory
	return nil
}

// MustRegister panics if registration fails.
func (r *Registry) MustRegister(id string, factory Factory) {
	if err := r.Register(id, factory); err != nil {
		panic(err)
	}
}

// Resolve constructs an exercise by ID.
func (r *Registry) Resolve(id string, cfg Config) (Exercise, error) {
	r.mu.RLock()
	factory, ok := r.factories[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("exercise: unknown id %s", id)
	}
	ex, err := factory(cfg)
	if err != nil {
		return nil, err
	}
	if err := ex.Info().Validate(); err != nil {
		return nil, err
	}
	return ex, nil
}

// IDs returns a sorted list of registered exercise identifiers.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
