/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tablebind

import (
	"fmt"
	"sync"
)

// Registry is a thread-safe collection of constructed bindings, keyed by
// binding name. Bindings are registered once at startup and looked up
// per invocation.
type Registry struct {
	mu       sync.RWMutex
	bindings map[string]*Binding
}

// NewRegistry creates an empty binding registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[string]*Binding),
	}
}

// Register stores the binding under the given name.
func (r *Registry) Register(name string, b *Binding) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bindings[name]; exists {
		return fmt.Errorf("binding with name %q already registered", name)
	}
	r.bindings[name] = b
	return nil
}

// Get retrieves the binding registered under the given name.
func (r *Registry) Get(name string) (*Binding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, exists := r.bindings[name]
	if !exists {
		return nil, fmt.Errorf("binding with name %q not found", name)
	}
	return b, nil
}

// Remove deletes the binding registered under the given name.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bindings[name]; !exists {
		return fmt.Errorf("binding with name %q not found", name)
	}
	delete(r.bindings, name)
	return nil
}

// List returns all registered binding names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.bindings))
	for name := range r.bindings {
		names = append(names, name)
	}
	return names
}
