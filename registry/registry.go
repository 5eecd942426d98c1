/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sync"

	"github.com/suparena/tablebind"
)

// Declaration registry: binding declarations are registered once, at
// process start, and live for the process lifetime.

var (
	declarations = make(map[string]tablebind.Declaration)
	mu           sync.RWMutex
)

// Register validates and stores a declaration under the given name.
// Registering the same name twice is an error.
func Register(name string, decl tablebind.Declaration) error {
	if err := decl.Validate(); err != nil {
		return fmt.Errorf("binding %q: %w", name, err)
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := declarations[name]; exists {
		return fmt.Errorf("binding declaration %q already registered", name)
	}
	declarations[name] = decl
	return nil
}

// Get retrieves the declaration registered under name, if any.
func Get(name string) (tablebind.Declaration, bool) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := declarations[name]
	return d, ok
}

// Names returns all registered declaration names.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(declarations))
	for name := range declarations {
		names = append(names, name)
	}
	return names
}

// Reset clears the registry. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	declarations = make(map[string]tablebind.Declaration)
}
