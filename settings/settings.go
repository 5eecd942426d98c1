/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Provider is the configuration lookup capability consumed by the Resolver.
// It is injected explicitly so the resolver never reads ambient global state.
type Provider interface {
	// Lookup returns the value for key and whether the key exists.
	Lookup(key string) (string, bool)
}

// Map is a Provider backed by an in-memory map, primarily for tests and
// programmatic configuration.
type Map map[string]string

func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Env is a Provider backed by process environment variables.
type Env struct{}

func (Env) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Chain is a Provider that consults providers in order and returns the
// first hit. Useful for layering a file over the environment.
type Chain []Provider

func (c Chain) Lookup(key string) (string, bool) {
	for _, p := range c {
		if v, ok := p.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

// FromYAMLFile loads a flat string-to-string YAML document as a Map provider.
func FromYAMLFile(path string) (Map, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	m := Map{}
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %q: %w", path, err)
	}
	return m, nil
}
