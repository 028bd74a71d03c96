package backend

import (
	"sync"
)

// Factory creates a new executor instance.
type Factory func() Executor

// registry holds registered executors.
var (
	registryMu sync.RWMutex
	executors  = make(map[string]Factory)
	// Priority order for executor selection (first available wins).
	// WGPU > Barrier > Immediate (Immediate is the universal fallback).
	priority = []string{WGPU, Barrier, Immediate}
)

// Register registers an executor factory with the given name.
// This is typically called from init() functions in executor packages.
// If an executor with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	executors[name] = factory
}

// Unregister removes an executor from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(executors, name)
}

// Available returns a list of registered executor names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(executors))
	for name := range executors {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if an executor with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := executors[name]
	return ok
}

// Get returns an executor instance by name, or ErrNotAvailable if no such
// executor is registered.
func Get(name string) (Executor, error) {
	registryMu.RLock()
	factory, ok := executors[name]
	registryMu.RUnlock()

	if !ok {
		return nil, ErrNotAvailable
	}
	return factory(), nil
}

// Default returns the highest-priority registered executor, or
// ErrNotAvailable when nothing is registered.
func Default() (Executor, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range priority {
		if factory, ok := executors[name]; ok {
			return factory(), nil
		}
	}
	// Fall back to any registered executor, deterministic not required
	// here: this path only triggers for purely custom registrations.
	for _, factory := range executors {
		return factory(), nil
	}
	return nil, ErrNotAvailable
}
