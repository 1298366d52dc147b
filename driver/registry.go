// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package driver

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a new driver instance. Factories should be cheap; any
// expensive platform setup belongs in Driver.Run.
type Factory func() (Driver, error)

// RegistryEntry describes a registered windowing driver.
type RegistryEntry struct {
	// Name is the unique identifier for this driver.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: native windowing with GPU presentation
	//   - 10: headless/software drivers
	Priority int

	// Factory creates driver instances.
	Factory Factory

	// Available reports whether the driver can run on this system.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered windowing drivers. Platform bindings
// register themselves on import so applications only need a blank
// import to pull one in.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// Register adds a driver to the global registry. Passing a nil
// available function marks the driver always available. Registering an
// existing name replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a driver from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered driver names sorted by priority
// (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available drivers sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns information about a specific driver.
func Get(name string) (*RegistryEntry, bool) {
	return globalRegistry.Get(name)
}

// New creates a driver using the best available registration.
func New() (Driver, error) {
	return globalRegistry.New()
}

// NewByName creates a specific named driver.
func NewByName(name string) (Driver, error) {
	return globalRegistry.NewByName(name)
}

// Register adds a driver to this registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}
	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a driver from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered driver names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available drivers sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns a copy of the entry for a specific driver.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	entryCopy := *entry
	return &entryCopy, true
}

// New creates a driver using the best available registration, trying
// each available driver in priority order.
func (r *Registry) New() (Driver, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoDriver
	}

	var lastErr error
	for _, name := range available {
		d, err := r.NewByName(name)
		if err == nil {
			logger().Debug("windowing driver selected", "driver", name)
			return d, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// NewByName creates a specific named driver.
func (r *Registry) NewByName(name string) (Driver, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, name)
	}
	if !entry.Available() {
		return nil, fmt.Errorf("%w: %q", ErrDriverUnavailable, name)
	}
	return entry.Factory()
}

// sortedNames returns driver names sorted by priority (highest first),
// optionally filtered to available drivers. Caller must hold the lock.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].priority > entries[j].priority
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}
