/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a mock implementation of the settings container
// contract for testing
package mock

import (
	"sync"

	"github.com/suparena/appdata/container"
)

// Container is a mock implementation of container.Container for testing
type Container struct {
	mu          sync.RWMutex
	data        map[string]container.Value
	getError    error
	setError    error
	removeError error
	clearError  error
}

// New creates a new mock Container
func New() *Container {
	return &Container{
		data: make(map[string]container.Value),
	}
}

// WithGetError makes Get and ContainsKey operations return an error
func (m *Container) WithGetError(err error) *Container {
	m.getError = err
	return m
}

// WithSetError makes Set operations return an error
func (m *Container) WithSetError(err error) *Container {
	m.setError = err
	return m
}

// WithRemoveError makes Remove operations return an error
func (m *Container) WithRemoveError(err error) *Container {
	m.removeError = err
	return m
}

// WithClearError makes Clear operations return an error
func (m *Container) WithClearError(err error) *Container {
	m.clearError = err
	return m
}

// Seed pre-populates the mock with an entry, bypassing error injection
func (m *Container) Seed(key string, value container.Value) *Container {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return m
}

// Len returns the number of entries currently held
func (m *Container) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

func (m *Container) Get(key string) (container.Value, bool, error) {
	if m.getError != nil {
		return container.Value{}, false, m.getError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Container) Set(key string, value container.Value) error {
	if m.setError != nil {
		return m.setError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Container) Remove(key string) (bool, error) {
	if m.removeError != nil {
		return false, m.removeError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; !ok {
		return false, nil
	}
	delete(m.data, key)
	return true, nil
}

func (m *Container) ContainsKey(key string) (bool, error) {
	if m.getError != nil {
		return false, m.getError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[key]
	return ok, nil
}

func (m *Container) Keys() ([]string, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data))
	for key := range m.data {
		keys = append(keys, key)
	}
	return keys, nil
}

func (m *Container) Clear() error {
	if m.clearError != nil {
		return m.clearError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]container.Value)
	return nil
}
