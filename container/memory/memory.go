/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package memory provides an in-process settings container backed by a
// concurrent map. It is the substrate of choice for tests and for state that
// does not need to outlive the process.
package memory

import (
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/suparena/appdata/container"
)

// Container is an in-memory implementation of container.Container.
// All operations are lock-free reads/writes on a sharded concurrent map, so
// the container is safe for concurrent use from multiple goroutines.
type Container struct {
	entries *xsync.MapOf[string, container.Value]
}

// New creates an empty in-memory settings container.
func New() *Container {
	return &Container{
		entries: xsync.NewMapOf[string, container.Value](),
	}
}

func (c *Container) Get(key string) (container.Value, bool, error) {
	v, ok := c.entries.Load(key)
	return v, ok, nil
}

func (c *Container) Set(key string, value container.Value) error {
	c.entries.Store(key, value)
	return nil
}

func (c *Container) Remove(key string) (bool, error) {
	_, loaded := c.entries.LoadAndDelete(key)
	return loaded, nil
}

func (c *Container) ContainsKey(key string) (bool, error) {
	_, ok := c.entries.Load(key)
	return ok, nil
}

func (c *Container) Keys() ([]string, error) {
	keys := make([]string, 0, c.entries.Size())
	c.entries.Range(func(key string, _ container.Value) bool {
		keys = append(keys, key)
		return true
	})
	return keys, nil
}

func (c *Container) Clear() error {
	c.entries.Clear()
	return nil
}
