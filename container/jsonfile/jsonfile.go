/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package jsonfile provides a settings container persisted as one JSON file
// through an afero filesystem. Every operation round-trips the file live, so
// two containers over the same path observe each other's writes; replacement
// is atomic (temp file + rename) so a crashed writer never leaves a
// half-written settings file behind.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"github.com/suparena/appdata/container"
	apperrors "github.com/suparena/appdata/errors"
)

// Container is a file-backed implementation of container.Container.
// The mutex serializes read-modify-write cycles within this process only;
// cross-process writers race with last-write-wins semantics.
type Container struct {
	fs   afero.Fs
	path string
	mu   sync.Mutex
}

// entryRecord is the on-disk form of one settings entry. Kind keeps the
// scalar/composite discrimination explicit in the file.
type entryRecord struct {
	Kind   string            `json:"kind"`
	Value  string            `json:"value,omitempty"`
	Values map[string]string `json:"values,omitempty"`
}

const (
	kindScalar    = "scalar"
	kindComposite = "composite"
)

// New creates a settings container persisted at path on the given filesystem.
func New(fs afero.Fs, path string) (*Container, error) {
	if fs == nil {
		return nil, apperrors.NewArgumentError("fs", "must not be nil")
	}
	if path == "" {
		return nil, apperrors.NewArgumentError("path", "must not be empty")
	}
	return &Container{fs: fs, path: path}, nil
}

func (c *Container) Get(key string) (container.Value, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := c.load()
	if err != nil {
		return container.Value{}, false, err
	}
	rec, ok := entries[key]
	if !ok {
		return container.Value{}, false, nil
	}
	return recordToValue(rec), true, nil
}

func (c *Container) Set(key string, value container.Value) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := c.load()
	if err != nil {
		return err
	}
	entries[key] = valueToRecord(value)
	return c.save(entries)
}

func (c *Container) Remove(key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := c.load()
	if err != nil {
		return false, err
	}
	if _, ok := entries[key]; !ok {
		return false, nil
	}
	delete(entries, key)
	if err := c.save(entries); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Container) ContainsKey(key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := c.load()
	if err != nil {
		return false, err
	}
	_, ok := entries[key]
	return ok, nil
}

func (c *Container) Keys() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := c.load()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	return keys, nil
}

func (c *Container) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(map[string]entryRecord{})
}

func (c *Container) load() (map[string]entryRecord, error) {
	b, err := afero.ReadFile(c.fs, c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]entryRecord{}, nil
		}
		return nil, apperrors.NewCollaboratorError("jsonfile.load", err)
	}
	entries := map[string]entryRecord{}
	if len(b) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, apperrors.NewCollaboratorError("jsonfile.load",
			fmt.Errorf("parse %s: %w", c.path, err))
	}
	return entries, nil
}

func (c *Container) save(entries map[string]entryRecord) error {
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return apperrors.NewCollaboratorError("jsonfile.save", err)
	}
	b = append(b, '\n')

	dir := filepath.Dir(c.path)
	if err := c.fs.MkdirAll(dir, 0o755); err != nil {
		return apperrors.NewCollaboratorError("jsonfile.save", err)
	}

	tmp := c.path + ".tmp"
	if err := afero.WriteFile(c.fs, tmp, b, 0o644); err != nil {
		return apperrors.NewCollaboratorError("jsonfile.save", err)
	}
	if err := c.fs.Rename(tmp, c.path); err != nil {
		c.fs.Remove(tmp)
		return apperrors.NewCollaboratorError("jsonfile.save", err)
	}
	return nil
}

func recordToValue(rec entryRecord) container.Value {
	if rec.Kind == kindComposite {
		return container.CompositeValue(rec.Values)
	}
	return container.ScalarValue(rec.Value)
}

func valueToRecord(v container.Value) entryRecord {
	if v.IsComposite() {
		return entryRecord{Kind: kindComposite, Values: v.Composite()}
	}
	return entryRecord{Kind: kindScalar, Value: v.Scalar()}
}
