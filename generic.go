/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package appdata

import (
	"context"

	"github.com/suparena/appdata/filestore"
	"github.com/suparena/appdata/settings"
)

// Typed operations are package-level generic functions delegating to the
// helper's bound stores, since Go methods cannot introduce type parameters.

// Read returns the settings value under key decoded as T, or def when the
// key is absent. Decode failures propagate as errors.ErrFormat.
func Read[T any](h *Helper, key string, def T) (T, error) {
	return settings.Read(h.settings, key, def)
}

// TryRead is Read with absence signalled explicitly.
func TryRead[T any](h *Helper, key string) (T, bool, error) {
	return settings.TryRead[T](h.settings, key)
}

// Write stores value under key, replacing any prior entry of either kind.
func Write[T any](h *Helper, key string, value T) error {
	return settings.Write(h.settings, key, value)
}

// ReadComposite returns the sub-key value inside the composite at key, or
// def when the composite or sub-key is absent.
func ReadComposite[T any](h *Helper, key, subKey string, def T) (T, error) {
	return settings.ReadComposite(h.settings, key, subKey, def)
}

// WriteComposite merges the supplied sub-key values into the composite at
// key; sub-keys not named are left untouched.
func WriteComposite[T any](h *Helper, key string, values map[string]T) error {
	return settings.WriteComposite(h.settings, key, values)
}

// ReadFile reads and decodes the file at path, or returns def when the
// file is absent.
func ReadFile[T any](h *Helper, ctx context.Context, path string, def T) (T, error) {
	return filestore.ReadFile(h.files, ctx, path, def)
}

// CreateFile serializes value to the file at path, replacing any existing
// item there.
func CreateFile[T any](h *Helper, ctx context.Context, path string, value T) error {
	return filestore.CreateFile(h.files, ctx, path, value)
}
