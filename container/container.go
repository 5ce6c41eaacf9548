/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package container

// Container is the flat settings substrate the settings store delegates to:
// a string-keyed namespace where each value is either a serialized scalar or
// a composite group of serialized sub-values.
//
// Implementations must round-trip values live; the settings layer keeps no
// cache, so two stores over the same container observe each other's writes.
// Implementations must be safe for concurrent use. Consistency under
// concurrent writers is whatever the substrate itself guarantees; the
// settings layer adds no ordering beyond last-write-wins per key.
type Container interface {
	// Get returns the value for a key. The boolean reports whether the key
	// was present.
	Get(key string) (Value, bool, error)
	// Set inserts or updates the value for a key, replacing any prior value
	// regardless of its kind.
	Set(key string, value Value) error
	// Remove deletes a key. The boolean reports whether a removal occurred.
	Remove(key string) (bool, error)
	// ContainsKey reports whether a key is present, regardless of kind.
	ContainsKey(key string) (bool, error)
	// Keys returns all top-level keys. Order is unspecified.
	Keys() ([]string, error)
	// Clear removes all top-level keys.
	Clear() error
}
