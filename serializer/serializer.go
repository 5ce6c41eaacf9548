/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package serializer

// ObjectSerializer is the pluggable value-to-storage-string conversion
// boundary used by the settings store and the file store.
//
// Implementations must be deterministic and round-trip safe for any type the
// caller uses consistently: Deserialize(Serialize(v)) yields a value equal to
// v. Mixing serializers across writes and reads of the same key is undefined
// behavior and a caller responsibility; one helper instance binds exactly one
// serializer for its lifetime.
//
// All implementations in this package are stateless and safe for concurrent
// use across multiple goroutines without additional synchronization.
type ObjectSerializer interface {
	// Serialize converts a typed value into its storage string.
	Serialize(value any) (string, error)
	// Deserialize decodes a storage string into the value pointed to by out.
	// It returns an error matching errors.ErrFormat when data is not a valid
	// encoding of the target type; it never substitutes a default value.
	Deserialize(data string, out any) error
}
