/*
Package serializer provides the value-to-storage-string conversion boundary
for the AppData library. It defines a common interface and multiple
implementations for converting typed values to the opaque strings the
settings container and folder provider persist.

The package focuses on:
  - Providing a consistent interface for different serialization formats
  - Keeping implementations stateless and safe for concurrent use
  - Propagating decode failures as errors.ErrFormat rather than silently
    substituting defaults

Key Components:

  - ObjectSerializer: Core interface that all serializer implementations
    must satisfy.

  - jsonSerializer: The default implementation, using encoding/json.
    A good balance of readability and interoperability.

  - yamlSerializer: Implementation using gopkg.in/yaml.v3, producing
    human-editable output for settings users may inspect by hand.

  - gobSerializer: Implementation using encoding/gob with base64 armoring.
    Preserves Go type fidelity (int vs float64) at the cost of an opaque,
    Go-only stored form.

Choosing a serializer:

	A storage helper binds exactly one serializer for its lifetime. The
	stored representation of every key is produced by that serializer;
	mixing serializers across writes and reads of the same key is undefined
	behavior and a caller responsibility.

Usage:

	s := serializer.NewJSONSerializer()
	text, err := s.Serialize(myValue)
	// ... store text ...
	var decoded MyType
	err = s.Deserialize(text, &decoded)
*/
package serializer
