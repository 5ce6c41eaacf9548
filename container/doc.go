/*
Package container defines the settings-container collaborator contract for
the AppData library: a flat string-keyed namespace whose values are either
serialized scalars or composite groups of serialized sub-values.

The main interface is Container:

	type Container interface {
	    Get(key string) (Value, bool, error)
	    Set(key string, value Value) error
	    Remove(key string) (bool, error)
	    ContainsKey(key string) (bool, error)
	    Keys() ([]string, error)
	    Clear() error
	}

Value is a tagged variant (scalar string | composite map), so the
scalar-vs-composite discrimination is structural and type-safe rather than
inferred from the runtime shape of an opaque payload.

Implementations:
  - memory: in-process concurrent-map implementation, useful as a scratch
    substrate and in tests
  - jsonfile: single-JSON-file implementation persisted through an afero
    filesystem with atomic replace semantics
  - ddb: DynamoDB implementation for app settings kept in a shared table
  - mock: builder-style mock with error injection for testing

The AppData core does not implement a storage substrate of its own; these
implementations are collaborators the settings store layers on.
*/
package container
