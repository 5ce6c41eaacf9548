/*
Package registry maps serializer names to factory functions so that tools and
configuration can select a serialization format by name.

The built-in formats ("json", "yaml", "gob") register themselves at package
load; applications embedding a custom ObjectSerializer can register their own
factory under a distinct name. Registering a duplicate name panics, matching
the deliberate-wiring-error semantics of duplicate registrations.

Usage:

	s, err := registry.GetSerializer("yaml")
	if err != nil {
	    // unknown format name
	}
	helper, err := appdata.New(root, appdata.WithSerializer(s))
*/
package registry
