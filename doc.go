/*
Package appdata provides a key-value and hierarchical-file persistence
abstraction for application-local state: scalar settings, composite
(grouped) settings bundles, and serialized objects stored as files under an
application-private folder tree.

The library layers on two pluggable collaborators — a settings container
and a folder provider — and defines the typed access model on top of them.
It ships collaborator implementations (in-memory, JSON-file, DynamoDB for
settings; afero filesystems for folders) but does not require them.

Key Features:
  - Type-safe reads and writes using Go generics
  - Composite settings groups with merge-on-write partial updates
  - Pluggable serialization (JSON by default; YAML and gob included)
  - Strict absence-vs-malformed discrimination: defaults only for absent
    keys, never for undecodable values
  - Scope resolution for current-application and per-user storage roots

Basic Usage:

	resolver, _ := scope.NewLocalResolver(afero.NewOsFs(), "/var/lib/myapp")
	helper, _ := appdata.ForCurrentScope(resolver)

	// Scalar settings
	appdata.Write(helper, "volume", 7)
	volume, _ := appdata.Read(helper, "volume", 5)

	// Composite settings: partial updates leave siblings untouched
	appdata.WriteComposite(helper, "window", map[string]int{"w": 800})
	appdata.WriteComposite(helper, "window", map[string]int{"h": 600})

	// File-backed objects
	appdata.CreateFile(helper, ctx, "cache/session.json", session)
	session, _ = appdata.ReadFile(helper, ctx, "cache/session.json", Session{})

	// Per-user scope (the only resolution that may wait)
	userHelper, _ := appdata.ForUserScope(ctx, resolver, "alice")

Concurrency: every operation is a short-lived request against the
collaborators with no helper-side cache or lock held across waits. The
library adds no ordering beyond last-write-wins per settings key and
replace-existing per file; in particular a composite merge is
read-modify-write and can lose a concurrently written sibling.
*/
package appdata
