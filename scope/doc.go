/*
Package scope maps identities to physical storage roots.

A Root pairs the two collaborators one storage helper binds to: a settings
container and a folder provider. A Resolver yields the Root for an
identity — the empty identity for the current application scope, or a user
identity for that user's private scope. Per-user resolution is the only
step in the library that may wait on the collaborator, so Resolve takes a
context.

LocalResolver is the default implementation: roots are directories under a
base path on an afero filesystem, each holding a settings.json container
and a files/ subtree. Two helpers resolved to the same identity share the
same physical root and therefore observe each other's writes.
*/
package scope
