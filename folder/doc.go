/*
Package folder defines the folder-provider collaborator contract for the
AppData library: a hierarchical namespace of named items, each classified by
two independent predicates (file-ness and folder-ness).

The file store layers on this contract and never touches a filesystem API
directly; swapping providers changes where bytes live without changing any
caller. The osfs subpackage provides the default implementation over an
afero filesystem, which covers both the real OS filesystem and an in-memory
one for tests.

Collision policy is explicit at every create call site: ReplaceExisting for
files (the file store's write semantics), OpenIfExists for folders
(idempotent folder creation), and FailIfExists for callers that need
create-only semantics.
*/
package folder
