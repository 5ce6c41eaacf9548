/*
Package filestore persists serialized objects as text files under a
folder-provider root.

A Store binds one root folder to one serializer. Paths are slash-separated
and relative to the root; intermediate folders are created on write and
walked on read. The collision policy is fixed per operation: CreateFile
always replaces an existing item, CreateFolder always opens an existing
folder, and DeleteItem of a missing path is an error matching
errors.ErrNotFound rather than a silent no-op.

As in the settings package, absence and malformedness are distinct:
ReadFile returns the caller's default only when the file (or a folder on
the way to it) does not exist, and surfaces errors.ErrFormat when the file
exists but cannot be decoded as the requested type.
*/
package filestore
