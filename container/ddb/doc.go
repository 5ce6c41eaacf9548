/*
Package ddb provides a DynamoDB-backed settings container.

Each top-level settings key is stored as one item with the partition key

	APPDATA#<namespace>#<key>

where the namespace isolates one application's settings inside a shared
table. Scalars are stored as a string attribute, composite groups as a
native map attribute; the Kind attribute keeps the discrimination explicit
so a reader never has to infer it from the payload shape.

The container.Container interface is synchronous, so each operation carries
its own internal deadline (15s by default, adjustable via WithTimeout).
Substrate failures surface as errors.ErrCollaborator.

Note that Keys and Clear page a filtered Scan over the table; they are
intended for occasional administrative use, not hot paths.
*/
package ddb
