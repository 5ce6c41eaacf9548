/*
Package errors provides semantic error types for the AppData library.

The package defines common failure scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrInvalidArgument = errors.New("invalid argument")
	    ErrFormat          = errors.New("malformed stored value")
	    ErrNotFound        = errors.New("item not found")
	    ErrAlreadyExists   = errors.New("item already exists")
	    ErrCollaborator    = errors.New("storage collaborator failure")
	)

Usage:

	// Check error type
	v, err := settings.Read(store, "theme", "light")
	if err != nil {
	    if errors.IsFormat(err) {
	        // Stored value exists but cannot be decoded as the requested type.
	        // This is never silently mapped to the default.
	        return err
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewNotFoundError("cache/sessions.json")
	err := errors.NewArgumentError("root", "must not be nil")
	err := errors.NewFormatError("int", decodeErr)

The distinction between ErrNotFound and ErrFormat is load-bearing: defaults
are returned only for the "key/item absent" case, which callers must be able
to discriminate from "present but malformed."

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
