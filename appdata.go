/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package appdata

import (
	"context"

	apperrors "github.com/suparena/appdata/errors"
	"github.com/suparena/appdata/filestore"
	"github.com/suparena/appdata/scope"
	"github.com/suparena/appdata/serializer"
	"github.com/suparena/appdata/settings"
)

// Helper binds a settings store and a file store to one physical storage
// root and one serializer, exposing both behind a single object. It holds
// no state beyond those bindings: every operation round-trips the
// collaborators live, so two helpers over the same root observe each
// other's writes.
type Helper struct {
	root     *scope.Root
	settings *settings.Store
	files    *filestore.Store
}

// Option configures a Helper at construction.
type Option func(*options)

type options struct {
	serializer serializer.ObjectSerializer
}

// WithSerializer overrides the default JSON serializer. The stored
// representation of every key and file is produced by the helper's
// serializer for the life of the instance; mixing serializers across
// writes and reads of the same key is undefined behavior and a caller
// responsibility.
func WithSerializer(s serializer.ObjectSerializer) Option {
	return func(o *options) {
		o.serializer = s
	}
}

// New constructs a helper over a storage root. The root is required; the
// serializer defaults to JSON.
func New(root *scope.Root, opts ...Option) (*Helper, error) {
	if root == nil {
		return nil, apperrors.NewArgumentError("root", "must not be nil")
	}

	o := options{serializer: serializer.NewJSONSerializer()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.serializer == nil {
		return nil, apperrors.NewArgumentError("serializer", "must not be nil")
	}

	settingsStore, err := settings.New(root.Settings, o.serializer)
	if err != nil {
		return nil, err
	}
	fileStore, err := filestore.New(root.Files, o.serializer)
	if err != nil {
		return nil, err
	}
	return &Helper{root: root, settings: settingsStore, files: fileStore}, nil
}

// ForCurrentScope constructs a helper over the current application scope.
// Current-scope resolution is immediate, so no context is taken.
func ForCurrentScope(resolver scope.Resolver, opts ...Option) (*Helper, error) {
	if resolver == nil {
		return nil, apperrors.NewArgumentError("resolver", "must not be nil")
	}
	root, err := resolver.Resolve(context.Background(), "")
	if err != nil {
		return nil, err
	}
	return New(root, opts...)
}

// ForUserScope constructs a helper over a specific user's scope. Resolving
// a per-user root may wait on the collaborator; this is the only
// constructor path that can block, and it honors ctx cancellation.
func ForUserScope(ctx context.Context, resolver scope.Resolver, user string, opts ...Option) (*Helper, error) {
	if resolver == nil {
		return nil, apperrors.NewArgumentError("resolver", "must not be nil")
	}
	if user == "" {
		return nil, apperrors.NewArgumentError("user", "must not be empty")
	}
	root, err := resolver.Resolve(ctx, user)
	if err != nil {
		return nil, err
	}
	return New(root, opts...)
}

// Settings returns the bound settings store.
func (h *Helper) Settings() *settings.Store {
	return h.settings
}

// Files returns the bound file store.
func (h *Helper) Files() *filestore.Store {
	return h.files
}

// Settings namespace delegations.

// Exists reports whether a settings key is present, of either kind.
func (h *Helper) Exists(key string) (bool, error) {
	return h.settings.Exists(key)
}

// Delete removes a settings key. The boolean reports whether a removal
// occurred.
func (h *Helper) Delete(key string) (bool, error) {
	return h.settings.Delete(key)
}

// Clear removes all top-level settings keys.
func (h *Helper) Clear() error {
	return h.settings.Clear()
}

// ExistsComposite reports whether the composite at key contains subKey.
func (h *Helper) ExistsComposite(key, subKey string) (bool, error) {
	return h.settings.ExistsComposite(key, subKey)
}

// DeleteComposite removes subKey from the composite at key, leaving the
// (possibly emptied) composite entry in place.
func (h *Helper) DeleteComposite(key, subKey string) (bool, error) {
	return h.settings.DeleteComposite(key, subKey)
}

// File namespace delegations.

// ItemExists reports whether any item exists at path.
func (h *Helper) ItemExists(ctx context.Context, path string) (bool, error) {
	return h.files.ItemExists(ctx, path)
}

// FileExists reports whether a file exists at path, optionally searching
// subfolders.
func (h *Helper) FileExists(ctx context.Context, path string, recursive bool) (bool, error) {
	return h.files.FileExists(ctx, path, recursive)
}

// ReadFolder enumerates the immediate children of the folder at path.
func (h *Helper) ReadFolder(ctx context.Context, path string) ([]filestore.StorageItem, error) {
	return h.files.ReadFolder(ctx, path)
}

// CreateFolder ensures a folder exists at path; it is idempotent.
func (h *Helper) CreateFolder(ctx context.Context, path string) error {
	return h.files.CreateFolder(ctx, path)
}

// DeleteItem removes the item at path, failing with errors.ErrNotFound
// when nothing exists there.
func (h *Helper) DeleteItem(ctx context.Context, path string) error {
	return h.files.DeleteItem(ctx, path)
}
