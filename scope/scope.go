/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package scope

import (
	"context"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/suparena/appdata/container"
	"github.com/suparena/appdata/container/jsonfile"
	apperrors "github.com/suparena/appdata/errors"
	"github.com/suparena/appdata/folder"
	"github.com/suparena/appdata/folder/osfs"
)

// Root is one physical storage root: the settings container and folder
// provider a storage helper binds to.
type Root struct {
	Settings container.Container
	Files    folder.Folder
}

// Resolver yields storage roots bound to identities. Resolving the current
// application scope (empty identity) is expected to be immediate; resolving
// a per-user scope may wait on the collaborator, which is why Resolve takes
// a context.
type Resolver interface {
	// Resolve returns the storage root for an identity. The empty identity
	// denotes the current application scope.
	Resolve(ctx context.Context, identity string) (*Root, error)
}

// LocalResolver resolves storage roots under a base directory of an afero
// filesystem. The current-application scope lives directly under the base
// path; per-user scopes live under users/<identity>.
type LocalResolver struct {
	fs       afero.Fs
	basePath string
}

// NewLocalResolver creates a resolver rooted at basePath.
func NewLocalResolver(fs afero.Fs, basePath string) (*LocalResolver, error) {
	if fs == nil {
		return nil, apperrors.NewArgumentError("fs", "must not be nil")
	}
	if basePath == "" {
		return nil, apperrors.NewArgumentError("basePath", "must not be empty")
	}
	return &LocalResolver{fs: fs, basePath: basePath}, nil
}

// settingsFileName is the settings container file within each root.
const settingsFileName = "settings.json"

func (r *LocalResolver) Resolve(ctx context.Context, identity string) (*Root, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rootPath := r.basePath
	if identity != "" {
		rootPath = filepath.Join(r.basePath, "users", identity)
	}

	files, err := osfs.NewRoot(r.fs, filepath.Join(rootPath, "files"))
	if err != nil {
		return nil, err
	}
	settings, err := jsonfile.New(r.fs, filepath.Join(rootPath, settingsFileName))
	if err != nil {
		return nil, err
	}
	return &Root{Settings: settings, Files: files}, nil
}
