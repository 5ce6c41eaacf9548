/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package osfs implements the folder-provider contract over an afero
// filesystem. The same implementation serves the real OS filesystem
// (afero.NewOsFs) and an in-memory one for tests (afero.NewMemMapFs).
//
// File writes go through a temp file in the target directory followed by a
// rename, so a cancelled or failed write never leaves partial content at
// the target name.
package osfs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	apperrors "github.com/suparena/appdata/errors"
	"github.com/suparena/appdata/folder"
)

// Folder is the afero-backed implementation of folder.Folder.
type Folder struct {
	fs   afero.Fs
	path string
}

// NewRoot opens (creating if needed) a root folder at basePath.
func NewRoot(fs afero.Fs, basePath string) (*Folder, error) {
	if fs == nil {
		return nil, apperrors.NewArgumentError("fs", "must not be nil")
	}
	if basePath == "" {
		return nil, apperrors.NewArgumentError("basePath", "must not be empty")
	}
	if err := fs.MkdirAll(basePath, 0o755); err != nil {
		return nil, apperrors.NewCollaboratorError("osfs.NewRoot", err)
	}
	return &Folder{fs: fs, path: basePath}, nil
}

// item is a non-folder child: a regular file, or an entry that is neither a
// regular file nor a directory (reported with both predicates false).
type item struct {
	fs     afero.Fs
	path   string
	isFile bool
}

func (i *item) Name() string   { return filepath.Base(i.path) }
func (i *item) IsFile() bool   { return i.isFile }
func (i *item) IsFolder() bool { return false }

func (i *item) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := i.fs.Remove(i.path); err != nil {
		return apperrors.NewCollaboratorError("osfs.Delete", err)
	}
	return nil
}

func (f *Folder) Name() string   { return filepath.Base(f.path) }
func (f *Folder) IsFile() bool   { return false }
func (f *Folder) IsFolder() bool { return true }

func (f *Folder) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := f.fs.RemoveAll(f.path); err != nil {
		return apperrors.NewCollaboratorError("osfs.Delete", err)
	}
	return nil
}

func (f *Folder) GetItem(ctx context.Context, name string) (folder.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	child := filepath.Join(f.path, name)
	info, err := f.fs.Stat(child)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, apperrors.NewCollaboratorError("osfs.GetItem", err)
	}
	return f.classify(child, info), nil
}

func (f *Folder) GetFolder(ctx context.Context, name string) (folder.Folder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	child := filepath.Join(f.path, name)
	info, err := f.fs.Stat(child)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewNotFoundError(child)
		}
		return nil, apperrors.NewCollaboratorError("osfs.GetFolder", err)
	}
	if !info.IsDir() {
		return nil, apperrors.NewNotFoundError(child)
	}
	return &Folder{fs: f.fs, path: child}, nil
}

func (f *Folder) GetItems(ctx context.Context) ([]folder.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	infos, err := afero.ReadDir(f.fs, f.path)
	if err != nil {
		return nil, apperrors.NewCollaboratorError("osfs.GetItems", err)
	}
	items := make([]folder.Item, 0, len(infos))
	for _, info := range infos {
		items = append(items, f.classify(filepath.Join(f.path, info.Name()), info))
	}
	return items, nil
}

func (f *Folder) CreateFolder(ctx context.Context, name string, option folder.CollisionOption) (folder.Folder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	child := filepath.Join(f.path, name)
	info, err := f.fs.Stat(child)
	switch {
	case err == nil && info.IsDir():
		switch option {
		case folder.OpenIfExists:
			return &Folder{fs: f.fs, path: child}, nil
		case folder.FailIfExists:
			return nil, apperrors.NewAlreadyExistsError(child)
		}
		if err := f.fs.RemoveAll(child); err != nil {
			return nil, apperrors.NewCollaboratorError("osfs.CreateFolder", err)
		}
	case err == nil:
		// A non-folder item occupies the name.
		if option != folder.ReplaceExisting {
			return nil, apperrors.NewAlreadyExistsError(child)
		}
		if err := f.fs.Remove(child); err != nil {
			return nil, apperrors.NewCollaboratorError("osfs.CreateFolder", err)
		}
	case !os.IsNotExist(err):
		return nil, apperrors.NewCollaboratorError("osfs.CreateFolder", err)
	}

	if err := f.fs.Mkdir(child, 0o755); err != nil {
		return nil, apperrors.NewCollaboratorError("osfs.CreateFolder", err)
	}
	return &Folder{fs: f.fs, path: child}, nil
}

func (f *Folder) CreateFile(ctx context.Context, name, text string, option folder.CollisionOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	child := filepath.Join(f.path, name)
	if option != folder.ReplaceExisting {
		exists, err := afero.Exists(f.fs, child)
		if err != nil {
			return apperrors.NewCollaboratorError("osfs.CreateFile", err)
		}
		if exists {
			if option == folder.OpenIfExists {
				return nil
			}
			return apperrors.NewAlreadyExistsError(child)
		}
	}

	tmp := filepath.Join(f.path, fmt.Sprintf(".%s.tmp", name))
	if err := afero.WriteFile(f.fs, tmp, []byte(text), 0o644); err != nil {
		f.fs.Remove(tmp)
		return apperrors.NewCollaboratorError("osfs.CreateFile", err)
	}
	if err := ctx.Err(); err != nil {
		f.fs.Remove(tmp)
		return err
	}
	if err := f.fs.Rename(tmp, child); err != nil {
		f.fs.Remove(tmp)
		return apperrors.NewCollaboratorError("osfs.CreateFile", err)
	}
	return nil
}

func (f *Folder) ReadText(ctx context.Context, name string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	b, err := afero.ReadFile(f.fs, filepath.Join(f.path, name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, apperrors.NewCollaboratorError("osfs.ReadText", err)
	}
	return string(b), true, nil
}

func (f *Folder) classify(path string, info os.FileInfo) folder.Item {
	if info.IsDir() {
		return &Folder{fs: f.fs, path: path}
	}
	return &item{fs: f.fs, path: path, isFile: info.Mode().IsRegular()}
}
