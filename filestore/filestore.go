/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package filestore

import (
	"context"
	"strings"

	apperrors "github.com/suparena/appdata/errors"
	"github.com/suparena/appdata/folder"
	"github.com/suparena/appdata/serializer"
)

// StorageItem is one enumerated child of a folder.
type StorageItem struct {
	Name string
	Kind folder.ItemKind
}

// Store persists serialized objects as text files under a folder-provider
// root. Paths are slash-separated and relative to the root; the on-disk
// layout is exactly the hierarchy the caller names.
type Store struct {
	root       folder.Folder
	serializer serializer.ObjectSerializer
}

// New binds a file store to a root folder and a serializer.
func New(root folder.Folder, s serializer.ObjectSerializer) (*Store, error) {
	if root == nil {
		return nil, apperrors.NewArgumentError("root", "must not be nil")
	}
	if s == nil {
		return nil, apperrors.NewArgumentError("serializer", "must not be nil")
	}
	return &Store{root: root, serializer: s}, nil
}

// Serializer returns the serializer this store is bound to.
func (s *Store) Serializer() serializer.ObjectSerializer {
	return s.serializer
}

// ItemExists reports whether any item (file or folder) exists at path.
func (s *Store) ItemExists(ctx context.Context, path string) (bool, error) {
	dir, base, err := s.walkToParent(ctx, path)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	it, err := dir.GetItem(ctx, base)
	if err != nil {
		return false, err
	}
	return it != nil, nil
}

// FileExists reports whether a file exists at path. With recursive set, the
// search descends into subfolders of path's parent looking for a file with
// path's base name.
func (s *Store) FileExists(ctx context.Context, path string, recursive bool) (bool, error) {
	dir, base, err := s.walkToParent(ctx, path)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	if recursive {
		return fileExistsIn(ctx, dir, base)
	}
	it, err := dir.GetItem(ctx, base)
	if err != nil {
		return false, err
	}
	return it != nil && it.IsFile(), nil
}

// ReadFile reads the text at path and decodes it as T. An absent file (or
// absent intermediate folder) yields def; a present file whose content
// cannot be decoded as T yields an error matching errors.ErrFormat.
func ReadFile[T any](s *Store, ctx context.Context, path string, def T) (T, error) {
	dir, base, err := s.walkToParent(ctx, path)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return def, nil
		}
		return def, err
	}
	text, ok, err := dir.ReadText(ctx, base)
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}
	var out T
	if err := s.serializer.Deserialize(text, &out); err != nil {
		return def, err
	}
	return out, nil
}

// ReadFolder enumerates the immediate children of the folder at path. The
// listing is fully materialized before return; items whose kind cannot be
// classified are reported as KindNone, not errors.
func (s *Store) ReadFolder(ctx context.Context, path string) ([]StorageItem, error) {
	dir, err := s.walkTo(ctx, path, false)
	if err != nil {
		return nil, err
	}
	children, err := dir.GetItems(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]StorageItem, 0, len(children))
	for _, child := range children {
		items = append(items, StorageItem{Name: child.Name(), Kind: kindOf(child)})
	}
	return items, nil
}

// CreateFile serializes value and writes it as text at path, replacing any
// existing item there. Intermediate folders are created as needed.
func CreateFile[T any](s *Store, ctx context.Context, path string, value T) error {
	text, err := s.serializer.Serialize(value)
	if err != nil {
		return err
	}
	dir, base, err := s.walkToParentCreate(ctx, path)
	if err != nil {
		return err
	}
	return dir.CreateFile(ctx, base, text, folder.ReplaceExisting)
}

// CreateFolder ensures a folder exists at path. It is idempotent: an
// existing folder at path is opened without modification.
func (s *Store) CreateFolder(ctx context.Context, path string) error {
	_, err := s.walkTo(ctx, path, true)
	return err
}

// DeleteItem removes the item (file or folder) at path. Deleting a path
// with no item is an error matching errors.ErrNotFound, never a silent
// no-op.
func (s *Store) DeleteItem(ctx context.Context, path string) error {
	dir, base, err := s.walkToParent(ctx, path)
	if err != nil {
		return err
	}
	it, err := dir.GetItem(ctx, base)
	if err != nil {
		return err
	}
	if it == nil {
		return apperrors.NewNotFoundError(path)
	}
	return it.Delete(ctx)
}

// ReadText returns the raw textual contents of the file at path. A missing
// file yields an error matching errors.ErrNotFound.
func (s *Store) ReadText(ctx context.Context, path string) (string, error) {
	dir, base, err := s.walkToParent(ctx, path)
	if err != nil {
		return "", err
	}
	text, ok, err := dir.ReadText(ctx, base)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", apperrors.NewNotFoundError(path)
	}
	return text, nil
}

// walkTo resolves the folder at a slash-separated path relative to the
// root, optionally creating missing segments along the way.
func (s *Store) walkTo(ctx context.Context, path string, create bool) (folder.Folder, error) {
	dir := s.root
	for _, segment := range splitPath(path) {
		var err error
		if create {
			dir, err = dir.CreateFolder(ctx, segment, folder.OpenIfExists)
		} else {
			dir, err = dir.GetFolder(ctx, segment)
		}
		if err != nil {
			return nil, err
		}
	}
	return dir, nil
}

// walkToParent resolves path's parent folder and returns it with path's
// base name.
func (s *Store) walkToParent(ctx context.Context, path string) (folder.Folder, string, error) {
	segments := splitPath(path)
	if len(segments) == 0 {
		return nil, "", apperrors.NewArgumentError("path", "must not be empty")
	}
	base := segments[len(segments)-1]
	dir, err := s.walkTo(ctx, strings.Join(segments[:len(segments)-1], "/"), false)
	if err != nil {
		return nil, "", err
	}
	return dir, base, nil
}

func (s *Store) walkToParentCreate(ctx context.Context, path string) (folder.Folder, string, error) {
	segments := splitPath(path)
	if len(segments) == 0 {
		return nil, "", apperrors.NewArgumentError("path", "must not be empty")
	}
	base := segments[len(segments)-1]
	dir, err := s.walkTo(ctx, strings.Join(segments[:len(segments)-1], "/"), true)
	if err != nil {
		return nil, "", err
	}
	return dir, base, nil
}

// fileExistsIn searches dir and its descendant folders for a file named name.
func fileExistsIn(ctx context.Context, dir folder.Folder, name string) (bool, error) {
	it, err := dir.GetItem(ctx, name)
	if err != nil {
		return false, err
	}
	if it != nil && it.IsFile() {
		return true, nil
	}
	children, err := dir.GetItems(ctx)
	if err != nil {
		return false, err
	}
	for _, child := range children {
		if !child.IsFolder() {
			continue
		}
		sub, err := dir.GetFolder(ctx, child.Name())
		if err != nil {
			return false, err
		}
		found, err := fileExistsIn(ctx, sub, name)
		if err != nil || found {
			return found, err
		}
	}
	return false, nil
}

func kindOf(it folder.Item) folder.ItemKind {
	switch {
	case it.IsFile():
		return folder.KindFile
	case it.IsFolder():
		return folder.KindFolder
	default:
		return folder.KindNone
	}
}

func splitPath(path string) []string {
	var segments []string
	for _, segment := range strings.Split(path, "/") {
		if segment != "" && segment != "." {
			segments = append(segments, segment)
		}
	}
	return segments
}
