/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package folder

import "context"

// ItemKind classifies an enumerated storage item. An item whose kind cannot
// be established by the two known predicates is KindNone, which is a valid
// third state and never coerced to an error.
type ItemKind int

const (
	// KindNone marks an item that is neither a regular file nor a folder.
	KindNone ItemKind = iota
	// KindFile marks a regular file.
	KindFile
	// KindFolder marks a folder.
	KindFolder
)

func (k ItemKind) String() string {
	switch k {
	case KindFile:
		return "File"
	case KindFolder:
		return "Folder"
	default:
		return "None"
	}
}

// CollisionOption controls what a create operation does when an item with
// the same name already exists.
type CollisionOption int

const (
	// ReplaceExisting silently replaces an existing item.
	ReplaceExisting CollisionOption = iota
	// OpenIfExists succeeds without modification when the item exists.
	OpenIfExists
	// FailIfExists returns errors.ErrAlreadyExists when the item exists.
	FailIfExists
)

// Item is one named entry of a folder, classified by two independent type
// predicates. Both predicates reporting false is legal (KindNone).
type Item interface {
	// Name returns the item's name within its folder.
	Name() string
	// IsFile reports whether the item is a regular file.
	IsFile() bool
	// IsFolder reports whether the item is a folder.
	IsFolder() bool
	// Delete removes the item from its folder. Folders are removed with
	// their contents.
	Delete(ctx context.Context) error
}

// Folder is the hierarchical storage substrate the file store delegates to.
// All operations may wait on the storage medium and honor context
// cancellation. Implementations must be safe for concurrent use.
type Folder interface {
	Item

	// GetItem returns the named child, or (nil, nil) when no such item
	// exists; absence is not an error at this layer.
	GetItem(ctx context.Context, name string) (Item, error)

	// GetFolder returns the named child folder. It returns an error
	// matching errors.ErrNotFound when no folder with that name exists.
	GetFolder(ctx context.Context, name string) (Folder, error)

	// GetItems returns all immediate children, fully materialized, in the
	// order the substrate reports them.
	GetItems(ctx context.Context) ([]Item, error)

	// CreateFolder creates (or, per option, opens) a child folder.
	CreateFolder(ctx context.Context, name string, option CollisionOption) (Folder, error)

	// CreateFile writes text to a named child file. Writes are atomic:
	// a cancelled or failed write never leaves partial content at name.
	CreateFile(ctx context.Context, name, text string, option CollisionOption) error

	// ReadText returns the content of a named child file. The boolean
	// reports presence; a missing file is (zero, false, nil).
	ReadText(ctx context.Context, name string) (string, bool, error)
}
