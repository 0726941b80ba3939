package tui

import "github.com/papapumpkin/skillarc/internal/catalog"

// MsgCopyResult is returned by the copy command once the clipboard write
// has finished.
type MsgCopyResult struct {
	OK bool
}

// MsgCopyState is sent whenever the copy session's confirmation flag
// changes, including when the confirmation window elapses.
type MsgCopyState struct {
	Copied bool
}

// MsgCatalogReloaded carries a freshly loaded and validated catalog.
type MsgCatalogReloaded struct {
	Path    string
	Catalog []catalog.Category
}

// MsgCatalogInvalid reports that the watched catalog could not be loaded.
// The previous catalog stays on screen.
type MsgCatalogInvalid struct {
	Path string
	Err  error
}
