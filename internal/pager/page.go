// Package pager owns the database file handle and a bounded cache of page
// buffers, loading pages on demand and flushing them back on close.
package pager

import (
	"errors"
	"fmt"
)

const (
	// PageSize is the fixed size of a page, in bytes.
	PageSize = 4096

	// TableMaxPages bounds how many pages the pager will ever hold
	// resident or address. 100 pages * 4096 bytes = 400 KiB.
	TableMaxPages = 100
)

// PageID identifies a page by its 0-based offset into the file.
type PageID = uint32

// ErrCorruptFile is returned by Open when the file length is not a whole
// multiple of PageSize.
var ErrCorruptFile = errors.New("db file is not a whole number of pages. Corrupt file.")

// errOutOfBounds reports a page request beyond TableMaxPages.
func errOutOfBounds(id PageID) error {
	return fmt.Errorf("page number %d out of bounds (max %d)", id, TableMaxPages)
}
