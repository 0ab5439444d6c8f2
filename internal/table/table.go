// Package table pairs a pager with a root page number and owns the
// database file's lifecycle: opening it (initializing an empty root leaf
// if the file is new) and closing it (flushing everything back to disk).
package table

import (
	"fmt"

	"dbtutorial/internal/node"
	"dbtutorial/internal/pager"
)

// RootPageNum is fixed at 0: this engine never splits, so there is never
// more than one page in the tree.
const RootPageNum pager.PageID = 0

// Table is the top-level handle an executor operates on.
type Table struct {
	Pager *pager.Pager
	Path  string
}

// Open opens or creates the database file at path. If the file is new, page
// 0 is initialized in memory as an empty root leaf.
func Open(path string) (*Table, error) {
	p, err := pager.Open(path)
	if err != nil {
		return nil, err
	}

	wasEmpty := p.NumPages() == 0

	root, err := p.GetPage(RootPageNum)
	if err != nil {
		return nil, fmt.Errorf("failed to load root page: %w", err)
	}
	if wasEmpty {
		node.InitializeLeaf(root)
		node.SetIsRoot(root, true)
	}

	return &Table{Pager: p, Path: path}, nil
}

// Close flushes every resident page and closes the underlying file. This
// is the only path to a clean close; anything else leaves the file in
// whatever state the last completed Flush left it.
func (t *Table) Close() error {
	return t.Pager.Close()
}

// RootPage returns the root leaf's raw buffer.
func (t *Table) RootPage() ([]byte, error) {
	return t.Pager.GetPage(RootPageNum)
}
