// Package cursor implements the logical position abstraction that threads
// together node layout operations and table lifecycle: start-of-table,
// find-by-key, advance, read, and insert-at-position.
package cursor

import (
	"errors"
	"sort"

	"dbtutorial/internal/node"
	"dbtutorial/internal/pager"
	"dbtutorial/internal/row"
	"dbtutorial/internal/table"
)

// ErrTableFull is returned by LeafInsert when the root leaf already holds
// node.MaxCells rows. This engine never splits, so a full leaf is terminal
// for further inserts.
var ErrTableFull = errors.New("Error: Table full.")

// ErrDuplicateKey is returned by LeafInsert when the target cell already
// holds the key being inserted.
var ErrDuplicateKey = errors.New("Error: Duplicate key.")

// Cursor is a logical position into a table: a page number, a cell index
// within that page, and whether the cursor has run off the end.
type Cursor struct {
	Table      *table.Table
	PageNum    pager.PageID
	CellNum    uint32
	EndOfTable bool
}

// Start positions a cursor at the first cell of the root leaf.
func Start(t *table.Table) (*Cursor, error) {
	root, err := t.RootPage()
	if err != nil {
		return nil, err
	}
	return &Cursor{
		Table:      t,
		PageNum:    table.RootPageNum,
		CellNum:    0,
		EndOfTable: node.NumCells(root) == 0,
	}, nil
}

// Find positions a cursor at the cell holding key, or at the index where
// key would need to be inserted if it is not present (binary search over
// the root leaf's cells).
func Find(t *table.Table, key uint32) (*Cursor, error) {
	root, err := t.RootPage()
	if err != nil {
		return nil, err
	}

	numCells := node.NumCells(root)
	idx := sort.Search(int(numCells), func(i int) bool {
		return node.Key(root, uint32(i)) >= key
	})

	return &Cursor{
		Table:   t,
		PageNum: table.RootPageNum,
		CellNum: uint32(idx),
	}, nil
}

// Advance moves the cursor to the next cell, setting EndOfTable once it
// runs past the leaf's last cell.
func (c *Cursor) Advance() error {
	page, err := c.page()
	if err != nil {
		return err
	}
	c.CellNum++
	if c.CellNum >= node.NumCells(page) {
		c.EndOfTable = true
	}
	return nil
}

// Value returns the serialized row bytes at the cursor's current cell.
func (c *Cursor) Value() ([]byte, error) {
	page, err := c.page()
	if err != nil {
		return nil, err
	}
	return node.Value(page, c.CellNum), nil
}

// LeafInsert inserts key/row at the cursor's position, shifting later
// cells right to make room. The cursor must have been positioned by Find.
// Fails with ErrTableFull if the leaf has no room left, or ErrDuplicateKey
// if the cursor's current cell already holds key.
func (c *Cursor) LeafInsert(key uint32, r row.Row) error {
	page, err := c.page()
	if err != nil {
		return err
	}

	numCells := node.NumCells(page)
	if numCells >= node.MaxCells {
		return ErrTableFull
	}
	if c.CellNum < numCells && node.Key(page, c.CellNum) == key {
		return ErrDuplicateKey
	}

	for i := numCells; i > c.CellNum; i-- {
		copy(node.Cell(page, i), node.Cell(page, i-1))
	}

	node.SetKey(page, c.CellNum, key)
	row.Serialize(r, node.Value(page, c.CellNum), 0)
	node.SetNumCells(page, numCells+1)

	return nil
}

func (c *Cursor) page() ([]byte, error) {
	return c.Table.Pager.GetPage(c.PageNum)
}
