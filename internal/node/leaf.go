package node

import (
	"encoding/binary"

	"dbtutorial/internal/pager"
	"dbtutorial/internal/row"
)

const (
	numCellsOffset = CommonHeaderSize
	numCellsSize   = 4
	// LeafHeaderSize is the size of the header bytes specific to leaves,
	// on top of CommonHeaderSize.
	LeafHeaderSize = numCellsSize
	cellsOffset    = numCellsOffset + numCellsSize

	keySize   = 4
	valueSize = row.Size
	// CellSize is the width of one (key, value) cell.
	CellSize = keySize + valueSize

	// SpaceForCells is the usable cell area of a page, after both headers.
	SpaceForCells = pager.PageSize - cellsOffset
	// MaxCells is the largest number of cells a single leaf can hold.
	MaxCells = SpaceForCells / CellSize
)

// InitializeLeaf resets page to an empty, non-root leaf. Callers that need
// a root leaf must call SetIsRoot afterwards.
func InitializeLeaf(page []byte) {
	SetNodeType(page, TypeLeaf)
	SetIsRoot(page, false)
	SetNumCells(page, 0)
}

// NumCells returns the number of cells currently stored in the leaf.
func NumCells(page []byte) uint32 {
	return binary.LittleEndian.Uint32(page[numCellsOffset : numCellsOffset+numCellsSize])
}

// SetNumCells sets the leaf's cell count.
func SetNumCells(page []byte, n uint32) {
	binary.LittleEndian.PutUint32(page[numCellsOffset:numCellsOffset+numCellsSize], n)
}

// cellOffset returns the byte offset of cell i.
func cellOffset(i uint32) int {
	return cellsOffset + int(i)*CellSize
}

// Cell returns the full (key, value) cell slice at index i.
func Cell(page []byte, i uint32) []byte {
	off := cellOffset(i)
	return page[off : off+CellSize]
}

// Key returns the key stored at cell i.
func Key(page []byte, i uint32) uint32 {
	off := cellOffset(i)
	return binary.LittleEndian.Uint32(page[off : off+keySize])
}

// SetKey writes the key at cell i.
func SetKey(page []byte, i uint32, key uint32) {
	off := cellOffset(i)
	binary.LittleEndian.PutUint32(page[off:off+keySize], key)
}

// Value returns the serialized row region of cell i.
func Value(page []byte, i uint32) []byte {
	off := cellOffset(i) + keySize
	return page[off : off+valueSize]
}
