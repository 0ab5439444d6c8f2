package pager

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Pager manages page-based I/O for a single database file. It is not
// safe for concurrent use — callers are expected to be single-threaded
// and synchronous — and an advisory exclusive lock on the file enforces
// that no second process opens it at the same time.
type Pager struct {
	file       *os.File
	fileLength int64
	numPages   uint32
	pages      [TableMaxPages][]byte
}

// Open opens (creating if absent) the database file at path, derives the
// page count from its length, and takes an exclusive advisory lock on it.
// It fails if the file length is not a whole multiple of PageSize.
func Open(path string) (*Pager, error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open db file: %w", err)
	}

	if err := unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		file.Close()
		return nil, fmt.Errorf("database file is already in use by another process: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat db file: %w", err)
	}

	length := info.Size()
	if length%PageSize != 0 {
		file.Close()
		return nil, ErrCorruptFile
	}

	return &Pager{
		file:       file,
		fileLength: length,
		numPages:   uint32(length / PageSize),
	}, nil
}

// NumPages returns the number of pages known to the pager.
func (p *Pager) NumPages() uint32 {
	return p.numPages
}

// GetPage returns a mutable view of page id, loading it from disk on first
// access or allocating a fresh zeroed buffer if id is at (or past) the
// current end of the file.
func (p *Pager) GetPage(id PageID) ([]byte, error) {
	if id >= TableMaxPages {
		return nil, errOutOfBounds(id)
	}

	if p.pages[id] == nil {
		buf := make([]byte, PageSize)
		if id < p.numPages {
			if _, err := p.file.ReadAt(buf, int64(id)*PageSize); err != nil {
				return nil, fmt.Errorf("failed to read page %d: %w", id, err)
			}
		}
		if id >= p.numPages {
			p.numPages = id + 1
		}
		p.pages[id] = buf
	}

	return p.pages[id], nil
}

// Flush writes a resident page's full contents back to disk at its
// offset. Flushing a non-resident page is a no-op.
func (p *Pager) Flush(id PageID) error {
	if p.pages[id] == nil {
		return nil
	}
	if _, err := p.file.WriteAt(p.pages[id], int64(id)*PageSize); err != nil {
		return fmt.Errorf("failed to flush page %d: %w", id, err)
	}
	return nil
}

// Close flushes every resident page within the current page count,
// releases the buffers, unlocks the file, and closes the handle.
func (p *Pager) Close() error {
	for id := PageID(0); id < p.numPages; id++ {
		if err := p.Flush(id); err != nil {
			return err
		}
		p.pages[id] = nil
	}

	if err := unix.Flock(int(p.file.Fd()), unix.LOCK_UN); err != nil {
		p.file.Close()
		return fmt.Errorf("failed to unlock db file: %w", err)
	}

	if err := p.file.Close(); err != nil {
		return fmt.Errorf("failed to close db file: %w", err)
	}
	return nil
}
