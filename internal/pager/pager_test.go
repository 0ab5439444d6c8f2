package pager

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenCreatesEmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.db")

	p, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer p.Close()

	if p.NumPages() != 0 {
		t.Errorf("expected 0 pages for a new file, got %d", p.NumPages())
	}
}

func TestGetPageAllocatesAndGrowsNumPages(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.db")

	p, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer p.Close()

	page, err := p.GetPage(0)
	if err != nil {
		t.Fatalf("GetPage failed: %v", err)
	}
	if len(page) != PageSize {
		t.Errorf("expected page size %d, got %d", PageSize, len(page))
	}
	if p.NumPages() != 1 {
		t.Errorf("expected num pages 1, got %d", p.NumPages())
	}
}

func TestGetPageOutOfBounds(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.db")

	p, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer p.Close()

	if _, err := p.GetPage(TableMaxPages); err == nil {
		t.Fatal("expected error for page number at TableMaxPages")
	}
}

func TestPersistenceAcrossOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.db")

	p1, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	page, err := p1.GetPage(0)
	if err != nil {
		t.Fatalf("GetPage failed: %v", err)
	}
	copy(page[0:5], []byte("hello"))
	if err := p1.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	p2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer p2.Close()

	if p2.NumPages() != 1 {
		t.Fatalf("expected 1 page after reopen, got %d", p2.NumPages())
	}
	page2, err := p2.GetPage(0)
	if err != nil {
		t.Fatalf("GetPage failed: %v", err)
	}
	if string(page2[0:5]) != "hello" {
		t.Errorf("data should persist, got %q", string(page2[0:5]))
	}
}

func TestOpenRejectsCorruptFileLength(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.db")

	if err := os.WriteFile(path, make([]byte, PageSize+1), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := Open(path); err != ErrCorruptFile {
		t.Fatalf("expected ErrCorruptFile, got %v", err)
	}
}

func TestSecondOpenIsLocked(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.db")

	p1, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer p1.Close()

	if _, err := Open(path); err == nil {
		t.Fatal("expected second Open of the same file to fail while the first is held")
	}
}
