package repl

import (
	"path/filepath"
	"testing"

	"dbtutorial/internal/table"
)

func openTable(t *testing.T) *table.Table {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	tb, err := table.Open(path)
	if err != nil {
		t.Fatalf("table.Open failed: %v", err)
	}
	t.Cleanup(func() { tb.Close() })
	return tb
}

func TestHandleMetaCommandExit(t *testing.T) {
	tb := openTable(t)
	exit, lines := handleMetaCommand(".exit", tb)
	if !exit {
		t.Error("expected .exit to signal exit")
	}
	if lines != nil {
		t.Errorf("expected no output lines, got %v", lines)
	}
}

func TestHandleMetaCommandConstants(t *testing.T) {
	tb := openTable(t)
	exit, lines := handleMetaCommand(".constants", tb)
	if exit {
		t.Error(".constants should not signal exit")
	}
	want := []string{
		"Constants:",
		"ROW_SIZE: 293",
		"COMMON_NODE_HEADER_SIZE: 6",
		"LEAF_NODE_HEADER_SIZE: 10",
		"LEAF_NODE_CELL_SIZE: 297",
		"LEAF_NODE_SPACE_FOR_CELLS: 4086",
		"LEAF_NODE_MAX_CELLS: 13",
	}
	assertLines(t, lines, want)
}

func TestHandleMetaCommandBtreeEmpty(t *testing.T) {
	tb := openTable(t)
	exit, lines := handleMetaCommand(".btree", tb)
	if exit {
		t.Error(".btree should not signal exit")
	}
	assertLines(t, lines, []string{"Tree:", "leaf (size 0)"})
}

func TestHandleMetaCommandBtreeAfterInserts(t *testing.T) {
	tb := openTable(t)
	if lines := handleStatement(tb, "insert 3 user3 u3@example.com"); lines[0] != "Executed." {
		t.Fatalf("insert failed: %v", lines)
	}
	if lines := handleStatement(tb, "insert 1 user1 u1@example.com"); lines[0] != "Executed." {
		t.Fatalf("insert failed: %v", lines)
	}

	_, lines := handleMetaCommand(".btree", tb)
	assertLines(t, lines, []string{
		"Tree:",
		"leaf (size 2)",
		"  - 0 : 1",
		"  - 1 : 3",
	})
}

func TestHandleMetaCommandUnrecognized(t *testing.T) {
	tb := openTable(t)
	exit, lines := handleMetaCommand(".frobnicate", tb)
	if exit {
		t.Error("unrecognized meta-command should not signal exit")
	}
	assertLines(t, lines, []string{"Unrecognized command '.frobnicate'."})
}

func TestHandleStatementInsertAndSelect(t *testing.T) {
	tb := openTable(t)

	lines := handleStatement(tb, "insert 1 cstack foo@bar.com")
	assertLines(t, lines, []string{"Executed."})

	lines = handleStatement(tb, "select")
	assertLines(t, lines, []string{"(1, cstack, foo@bar.com)", "Executed."})
}

func TestHandleStatementSyntaxError(t *testing.T) {
	tb := openTable(t)
	lines := handleStatement(tb, "insert 1 cstack")
	assertLines(t, lines, []string{"Syntax error. Could not parse statement."})
}

func TestHandleStatementUnrecognizedKeyword(t *testing.T) {
	tb := openTable(t)
	lines := handleStatement(tb, "destroy everything")
	assertLines(t, lines, []string{"Unrecognized keyword at start of 'destroy everything'."})
}

func assertLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("output = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
