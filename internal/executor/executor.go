// Package executor drives the cursor from a parsed statement and renders
// the resulting output lines. Statement-local errors are returned as
// values; only the caller decides whether to print and continue.
package executor

import (
	"fmt"

	"dbtutorial/internal/cursor"
	"dbtutorial/internal/parser"
	"dbtutorial/internal/row"
	"dbtutorial/internal/table"
)

// Execute runs stmt against t and returns the lines to print. On success
// the last line is always "Executed."; on a statement-local execute error
// (table full, duplicate key) it returns that error and no lines.
func Execute(t *table.Table, stmt parser.Statement) ([]string, error) {
	switch stmt.Kind {
	case parser.Insert:
		return executeInsert(t, stmt.RowToInsert)
	case parser.Select:
		return executeSelect(t)
	default:
		return nil, fmt.Errorf("unknown statement kind %d", stmt.Kind)
	}
}

func executeInsert(t *table.Table, r row.Row) ([]string, error) {
	c, err := cursor.Find(t, r.ID)
	if err != nil {
		return nil, err
	}
	if err := c.LeafInsert(r.ID, r); err != nil {
		return nil, err
	}
	return []string{"Executed."}, nil
}

func executeSelect(t *table.Table) ([]string, error) {
	c, err := cursor.Start(t)
	if err != nil {
		return nil, err
	}

	var lines []string
	for !c.EndOfTable {
		buf, err := c.Value()
		if err != nil {
			return nil, err
		}
		r := row.Deserialize(buf, 0)
		lines = append(lines, fmt.Sprintf("(%d, %s, %s)", r.ID, r.Username, r.Email))
		if err := c.Advance(); err != nil {
			return nil, err
		}
	}
	lines = append(lines, "Executed.")
	return lines, nil
}
