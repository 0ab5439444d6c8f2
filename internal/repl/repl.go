// Package repl is the read-eval-print loop: it reads lines, echoes the
// "db > " prompt, and dispatches meta-commands versus SQL-like commands to
// internal/parser and internal/executor.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"dbtutorial/internal/executor"
	"dbtutorial/internal/node"
	"dbtutorial/internal/parser"
	"dbtutorial/internal/row"
	"dbtutorial/internal/table"
)

const prompt = "db > "

// Run reads lines from stdin until ".exit" or EOF, dispatching each to a
// meta-command handler or the parser/executor pipeline. It returns when the
// REPL should stop; the caller is responsible for closing t.
func Run(t *table.Table) error {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print(prompt)

		line, err := reader.ReadString('\n')
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		line = strings.TrimRight(line, "\r\n")

		if strings.HasPrefix(line, ".") {
			exit, output := handleMetaCommand(line, t)
			printLines(output)
			if exit {
				return nil
			}
			continue
		}

		printLines(handleStatement(t, line))
	}
}

func handleStatement(t *table.Table, line string) []string {
	stmt, err := parser.PrepareStatement(line)
	if err != nil {
		return []string{err.Error()}
	}

	lines, err := executor.Execute(t, stmt)
	if err != nil {
		return []string{err.Error()}
	}
	return lines
}

// handleMetaCommand handles a "."-prefixed line. It returns (true, nil) if
// the REPL should exit.
func handleMetaCommand(input string, t *table.Table) (bool, []string) {
	switch input {
	case ".exit":
		return true, nil
	case ".constants":
		return false, constantsOutput()
	case ".btree":
		return false, btreeOutput(t)
	case ".stats":
		return false, statsOutput(t)
	default:
		return false, []string{fmt.Sprintf("Unrecognized command '%s'.", input)}
	}
}

func constantsOutput() []string {
	return []string{
		"Constants:",
		fmt.Sprintf("ROW_SIZE: %d", row.Size),
		fmt.Sprintf("COMMON_NODE_HEADER_SIZE: %d", node.CommonHeaderSize),
		fmt.Sprintf("LEAF_NODE_HEADER_SIZE: %d", node.CommonHeaderSize+node.LeafHeaderSize),
		fmt.Sprintf("LEAF_NODE_CELL_SIZE: %d", node.CellSize),
		fmt.Sprintf("LEAF_NODE_SPACE_FOR_CELLS: %d", node.SpaceForCells),
		fmt.Sprintf("LEAF_NODE_MAX_CELLS: %d", node.MaxCells),
	}
}

func btreeOutput(t *table.Table) []string {
	root, err := t.RootPage()
	if err != nil {
		return []string{err.Error()}
	}

	n := node.NumCells(root)
	lines := []string{"Tree:", fmt.Sprintf("leaf (size %d)", n)}
	for i := uint32(0); i < n; i++ {
		lines = append(lines, fmt.Sprintf("  - %d : %d", i, node.Key(root, i)))
	}
	return lines
}

// statsOutput is an additive diagnostic beyond the usual meta-commands:
// it reports the on-disk file size and the root leaf's cell count.
func statsOutput(t *table.Table) []string {
	info, err := os.Stat(t.Path)
	if err != nil {
		return []string{err.Error()}
	}

	root, err := t.RootPage()
	if err != nil {
		return []string{err.Error()}
	}

	return []string{
		fmt.Sprintf("file size: %s", humanize.Bytes(uint64(info.Size()))),
		fmt.Sprintf("rows: %d", node.NumCells(root)),
	}
}

func printLines(lines []string) {
	for _, l := range lines {
		fmt.Println(l)
	}
}
