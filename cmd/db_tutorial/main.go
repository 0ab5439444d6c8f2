// Command db_tutorial opens (or creates) a database file and runs the
// interactive REPL against it.
package main

import (
	"fmt"
	"os"

	"dbtutorial/internal/dblog"
	"dbtutorial/internal/repl"
	"dbtutorial/internal/table"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Must supply a database filename.")
		os.Exit(1)
	}
	path := os.Args[1]

	t, err := table.Open(path)
	if err != nil {
		dblog.Fatal("failed to open database file", err)
		dblog.Sync()
		fmt.Printf("Could not open file %s: %v\n", path, err)
		os.Exit(1)
	}

	if err := repl.Run(t); err != nil {
		dblog.Fatal("repl terminated with an error", err)
		dblog.Sync()
		fmt.Println(err)
		os.Exit(1)
	}

	if err := t.Close(); err != nil {
		dblog.Fatal("failed to close database file", err)
		dblog.Sync()
		fmt.Printf("Could not close file %s: %v\n", path, err)
		os.Exit(1)
	}

	dblog.Sync()
	os.Exit(0)
}
