// Command tael evaluates tael program documents.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
	"nickandperla.net/tael/pkg/tael"
)

func main() {
	var (
		file       = flag.String("f", "", "Program file to run (.json, .yaml or .yml)")
		ids        = flag.String("ids", "", "Comma-separated node ids to report")
		dbPath     = flag.String("db", "tael.db", "SQLite database path")
		saveName   = flag.String("save", "", "Persist the program under this name instead of running it")
		runName    = flag.String("run", "", "Run a previously saved program")
		noDefaults = flag.Bool("no-defaults", false, "Skip the default host operations")
	)

	flag.Parse()

	opts := []tael.Option{
		tael.WithSQLiteStore(*dbPath),
		tael.WithDiagnostics(os.Stderr),
	}
	if *noDefaults {
		opts = append(opts, tael.WithNoDefaults())
	}

	runtime := tael.New(opts...)
	defer runtime.Close()

	interest := parseIDs(*ids)

	switch {
	case *saveName != "":
		if *file == "" {
			fmt.Fprintln(os.Stderr, "Error: -save requires -f")
			os.Exit(1)
		}
		if err := runtime.SaveProgramFile(*saveName, *file); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving program: %v\n", err)
			os.Exit(1)
		}

	case *runName != "":
		results, err := runtime.RunStored(*runName, interest)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printResults(results, interest)

	case *file != "":
		results, err := runtime.RunFile(*file, interest)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printResults(results, interest)

	case !term.IsTerminal(int(os.Stdin.Fd())):
		// Piped input: a JSON program document on stdin.
		results, err := runtime.RunReader(os.Stdin, interest)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printResults(results, interest)

	default:
		runREPL(runtime)
	}
}

// parseIDs splits a comma-separated id list, dropping empty entries.
func parseIDs(s string) []tael.NodeID {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	ids := make([]tael.NodeID, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, tael.NodeID(p))
		}
	}
	return ids
}

// printResults reports values in the order the ids were requested. Ids
// that produced no defined value are silently omitted.
func printResults(results map[tael.NodeID]tael.Value, interest []tael.NodeID) {
	for _, id := range interest {
		if v, ok := results[id]; ok {
			fmt.Printf("%s = %s\n", id, v.String())
		}
	}
}
