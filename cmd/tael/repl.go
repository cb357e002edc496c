package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"nickandperla.net/tael/pkg/tael"
)

func printBanner() {
	fmt.Println("tael REPL (Ctrl+D to exit)")
	fmt.Println()
	fmt.Println("Enter one JSON node per line, e.g.:")
	fmt.Println(`  {"shape":"Assignment","name":"a","value":{"shape":"Literal","value":2}}`)
	fmt.Println(`  {"shape":"Function","callee":{"name":"add"},"args":[{"shape":"Identifier","name":"a"},{"shape":"Literal","value":3}]}`)
	fmt.Println()
}

// runREPL evaluates one node per line against a session scope that
// behaves like a single long-running block, so assignments persist
// between lines.
func runREPL(runtime *tael.Runtime) {
	printBanner()

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Print("tael> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var node tael.Node
		if err := json.Unmarshal([]byte(line), &node); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		result := runtime.Eval(&node)
		if !result.IsNone() {
			fmt.Println(result.String())
		}
	}
}
