// personamatch: questionnaire-driven persona assignment.
//
// Assigns exactly one coaching persona from four questionnaire answers,
// either through the fixed assignment table with partition-locked
// fallback or through weighted tag scoring over the live roster.
//
// Usage:
//
//	personamatch serve                 # Start MCP server (stdio transport)
//	personamatch resolve --answer ...  # Resolve once from the command line
//	personamatch validate              # Check catalog, table, and seed files
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
