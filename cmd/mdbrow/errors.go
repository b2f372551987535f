package main

import (
	"fmt"
	"io"
	"os"
)

// exitFailure is the status for every failed command.
const exitFailure = 1

func formatError(err error) string {
	return "Error: " + err.Error()
}

// writeError writes the one-line failure report for err to w.
func writeError(w io.Writer, err error) {
	_, _ = fmt.Fprintln(w, formatError(err))
}

// printError reports err on stderr and exits. It does not return.
func printError(err error) {
	writeError(os.Stderr, err)
	os.Exit(exitFailure)
}
