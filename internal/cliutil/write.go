// Package cliutil provides output helpers and the console logger for the CLI.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteList writes a heading with a count followed by one indented line per
// item. Nothing is written for an empty list.
//
//	Warnings (2):
//	  - first
//	  - second
func WriteList(w io.Writer, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	Writef(w, "%s (%d):\n", heading, len(items))
	for _, item := range items {
		Writef(w, "  - %s\n", item)
	}
}
