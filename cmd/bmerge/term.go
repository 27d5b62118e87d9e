package main

import (
	"os"

	"github.com/charmbracelet/x/term"
)

// getTerminalWidth returns the width of the terminal attached to stderr minus
// two columns, or 88 if stderr is not a terminal or its size cannot be
// determined. Used by diff to truncate rendered output.
func getTerminalWidth() int {
	width := 90

	if term.IsTerminal(os.Stderr.Fd()) {
		w, _, err := term.GetSize(os.Stderr.Fd())
		if err == nil {
			width = w
		}
	}

	return max(0, width-2)
}
