// Package termx detects terminal properties of output destinations.
package termx

import (
	"golang.org/x/term"
	"io"
)

type fder interface {
	Fd() uintptr
}

// IsTerminal returns true if w is backed by a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the number of columns of the terminal behind w.
// Zero is returned if w isn't a terminal, or its size can't be determined.
func Width(w io.Writer) int {
	if !IsTerminal(w) {
		return 0
	}
	cols, _, err := term.GetSize(int(w.(fder).Fd()))
	if err != nil || cols < 0 {
		return 0
	}
	return cols
}
