// Package cli provides helpers for interactive mode detection.
package cli

import (
	"os"

	"golang.org/x/term"
)

// IsNonInteractive reports whether interactive views must not be started.
func IsNonInteractive() bool {
	if nonInteractive {
		return true
	}
	if _, ok := os.LookupEnv("TINCT_NON_INTERACTIVE"); ok {
		return true
	}
	return !hasTTY()
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
