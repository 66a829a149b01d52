package cli

import (
	"os"

	"golang.org/x/term"
)

// IsNonInteractive reports whether interactive backends must be refused.
func IsNonInteractive() bool {
	if _, ok := os.LookupEnv("COMPLATE_NON_INTERACTIVE"); ok {
		return true
	}
	return !hasTTY()
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
