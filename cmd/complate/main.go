package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/voidpointergroup/complate/internal/backend"
	"github.com/voidpointergroup/complate/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// A user-initiated cancel is not a failure worth reporting.
		if errors.Is(err, backend.ErrCancelled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
