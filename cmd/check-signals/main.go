package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/omatheusmesmo/checksignals/internal/cli"
	"github.com/omatheusmesmo/checksignals/pkg/checksignals"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(checksignals.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(checksignals.ExitCodeForError(err))
	}
}
