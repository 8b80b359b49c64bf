// Package main provides fraci, a CLI for generating fractional-index keys.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/kanbanly/fraci/internal/cliapp"
)

func main() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	exitCode := cliapp.Run(os.Stdout, os.Stderr, os.Args, os.Environ(), sigCh)

	os.Exit(exitCode)
}
