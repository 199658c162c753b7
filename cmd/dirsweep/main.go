package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/raoulx24/dirsweep/internal/cli"
)

func main() {
	// An interrupt stops the run after the file in progress; exit status 130.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	code := cli.Execute(ctx, cli.NewRootCommand(), os.Args[1:], os.Stderr)
	cancel()
	os.Exit(code)
}
