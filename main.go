// Package main is the entry point for the skl CLI application.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/eykd/skilllint-go/cmd"
)

func main() {
	// Cancelled on SIGINT so a long check stops between files.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cmd.Main(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
