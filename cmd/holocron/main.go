// Package main is the entry point for the holocron CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/f3rmion/holocron/cmd/holocron/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
