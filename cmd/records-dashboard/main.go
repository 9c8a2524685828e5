// Package main is the entry point for the records-dashboard application
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/myusername/records-dashboard/cmd/records-dashboard/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands.ExecuteContext(ctx)
}
