// Package main is the entry point for the todolist CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"todolist/internal/cli"
	"todolist/internal/commands"
	"todolist/internal/exitcode"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals. The menu may be blocked reading stdin, so leave
	// directly once the context is cancelled.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
		os.Stdout.WriteString("\n")
		os.Exit(exitcode.Success)
	}()

	app := cli.NewApp(commands.DefaultRegistry)

	// Run and exit with code
	code := app.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(code)
}
