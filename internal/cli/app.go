// Package cli parses startup flags and runs the interactive menu.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todolist/internal/backend/memory"
	"todolist/internal/commands"
	"todolist/internal/config"
	"todolist/internal/exitcode"
	"todolist/internal/logging"
)

// Version is the application version. Set at build time.
var Version = "0.1.0"

// App wires configuration, logging, the task manager and the menu.
type App struct {
	registry *commands.Registry
}

// NewApp creates an App that serves the commands in registry.
func NewApp(registry *commands.Registry) *App {
	return &App{registry: registry}
}

// Run parses args, builds the session and runs the menu on in/out.
// Returns the exit code.
func (a *App) Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	var configDir string
	var quiet, debug, version, help bool

	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")
	fs.BoolVar(&version, "version", false, "")
	fs.BoolVar(&help, "help", false, "")
	fs.BoolVar(&help, "h", false, "")

	if err := fs.Parse(args); err != nil {
		errStr := err.Error()

		if strings.HasPrefix(errStr, "flag provided but not defined:") {
			flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
			fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
			return exitcode.UserError
		}

		fmt.Fprintf(errOut, "error: %s\n", errStr)
		return exitcode.UserError
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", fs.Arg(0))
		return exitcode.UserError
	}

	if help {
		fmt.Fprint(out, helpText)
		return exitcode.Success
	}
	if version {
		fmt.Fprintf(out, "%s %s\n", config.AppName, Version)
		return exitcode.Success
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: config: %v\n", err)
		return exitcode.ConfigError
	}
	// Flags only ever turn these on.
	cfg.Quiet = cfg.Quiet || quiet
	cfg.Debug = cfg.Debug || debug

	logger := logging.New(errOut, cfg)
	logger.Debug("session start", "config", cfg.Dir, "settings", cfg.HasSettings())

	manager := memory.New(logger)
	code := NewMenu(a.registry, manager, cfg, logger).Run(ctx, in, out, errOut)

	pending, completed := manager.Counts()
	logger.Debug("session end", "pending", pending, "completed", completed, "code", code)
	return code
}

const helpText = `Usage:
  todolist [flags]    Start the interactive to-do list

Flags:
  --config <dir>   Override config directory
  --quiet          Suppress confirmation messages
  --debug          Print debug logs to stderr
  --version        Print version and exit
  --help           Print this help and exit
`
