// Package commands provides the menu command interface and implementations.
package commands

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"todolist/internal/config"
	"todolist/internal/prompt"
	"todolist/internal/service"
)

// Result tells the menu loop what to do after a command runs.
type Result int

const (
	// Continue shows the menu again.
	Continue Result = iota

	// Exit ends the session normally.
	Exit

	// InputClosed ends the session because input ran out mid-command.
	InputClosed
)

// Env is everything a command may touch while it runs.
type Env struct {
	Config  *config.Config
	Service service.Service
	Prompt  *prompt.Prompter
	Logger  *log.Logger
	Out     io.Writer
	ErrOut  io.Writer
}

// Command defines the interface for menu commands.
type Command interface {
	// Key returns the menu choice that selects the command.
	Key() string

	// Title returns the label shown next to the key in the menu.
	Title() string

	// Run executes the command.
	// Domain errors are reported on env.Out and never end the session.
	Run(ctx context.Context, env *Env) Result
}
