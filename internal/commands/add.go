package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"todolist/internal/service"
)

const (
	namePrompt     = "Enter task name: "
	priorityPrompt = "Enter task priority (lower number = higher priority): "
	priorityRetry  = "Please enter a valid priority number (It must be greater than 0): "
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements menu choice 1.
type AddCmd struct{}

func (c *AddCmd) Key() string   { return "1" }
func (c *AddCmd) Title() string { return "Add Task" }

func (c *AddCmd) Run(ctx context.Context, env *Env) Result {
	name, err := env.Prompt.ReadLine(namePrompt)
	if err != nil {
		return inputError(env, err)
	}

	priority, err := env.Prompt.ReadPositiveInt(priorityPrompt, priorityRetry)
	if err != nil {
		return inputError(env, err)
	}

	if _, err := env.Service.AddTask(ctx, name, priority); err != nil {
		if errors.Is(err, service.ErrInvalidPriority) {
			fmt.Fprintln(env.Out, "Invalid priority!")
			return Continue
		}
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return Continue
	}

	if !env.Config.Quiet {
		fmt.Fprintln(env.Out, "Task added.")
	}
	return Continue
}

// inputError maps a read failure to a Result. End of input closes the
// session quietly; anything else is reported and closes it too.
func inputError(env *Env, err error) Result {
	if !errors.Is(err, io.EOF) {
		fmt.Fprintf(env.ErrOut, "error: read input: %v\n", err)
	}
	env.Logger.Debug("input closed", "err", err)
	return InputClosed
}
