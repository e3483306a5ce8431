package commands

import (
	"context"
	"errors"
	"fmt"

	"todolist/internal/output"
	"todolist/internal/service"
)

func init() {
	Register(&PendingCmd{})
	Register(&CompletedCmd{})
}

// PendingCmd implements menu choice 3.
type PendingCmd struct{}

func (c *PendingCmd) Key() string   { return "3" }
func (c *PendingCmd) Title() string { return "View Pending Tasks" }

func (c *PendingCmd) Run(ctx context.Context, env *Env) Result {
	tasks, err := env.Service.ListPending(ctx)
	if err != nil {
		if errors.Is(err, service.ErrNoTasks) {
			fmt.Fprintln(env.Out, "No tasks to display!")
			return Continue
		}
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return Continue
	}

	output.FormatPending(env.Out, tasks)
	return Continue
}

// CompletedCmd implements menu choice 4.
type CompletedCmd struct{}

func (c *CompletedCmd) Key() string   { return "4" }
func (c *CompletedCmd) Title() string { return "View Completed Tasks" }

func (c *CompletedCmd) Run(ctx context.Context, env *Env) Result {
	tasks, err := env.Service.ListCompleted(ctx)
	if err != nil {
		if errors.Is(err, service.ErrNoTasks) {
			fmt.Fprintln(env.Out, "No completed tasks to display!")
			return Continue
		}
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return Continue
	}

	output.FormatCompleted(env.Out, tasks)
	return Continue
}
