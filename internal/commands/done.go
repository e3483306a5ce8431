package commands

import (
	"context"
	"errors"
	"fmt"

	"todolist/internal/output"
	"todolist/internal/prompt"
	"todolist/internal/service"
)

const completePrompt = "Enter the number of the task to mark as completed: "

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements menu choice 2.
type DoneCmd struct{}

func (c *DoneCmd) Key() string   { return "2" }
func (c *DoneCmd) Title() string { return "Complete Task" }

func (c *DoneCmd) Run(ctx context.Context, env *Env) Result {
	pending, err := env.Service.ListPending(ctx)
	if err != nil {
		if errors.Is(err, service.ErrNoTasks) {
			fmt.Fprintln(env.Out, "No tasks to complete!")
			return Continue
		}
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return Continue
	}

	output.FormatPending(env.Out, pending)

	num, err := env.Prompt.ReadInt(completePrompt)
	if err != nil {
		if errors.Is(err, prompt.ErrNotANumber) {
			fmt.Fprintln(env.Out, "Invalid task number!")
			return Continue
		}
		return inputError(env, err)
	}

	task, err := env.Service.CompleteTask(ctx, num)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTaskIndex) {
			env.Logger.Debug("complete rejected", "index", num, "pending", len(pending))
			fmt.Fprintln(env.Out, "Invalid task number!")
			return Continue
		}
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return Continue
	}

	if !env.Config.Quiet {
		fmt.Fprintf(env.Out, "Task marked as completed: %s\n", task.Name)
	}
	return Continue
}
