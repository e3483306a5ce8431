package commands

import (
	"context"
	"fmt"
)

func init() {
	Register(&ExitCmd{})
}

// ExitCmd implements menu choice 5.
type ExitCmd struct{}

func (c *ExitCmd) Key() string   { return "5" }
func (c *ExitCmd) Title() string { return "Exit" }

func (c *ExitCmd) Run(ctx context.Context, env *Env) Result {
	fmt.Fprintln(env.Out, "Exiting program...")
	return Exit
}
