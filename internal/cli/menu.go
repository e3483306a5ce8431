package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"todolist/internal/commands"
	"todolist/internal/config"
	"todolist/internal/exitcode"
	"todolist/internal/output"
	"todolist/internal/prompt"
	"todolist/internal/service"
)

const choicePrompt = "Enter your choice: "

// Menu runs the interactive command loop.
type Menu struct {
	registry *commands.Registry
	svc      service.Service
	cfg      *config.Config
	logger   *log.Logger
}

// NewMenu creates a menu over the given registry and service.
func NewMenu(registry *commands.Registry, svc service.Service, cfg *config.Config, logger *log.Logger) *Menu {
	return &Menu{
		registry: registry,
		svc:      svc,
		cfg:      cfg,
		logger:   logger,
	}
}

// Run shows the menu and dispatches choices until Exit is chosen, input
// ends or ctx is cancelled. Returns the exit code.
func (m *Menu) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) int {
	env := &commands.Env{
		Config:  m.cfg,
		Service: m.svc,
		Prompt:  prompt.New(in, out),
		Logger:  m.logger,
		Out:     out,
		ErrOut:  errOut,
	}

	items := m.menuItems()
	for {
		if err := ctx.Err(); err != nil {
			m.logger.Debug("session cancelled", "err", err)
			return exitcode.Success
		}

		output.FormatMenu(out, items)
		choice, err := env.Prompt.ReadLine(choicePrompt)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Fprintf(errOut, "error: read input: %v\n", err)
			}
			m.logger.Debug("input closed at menu", "err", err)
			return exitcode.Success
		}

		cmd, ok := m.registry.Find(strings.TrimSpace(choice))
		if !ok {
			m.logger.Debug("invalid menu choice", "choice", choice)
			fmt.Fprintln(out, "Invalid choice, try again!")
			continue
		}

		m.logger.Debug("dispatch", "choice", cmd.Key(), "command", cmd.Title())
		switch cmd.Run(ctx, env) {
		case commands.Exit, commands.InputClosed:
			return exitcode.Success
		}
	}
}

func (m *Menu) menuItems() []output.MenuItem {
	cmds := m.registry.All()
	items := make([]output.MenuItem, len(cmds))
	for i, cmd := range cmds {
		items[i] = output.MenuItem{Key: cmd.Key(), Title: cmd.Title()}
	}
	return items
}
