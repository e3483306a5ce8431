package commands_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"todolist/internal/commands"
	"todolist/internal/config"
	"todolist/internal/logging"
	"todolist/internal/prompt"
	"todolist/internal/service"
	"todolist/internal/testutil"
)

// runCommand is a helper to run a command with FakeService and scripted input.
func runCommand(t *testing.T, cmd commands.Command, svc *testutil.FakeService, in io.Reader, quiet bool) (stdout, stderr string, result commands.Result) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	env := &commands.Env{
		Config:  &config.Config{Dir: t.TempDir(), Quiet: quiet},
		Service: svc,
		Prompt:  prompt.New(in, &outBuf),
		Logger:  logging.Discard(),
		Out:     &outBuf,
		ErrOut:  &errBuf,
	}

	result = cmd.Run(context.Background(), env)
	return outBuf.String(), errBuf.String(), result
}

// Tests for add command
func TestAddCommand(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, stderr, result := runCommand(t, &commands.AddCmd{}, svc, testutil.Input("Write report", "3"), false)

	if result != commands.Continue {
		t.Errorf("expected Continue, got %d", result)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	expected := "Enter task name: Enter task priority (lower number = higher priority): Task added.\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}

	pending := svc.Pending()
	if len(pending) != 1 || pending[0].Name != "Write report" || pending[0].Priority != 3 {
		t.Errorf("unexpected pending: %#v", pending)
	}
}

func TestAddCommand_RepromptsForPriority(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, _, result := runCommand(t, &commands.AddCmd{}, svc, testutil.Input("Fix bug", "0", "-4", "high", "1"), true)

	if result != commands.Continue {
		t.Errorf("expected Continue, got %d", result)
	}
	retry := "Please enter a valid priority number (It must be greater than 0): "
	expected := "Enter task name: Enter task priority (lower number = higher priority): " + retry + retry + retry
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
	if pending := svc.Pending(); len(pending) != 1 || pending[0].Priority != 1 {
		t.Errorf("unexpected pending: %#v", pending)
	}
}

func TestAddCommand_NameWithSpaces(t *testing.T) {
	svc := testutil.NewFakeService()

	runCommand(t, &commands.AddCmd{}, svc, testutil.Input("  Review the PR  ", "2"), true)

	if pending := svc.Pending(); len(pending) != 1 || pending[0].Name != "  Review the PR  " {
		t.Errorf("unexpected pending: %#v", pending)
	}
}

func TestAddCommand_EOFDuringPriority(t *testing.T) {
	svc := testutil.NewFakeService()

	_, stderr, result := runCommand(t, &commands.AddCmd{}, svc, testutil.Input("Fix bug", "0"), false)

	if result != commands.InputClosed {
		t.Errorf("expected InputClosed, got %d", result)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if len(svc.Pending()) != 0 {
		t.Error("expected no task to be added")
	}
}

func TestAddCommand_BackendError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTaskErr = errors.New("boom")

	_, stderr, result := runCommand(t, &commands.AddCmd{}, svc, testutil.Input("Fix bug", "1"), false)

	if result != commands.Continue {
		t.Errorf("expected Continue, got %d", result)
	}
	if stderr != "error: boom\n" {
		t.Errorf("expected %q, got %q", "error: boom\n", stderr)
	}
}

func TestAddCommand_RejectedPriority(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTaskErr = fmt.Errorf("%w: 0", service.ErrInvalidPriority)

	stdout, stderr, result := runCommand(t, &commands.AddCmd{}, svc, testutil.Input("Fix bug", "1"), false)

	if result != commands.Continue {
		t.Errorf("expected Continue, got %d", result)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.HasSuffix(stdout, "Invalid priority!\n") {
		t.Errorf("expected invalid priority message, got %q", stdout)
	}
}

// Tests for done command
func TestDoneCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddPending("Fix bug", 1)
	svc.AddPending("Review PR", 2)

	stdout, stderr, result := runCommand(t, &commands.DoneCmd{}, svc, testutil.Input("1"), false)

	if result != commands.Continue {
		t.Errorf("expected Continue, got %d", result)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	expected := "\n--- Pending Tasks ---\n" +
		"1. Fix bug (Priority: 1)\n" +
		"2. Review PR (Priority: 2)\n" +
		"Enter the number of the task to mark as completed: " +
		"Task marked as completed: Fix bug\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}

	if completed := svc.Completed(); len(completed) != 1 || completed[0].Name != "Fix bug" {
		t.Errorf("unexpected completed: %#v", completed)
	}
}

func TestDoneCommand_EmptyList(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, _, result := runCommand(t, &commands.DoneCmd{}, svc, testutil.Input(), false)

	if result != commands.Continue {
		t.Errorf("expected Continue, got %d", result)
	}
	if stdout != "No tasks to complete!\n" {
		t.Errorf("expected %q, got %q", "No tasks to complete!\n", stdout)
	}
	if svc.CallLog() != "ListPending" {
		t.Errorf("expected only ListPending, got %q", svc.CallLog())
	}
}

func TestDoneCommand_InvalidNumber(t *testing.T) {
	for _, input := range []string{"0", "-1", "3", "99", "two", ""} {
		t.Run(input, func(t *testing.T) {
			svc := testutil.NewFakeService()
			svc.AddPending("Fix bug", 1)
			svc.AddPending("Review PR", 2)

			stdout, _, result := runCommand(t, &commands.DoneCmd{}, svc, testutil.Input(input), true)

			if result != commands.Continue {
				t.Errorf("expected Continue, got %d", result)
			}
			if !bytes.HasSuffix([]byte(stdout), []byte("Invalid task number!\n")) {
				t.Errorf("expected invalid task number message, got %q", stdout)
			}
			if len(svc.Pending()) != 2 || len(svc.Completed()) != 0 {
				t.Error("expected state to be unchanged")
			}
		})
	}
}

func TestDoneCommand_QuietSuppressesConfirmation(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddPending("Fix bug", 1)

	stdout, _, _ := runCommand(t, &commands.DoneCmd{}, svc, testutil.Input("1"), true)

	if bytes.Contains([]byte(stdout), []byte("Task marked as completed")) {
		t.Errorf("expected no confirmation in quiet mode, got %q", stdout)
	}
}

func TestDoneCommand_EOF(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddPending("Fix bug", 1)

	_, _, result := runCommand(t, &commands.DoneCmd{}, svc, testutil.Input(), false)

	if result != commands.InputClosed {
		t.Errorf("expected InputClosed, got %d", result)
	}
}

func TestDoneCommand_ListError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.ListPendingErr = errors.New("unavailable")

	_, stderr, result := runCommand(t, &commands.DoneCmd{}, svc, testutil.Input("1"), false)

	if result != commands.Continue {
		t.Errorf("expected Continue, got %d", result)
	}
	if stderr != "error: unavailable\n" {
		t.Errorf("expected %q, got %q", "error: unavailable\n", stderr)
	}
}

// Tests for view commands
func TestPendingCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddPending("Fix bug", 1)
	svc.AddPending("Write report", 3)

	stdout, stderr, _ := runCommand(t, &commands.PendingCmd{}, svc, testutil.Input(), false)

	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	expected := "\n--- Pending Tasks ---\n1. Fix bug (Priority: 1)\n2. Write report (Priority: 3)\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestPendingCommand_Empty(t *testing.T) {
	stdout, _, _ := runCommand(t, &commands.PendingCmd{}, testutil.NewFakeService(), testutil.Input(), false)

	if stdout != "No tasks to display!\n" {
		t.Errorf("expected %q, got %q", "No tasks to display!\n", stdout)
	}
}

func TestCompletedCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddCompleted("Fix bug", 1)
	svc.AddCompleted("Deploy", 4)

	stdout, _, _ := runCommand(t, &commands.CompletedCmd{}, svc, testutil.Input(), false)

	expected := "\n--- Completed Tasks ---\nFix bug (Priority: 1)\nDeploy (Priority: 4)\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestCompletedCommand_Empty(t *testing.T) {
	stdout, _, _ := runCommand(t, &commands.CompletedCmd{}, testutil.NewFakeService(), testutil.Input(), false)

	if stdout != "No completed tasks to display!\n" {
		t.Errorf("expected %q, got %q", "No completed tasks to display!\n", stdout)
	}
}

// Tests for exit command
func TestExitCommand(t *testing.T) {
	stdout, _, result := runCommand(t, &commands.ExitCmd{}, testutil.NewFakeService(), testutil.Input(), false)

	if result != commands.Exit {
		t.Errorf("expected Exit, got %d", result)
	}
	if stdout != "Exiting program...\n" {
		t.Errorf("expected %q, got %q", "Exiting program...\n", stdout)
	}
}
