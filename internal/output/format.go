// Package output provides formatters for console output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todolist/internal/service"
)

const (
	// MenuHeader is the heading printed above the menu choices.
	MenuHeader = "--- To-Do List Menu ---"

	// PendingHeader is the heading printed above pending tasks.
	PendingHeader = "--- Pending Tasks ---"

	// CompletedHeader is the heading printed above completed tasks.
	CompletedHeader = "--- Completed Tasks ---"
)

// MenuItem is one numbered menu choice.
type MenuItem struct {
	Key   string
	Title string
}

// FormatMenu writes the menu heading and one line per choice.
// Format: "\n--- To-Do List Menu ---\n{KEY}. {TITLE}\n..."
func FormatMenu(w io.Writer, items []MenuItem) {
	fmt.Fprintf(w, "\n%s\n", MenuHeader)
	for _, item := range items {
		fmt.Fprintf(w, "%s. %s\n", item.Key, item.Title)
	}
}

// FormatPending writes the pending section with 1-based numbers.
// Format: "{N}. {NAME} (Priority: {P})\n"
func FormatPending(w io.Writer, tasks []service.Task) {
	fmt.Fprintf(w, "\n%s\n", PendingHeader)
	for i, task := range tasks {
		fmt.Fprintf(w, "%d. %s\n", i+1, formatTask(task))
	}
}

// FormatCompleted writes the completed section without numbers.
func FormatCompleted(w io.Writer, tasks []service.Task) {
	fmt.Fprintf(w, "\n%s\n", CompletedHeader)
	for _, task := range tasks {
		fmt.Fprintln(w, formatTask(task))
	}
}

func formatTask(task service.Task) string {
	return fmt.Sprintf("%s (Priority: %d)", normalizeName(task.Name), task.Priority)
}

// normalizeName normalizes a task name for display.
// - Empty or whitespace-only names become "(untitled)"
// - Newlines are replaced with spaces
func normalizeName(name string) string {
	name = strings.ReplaceAll(name, "\r", " ")
	name = strings.ReplaceAll(name, "\n", " ")

	if strings.TrimSpace(name) == "" {
		return "(untitled)"
	}
	return name
}
