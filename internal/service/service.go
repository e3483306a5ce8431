// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"context"
	"errors"
)

var (
	// ErrInvalidPriority is returned when a priority is not a positive integer.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidTaskIndex is returned when a 1-based task number does not
	// refer to a pending task.
	ErrInvalidTaskIndex = errors.New("invalid task number")

	// ErrNoTasks is returned by list operations when there is nothing to list.
	ErrNoTasks = errors.New("no tasks")
)

// Service defines the interface for task list operations.
// The menu commands only talk to this interface.
type Service interface {
	// AddTask creates a pending task and re-sorts the pending list.
	// Returns ErrInvalidPriority if priority < 1.
	AddTask(ctx context.Context, name string, priority int) (Task, error)

	// CompleteTask moves the pending task at the 1-based index to the end
	// of the completed list. Returns ErrInvalidTaskIndex and leaves both
	// lists untouched if the index is out of range.
	CompleteTask(ctx context.Context, index int) (Task, error)

	// ListPending returns pending tasks ordered by priority.
	// Returns ErrNoTasks if there are none.
	ListPending(ctx context.Context) ([]Task, error)

	// ListCompleted returns completed tasks in completion order.
	// Returns ErrNoTasks if there are none.
	ListCompleted(ctx context.Context) ([]Task, error)
}
