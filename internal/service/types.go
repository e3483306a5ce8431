// Package service defines the backend-agnostic interface for task operations.
package service

import "github.com/google/uuid"

// Task represents a single to-do item.
type Task struct {
	ID        uuid.UUID
	Name      string
	Priority  int // lower value = more urgent
	Completed bool
}

// NewTask returns a pending task with a fresh ID.
func NewTask(name string, priority int) Task {
	return Task{
		ID:       uuid.New(),
		Name:     name,
		Priority: priority,
	}
}
