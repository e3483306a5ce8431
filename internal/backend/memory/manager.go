// Package memory implements the service.Service interface with in-process lists.
package memory

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"todolist/internal/service"
)

var _ service.Service = (*Manager)(nil)

// Manager implements service.Service. It owns a pending list kept sorted
// by priority and an append-only completed list.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	pending   []service.Task
	completed []service.Task
	logger    *log.Logger
}

// New creates an empty Manager. A nil logger discards diagnostics.
func New(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{logger: logger}
}

// AddTask creates a pending task and inserts it in priority order.
func (m *Manager) AddTask(ctx context.Context, name string, priority int) (service.Task, error) {
	if priority < 1 {
		return service.Task{}, fmt.Errorf("%w: %d (must be greater than 0)", service.ErrInvalidPriority, priority)
	}

	task := service.NewTask(name, priority)

	// Insert after the last task with priority <= the new one so that
	// equal priorities keep insertion order.
	pos := len(m.pending)
	for pos > 0 && m.pending[pos-1].Priority > priority {
		pos--
	}
	m.pending = append(m.pending, service.Task{})
	copy(m.pending[pos+1:], m.pending[pos:])
	m.pending[pos] = task

	m.logger.Debug("task added", "id", task.ID, "name", task.Name, "priority", task.Priority, "position", pos+1)
	return task, nil
}

// CompleteTask marks the pending task at the 1-based index as completed
// and moves it to the end of the completed list.
func (m *Manager) CompleteTask(ctx context.Context, index int) (service.Task, error) {
	if index < 1 || index > len(m.pending) {
		return service.Task{}, fmt.Errorf("%w: %d", service.ErrInvalidTaskIndex, index)
	}

	i := index - 1
	task := m.pending[i]
	task.Completed = true

	m.pending = append(m.pending[:i], m.pending[i+1:]...)
	m.completed = append(m.completed, task)

	m.logger.Debug("task completed", "id", task.ID, "name", task.Name, "priority", task.Priority)
	return task, nil
}

// ListPending returns a copy of the pending list.
func (m *Manager) ListPending(ctx context.Context) ([]service.Task, error) {
	return snapshot(m.pending)
}

// ListCompleted returns a copy of the completed list.
func (m *Manager) ListCompleted(ctx context.Context) ([]service.Task, error) {
	return snapshot(m.completed)
}

// Counts returns the number of pending and completed tasks.
func (m *Manager) Counts() (pending, completed int) {
	return len(m.pending), len(m.completed)
}

func snapshot(tasks []service.Task) ([]service.Task, error) {
	if len(tasks) == 0 {
		return []service.Task{}, service.ErrNoTasks
	}
	out := make([]service.Task, len(tasks))
	copy(out, tasks)
	return out, nil
}
