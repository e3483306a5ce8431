// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"todolist/internal/service"
)

var _ service.Service = (*FakeService)(nil)

// FakeService is an in-memory implementation of service.Service for testing.
// Tasks are stored exactly as seeded; AddTask appends without sorting so
// command tests can control the displayed order.
type FakeService struct {
	mu        sync.RWMutex
	pending   []service.Task
	completed []service.Task

	// Error injection for testing
	AddTaskErr       error
	CompleteTaskErr  error
	ListPendingErr   error
	ListCompletedErr error

	// Calls records method names in call order.
	Calls []string
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{}
}

// AddPending seeds a pending task.
func (f *FakeService) AddPending(name string, priority int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = append(f.pending, service.NewTask(name, priority))
}

// AddCompleted seeds a completed task.
func (f *FakeService) AddCompleted(name string, priority int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	task := service.NewTask(name, priority)
	task.Completed = true
	f.completed = append(f.completed, task)
}

// Pending returns the current pending tasks.
func (f *FakeService) Pending() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]service.Task(nil), f.pending...)
}

// Completed returns the current completed tasks.
func (f *FakeService) Completed() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]service.Task(nil), f.completed...)
}

// AddTask implements service.Service.
func (f *FakeService) AddTask(ctx context.Context, name string, priority int) (service.Task, error) {
	f.record("AddTask")
	if f.AddTaskErr != nil {
		return service.Task{}, f.AddTaskErr
	}
	if priority < 1 {
		return service.Task{}, fmt.Errorf("%w: %d", service.ErrInvalidPriority, priority)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	task := service.NewTask(name, priority)
	f.pending = append(f.pending, task)
	return task, nil
}

// CompleteTask implements service.Service.
func (f *FakeService) CompleteTask(ctx context.Context, index int) (service.Task, error) {
	f.record("CompleteTask")
	if f.CompleteTaskErr != nil {
		return service.Task{}, f.CompleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if index < 1 || index > len(f.pending) {
		return service.Task{}, fmt.Errorf("%w: %d", service.ErrInvalidTaskIndex, index)
	}
	task := f.pending[index-1]
	task.Completed = true
	f.pending = append(f.pending[:index-1], f.pending[index:]...)
	f.completed = append(f.completed, task)
	return task, nil
}

// ListPending implements service.Service.
func (f *FakeService) ListPending(ctx context.Context) ([]service.Task, error) {
	f.record("ListPending")
	if f.ListPendingErr != nil {
		return nil, f.ListPendingErr
	}
	tasks := f.Pending()
	if len(tasks) == 0 {
		return []service.Task{}, service.ErrNoTasks
	}
	return tasks, nil
}

// ListCompleted implements service.Service.
func (f *FakeService) ListCompleted(ctx context.Context) ([]service.Task, error) {
	f.record("ListCompleted")
	if f.ListCompletedErr != nil {
		return nil, f.ListCompletedErr
	}
	tasks := f.Completed()
	if len(tasks) == 0 {
		return []service.Task{}, service.ErrNoTasks
	}
	return tasks, nil
}

// CallLog returns the recorded calls joined by spaces.
func (f *FakeService) CallLog() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return strings.Join(f.Calls, " ")
}

func (f *FakeService) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, name)
}
