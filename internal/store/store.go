// Package store defines the task store contract and its implementations.
package store

import (
	"context"
	"strings"
)

// Task represents a single task item.
type Task struct {
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Display returns the task rendered for listings:
// "[X] <description>" when completed, "[ ] <description>" otherwise.
func (t Task) Display() string {
	if t.Completed {
		return "[X] " + t.Description
	}
	return "[ ] " + t.Description
}

// Store defines the interface for task storage operations.
// All implementations preserve insertion order and address tasks by
// their 0-based position. The console and commands never touch
// persistence details directly.
type Store interface {
	// AddTask appends a task with the given description, not completed.
	// Descriptions are stored verbatim; empty strings are accepted.
	AddTask(ctx context.Context, description string) error

	// ListTasks returns every task rendered as a display string,
	// in insertion order. An empty store yields an empty slice.
	ListTasks(ctx context.Context) ([]string, error)

	// Snapshot returns every task as structured data, in insertion order.
	Snapshot(ctx context.Context) ([]Task, error)

	// MarkCompleted marks the task at the 0-based index completed.
	// An out-of-range index changes nothing and returns nil.
	MarkCompleted(ctx context.Context, index int) error

	// Close releases any resources held by the store.
	Close() error
}

// NormalizeDescription prepares free-form input for storage.
// Newlines are replaced with spaces: the file-backed store keeps one
// task per line and cannot represent them.
func NormalizeDescription(description string) string {
	description = strings.ReplaceAll(description, "\r", " ")
	description = strings.ReplaceAll(description, "\n", " ")
	return description
}

// displayStrings renders tasks for ListTasks implementations.
func displayStrings(tasks []Task) []string {
	result := make([]string, len(tasks))
	for i, t := range tasks {
		result[i] = t.Display()
	}
	return result
}
