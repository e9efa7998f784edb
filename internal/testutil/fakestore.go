// Package testutil provides testing utilities.
package testutil

import (
	"context"

	"taskline/internal/store"
)

// FakeStore is a store.Store implementation for tests. It keeps tasks
// in memory and injects one configurable error per method.
type FakeStore struct {
	mem *store.MemoryStore

	// Error injection for testing
	AddTaskErr       error
	ListTasksErr     error
	SnapshotErr      error
	MarkCompletedErr error
	CloseErr         error

	// Closed records whether Close was called.
	Closed bool
}

// NewFakeStore creates an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{mem: store.NewMemoryStore()}
}

// Seed adds tasks without going through error injection.
func (f *FakeStore) Seed(descriptions ...string) {
	for _, d := range descriptions {
		_ = f.mem.AddTask(context.Background(), d)
	}
}

// AddTask implements store.Store.
func (f *FakeStore) AddTask(ctx context.Context, description string) error {
	if f.AddTaskErr != nil {
		return f.AddTaskErr
	}
	return f.mem.AddTask(ctx, description)
}

// ListTasks implements store.Store.
func (f *FakeStore) ListTasks(ctx context.Context) ([]string, error) {
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	return f.mem.ListTasks(ctx)
}

// Snapshot implements store.Store.
func (f *FakeStore) Snapshot(ctx context.Context) ([]store.Task, error) {
	if f.SnapshotErr != nil {
		return nil, f.SnapshotErr
	}
	return f.mem.Snapshot(ctx)
}

// MarkCompleted implements store.Store.
func (f *FakeStore) MarkCompleted(ctx context.Context, index int) error {
	if f.MarkCompletedErr != nil {
		return f.MarkCompletedErr
	}
	return f.mem.MarkCompleted(ctx, index)
}

// Close implements store.Store.
func (f *FakeStore) Close() error {
	f.Closed = true
	return f.CloseErr
}
